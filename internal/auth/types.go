package auth

import "scheduling-assistant/internal/model"

// LoginInput carries the Google OAuth access token obtained by the browser.
type LoginInput struct {
	AccessToken string
}

// LoginOutput is the created session and the signed-in user's profile.
type LoginOutput struct {
	SessionToken string
	User         model.User
}
