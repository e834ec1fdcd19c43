package googleauth

// Profile is the signed-in user's profile from the userinfo endpoint.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"picture"`
}
