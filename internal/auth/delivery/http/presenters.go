package http

import (
	"scheduling-assistant/internal/auth"
	"scheduling-assistant/internal/model"
)

// --- Request DTOs ---

type loginReq struct {
	AccessToken string `json:"access_token" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{AccessToken: r.AccessToken}
}

// --- Response DTOs ---

type userResp struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func newUserResp(user model.User) userResp {
	return userResp{
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}

type loginResp struct {
	SessionToken string   `json:"session_token"`
	User         userResp `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		SessionToken: out.SessionToken,
		User:         newUserResp(out.User),
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(user model.User) meResp {
	return meResp{User: newUserResp(user)}
}
