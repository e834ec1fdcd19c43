package usecase

import (
	"context"
	"fmt"

	"scheduling-assistant/internal/auth"
	"scheduling-assistant/internal/model"
)

// Login validates the Google access token against the userinfo endpoint and
// creates a session carrying the token for calendar access.
func (uc *implUseCase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	profile, err := uc.identity.FetchProfile(ctx, ip.AccessToken)
	if err != nil {
		uc.l.Warnf(ctx, "auth.Login: profile fetch failed: %v", err)
		return auth.LoginOutput{}, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}

	user := model.User{
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
	}
	s := uc.sessions.Create(user, ip.AccessToken)

	uc.l.Infof(ctx, "auth.Login: session created for %s", user.Email)
	return auth.LoginOutput{SessionToken: s.ID, User: user}, nil
}

// Logout removes the session. The Google-side revoke is best effort: the
// local session ends either way.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	s, ok := uc.sessions.Revoke(sessionID)
	if !ok {
		return auth.ErrSessionNotFound
	}

	if err := uc.identity.Revoke(ctx, s.AccessToken); err != nil {
		uc.l.Warnf(ctx, "auth.Logout: token revoke failed for %s: %v", s.User.Email, err)
	}

	uc.l.Infof(ctx, "auth.Logout: session ended for %s", s.User.Email)
	return nil
}

// Me returns the profile for a live session.
func (uc *implUseCase) Me(ctx context.Context, sessionID string) (model.User, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return model.User{}, auth.ErrSessionNotFound
	}
	return s.User, nil
}
