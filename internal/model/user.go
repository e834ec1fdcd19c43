package model

// User is the signed-in user's profile as returned by the identity provider.
type User struct {
	Name      string
	Email     string
	AvatarURL string
}
