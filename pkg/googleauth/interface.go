package googleauth

import "context"

// IIdentity defines the identity provider operations used by the service.
type IIdentity interface {
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
	Revoke(ctx context.Context, accessToken string) error
}

var _ IIdentity = (*Client)(nil)
