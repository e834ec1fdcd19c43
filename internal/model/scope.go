package model

// Scope carries the per-request session context: who is calling and the
// bearer credential used for calendar access on their behalf. The token is
// threaded through explicitly rather than held in ambient global state.
type Scope struct {
	SessionID   string
	UserEmail   string
	AccessToken string
}
