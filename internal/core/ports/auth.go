package ports

import "context"

// Authenticator resolves request credentials into a stable user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uint64, error)
}
