package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Me resolves the user behind a verified token subject.
	Me(ctx context.Context, userID string) (UserOutput, error)
}
