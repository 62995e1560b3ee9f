package usecase

import (
	"context"
	"strings"

	"disc-rental/internal/auth"
	"disc-rental/internal/auth/repository"
	"disc-rental/pkg/hash"
	"disc-rental/pkg/scope"
)

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID.IsZero() || !hash.Check(user.PasswordHash, input.Password) {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.scope.IssueToken(scope.Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.IssueToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token: token,
		User: auth.UserOutput{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
