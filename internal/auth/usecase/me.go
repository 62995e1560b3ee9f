package usecase

import (
	"context"

	"disc-rental/internal/auth"
	"disc-rental/internal/auth/repository"
)

// Me resolves the account behind a verified token subject.
func (uc *implUseCase) Me(ctx context.Context, userID string) (auth.UserOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Me.GetOneUser: %v", err)
		return auth.UserOutput{}, err
	}
	if user.ID.IsZero() {
		return auth.UserOutput{}, auth.ErrUserNotFound
	}

	return auth.UserOutput{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
