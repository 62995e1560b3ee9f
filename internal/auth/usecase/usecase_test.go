package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"disc-rental/internal/auth"
	"disc-rental/internal/auth/repository"
	"disc-rental/internal/auth/usecase"
	"disc-rental/internal/model"
	"disc-rental/pkg/hash"
	"disc-rental/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUserRepo struct {
	users map[string]model.User // keyed by email
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if opt.Email != "" {
		return m.users[opt.Email], nil
	}
	for _, u := range m.users {
		if u.ID.Hex() == opt.ID {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (m *mockUserRepo) UpsertUser(ctx context.Context, opt repository.UpsertUserOptions) (model.User, error) {
	return model.User{}, nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	pw, err := hash.HashPassword("s3cret")
	require.NoError(t, err)

	admin := model.User{
		ID:           primitive.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: pw,
		Role:         "admin",
	}
	repo := &mockUserRepo{users: map[string]model.User{admin.Email: admin}}
	sc := scope.NewManager("test-secret", time.Hour)
	uc := usecase.New(repo, sc, &mockLogger{})

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		out, err := uc.Login(ctx, auth.LoginInput{Email: "Admin@Example.com ", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, admin.Email, out.User.Email)

		claims, err := sc.VerifyToken(out.Token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID.Hex(), claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, auth.LoginInput{Email: admin.Email, Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, auth.LoginInput{Email: "ghost@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	admin := model.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  "admin",
	}
	repo := &mockUserRepo{users: map[string]model.User{admin.Email: admin}}
	uc := usecase.New(repo, scope.NewManager("test-secret", time.Hour), &mockLogger{})

	t.Run("known subject", func(t *testing.T) {
		out, err := uc.Me(ctx, admin.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, admin.Email, out.Email)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := uc.Me(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}
