package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

func TestToggleAdminFlipsFlag(t *testing.T) {
	var gotID string
	var gotIsAdmin bool
	users := &stubUserRepo{
		findByID: func(context.Context, string) (*admindomain.User, error) {
			return &admindomain.User{ID: "u1", Email: "taro@example.com", IsAdmin: false}, nil
		},
		setIsAdmin: func(_ context.Context, id string, isAdmin bool) error {
			gotID = id
			gotIsAdmin = isAdmin
			return nil
		},
	}

	svc := NewUserService(users)
	user, err := svc.ToggleAdmin(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", gotID)
	assert.True(t, gotIsAdmin)
	assert.True(t, user.IsAdmin)
}

func TestToggleAdminRevokes(t *testing.T) {
	users := &stubUserRepo{
		findByID: func(context.Context, string) (*admindomain.User, error) {
			return &admindomain.User{ID: "u1", Email: "taro@example.com", IsAdmin: true}, nil
		},
		setIsAdmin: func(_ context.Context, _ string, isAdmin bool) error {
			assert.False(t, isAdmin)
			return nil
		},
	}

	svc := NewUserService(users)
	user, err := svc.ToggleAdmin(context.Background(), "u1")
	require.NoError(t, err)

	assert.False(t, user.IsAdmin)
}

func TestToggleAdminRootIsImmutable(t *testing.T) {
	users := &stubUserRepo{
		findByID: func(context.Context, string) (*admindomain.User, error) {
			return &admindomain.User{ID: "u0", Email: RootAdminEmail, IsAdmin: true}, nil
		},
	}

	svc := NewUserService(users)
	_, err := svc.ToggleAdmin(context.Background(), "u0")

	assert.ErrorIs(t, err, ErrRootAdminImmutable)
}

func TestToggleAdminUnknownUser(t *testing.T) {
	users := &stubUserRepo{
		findByID: func(context.Context, string) (*admindomain.User, error) { return nil, nil },
	}

	svc := NewUserService(users)
	_, err := svc.ToggleAdmin(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
