package application

import (
	"context"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// RootAdminEmail is the bootstrap administrator. Its role is fixed so the
// deployment can never lock itself out of the admin surface.
const RootAdminEmail = "root@example.com"

// userService implements UserService.
type userService struct {
	users UserRepository
}

func NewUserService(users UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]admindomain.User, error) {
	return s.users.FindAll(ctx)
}

// ToggleAdmin flips the isAdmin flag of the account. The root admin is
// exempt.
func (s *userService) ToggleAdmin(ctx context.Context, id string) (*admindomain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Email == RootAdminEmail {
		return nil, ErrRootAdminImmutable
	}

	if err := s.users.SetIsAdmin(ctx, id, !user.IsAdmin); err != nil {
		return nil, err
	}
	user.IsAdmin = !user.IsAdmin
	return user, nil
}
