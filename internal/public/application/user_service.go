package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// AccountService implements UserService.
type AccountService struct {
	users       UserRepository
	comments    CommentRepository
	follows     FollowRepository
	memberships MembershipService
	now         func() time.Time
}

// NewAccountService wires the account service.
func NewAccountService(users UserRepository, comments CommentRepository, follows FollowRepository, memberships MembershipService) *AccountService {
	return &AccountService{
		users:       users,
		comments:    comments,
		follows:     follows,
		memberships: memberships,
		now:         time.Now,
	}
}

// SignUp registers a new account. A duplicate email surfaces as
// ErrEmailTaken from the storage layer's unique index.
func (s *AccountService) SignUp(ctx context.Context, cmd SignUpCommand) (*domain.User, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" {
		return nil, ErrUserNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if cmd.Password == "" {
		return nil, ErrPasswordRequired
	}
	if cmd.Password != cmd.PasswordCheck {
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyCredentials checks the email/password pair and returns the
// account. An unknown email and a wrong password fail identically.
func (s *AccountService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// Profile returns a user together with the comments they wrote,
// newest first.
func (s *AccountService) Profile(ctx context.Context, id string) (*UserProfile, error) {
	var (
		user     *domain.User
		comments []domain.Comment
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.users.FindByID(egCtx, id)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	eg.Go(func() error {
		found, err := s.comments.FindByUser(egCtx, id)
		if err != nil {
			return err
		}
		comments = found
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &UserProfile{
		User:         *user,
		Comments:     comments,
		CommentCount: len(comments),
	}, nil
}

// Update changes a user's display name and avatar. Users may only update
// themselves.
func (s *AccountService) Update(ctx context.Context, actorID, id, name, imageURL string) (*domain.User, error) {
	if actorID != id {
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrUserNameRequired
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = name
	if imageURL != "" {
		user.Image = imageURL
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Top returns the ten most followed users, most followed first. Users
// with equal counts keep the repository's order.
func (s *AccountService) Top(ctx context.Context, actorID string) ([]TopUser, error) {
	var (
		users       []domain.User
		counts      map[string]int
		memberships Memberships
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.users.FindAll(egCtx)
		if err != nil {
			return err
		}
		users = found
		return nil
	})
	eg.Go(func() error {
		counted, err := s.follows.CountByFollowing(egCtx)
		if err != nil {
			return err
		}
		counts = counted
		return nil
	})
	eg.Go(func() error {
		loaded, err := s.memberships.ForUser(egCtx, actorID)
		if err != nil {
			return err
		}
		memberships = loaded
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ranked := rankByCount(users, counts, func(u domain.User) string { return u.ID }, topListSize)

	top := make([]TopUser, 0, len(ranked))
	for _, user := range ranked {
		top = append(top, TopUser{
			User:          user,
			FollowerCount: counts[user.ID],
			IsFollowed:    memberships.IsFollowing(user.ID),
		})
	}
	return top, nil
}
