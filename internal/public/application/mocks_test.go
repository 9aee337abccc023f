package application

import (
	"context"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

type stubRestaurantRepo struct {
	find      func(ctx context.Context, filter RestaurantFilter, paging Paging) ([]domain.Restaurant, error)
	count     func(ctx context.Context, filter RestaurantFilter) (int, error)
	findByID  func(ctx context.Context, id string) (*domain.Restaurant, error)
	latest    func(ctx context.Context, limit int) ([]domain.Restaurant, error)
	all       func(ctx context.Context) ([]domain.Restaurant, error)
	increment func(ctx context.Context, id string) (int, error)
}

func (s *stubRestaurantRepo) Find(ctx context.Context, filter RestaurantFilter, paging Paging) ([]domain.Restaurant, error) {
	return s.find(ctx, filter, paging)
}

func (s *stubRestaurantRepo) Count(ctx context.Context, filter RestaurantFilter) (int, error) {
	return s.count(ctx, filter)
}

func (s *stubRestaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.findByID(ctx, id)
}

func (s *stubRestaurantRepo) FindLatest(ctx context.Context, limit int) ([]domain.Restaurant, error) {
	return s.latest(ctx, limit)
}

func (s *stubRestaurantRepo) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	return s.all(ctx)
}

func (s *stubRestaurantRepo) IncrementViewCount(ctx context.Context, id string) (int, error) {
	return s.increment(ctx, id)
}

type stubCategoryRepo struct {
	all      func(ctx context.Context) ([]domain.Category, error)
	findByID func(ctx context.Context, id string) (*domain.Category, error)
}

func (s *stubCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	return s.all(ctx)
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.findByID(ctx, id)
}

type stubCommentRepo struct {
	byRestaurant func(ctx context.Context, restaurantID string) ([]domain.Comment, error)
	byUser       func(ctx context.Context, userID string) ([]domain.Comment, error)
	latest       func(ctx context.Context, limit int) ([]domain.Comment, error)
	findByID     func(ctx context.Context, id string) (*domain.Comment, error)
	create       func(ctx context.Context, comment *domain.Comment) error
	delete       func(ctx context.Context, id string) error
}

func (s *stubCommentRepo) FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Comment, error) {
	return s.byRestaurant(ctx, restaurantID)
}

func (s *stubCommentRepo) FindByUser(ctx context.Context, userID string) ([]domain.Comment, error) {
	return s.byUser(ctx, userID)
}

func (s *stubCommentRepo) FindLatest(ctx context.Context, limit int) ([]domain.Comment, error) {
	return s.latest(ctx, limit)
}

func (s *stubCommentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	return s.findByID(ctx, id)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return s.create(ctx, comment)
}

func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type stubUserRepo struct {
	findByID    func(ctx context.Context, id string) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	all         func(ctx context.Context) ([]domain.User, error)
	create      func(ctx context.Context, user *domain.User) error
	update      func(ctx context.Context, user *domain.User) error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByID(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmail(ctx, email)
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.all(ctx)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	return s.update(ctx, user)
}

type stubRelationRepo struct {
	add           func(ctx context.Context, userID, restaurantID string) error
	remove        func(ctx context.Context, userID, restaurantID string) error
	restaurantIDs func(ctx context.Context, userID string) ([]string, error)
	userIDs       func(ctx context.Context, restaurantID string) ([]string, error)
	counts        func(ctx context.Context) (map[string]int, error)
}

func (s *stubRelationRepo) Add(ctx context.Context, userID, restaurantID string) error {
	return s.add(ctx, userID, restaurantID)
}

func (s *stubRelationRepo) Remove(ctx context.Context, userID, restaurantID string) error {
	return s.remove(ctx, userID, restaurantID)
}

func (s *stubRelationRepo) RestaurantIDs(ctx context.Context, userID string) ([]string, error) {
	return s.restaurantIDs(ctx, userID)
}

func (s *stubRelationRepo) UserIDs(ctx context.Context, restaurantID string) ([]string, error) {
	return s.userIDs(ctx, restaurantID)
}

func (s *stubRelationRepo) CountByRestaurant(ctx context.Context) (map[string]int, error) {
	return s.counts(ctx)
}

type stubFollowRepo struct {
	add          func(ctx context.Context, followerID, followingID string) error
	remove       func(ctx context.Context, followerID, followingID string) error
	followingIDs func(ctx context.Context, followerID string) ([]string, error)
	counts       func(ctx context.Context) (map[string]int, error)
}

func (s *stubFollowRepo) Add(ctx context.Context, followerID, followingID string) error {
	return s.add(ctx, followerID, followingID)
}

func (s *stubFollowRepo) Remove(ctx context.Context, followerID, followingID string) error {
	return s.remove(ctx, followerID, followingID)
}

func (s *stubFollowRepo) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	return s.followingIDs(ctx, followerID)
}

func (s *stubFollowRepo) CountByFollowing(ctx context.Context) (map[string]int, error) {
	return s.counts(ctx)
}

// emptyRelationRepo returns empty sets for every read.
func emptyRelationRepo() *stubRelationRepo {
	return &stubRelationRepo{
		restaurantIDs: func(context.Context, string) ([]string, error) { return nil, nil },
		userIDs:       func(context.Context, string) ([]string, error) { return nil, nil },
		counts:        func(context.Context) (map[string]int, error) { return map[string]int{}, nil },
	}
}

func emptyFollowRepo() *stubFollowRepo {
	return &stubFollowRepo{
		followingIDs: func(context.Context, string) ([]string, error) { return nil, nil },
		counts:       func(context.Context) (map[string]int, error) { return map[string]int{}, nil },
	}
}

type stubMembershipService struct {
	memberships Memberships
	err         error
}

func (s *stubMembershipService) ForUser(ctx context.Context, userID string) (Memberships, error) {
	if s.err != nil {
		return Memberships{}, s.err
	}
	return s.memberships, nil
}
