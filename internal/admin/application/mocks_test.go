package application

import (
	"context"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

type stubRestaurantRepo struct {
	all      func(ctx context.Context) ([]admindomain.Restaurant, error)
	findByID func(ctx context.Context, id string) (*admindomain.Restaurant, error)
	create   func(ctx context.Context, restaurant *admindomain.Restaurant) error
	update   func(ctx context.Context, restaurant *admindomain.Restaurant) error
	delete   func(ctx context.Context, id string) error
}

func (s *stubRestaurantRepo) FindAll(ctx context.Context) ([]admindomain.Restaurant, error) {
	return s.all(ctx)
}

func (s *stubRestaurantRepo) FindByID(ctx context.Context, id string) (*admindomain.Restaurant, error) {
	return s.findByID(ctx, id)
}

func (s *stubRestaurantRepo) Create(ctx context.Context, restaurant *admindomain.Restaurant) error {
	return s.create(ctx, restaurant)
}

func (s *stubRestaurantRepo) Update(ctx context.Context, restaurant *admindomain.Restaurant) error {
	return s.update(ctx, restaurant)
}

func (s *stubRestaurantRepo) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type stubCategoryRepo struct {
	all      func(ctx context.Context) ([]admindomain.Category, error)
	findByID func(ctx context.Context, id string) (*admindomain.Category, error)
	create   func(ctx context.Context, category *admindomain.Category) error
	update   func(ctx context.Context, category *admindomain.Category) error
	delete   func(ctx context.Context, id string) error
}

func (s *stubCategoryRepo) FindAll(ctx context.Context) ([]admindomain.Category, error) {
	return s.all(ctx)
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id string) (*admindomain.Category, error) {
	return s.findByID(ctx, id)
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *admindomain.Category) error {
	return s.create(ctx, category)
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *admindomain.Category) error {
	return s.update(ctx, category)
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

type stubUserRepo struct {
	all        func(ctx context.Context) ([]admindomain.User, error)
	findByID   func(ctx context.Context, id string) (*admindomain.User, error)
	setIsAdmin func(ctx context.Context, id string, isAdmin bool) error
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]admindomain.User, error) {
	return s.all(ctx)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*admindomain.User, error) {
	return s.findByID(ctx, id)
}

func (s *stubUserRepo) SetIsAdmin(ctx context.Context, id string, isAdmin bool) error {
	return s.setIsAdmin(ctx, id, isAdmin)
}

func categoryFixture() *admindomain.Category {
	return &admindomain.Category{ID: "c1", Name: "和食"}
}

func categoriesWith(category *admindomain.Category) *stubCategoryRepo {
	return &stubCategoryRepo{
		findByID: func(_ context.Context, id string) (*admindomain.Category, error) {
			if category != nil && category.ID == id {
				return category, nil
			}
			return nil, nil
		},
	}
}
