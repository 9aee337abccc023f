package application

import (
	"context"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// RestaurantRepository exposes admin CRUD on restaurants.
type RestaurantRepository interface {
	FindAll(ctx context.Context) ([]admindomain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*admindomain.Restaurant, error)
	Create(ctx context.Context, restaurant *admindomain.Restaurant) error
	Update(ctx context.Context, restaurant *admindomain.Restaurant) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository exposes admin CRUD on categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]admindomain.Category, error)
	FindByID(ctx context.Context, id string) (*admindomain.Category, error)
	Create(ctx context.Context, category *admindomain.Category) error
	Update(ctx context.Context, category *admindomain.Category) error
	Delete(ctx context.Context, id string) error
}

// UserRepository exposes admin reads and role updates on accounts.
type UserRepository interface {
	FindAll(ctx context.Context) ([]admindomain.User, error)
	FindByID(ctx context.Context, id string) (*admindomain.User, error)
	SetIsAdmin(ctx context.Context, id string, isAdmin bool) error
}

// UpsertRestaurantCommand contains inputs for creating/updating
// restaurants. An empty Image on update keeps the stored image.
type UpsertRestaurantCommand struct {
	Name         string
	Tel          string
	Address      string
	OpeningHours string
	Description  string
	Image        string
	CategoryID   string
}

// UpsertCategoryCommand contains inputs for category CRUD.
type UpsertCategoryCommand struct {
	Name string
}

// RestaurantService describes admin restaurant use-cases.
type RestaurantService interface {
	List(ctx context.Context) ([]admindomain.Restaurant, error)
	Detail(ctx context.Context, id string) (*admindomain.Restaurant, error)
	Create(ctx context.Context, cmd UpsertRestaurantCommand) (*admindomain.Restaurant, error)
	Update(ctx context.Context, id string, cmd UpsertRestaurantCommand) (*admindomain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService describes admin category use-cases.
type CategoryService interface {
	List(ctx context.Context) ([]admindomain.Category, error)
	Create(ctx context.Context, cmd UpsertCategoryCommand) (*admindomain.Category, error)
	Update(ctx context.Context, id string, cmd UpsertCategoryCommand) (*admindomain.Category, error)
	Delete(ctx context.Context, id string) error
}

// UserService describes admin account use-cases.
type UserService interface {
	List(ctx context.Context) ([]admindomain.User, error)
	ToggleAdmin(ctx context.Context, id string) (*admindomain.User, error)
}
