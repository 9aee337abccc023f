package application

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// restaurantService implements RestaurantService.
type restaurantService struct {
	restaurants RestaurantRepository
	categories  CategoryRepository
	now         func() time.Time
}

func NewRestaurantService(restaurants RestaurantRepository, categories CategoryRepository) RestaurantService {
	return &restaurantService{restaurants: restaurants, categories: categories, now: time.Now}
}

func (s *restaurantService) List(ctx context.Context) ([]admindomain.Restaurant, error) {
	return s.restaurants.FindAll(ctx)
}

func (s *restaurantService) Detail(ctx context.Context, id string) (*admindomain.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (s *restaurantService) Create(ctx context.Context, cmd UpsertRestaurantCommand) (*admindomain.Restaurant, error) {
	category, err := s.requireCategory(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	now := s.now().UTC()
	restaurant := &admindomain.Restaurant{
		Name:         name,
		Tel:          cmd.Tel,
		Address:      cmd.Address,
		OpeningHours: cmd.OpeningHours,
		Description:  cmd.Description,
		Image:        cmd.Image,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) Update(ctx context.Context, id string, cmd UpsertRestaurantCommand) (*admindomain.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	category, err := s.requireCategory(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	restaurant.Name = name
	restaurant.Tel = cmd.Tel
	restaurant.Address = cmd.Address
	restaurant.OpeningHours = cmd.OpeningHours
	restaurant.Description = cmd.Description
	restaurant.CategoryID = category.ID
	restaurant.CategoryName = category.Name
	if cmd.Image != "" {
		restaurant.Image = cmd.Image
	}
	restaurant.UpdatedAt = s.now().UTC()

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) Delete(ctx context.Context, id string) error {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return ErrRestaurantNotFound
	}
	return s.restaurants.Delete(ctx, id)
}

func (s *restaurantService) requireCategory(ctx context.Context, categoryID string) (*admindomain.Category, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, ErrCategoryRequired
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
