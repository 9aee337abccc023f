package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

func TestCreateRestaurantRequiresCategory(t *testing.T) {
	svc := NewRestaurantService(nil, categoriesWith(nil))
	_, err := svc.Create(context.Background(), UpsertRestaurantCommand{Name: "寿司処"})

	assert.ErrorIs(t, err, ErrCategoryRequired)
}

func TestCreateRestaurantUnknownCategory(t *testing.T) {
	svc := NewRestaurantService(nil, categoriesWith(nil))
	_, err := svc.Create(context.Background(), UpsertRestaurantCommand{Name: "寿司処", CategoryID: "missing"})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateRestaurantRequiresName(t *testing.T) {
	svc := NewRestaurantService(nil, categoriesWith(categoryFixture()))
	_, err := svc.Create(context.Background(), UpsertRestaurantCommand{Name: "   ", CategoryID: "c1"})

	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateRestaurantDenormalizesCategoryName(t *testing.T) {
	var created *admindomain.Restaurant
	restaurants := &stubRestaurantRepo{
		create: func(_ context.Context, restaurant *admindomain.Restaurant) error {
			restaurant.ID = "r1"
			created = restaurant
			return nil
		},
	}

	svc := NewRestaurantService(restaurants, categoriesWith(categoryFixture()))
	restaurant, err := svc.Create(context.Background(), UpsertRestaurantCommand{
		Name:       "  寿司処  ",
		CategoryID: "c1",
		Image:      "sushi.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "r1", restaurant.ID)
	assert.Equal(t, "寿司処", created.Name)
	assert.Equal(t, "c1", created.CategoryID)
	assert.Equal(t, "和食", created.CategoryName)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateRestaurantKeepsImageWhenBlank(t *testing.T) {
	var updated *admindomain.Restaurant
	restaurants := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*admindomain.Restaurant, error) {
			return &admindomain.Restaurant{ID: "r1", Name: "旧店名", Image: "old.jpg", CategoryID: "c1"}, nil
		},
		update: func(_ context.Context, restaurant *admindomain.Restaurant) error {
			updated = restaurant
			return nil
		},
	}

	svc := NewRestaurantService(restaurants, categoriesWith(categoryFixture()))
	_, err := svc.Update(context.Background(), "r1", UpsertRestaurantCommand{
		Name:       "新店名",
		CategoryID: "c1",
	})
	require.NoError(t, err)

	assert.Equal(t, "新店名", updated.Name)
	assert.Equal(t, "old.jpg", updated.Image)
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	restaurants := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*admindomain.Restaurant, error) { return nil, nil },
	}

	svc := NewRestaurantService(restaurants, categoriesWith(categoryFixture()))
	_, err := svc.Update(context.Background(), "missing", UpsertRestaurantCommand{Name: "寿司処", CategoryID: "c1"})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	restaurants := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*admindomain.Restaurant, error) { return nil, nil },
	}

	svc := NewRestaurantService(restaurants, categoriesWith(categoryFixture()))
	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
