package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := NewCategoryService(nil)
	_, err := svc.Create(context.Background(), UpsertCategoryCommand{Name: "  "})

	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateCategoryTrimsName(t *testing.T) {
	var created *admindomain.Category
	categories := &stubCategoryRepo{
		create: func(_ context.Context, category *admindomain.Category) error {
			category.ID = "c1"
			created = category
			return nil
		},
	}

	svc := NewCategoryService(categories)
	category, err := svc.Create(context.Background(), UpsertCategoryCommand{Name: "  和食  "})
	require.NoError(t, err)

	assert.Equal(t, "c1", category.ID)
	assert.Equal(t, "和食", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateCategoryNotFound(t *testing.T) {
	categories := &stubCategoryRepo{
		findByID: func(context.Context, string) (*admindomain.Category, error) { return nil, nil },
	}

	svc := NewCategoryService(categories)
	_, err := svc.Update(context.Background(), "missing", UpsertCategoryCommand{Name: "和食"})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateCategoryRenames(t *testing.T) {
	var updated *admindomain.Category
	categories := &stubCategoryRepo{
		findByID: func(context.Context, string) (*admindomain.Category, error) {
			return &admindomain.Category{ID: "c1", Name: "和食"}, nil
		},
		update: func(_ context.Context, category *admindomain.Category) error {
			updated = category
			return nil
		},
	}

	svc := NewCategoryService(categories)
	category, err := svc.Update(context.Background(), "c1", UpsertCategoryCommand{Name: "割烹"})
	require.NoError(t, err)

	assert.Equal(t, "割烹", category.Name)
	assert.Equal(t, "割烹", updated.Name)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestDeleteCategoryNotFound(t *testing.T) {
	categories := &stubCategoryRepo{
		findByID: func(context.Context, string) (*admindomain.Category, error) { return nil, nil },
	}

	svc := NewCategoryService(categories)
	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
