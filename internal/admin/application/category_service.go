package application

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// categoryService implements CategoryService.
type categoryService struct {
	categories CategoryRepository
	now        func() time.Time
}

func NewCategoryService(categories CategoryRepository) CategoryService {
	return &categoryService{categories: categories, now: time.Now}
}

func (s *categoryService) List(ctx context.Context) ([]admindomain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *categoryService) Create(ctx context.Context, cmd UpsertCategoryCommand) (*admindomain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	now := s.now().UTC()
	category := &admindomain.Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, cmd UpsertCategoryCommand) (*admindomain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = name
	category.UpdatedAt = s.now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(ctx, id)
}
