package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

func TestPostCommentRejectsBlankText(t *testing.T) {
	svc := NewCommentWriteService(nil, nil, nil)
	_, err := svc.Post(context.Background(), "u1", "r1", "   ")

	assert.ErrorIs(t, err, ErrCommentTextRequired)
}

func TestPostCommentUnknownRestaurant(t *testing.T) {
	restaurants := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*domain.Restaurant, error) { return nil, nil },
	}

	svc := NewCommentWriteService(nil, restaurants, nil)
	_, err := svc.Post(context.Background(), "u1", "missing", "うまい")

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestPostCommentDenormalizesNames(t *testing.T) {
	restaurants := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*domain.Restaurant, error) {
			return &domain.Restaurant{ID: "r1", Name: "寿司処", Image: "sushi.jpg"}, nil
		},
	}
	users := &stubUserRepo{
		findByID: func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: "太郎", Image: "taro.png"}, nil
		},
	}
	var created *domain.Comment
	comments := &stubCommentRepo{
		create: func(_ context.Context, comment *domain.Comment) error {
			comment.ID = "cm1"
			created = comment
			return nil
		},
	}

	svc := NewCommentWriteService(comments, restaurants, users)
	comment, err := svc.Post(context.Background(), "u1", "r1", "  おすすめです  ")
	require.NoError(t, err)

	assert.Equal(t, "cm1", comment.ID)
	assert.Equal(t, "おすすめです", created.Text)
	assert.Equal(t, "寿司処", created.RestaurantName)
	assert.Equal(t, "sushi.jpg", created.RestaurantImage)
	assert.Equal(t, "太郎", created.AuthorName)
	assert.Equal(t, "taro.png", created.AuthorImage)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestDeleteCommentByAuthor(t *testing.T) {
	deleted := ""
	comments := &stubCommentRepo{
		findByID: func(context.Context, string) (*domain.Comment, error) {
			return &domain.Comment{ID: "cm1", UserID: "u1"}, nil
		},
		delete: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	svc := NewCommentWriteService(comments, nil, nil)
	require.NoError(t, svc.Delete(context.Background(), "u1", false, "cm1"))
	assert.Equal(t, "cm1", deleted)
}

func TestDeleteCommentByAdmin(t *testing.T) {
	comments := &stubCommentRepo{
		findByID: func(context.Context, string) (*domain.Comment, error) {
			return &domain.Comment{ID: "cm1", UserID: "u1"}, nil
		},
		delete: func(context.Context, string) error { return nil },
	}

	svc := NewCommentWriteService(comments, nil, nil)
	assert.NoError(t, svc.Delete(context.Background(), "admin", true, "cm1"))
}

func TestDeleteCommentByStrangerForbidden(t *testing.T) {
	comments := &stubCommentRepo{
		findByID: func(context.Context, string) (*domain.Comment, error) {
			return &domain.Comment{ID: "cm1", UserID: "u1"}, nil
		},
	}

	svc := NewCommentWriteService(comments, nil, nil)
	err := svc.Delete(context.Background(), "u2", false, "cm1")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCommentMissing(t *testing.T) {
	comments := &stubCommentRepo{
		findByID: func(context.Context, string) (*domain.Comment, error) { return nil, nil },
	}

	svc := NewCommentWriteService(comments, nil, nil)
	err := svc.Delete(context.Background(), "u1", false, "missing")

	assert.ErrorIs(t, err, ErrCommentNotFound)
}
