package application

import (
	"context"
	"strings"
	"time"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// CommentWriteService implements CommentCommandService.
type CommentWriteService struct {
	comments    CommentRepository
	restaurants RestaurantRepository
	users       UserRepository
	now         func() time.Time
}

// NewCommentWriteService wires the comment writer.
func NewCommentWriteService(comments CommentRepository, restaurants RestaurantRepository, users UserRepository) *CommentWriteService {
	return &CommentWriteService{
		comments:    comments,
		restaurants: restaurants,
		users:       users,
		now:         time.Now,
	}
}

// Post creates a comment by the actor on the restaurant. Blank text is
// rejected before any lookup.
func (s *CommentWriteService) Post(ctx context.Context, actorID, restaurantID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentTextRequired
	}

	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	author, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := &domain.Comment{
		Text:            text,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		RestaurantImage: restaurant.Image,
		UserID:          author.ID,
		AuthorName:      author.Name,
		AuthorImage:     author.Image,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Only the author or an admin may delete it.
func (s *CommentWriteService) Delete(ctx context.Context, actorID string, actorIsAdmin bool, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != actorID && !actorIsAdmin {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}
