package application

import (
	"context"
	"errors"
)

// RelationWriteService implements RelationCommandService. Duplicate and
// missing pairs surface as the relation-specific sentinels; uniqueness is
// enforced by the storage layer, not by a read-then-write check.
type RelationWriteService struct {
	favorites   RelationRepository
	likes       RelationRepository
	follows     FollowRepository
	restaurants RestaurantRepository
	users       UserRepository
}

// NewRelationWriteService wires the relation writer.
func NewRelationWriteService(
	favorites RelationRepository,
	likes RelationRepository,
	follows FollowRepository,
	restaurants RestaurantRepository,
	users UserRepository,
) *RelationWriteService {
	return &RelationWriteService{
		favorites:   favorites,
		likes:       likes,
		follows:     follows,
		restaurants: restaurants,
		users:       users,
	}
}

// AddFavorite records the actor's favorite on the restaurant.
func (s *RelationWriteService) AddFavorite(ctx context.Context, actorID, restaurantID string) error {
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, actorID, restaurantID); err != nil {
		if errors.Is(err, ErrRelationExists) {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

// RemoveFavorite deletes the actor's favorite on the restaurant.
func (s *RelationWriteService) RemoveFavorite(ctx context.Context, actorID, restaurantID string) error {
	if err := s.favorites.Remove(ctx, actorID, restaurantID); err != nil {
		if errors.Is(err, ErrRelationNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// AddLike records the actor's like on the restaurant.
func (s *RelationWriteService) AddLike(ctx context.Context, actorID, restaurantID string) error {
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return err
	}
	if err := s.likes.Add(ctx, actorID, restaurantID); err != nil {
		if errors.Is(err, ErrRelationExists) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// RemoveLike deletes the actor's like on the restaurant.
func (s *RelationWriteService) RemoveLike(ctx context.Context, actorID, restaurantID string) error {
	if err := s.likes.Remove(ctx, actorID, restaurantID); err != nil {
		if errors.Is(err, ErrRelationNotFound) {
			return ErrLikeNotFound
		}
		return err
	}
	return nil
}

// Follow records a follow from the actor to the target user. Following
// yourself is rejected.
func (s *RelationWriteService) Follow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if err := s.follows.Add(ctx, actorID, targetID); err != nil {
		if errors.Is(err, ErrRelationExists) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// Unfollow deletes the actor's follow on the target user.
func (s *RelationWriteService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if err := s.follows.Remove(ctx, actorID, targetID); err != nil {
		if errors.Is(err, ErrRelationNotFound) {
			return ErrFollowNotFound
		}
		return err
	}
	return nil
}

func (s *RelationWriteService) requireRestaurant(ctx context.Context, restaurantID string) error {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return ErrRestaurantNotFound
	}
	return nil
}
