package application

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Memberships holds the id sets a user participates in. The zero value is
// usable and reports false for every membership, which is exactly the
// shape an unauthenticated request needs.
type Memberships struct {
	favoritedRestaurantIDs map[string]struct{}
	likedRestaurantIDs     map[string]struct{}
	followedUserIDs        map[string]struct{}
}

// NewMemberships builds a membership index from raw id slices.
func NewMemberships(favoriteIDs, likeIDs, followIDs []string) Memberships {
	return Memberships{
		favoritedRestaurantIDs: toSet(favoriteIDs),
		likedRestaurantIDs:     toSet(likeIDs),
		followedUserIDs:        toSet(followIDs),
	}
}

// HasFavorited reports whether the restaurant is in the favorite set.
func (m Memberships) HasFavorited(restaurantID string) bool {
	_, ok := m.favoritedRestaurantIDs[restaurantID]
	return ok
}

// HasLiked reports whether the restaurant is in the like set.
func (m Memberships) HasLiked(restaurantID string) bool {
	_, ok := m.likedRestaurantIDs[restaurantID]
	return ok
}

// IsFollowing reports whether the user is in the follow set.
func (m Memberships) IsFollowing(userID string) bool {
	_, ok := m.followedUserIDs[userID]
	return ok
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// MembershipQueryService loads the three relationship id sets for a user
// in one shot so listings can flag rows without per-row queries.
type MembershipQueryService struct {
	favorites RelationRepository
	likes     RelationRepository
	follows   FollowRepository
}

// NewMembershipQueryService wires the membership reader.
func NewMembershipQueryService(favorites, likes RelationRepository, follows FollowRepository) *MembershipQueryService {
	return &MembershipQueryService{favorites: favorites, likes: likes, follows: follows}
}

// ForUser fetches the user's favorite/like/follow sets concurrently. An
// empty userID short-circuits to the zero Memberships.
func (s *MembershipQueryService) ForUser(ctx context.Context, userID string) (Memberships, error) {
	if userID == "" {
		return Memberships{}, nil
	}

	var favoriteIDs, likeIDs, followIDs []string

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		ids, err := s.favorites.RestaurantIDs(egCtx, userID)
		if err != nil {
			return err
		}
		favoriteIDs = ids
		return nil
	})
	eg.Go(func() error {
		ids, err := s.likes.RestaurantIDs(egCtx, userID)
		if err != nil {
			return err
		}
		likeIDs = ids
		return nil
	})
	eg.Go(func() error {
		ids, err := s.follows.FollowingIDs(egCtx, userID)
		if err != nil {
			return err
		}
		followIDs = ids
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Memberships{}, err
	}

	return NewMemberships(favoriteIDs, likeIDs, followIDs), nil
}
