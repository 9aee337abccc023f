package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// feedSize bounds the newest-restaurants and newest-comments feeds.
const feedSize = 10

// RestaurantReadService implements RestaurantQueryService on top of the
// repository ports.
type RestaurantReadService struct {
	restaurants RestaurantRepository
	categories  CategoryRepository
	comments    CommentRepository
	favorites   RelationRepository
	likes       RelationRepository
	memberships MembershipService
}

// NewRestaurantReadService wires the restaurant reader.
func NewRestaurantReadService(
	restaurants RestaurantRepository,
	categories CategoryRepository,
	comments CommentRepository,
	favorites RelationRepository,
	likes RelationRepository,
	memberships MembershipService,
) *RestaurantReadService {
	return &RestaurantReadService{
		restaurants: restaurants,
		categories:  categories,
		comments:    comments,
		favorites:   favorites,
		likes:       likes,
		memberships: memberships,
	}
}

// List returns one page of restaurants matching the filter, annotated with
// the actor's favorite/like flags, plus the full category list and the
// total match count for pagination.
func (s *RestaurantReadService) List(ctx context.Context, filter RestaurantFilter, paging Paging, actorID string) (*RestaurantPage, error) {
	var (
		restaurants []domain.Restaurant
		categories  []domain.Category
		total       int
		memberships Memberships
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.restaurants.Find(egCtx, filter, paging)
		if err != nil {
			return err
		}
		restaurants = found
		return nil
	})
	eg.Go(func() error {
		count, err := s.restaurants.Count(egCtx, filter)
		if err != nil {
			return err
		}
		total = count
		return nil
	})
	eg.Go(func() error {
		found, err := s.categories.FindAll(egCtx)
		if err != nil {
			return err
		}
		categories = found
		return nil
	})
	eg.Go(func() error {
		loaded, err := s.memberships.ForUser(egCtx, actorID)
		if err != nil {
			return err
		}
		memberships = loaded
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	items := make([]RestaurantListItem, 0, len(restaurants))
	for _, restaurant := range restaurants {
		items = append(items, RestaurantListItem{
			Restaurant: restaurant,
			IsFavorite: memberships.HasFavorited(restaurant.ID),
			IsLiked:    memberships.HasLiked(restaurant.ID),
		})
	}

	return &RestaurantPage{
		Items:      items,
		Categories: categories,
		Total:      total,
	}, nil
}

// Detail bumps the view counter and returns the restaurant with its
// comments and favorite/like user sets. The increment happens before the
// reads so the returned view count reflects this visit.
func (s *RestaurantReadService) Detail(ctx context.Context, id, actorID string) (*RestaurantDetail, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	viewCount, err := s.restaurants.IncrementViewCount(ctx, id)
	if err != nil {
		return nil, err
	}
	restaurant.ViewCount = viewCount

	var (
		comments         []domain.Comment
		favoritedUserIDs []string
		likedUserIDs     []string
		memberships      Memberships
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.comments.FindByRestaurant(egCtx, id)
		if err != nil {
			return err
		}
		comments = found
		return nil
	})
	eg.Go(func() error {
		ids, err := s.favorites.UserIDs(egCtx, id)
		if err != nil {
			return err
		}
		favoritedUserIDs = ids
		return nil
	})
	eg.Go(func() error {
		ids, err := s.likes.UserIDs(egCtx, id)
		if err != nil {
			return err
		}
		likedUserIDs = ids
		return nil
	})
	eg.Go(func() error {
		loaded, err := s.memberships.ForUser(egCtx, actorID)
		if err != nil {
			return err
		}
		memberships = loaded
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &RestaurantDetail{
		Restaurant:       *restaurant,
		Comments:         comments,
		FavoritedUserIDs: favoritedUserIDs,
		LikedUserIDs:     likedUserIDs,
		IsFavorite:       memberships.HasFavorited(id),
		IsLiked:          memberships.HasLiked(id),
	}, nil
}

// Feeds returns the ten newest restaurants and the ten newest comments.
func (s *RestaurantReadService) Feeds(ctx context.Context) (*Feeds, error) {
	var (
		restaurants []domain.Restaurant
		comments    []domain.Comment
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.restaurants.FindLatest(egCtx, feedSize)
		if err != nil {
			return err
		}
		restaurants = found
		return nil
	})
	eg.Go(func() error {
		found, err := s.comments.FindLatest(egCtx, feedSize)
		if err != nil {
			return err
		}
		comments = found
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Feeds{Restaurants: restaurants, Comments: comments}, nil
}

// Top returns the ten most favorited restaurants, most favorited first.
// Restaurants with equal counts keep the repository's order.
func (s *RestaurantReadService) Top(ctx context.Context, actorID string) ([]TopRestaurant, error) {
	var (
		restaurants []domain.Restaurant
		counts      map[string]int
		memberships Memberships
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.restaurants.FindAll(egCtx)
		if err != nil {
			return err
		}
		restaurants = found
		return nil
	})
	eg.Go(func() error {
		counted, err := s.favorites.CountByRestaurant(egCtx)
		if err != nil {
			return err
		}
		counts = counted
		return nil
	})
	eg.Go(func() error {
		loaded, err := s.memberships.ForUser(egCtx, actorID)
		if err != nil {
			return err
		}
		memberships = loaded
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ranked := rankByCount(restaurants, counts, func(r domain.Restaurant) string { return r.ID }, topListSize)

	top := make([]TopRestaurant, 0, len(ranked))
	for _, restaurant := range ranked {
		top = append(top, TopRestaurant{
			Restaurant:     restaurant,
			FavoritedCount: counts[restaurant.ID],
			IsFavorite:     memberships.HasFavorited(restaurant.ID),
		})
	}
	return top, nil
}

// Dashboard returns a single restaurant with its comment count, without
// touching the view counter.
func (s *RestaurantReadService) Dashboard(ctx context.Context, id string) (*RestaurantDashboard, error) {
	var (
		restaurant *domain.Restaurant
		comments   []domain.Comment
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := s.restaurants.FindByID(egCtx, id)
		if err != nil {
			return err
		}
		restaurant = found
		return nil
	})
	eg.Go(func() error {
		found, err := s.comments.FindByRestaurant(egCtx, id)
		if err != nil {
			return err
		}
		comments = found
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	return &RestaurantDashboard{
		Restaurant:   *restaurant,
		CommentCount: len(comments),
	}, nil
}
