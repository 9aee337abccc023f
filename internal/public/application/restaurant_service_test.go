package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

func listFixtureRepo(restaurants []domain.Restaurant, total int) *stubRestaurantRepo {
	return &stubRestaurantRepo{
		find: func(context.Context, RestaurantFilter, Paging) ([]domain.Restaurant, error) {
			return restaurants, nil
		},
		count: func(context.Context, RestaurantFilter) (int, error) {
			return total, nil
		},
	}
}

func TestListAnnotatesMembershipFlags(t *testing.T) {
	restaurants := restaurantsWithIDs("r1", "r2", "r3")
	categories := &stubCategoryRepo{
		all: func(context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: "c1", Name: "和食"}}, nil
		},
	}
	memberships := &stubMembershipService{
		memberships: NewMemberships([]string{"r1"}, []string{"r2"}, nil),
	}

	svc := NewRestaurantReadService(listFixtureRepo(restaurants, 12), categories, nil, emptyRelationRepo(), emptyRelationRepo(), memberships)
	page, err := svc.List(context.Background(), RestaurantFilter{}, Paging{Page: 1, Limit: 9}, "u1")
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	assert.True(t, page.Items[0].IsFavorite)
	assert.False(t, page.Items[0].IsLiked)
	assert.False(t, page.Items[1].IsFavorite)
	assert.True(t, page.Items[1].IsLiked)
	assert.False(t, page.Items[2].IsFavorite)
	assert.False(t, page.Items[2].IsLiked)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Categories, 1)
}

func TestListAnonymousActorGetsFalseFlags(t *testing.T) {
	restaurants := restaurantsWithIDs("r1")
	categories := &stubCategoryRepo{
		all: func(context.Context) ([]domain.Category, error) { return nil, nil },
	}

	svc := NewRestaurantReadService(listFixtureRepo(restaurants, 1), categories, nil, emptyRelationRepo(), emptyRelationRepo(), &stubMembershipService{})
	page, err := svc.List(context.Background(), RestaurantFilter{}, Paging{}, "")
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.False(t, page.Items[0].IsFavorite)
	assert.False(t, page.Items[0].IsLiked)
}

func TestListForwardsCategoryFilter(t *testing.T) {
	var gotFilter RestaurantFilter
	repo := &stubRestaurantRepo{
		find: func(_ context.Context, filter RestaurantFilter, _ Paging) ([]domain.Restaurant, error) {
			gotFilter = filter
			return nil, nil
		},
		count: func(_ context.Context, filter RestaurantFilter) (int, error) {
			return 0, nil
		},
	}
	categories := &stubCategoryRepo{
		all: func(context.Context) ([]domain.Category, error) { return nil, nil },
	}

	svc := NewRestaurantReadService(repo, categories, nil, emptyRelationRepo(), emptyRelationRepo(), &stubMembershipService{})
	_, err := svc.List(context.Background(), RestaurantFilter{CategoryID: "c7"}, Paging{}, "")
	require.NoError(t, err)

	assert.Equal(t, "c7", gotFilter.CategoryID)
}

func TestDetailNotFound(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*domain.Restaurant, error) { return nil, nil },
	}

	svc := NewRestaurantReadService(repo, nil, nil, emptyRelationRepo(), emptyRelationRepo(), &stubMembershipService{})
	_, err := svc.Detail(context.Background(), "missing", "")

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDetailReflectsIncrementedViewCount(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*domain.Restaurant, error) {
			return &domain.Restaurant{ID: "r1", ViewCount: 7}, nil
		},
		increment: func(context.Context, string) (int, error) { return 8, nil },
	}
	comments := &stubCommentRepo{
		byRestaurant: func(context.Context, string) ([]domain.Comment, error) {
			return []domain.Comment{{ID: "cm1"}}, nil
		},
	}
	favorites := emptyRelationRepo()
	favorites.userIDs = func(context.Context, string) ([]string, error) { return []string{"u1", "u2"}, nil }
	likes := emptyRelationRepo()
	memberships := &stubMembershipService{
		memberships: NewMemberships([]string{"r1"}, nil, nil),
	}

	svc := NewRestaurantReadService(repo, nil, comments, favorites, likes, memberships)
	detail, err := svc.Detail(context.Background(), "r1", "u1")
	require.NoError(t, err)

	assert.Equal(t, 8, detail.Restaurant.ViewCount)
	assert.Len(t, detail.Comments, 1)
	assert.Equal(t, []string{"u1", "u2"}, detail.FavoritedUserIDs)
	assert.True(t, detail.IsFavorite)
	assert.False(t, detail.IsLiked)
}

func TestTopRanksByFavoriteCount(t *testing.T) {
	repo := &stubRestaurantRepo{
		all: func(context.Context) ([]domain.Restaurant, error) {
			return restaurantsWithIDs("r1", "r2", "r3"), nil
		},
	}
	favorites := emptyRelationRepo()
	favorites.counts = func(context.Context) (map[string]int, error) {
		return map[string]int{"r1": 1, "r2": 4, "r3": 2}, nil
	}
	memberships := &stubMembershipService{
		memberships: NewMemberships([]string{"r2"}, nil, nil),
	}

	svc := NewRestaurantReadService(repo, nil, nil, favorites, emptyRelationRepo(), memberships)
	top, err := svc.Top(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, "r2", top[0].ID)
	assert.Equal(t, 4, top[0].FavoritedCount)
	assert.True(t, top[0].IsFavorite)
	assert.Equal(t, "r3", top[1].ID)
	assert.Equal(t, "r1", top[2].ID)
}

func TestFeedsReturnsLatestOfBoth(t *testing.T) {
	repo := &stubRestaurantRepo{
		latest: func(_ context.Context, limit int) ([]domain.Restaurant, error) {
			assert.Equal(t, feedSize, limit)
			return restaurantsWithIDs("r1"), nil
		},
	}
	comments := &stubCommentRepo{
		latest: func(_ context.Context, limit int) ([]domain.Comment, error) {
			assert.Equal(t, feedSize, limit)
			return []domain.Comment{{ID: "cm1"}}, nil
		},
	}

	svc := NewRestaurantReadService(repo, nil, comments, emptyRelationRepo(), emptyRelationRepo(), &stubMembershipService{})
	feeds, err := svc.Feeds(context.Background())
	require.NoError(t, err)

	assert.Len(t, feeds.Restaurants, 1)
	assert.Len(t, feeds.Comments, 1)
}

func TestDashboardCountsComments(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByID: func(context.Context, string) (*domain.Restaurant, error) {
			return &domain.Restaurant{ID: "r1", ViewCount: 3}, nil
		},
	}
	comments := &stubCommentRepo{
		byRestaurant: func(context.Context, string) ([]domain.Comment, error) {
			return []domain.Comment{{ID: "cm1"}, {ID: "cm2"}}, nil
		},
	}

	svc := NewRestaurantReadService(repo, nil, comments, emptyRelationRepo(), emptyRelationRepo(), &stubMembershipService{})
	dashboard, err := svc.Dashboard(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Restaurant.ViewCount)
	assert.Equal(t, 2, dashboard.CommentCount)
}
