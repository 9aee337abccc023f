package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroMembershipsReportFalse(t *testing.T) {
	var m Memberships

	assert.False(t, m.HasFavorited("r1"))
	assert.False(t, m.HasLiked("r1"))
	assert.False(t, m.IsFollowing("u1"))
}

func TestNewMemberships(t *testing.T) {
	m := NewMemberships([]string{"r1", "r2"}, []string{"r2"}, []string{"u9"})

	assert.True(t, m.HasFavorited("r1"))
	assert.True(t, m.HasFavorited("r2"))
	assert.False(t, m.HasFavorited("r3"))
	assert.True(t, m.HasLiked("r2"))
	assert.False(t, m.HasLiked("r1"))
	assert.True(t, m.IsFollowing("u9"))
	assert.False(t, m.IsFollowing("u1"))
}

func TestMembershipQueryServiceForUser(t *testing.T) {
	favorites := emptyRelationRepo()
	favorites.restaurantIDs = func(_ context.Context, userID string) ([]string, error) {
		assert.Equal(t, "u1", userID)
		return []string{"r1"}, nil
	}
	likes := emptyRelationRepo()
	likes.restaurantIDs = func(_ context.Context, userID string) ([]string, error) {
		return []string{"r2"}, nil
	}
	follows := emptyFollowRepo()
	follows.followingIDs = func(_ context.Context, followerID string) ([]string, error) {
		return []string{"u2"}, nil
	}

	svc := NewMembershipQueryService(favorites, likes, follows)
	m, err := svc.ForUser(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, m.HasFavorited("r1"))
	assert.False(t, m.HasFavorited("r2"))
	assert.True(t, m.HasLiked("r2"))
	assert.True(t, m.IsFollowing("u2"))
}

func TestMembershipQueryServiceEmptyUserSkipsQueries(t *testing.T) {
	called := false
	favorites := emptyRelationRepo()
	favorites.restaurantIDs = func(context.Context, string) ([]string, error) {
		called = true
		return nil, nil
	}

	svc := NewMembershipQueryService(favorites, emptyRelationRepo(), emptyFollowRepo())
	m, err := svc.ForUser(context.Background(), "")
	require.NoError(t, err)

	assert.False(t, called)
	assert.False(t, m.HasFavorited("r1"))
}

func TestMembershipQueryServicePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	likes := emptyRelationRepo()
	likes.restaurantIDs = func(context.Context, string) ([]string, error) { return nil, boom }

	svc := NewMembershipQueryService(emptyRelationRepo(), likes, emptyFollowRepo())
	_, err := svc.ForUser(context.Background(), "u1")

	assert.ErrorIs(t, err, boom)
}
