package public

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
	publicdomain "github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

func TestUserResponseNeverExposesPassword(t *testing.T) {
	user := publicdomain.User{
		ID:           "u1",
		Name:         "太郎",
		Email:        "taro@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(buildUserResponse(user))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(encoded, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "passwordHash")
	assert.Equal(t, "taro@example.com", fields["email"])
}

func TestBuildRestaurantSummaryTruncatesDescription(t *testing.T) {
	long := strings.Repeat("旨", 60)
	summary := buildRestaurantSummary(publicdomain.Restaurant{
		ID:          "r1",
		Name:        "寿司処",
		Description: long,
	}, true, false)

	assert.Equal(t, strings.Repeat("旨", 50), summary.Description)
	assert.True(t, summary.IsFavorited)
	assert.False(t, summary.IsLiked)
}

func TestBuildRestaurantDetailKeepsFullDescription(t *testing.T) {
	long := strings.Repeat("旨", 60)
	detail := buildRestaurantDetail(publicapp.RestaurantDetail{
		Restaurant:       publicdomain.Restaurant{ID: "r1", Name: "寿司処", Description: long},
		Comments:         []publicdomain.Comment{{ID: "cm1", Text: "うまい"}},
		FavoritedUserIDs: []string{"u1", "u2"},
		LikedUserIDs:     []string{"u1"},
		IsFavorite:       true,
	})

	assert.Equal(t, long, detail.Description)
	assert.Equal(t, 2, detail.FavoritedCount)
	assert.Equal(t, 1, detail.LikedCount)
	assert.Len(t, detail.Comments, 1)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "", formatTime(time.Time{}))

	at := time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-04-01T09:30:00Z", formatTime(at))
}
