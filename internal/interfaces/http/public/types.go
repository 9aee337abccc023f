package public

import (
	"time"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
	publicdomain "github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// restaurantSummaryResponse is the list-card shape. Description is
// truncated to the card length.
type restaurantSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	ViewCounts   int    `json:"viewCounts"`
	IsFavorited  bool   `json:"isFavorited"`
	IsLiked      bool   `json:"isLiked"`
	CreatedAt    string `json:"createdAt"`
}

type restaurantListResponse struct {
	Restaurants []restaurantSummaryResponse `json:"restaurants"`
	Categories  []categoryResponse          `json:"categories"`
	CategoryID  string                      `json:"categoryId,omitempty"`
	Pagination  common.Pagination           `json:"pagination"`
	Total       int                         `json:"total"`
}

type commentResponse struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	RestaurantID    string `json:"restaurantId"`
	RestaurantName  string `json:"restaurantName,omitempty"`
	RestaurantImage string `json:"restaurantImage,omitempty"`
	UserID          string `json:"userId"`
	UserName        string `json:"userName,omitempty"`
	UserImage       string `json:"userImage,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

// restaurantDetailResponse carries the full description, untruncated.
type restaurantDetailResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Tel            string            `json:"tel,omitempty"`
	Address        string            `json:"address,omitempty"`
	OpeningHours   string            `json:"openingHours,omitempty"`
	Description    string            `json:"description"`
	Image          string            `json:"image,omitempty"`
	CategoryID     string            `json:"categoryId"`
	CategoryName   string            `json:"categoryName,omitempty"`
	ViewCounts     int               `json:"viewCounts"`
	IsFavorited    bool              `json:"isFavorited"`
	IsLiked        bool              `json:"isLiked"`
	FavoritedCount int               `json:"favoritedCount"`
	LikedCount     int               `json:"likedCount"`
	Comments       []commentResponse `json:"comments"`
	CreatedAt      string            `json:"createdAt"`
}

type feedsResponse struct {
	Restaurants []restaurantSummaryResponse `json:"restaurants"`
	Comments    []commentResponse           `json:"comments"`
}

type topRestaurantResponse struct {
	restaurantSummaryResponse
	FavoritedCount int `json:"favoritedCount"`
}

type dashboardResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName,omitempty"`
	ViewCounts   int    `json:"viewCounts"`
	CommentCount int    `json:"commentCount"`
	CreatedAt    string `json:"createdAt"`
}

// userResponse deliberately has no password field; credentials can never
// leak through serialization.
type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Image     string `json:"image,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

type userProfileResponse struct {
	User         userResponse      `json:"user"`
	Comments     []commentResponse `json:"comments"`
	CommentCount int               `json:"commentCount"`
}

type topUserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	FollowerCount int    `json:"followerCount"`
	IsFollowed    bool   `json:"isFollowed"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type signUpRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PasswordCheck string `json:"passwordCheck"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type commentCreateRequest struct {
	RestaurantID string `json:"restaurantId"`
	Text         string `json:"text"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func buildCategoryResponse(category publicdomain.Category) categoryResponse {
	return categoryResponse{ID: category.ID, Name: category.Name}
}

func buildRestaurantSummary(restaurant publicdomain.Restaurant, isFavorited, isLiked bool) restaurantSummaryResponse {
	return restaurantSummaryResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Description:  common.TruncateRunes(restaurant.Description, common.MaxDescriptionRunes),
		Image:        restaurant.Image,
		CategoryID:   restaurant.CategoryID,
		CategoryName: restaurant.CategoryName,
		ViewCounts:   restaurant.ViewCount,
		IsFavorited:  isFavorited,
		IsLiked:      isLiked,
		CreatedAt:    formatTime(restaurant.CreatedAt),
	}
}

func buildCommentResponse(comment publicdomain.Comment) commentResponse {
	return commentResponse{
		ID:              comment.ID,
		Text:            comment.Text,
		RestaurantID:    comment.RestaurantID,
		RestaurantName:  comment.RestaurantName,
		RestaurantImage: comment.RestaurantImage,
		UserID:          comment.UserID,
		UserName:        comment.AuthorName,
		UserImage:       comment.AuthorImage,
		CreatedAt:       formatTime(comment.CreatedAt),
	}
}

func buildCommentResponses(comments []publicdomain.Comment) []commentResponse {
	responses := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, buildCommentResponse(comment))
	}
	return responses
}

func buildRestaurantDetail(detail publicapp.RestaurantDetail) restaurantDetailResponse {
	return restaurantDetailResponse{
		ID:             detail.Restaurant.ID,
		Name:           detail.Restaurant.Name,
		Tel:            detail.Restaurant.Tel,
		Address:        detail.Restaurant.Address,
		OpeningHours:   detail.Restaurant.OpeningHours,
		Description:    detail.Restaurant.Description,
		Image:          detail.Restaurant.Image,
		CategoryID:     detail.Restaurant.CategoryID,
		CategoryName:   detail.Restaurant.CategoryName,
		ViewCounts:     detail.Restaurant.ViewCount,
		IsFavorited:    detail.IsFavorite,
		IsLiked:        detail.IsLiked,
		FavoritedCount: len(detail.FavoritedUserIDs),
		LikedCount:     len(detail.LikedUserIDs),
		Comments:       buildCommentResponses(detail.Comments),
		CreatedAt:      formatTime(detail.Restaurant.CreatedAt),
	}
}

func buildUserResponse(user publicdomain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		IsAdmin:   user.IsAdmin,
		CreatedAt: formatTime(user.CreatedAt),
	}
}
