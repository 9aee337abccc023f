package admin

import (
	"time"

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

type restaurantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Tel          string `json:"tel,omitempty"`
	Address      string `json:"address,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	ViewCounts   int    `json:"viewCounts"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type categoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

type categoryUpsertRequest struct {
	Name string `json:"name"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func buildRestaurantResponse(restaurant admindomain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Tel:          restaurant.Tel,
		Address:      restaurant.Address,
		OpeningHours: restaurant.OpeningHours,
		Description:  restaurant.Description,
		Image:        restaurant.Image,
		CategoryID:   restaurant.CategoryID,
		CategoryName: restaurant.CategoryName,
		ViewCounts:   restaurant.ViewCount,
		CreatedAt:    formatTime(restaurant.CreatedAt),
		UpdatedAt:    formatTime(restaurant.UpdatedAt),
	}
}

func buildCategoryResponse(category admindomain.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: formatTime(category.CreatedAt),
		UpdatedAt: formatTime(category.UpdatedAt),
	}
}

func buildUserResponse(user admindomain.User) userResponse {
	return userResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Image:   user.Image,
		IsAdmin: user.IsAdmin,
	}
}
