package domain

import "time"

// Comment is a user's review text on a restaurant. Immutable once created
// except for deletion.
type Comment struct {
	ID              string
	Text            string
	RestaurantID    string
	RestaurantName  string
	RestaurantImage string
	UserID          string
	AuthorName      string
	AuthorImage     string
	CreatedAt       time.Time
}
