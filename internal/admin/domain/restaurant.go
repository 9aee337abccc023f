package domain

import "time"

// Restaurant aggregates data required for admin operations.
type Restaurant struct {
	ID           string
	Name         string
	Tel          string
	Address      string
	OpeningHours string
	Description  string
	Image        string
	CategoryID   string
	CategoryName string
	ViewCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category is a cuisine genre managed by admins.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
