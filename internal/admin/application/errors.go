package application

import "errors"

// Failure sentinels for the admin services.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category is required")

	// ErrRootAdminImmutable guards the bootstrap administrator account
	// against demotion.
	ErrRootAdminImmutable = errors.New("root admin role cannot be changed")
)
