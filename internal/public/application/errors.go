package application

import "errors"

// Failure sentinels shared by the public services. Handlers translate
// these into HTTP statuses; nothing here carries transport concerns.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCommentNotFound    = errors.New("comment not found")

	ErrCommentTextRequired = errors.New("comment text is required")
	ErrUserNameRequired    = errors.New("user name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrSelfFollow          = errors.New("cannot follow yourself")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not permitted")

	ErrAlreadyFavorited = errors.New("restaurant is already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyLiked     = errors.New("restaurant is already liked")
	ErrLikeNotFound     = errors.New("like not found")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow not found")
)

// Port-level sentinels returned by relation repositories. Services map
// them onto the relation-specific failures above.
var (
	ErrRelationExists   = errors.New("relation already exists")
	ErrRelationNotFound = errors.New("relation not found")
)
