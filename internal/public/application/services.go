package application

import (
	"context"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// DefaultPageLimit is applied when a caller omits or mangles the limit.
const DefaultPageLimit = 9

// topListSize bounds the ranked top-restaurant/top-user listings.
const topListSize = 10

// RestaurantRepository abstracts read access to restaurants.
// RestaurantRepository は Public コンテキストで店舗を読み取るためのポート。
type RestaurantRepository interface {
	Find(ctx context.Context, filter RestaurantFilter, paging Paging) ([]domain.Restaurant, error)
	Count(ctx context.Context, filter RestaurantFilter) (int, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Restaurant, error)
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	// IncrementViewCount bumps the view counter by one and returns the
	// post-increment value. Not isolated against concurrent increments.
	IncrementViewCount(ctx context.Context, id string) (int, error)
}

// CategoryRepository reads cuisine categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

// CommentRepository handles comment reads/writes.
// CommentRepository はレビューコメントの読み書きを提供するポート。
type CommentRepository interface {
	FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Comment, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Comment, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

// UserRepository handles account reads/writes. Create reports a duplicate
// email through ErrEmailTaken (backed by a unique index, not a pre-check).
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

// RelationRepository persists a user-to-restaurant join record set
// (favorites or likes). Existence is the only state. Add reports a
// duplicate pair through ErrRelationExists; Remove reports a missing pair
// through ErrRelationNotFound.
type RelationRepository interface {
	Add(ctx context.Context, userID, restaurantID string) error
	Remove(ctx context.Context, userID, restaurantID string) error
	RestaurantIDs(ctx context.Context, userID string) ([]string, error)
	UserIDs(ctx context.Context, restaurantID string) ([]string, error)
	CountByRestaurant(ctx context.Context) (map[string]int, error)
}

// FollowRepository persists directed user-to-user follow records.
type FollowRepository interface {
	Add(ctx context.Context, followerID, followingID string) error
	Remove(ctx context.Context, followerID, followingID string) error
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	CountByFollowing(ctx context.Context) (map[string]int, error)
}

// RestaurantFilter expresses search criteria for restaurants.
type RestaurantFilter struct {
	CategoryID string
}

// Paging controls pagination. Zero or negative values fall back to the
// first page and the default limit.
type Paging struct {
	Page  int
	Limit int
}

// CurrentPage coerces the requested page to >= 1.
func (p Paging) CurrentPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// PerPage coerces the requested limit to a positive value.
func (p Paging) PerPage() int {
	if p.Limit < 1 {
		return DefaultPageLimit
	}
	return p.Limit
}

// Offset converts (limit, page) into a storage offset.
func (p Paging) Offset() int {
	return p.PerPage() * (p.CurrentPage() - 1)
}

// RestaurantListItem is a restaurant row annotated with the acting user's
// membership flags.
type RestaurantListItem struct {
	domain.Restaurant
	IsFavorite bool
	IsLiked    bool
}

// RestaurantPage bundles one page of restaurants with the category list
// and the total match count.
type RestaurantPage struct {
	Items      []RestaurantListItem
	Categories []domain.Category
	Total      int
}

// RestaurantDetail aggregates a restaurant with its comments and the
// favorite/like user sets.
type RestaurantDetail struct {
	Restaurant       domain.Restaurant
	Comments         []domain.Comment
	FavoritedUserIDs []string
	LikedUserIDs     []string
	IsFavorite       bool
	IsLiked          bool
}

// Feeds carries the newest restaurants and comments, unpaginated.
type Feeds struct {
	Restaurants []domain.Restaurant
	Comments    []domain.Comment
}

// TopRestaurant is a restaurant ranked by favorite count.
type TopRestaurant struct {
	domain.Restaurant
	FavoritedCount int
	IsFavorite     bool
}

// TopUser is a user ranked by follower count.
type TopUser struct {
	User          domain.User
	FollowerCount int
	IsFollowed    bool
}

// RestaurantDashboard pairs a restaurant with its comment count for the
// owner-facing dashboard view.
type RestaurantDashboard struct {
	Restaurant   domain.Restaurant
	CommentCount int
}

// UserProfile aggregates a user with the comments they wrote.
type UserProfile struct {
	User         domain.User
	Comments     []domain.Comment
	CommentCount int
}

// RestaurantQueryService describes restaurant read use-cases.
// RestaurantQueryService は店舗に関する参照ユースケースを提供するリーダーモデル。
type RestaurantQueryService interface {
	List(ctx context.Context, filter RestaurantFilter, paging Paging, actorID string) (*RestaurantPage, error)
	Detail(ctx context.Context, id, actorID string) (*RestaurantDetail, error)
	Feeds(ctx context.Context) (*Feeds, error)
	Top(ctx context.Context, actorID string) ([]TopRestaurant, error)
	Dashboard(ctx context.Context, id string) (*RestaurantDashboard, error)
}

// CommentCommandService handles comment writes.
type CommentCommandService interface {
	Post(ctx context.Context, actorID, restaurantID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, actorID string, actorIsAdmin bool, commentID string) error
}

// RelationCommandService toggles favorite/like/follow join records.
type RelationCommandService interface {
	AddFavorite(ctx context.Context, actorID, restaurantID string) error
	RemoveFavorite(ctx context.Context, actorID, restaurantID string) error
	AddLike(ctx context.Context, actorID, restaurantID string) error
	RemoveLike(ctx context.Context, actorID, restaurantID string) error
	Follow(ctx context.Context, actorID, targetID string) error
	Unfollow(ctx context.Context, actorID, targetID string) error
}

// SignUpCommand captures account registration input.
type SignUpCommand struct {
	Name          string
	Email         string
	Password      string
	PasswordCheck string
}

// UserService describes account use-cases.
type UserService interface {
	SignUp(ctx context.Context, cmd SignUpCommand) (*domain.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
	Profile(ctx context.Context, id string) (*UserProfile, error)
	Update(ctx context.Context, actorID, id, name, imageURL string) (*domain.User, error)
	Top(ctx context.Context, actorID string) ([]TopUser, error)
}

// MembershipService loads the acting user's relationship id sets.
type MembershipService interface {
	ForUser(ctx context.Context, userID string) (Memberships, error)
}
