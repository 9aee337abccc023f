package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument は MongoDB 上でのアカウントスキーマを Go 構造体として表現したもの。
type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Image     string             `bson:"image,omitempty"`
	IsAdmin   bool               `bson:"isAdmin"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// RestaurantDocument は店舗スキーマ。カテゴリ名は保持せず、読み出し時に
// categories コレクションと突き合わせる。
type RestaurantDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Tel          string             `bson:"tel,omitempty"`
	Address      string             `bson:"address,omitempty"`
	OpeningHours string             `bson:"openingHours,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Image        string             `bson:"image,omitempty"`
	CategoryID   primitive.ObjectID `bson:"categoryId"`
	ViewCount    int                `bson:"viewCounts"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// CategoryDocument はカテゴリスキーマ。
type CategoryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CommentDocument はレビューコメントのスキーマ。表示に必要な店舗名と
// 投稿者名を非正規化して保持する。
type CommentDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Text            string             `bson:"text"`
	RestaurantID    primitive.ObjectID `bson:"restaurantId"`
	RestaurantName  string             `bson:"restaurantName"`
	RestaurantImage string             `bson:"restaurantImage,omitempty"`
	UserID          primitive.ObjectID `bson:"userId"`
	UserName        string             `bson:"userName"`
	UserImage       string             `bson:"userImage,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

// RelationDocument はユーザーと店舗の関係レコード（お気に入り/Like）の
// スキーマ。(userId, restaurantId) にユニークインデックスを張る。
type RelationDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       primitive.ObjectID `bson:"userId"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// FollowDocument はユーザー間フォローのスキーマ。(followerId, followingId)
// にユニークインデックスを張る。
type FollowDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	FollowerID  primitive.ObjectID `bson:"followerId"`
	FollowingID primitive.ObjectID `bson:"followingId"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
