package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sngm3741/gurume-club-services/api/internal/public/application"
)

// FollowRepository はユーザー間フォローの Mongo 実装。
// (followerId, followingId) のユニークインデックスが二重登録を防ぐ。
type FollowRepository struct {
	collection *mongo.Collection
}

// NewFollowRepository は MongoDB コレクションを束縛した FollowRepository を生成する。
func NewFollowRepository(db *mongo.Database, collectionName string) *FollowRepository {
	return &FollowRepository{collection: db.Collection(collectionName)}
}

// Add はフォローレコードを追加する。既に存在する場合は ErrRelationExists を返す。
func (r *FollowRepository) Add(ctx context.Context, followerID, followingID string) error {
	followerObjID, followingObjID, err := followIDs(followerID, followingID)
	if err != nil {
		return err
	}

	doc := FollowDocument{
		ID:          primitive.NewObjectID(),
		FollowerID:  followerObjID,
		FollowingID: followingObjID,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return application.ErrRelationExists
		}
		return err
	}
	return nil
}

// Remove はフォローレコードを削除する。対象が無い場合は ErrRelationNotFound を返す。
func (r *FollowRepository) Remove(ctx context.Context, followerID, followingID string) error {
	followerObjID, followingObjID, err := followIDs(followerID, followingID)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"followerId": followerObjID, "followingId": followingObjID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrRelationNotFound
	}
	return nil
}

// FollowingIDs はユーザーがフォローしている相手の ID 一覧を返す。
func (r *FollowRepository) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(followerID))
	if err != nil {
		return []string{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"followerId": objectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var doc FollowDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.FollowingID.Hex())
	}
	return ids, cursor.Err()
}

// CountByFollowing はフォローされているユーザー ID ごとのフォロワー数を集計して返す。
func (r *FollowRepository) CountByFollowing(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$followingId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			ID    primitive.ObjectID `bson:"_id"`
			Count int                `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID.Hex()] = row.Count
	}
	return counts, cursor.Err()
}

func followIDs(followerID, followingID string) (primitive.ObjectID, primitive.ObjectID, error) {
	followerObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(followerID))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, application.ErrUserNotFound
	}
	followingObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(followingID))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, application.ErrUserNotFound
	}
	return followerObjID, followingObjID, nil
}
