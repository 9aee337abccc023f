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

// RelationRepository はユーザー・店舗間の関係レコード（お気に入り/Like）の
// Mongo 実装。(userId, restaurantId) のユニークインデックスが二重登録を防ぎ、
// インデックス違反を ErrRelationExists に変換する。
type RelationRepository struct {
	collection *mongo.Collection
}

// NewRelationRepository は MongoDB コレクションを束縛した RelationRepository を生成する。
func NewRelationRepository(db *mongo.Database, collectionName string) *RelationRepository {
	return &RelationRepository{collection: db.Collection(collectionName)}
}

// Add は関係レコードを追加する。既に存在する場合は ErrRelationExists を返す。
func (r *RelationRepository) Add(ctx context.Context, userID, restaurantID string) error {
	userObjID, restaurantObjID, err := relationIDs(userID, restaurantID)
	if err != nil {
		return err
	}

	doc := RelationDocument{
		ID:           primitive.NewObjectID(),
		UserID:       userObjID,
		RestaurantID: restaurantObjID,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return application.ErrRelationExists
		}
		return err
	}
	return nil
}

// Remove は関係レコードを削除する。対象が無い場合は ErrRelationNotFound を返す。
func (r *RelationRepository) Remove(ctx context.Context, userID, restaurantID string) error {
	userObjID, restaurantObjID, err := relationIDs(userID, restaurantID)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userObjID, "restaurantId": restaurantObjID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrRelationNotFound
	}
	return nil
}

// RestaurantIDs はユーザーが関係を持つ店舗 ID の一覧を返す。
func (r *RelationRepository) RestaurantIDs(ctx context.Context, userID string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return []string{}, nil
	}
	return r.collectIDs(ctx, bson.M{"userId": objectID}, func(doc RelationDocument) string {
		return doc.RestaurantID.Hex()
	})
}

// UserIDs は店舗に関係を持つユーザー ID の一覧を返す。
func (r *RelationRepository) UserIDs(ctx context.Context, restaurantID string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return []string{}, nil
	}
	return r.collectIDs(ctx, bson.M{"restaurantId": objectID}, func(doc RelationDocument) string {
		return doc.UserID.Hex()
	})
}

// CountByRestaurant は店舗 ID ごとの関係レコード数を集計して返す。
func (r *RelationRepository) CountByRestaurant(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$restaurantId", "count": bson.M{"$sum": 1}}}},
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

func (r *RelationRepository) collectIDs(ctx context.Context, filter bson.M, pick func(RelationDocument) string) ([]string, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var doc RelationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, pick(doc))
	}
	return ids, cursor.Err()
}

func relationIDs(userID, restaurantID string) (primitive.ObjectID, primitive.ObjectID, error) {
	userObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, application.ErrUserNotFound
	}
	restaurantObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, application.ErrRestaurantNotFound
	}
	return userObjID, restaurantObjID, nil
}
