package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// AdminUserRepository は管理者向けアカウント操作の Mongo 実装。
type AdminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository は MongoDB コレクションを束縛したリポジトリを生成する。
func NewAdminUserRepository(db *mongo.Database, collectionName string) *AdminUserRepository {
	return &AdminUserRepository{collection: db.Collection(collectionName)}
}

// FindAll は全アカウントを登録順で返す。
func (r *AdminUserRepository) FindAll(ctx context.Context) ([]admindomain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]admindomain.User, 0)
	for cursor.Next(ctx) {
		var doc UserDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, mapAdminUserDocument(doc))
	}
	return users, cursor.Err()
}

// FindByID は ID から単一アカウントを取得する。存在しない場合は nil を返す。
func (r *AdminUserRepository) FindByID(ctx context.Context, id string) (*admindomain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	user := mapAdminUserDocument(doc)
	return &user, nil
}

// SetIsAdmin は管理者フラグを書き換える。
func (r *AdminUserRepository) SetIsAdmin(ctx context.Context, id string, isAdmin bool) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return adminapp.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"isAdmin":   isAdmin,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return adminapp.ErrUserNotFound
	}
	return nil
}

func mapAdminUserDocument(doc UserDocument) admindomain.User {
	return admindomain.User{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Image:     doc.Image,
		IsAdmin:   doc.IsAdmin,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
