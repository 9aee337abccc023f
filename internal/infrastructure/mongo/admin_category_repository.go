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

	admindomain "github.com/sngm3741/gurume-club-services/api/internal/admin/domain"
)

// AdminCategoryRepository は管理者向けカテゴリ CRUD の Mongo 実装。
type AdminCategoryRepository struct {
	collection *mongo.Collection
}

// NewAdminCategoryRepository は MongoDB コレクションを束縛したリポジトリを生成する。
func NewAdminCategoryRepository(db *mongo.Database, collectionName string) *AdminCategoryRepository {
	return &AdminCategoryRepository{collection: db.Collection(collectionName)}
}

// FindAll は全カテゴリを名前順で返す。
func (r *AdminCategoryRepository) FindAll(ctx context.Context) ([]admindomain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]admindomain.Category, 0)
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapAdminCategoryDocument(doc))
	}
	return categories, cursor.Err()
}

// FindByID は ID から単一カテゴリを取得する。存在しない場合は nil を返す。
func (r *AdminCategoryRepository) FindByID(ctx context.Context, id string) (*admindomain.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var doc CategoryDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	category := mapAdminCategoryDocument(doc)
	return &category, nil
}

// Create はカテゴリを追加し、採番結果をドメインモデルへ反映する。
func (r *AdminCategoryRepository) Create(ctx context.Context, category *admindomain.Category) error {
	now := time.Now().UTC()
	createdAt := category.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := category.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := CategoryDocument{
		ID:        primitive.NewObjectID(),
		Name:      category.Name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	category.ID = doc.ID.Hex()
	category.CreatedAt = doc.CreatedAt
	category.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update はカテゴリ名を更新する。
func (r *AdminCategoryRepository) Update(ctx context.Context, category *admindomain.Category) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(category.ID))
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":      category.Name,
		"updatedAt": category.UpdatedAt,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

// Delete はカテゴリを削除する。
func (r *AdminCategoryRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func mapAdminCategoryDocument(doc CategoryDocument) admindomain.Category {
	return admindomain.Category{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
