package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// CategoryRepository はパブリック向けカテゴリ読み出しの Mongo 実装。
type CategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository は MongoDB コレクションを束縛した CategoryRepository を生成する。
func NewCategoryRepository(db *mongo.Database, collectionName string) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection(collectionName)}
}

// FindAll は全カテゴリを名前順で返す。
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]domain.Category, 0)
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapCategoryDocument(doc))
	}
	return categories, cursor.Err()
}

// FindByID は ID から単一カテゴリを取得する。存在しない場合は nil を返す。
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
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

	category := mapCategoryDocument(doc)
	return &category, nil
}

func mapCategoryDocument(doc CategoryDocument) domain.Category {
	return domain.Category{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
