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

// AdminRestaurantRepository は管理者向け店舗集約の Mongo 実装。
type AdminRestaurantRepository struct {
	restaurants *mongo.Collection
	categories  *mongo.Collection
}

// NewAdminRestaurantRepository は店舗・カテゴリのコレクションを束縛したリポジトリを生成する。
func NewAdminRestaurantRepository(db *mongo.Database, restaurantCollection, categoryCollection string) *AdminRestaurantRepository {
	return &AdminRestaurantRepository{
		restaurants: db.Collection(restaurantCollection),
		categories:  db.Collection(categoryCollection),
	}
}

// FindAll は全店舗を作成日時の新しい順で返す。
func (r *AdminRestaurantRepository) FindAll(ctx context.Context) ([]admindomain.Restaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.restaurants.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]RestaurantDocument, 0)
	for cursor.Next(ctx) {
		var doc RestaurantDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	categoryNames, err := r.loadCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	restaurants := make([]admindomain.Restaurant, 0, len(docs))
	for _, doc := range docs {
		restaurants = append(restaurants, mapAdminRestaurantDocument(doc, categoryNames))
	}
	return restaurants, nil
}

// FindByID は ID から単一店舗を取得する。存在しない場合は nil を返す。
func (r *AdminRestaurantRepository) FindByID(ctx context.Context, id string) (*admindomain.Restaurant, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var doc RestaurantDocument
	if err := r.restaurants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	categoryNames, err := r.loadCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	restaurant := mapAdminRestaurantDocument(doc, categoryNames)
	return &restaurant, nil
}

// Create は店舗を追加し、採番結果をドメインモデルへ反映する。
func (r *AdminRestaurantRepository) Create(ctx context.Context, restaurant *admindomain.Restaurant) error {
	categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurant.CategoryID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := restaurant.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := restaurant.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := RestaurantDocument{
		ID:           primitive.NewObjectID(),
		Name:         restaurant.Name,
		Tel:          restaurant.Tel,
		Address:      restaurant.Address,
		OpeningHours: restaurant.OpeningHours,
		Description:  restaurant.Description,
		Image:        restaurant.Image,
		CategoryID:   categoryID,
		ViewCount:    0,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if _, err := r.restaurants.InsertOne(ctx, doc); err != nil {
		return err
	}

	restaurant.ID = doc.ID.Hex()
	restaurant.CreatedAt = doc.CreatedAt
	restaurant.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update は店舗を更新する。閲覧カウンタは更新対象に含めない。
func (r *AdminRestaurantRepository) Update(ctx context.Context, restaurant *admindomain.Restaurant) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurant.ID))
	if err != nil {
		return err
	}
	categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurant.CategoryID))
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":         restaurant.Name,
		"tel":          restaurant.Tel,
		"address":      restaurant.Address,
		"openingHours": restaurant.OpeningHours,
		"description":  restaurant.Description,
		"image":        restaurant.Image,
		"categoryId":   categoryID,
		"updatedAt":    restaurant.UpdatedAt,
	}}
	_, err = r.restaurants.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

// Delete は店舗を削除する。
func (r *AdminRestaurantRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	_, err = r.restaurants.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *AdminRestaurantRepository) loadCategoryNames(ctx context.Context) (map[primitive.ObjectID]string, error) {
	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := make(map[primitive.ObjectID]string)
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ID] = doc.Name
	}
	return names, cursor.Err()
}

func mapAdminRestaurantDocument(doc RestaurantDocument, categoryNames map[primitive.ObjectID]string) admindomain.Restaurant {
	return admindomain.Restaurant{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Tel:          doc.Tel,
		Address:      doc.Address,
		OpeningHours: doc.OpeningHours,
		Description:  doc.Description,
		Image:        doc.Image,
		CategoryID:   doc.CategoryID.Hex(),
		CategoryName: categoryNames[doc.CategoryID],
		ViewCount:    doc.ViewCount,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
