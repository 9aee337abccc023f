package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/gurume-club-services/api/internal/public/application"
	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// RestaurantRepository はパブリック向け店舗集約の Mongo 実装。
type RestaurantRepository struct {
	restaurants *mongo.Collection
	categories  *mongo.Collection
}

// NewRestaurantRepository は店舗・カテゴリのコレクションを束縛したリポジトリを構築する。
func NewRestaurantRepository(db *mongo.Database, restaurantCollection, categoryCollection string) *RestaurantRepository {
	return &RestaurantRepository{
		restaurants: db.Collection(restaurantCollection),
		categories:  db.Collection(categoryCollection),
	}
}

// Find はカテゴリ絞り込みとページングを Mongo クエリへ落とし込み、作成日時の新しい順で店舗を返す。
func (r *RestaurantRepository) Find(ctx context.Context, filter application.RestaurantFilter, paging application.Paging) ([]domain.Restaurant, error) {
	mongoFilter, err := restaurantFilter(filter)
	if err != nil {
		return nil, err
	}
	if mongoFilter == nil {
		return []domain.Restaurant{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(paging.Offset())).
		SetLimit(int64(paging.PerPage()))

	return r.findRestaurants(ctx, mongoFilter, opts)
}

// Count はフィルタに一致する店舗数を返す。
func (r *RestaurantRepository) Count(ctx context.Context, filter application.RestaurantFilter) (int, error) {
	mongoFilter, err := restaurantFilter(filter)
	if err != nil {
		return 0, err
	}
	if mongoFilter == nil {
		return 0, nil
	}

	count, err := r.restaurants.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// FindByID は ID から単一店舗を取得する。存在しない場合は nil を返す。
func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
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

	restaurant := mapRestaurantDocument(doc, categoryNames)
	return &restaurant, nil
}

// FindLatest は作成日時の新しい順に limit 件の店舗を返す。
func (r *RestaurantRepository) FindLatest(ctx context.Context, limit int) ([]domain.Restaurant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return r.findRestaurants(ctx, bson.M{}, opts)
}

// FindAll は全店舗を作成日時の新しい順で返す。ランキング集計用。
func (r *RestaurantRepository) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return r.findRestaurants(ctx, bson.M{}, opts)
}

// IncrementViewCount は閲覧カウンタを 1 加算し、加算後の値を返す。
func (r *RestaurantRepository) IncrementViewCount(ctx context.Context, id string) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return 0, application.ErrRestaurantNotFound
	}

	update := bson.M{"$inc": bson.M{"viewCounts": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated RestaurantDocument
	if err := r.restaurants.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, application.ErrRestaurantNotFound
		}
		return 0, err
	}
	return updated.ViewCount, nil
}

func (r *RestaurantRepository) findRestaurants(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Restaurant, error) {
	cursor, err := r.restaurants.Find(ctx, filter, opts)
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

	restaurants := make([]domain.Restaurant, 0, len(docs))
	for _, doc := range docs {
		restaurants = append(restaurants, mapRestaurantDocument(doc, categoryNames))
	}
	return restaurants, nil
}

// loadCategoryNames はカテゴリ名を一括取得してマップへ変換する。
func (r *RestaurantRepository) loadCategoryNames(ctx context.Context) (map[primitive.ObjectID]string, error) {
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

// restaurantFilter はフィルタを Mongo クエリへ変換する。不正なカテゴリ ID は
// 空結果を意味する nil を返す。
func restaurantFilter(filter application.RestaurantFilter) (bson.M, error) {
	mongoFilter := bson.M{}
	if filter.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(filter.CategoryID))
		if err != nil {
			return nil, nil
		}
		mongoFilter["categoryId"] = categoryID
	}
	return mongoFilter, nil
}

func mapRestaurantDocument(doc RestaurantDocument, categoryNames map[primitive.ObjectID]string) domain.Restaurant {
	return domain.Restaurant{
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
