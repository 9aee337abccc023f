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

	"github.com/sngm3741/gurume-club-services/api/internal/public/application"
	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// CommentRepository はレビューコメントの Mongo 実装。
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository は MongoDB コレクションを束縛した CommentRepository を生成する。
func NewCommentRepository(db *mongo.Database, collectionName string) *CommentRepository {
	return &CommentRepository{collection: db.Collection(collectionName)}
}

// FindByRestaurant は店舗に付いたコメントを新しい順で返す。
func (r *CommentRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]domain.Comment, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(restaurantID))
	if err != nil {
		return []domain.Comment{}, nil
	}
	return r.findComments(ctx, bson.M{"restaurantId": objectID}, 0)
}

// FindByUser はユーザーが投稿したコメントを新しい順で返す。
func (r *CommentRepository) FindByUser(ctx context.Context, userID string) ([]domain.Comment, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return []domain.Comment{}, nil
	}
	return r.findComments(ctx, bson.M{"userId": objectID}, 0)
}

// FindLatest は全体から新しい順に limit 件のコメントを返す。
func (r *CommentRepository) FindLatest(ctx context.Context, limit int) ([]domain.Comment, error) {
	return r.findComments(ctx, bson.M{}, int64(limit))
}

// FindByID は ID から単一コメントを取得する。存在しない場合は nil を返す。
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var doc CommentDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	comment := mapCommentDocument(doc)
	return &comment, nil
}

// Create はコメントを追加し、採番結果をドメインモデルへ反映する。
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	restaurantID, err := primitive.ObjectIDFromHex(strings.TrimSpace(comment.RestaurantID))
	if err != nil {
		return application.ErrRestaurantNotFound
	}
	userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(comment.UserID))
	if err != nil {
		return application.ErrUserNotFound
	}

	createdAt := comment.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := CommentDocument{
		ID:              primitive.NewObjectID(),
		Text:            comment.Text,
		RestaurantID:    restaurantID,
		RestaurantName:  comment.RestaurantName,
		RestaurantImage: comment.RestaurantImage,
		UserID:          userID,
		UserName:        comment.AuthorName,
		UserImage:       comment.AuthorImage,
		CreatedAt:       createdAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	comment.ID = doc.ID.Hex()
	comment.CreatedAt = doc.CreatedAt
	return nil
}

// Delete はコメントを削除する。対象が無い場合はコメント不在エラーを返す。
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrCommentNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) findComments(ctx context.Context, filter bson.M, limit int64) ([]domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]domain.Comment, 0)
	for cursor.Next(ctx) {
		var doc CommentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		comments = append(comments, mapCommentDocument(doc))
	}
	return comments, cursor.Err()
}

func mapCommentDocument(doc CommentDocument) domain.Comment {
	return domain.Comment{
		ID:              doc.ID.Hex(),
		Text:            doc.Text,
		RestaurantID:    doc.RestaurantID.Hex(),
		RestaurantName:  doc.RestaurantName,
		RestaurantImage: doc.RestaurantImage,
		UserID:          doc.UserID.Hex(),
		AuthorName:      doc.UserName,
		AuthorImage:     doc.UserImage,
		CreatedAt:       doc.CreatedAt,
	}
}
