package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/sngm3741/gurume-club-services/api/internal/config"
)

// seedOptions はシードツールの起動オプション。
type seedOptions struct {
	drop            bool
	perCategory     int
	commentsPerUser int
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Image     string             `bson:"image,omitempty"`
	IsAdmin   bool               `bson:"isAdmin"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type categoryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type restaurantDocument struct {
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

type commentDocument struct {
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

var categoryNames = []string{"和食", "イタリアン", "中華", "フレンチ", "カフェ", "ラーメン"}

func main() {
	_ = godotenv.Load()

	opts := seedOptions{}
	flag.BoolVar(&opts.drop, "drop", false, "既存コレクションを削除してから投入する")
	flag.IntVar(&opts.perCategory, "restaurants", 3, "カテゴリごとのレストラン数")
	flag.IntVar(&opts.commentsPerUser, "comments", 2, "ユーザーごとのコメント数")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.MongoDatabase)

	if opts.drop {
		for _, name := range []string{
			cfg.UserCollection, cfg.RestaurantCollection, cfg.CategoryCollection,
			cfg.CommentCollection, cfg.FavoriteCollection, cfg.LikeCollection, cfg.FollowCollection,
		} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("コレクション %s の削除に失敗: %v", name, err)
			}
		}
	}

	count, err := db.Collection(cfg.UserCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("既存データの確認に失敗: %v", err)
	}
	if count > 0 {
		log.Println("既にシード済みのためスキップします（再投入するには -drop を指定）")
		return
	}

	users, err := seedUsers(ctx, db.Collection(cfg.UserCollection))
	if err != nil {
		log.Fatalf("ユーザーの投入に失敗: %v", err)
	}

	categories, err := seedCategories(ctx, db.Collection(cfg.CategoryCollection))
	if err != nil {
		log.Fatalf("カテゴリの投入に失敗: %v", err)
	}

	restaurants, err := seedRestaurants(ctx, db.Collection(cfg.RestaurantCollection), categories, opts.perCategory)
	if err != nil {
		log.Fatalf("レストランの投入に失敗: %v", err)
	}

	if err := seedComments(ctx, db.Collection(cfg.CommentCollection), users, restaurants, opts.commentsPerUser); err != nil {
		log.Fatalf("コメントの投入に失敗: %v", err)
	}

	log.Printf("シード完了: users=%d categories=%d restaurants=%d", len(users), len(categories), len(restaurants))
}

// seedUsers は root 管理者と一般ユーザーを投入する。パスワードは
// SEED_PASSWORD で上書きできる。
func seedUsers(ctx context.Context, collection *mongo.Collection) ([]userDocument, error) {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "12345678"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	users := []userDocument{
		{ID: primitive.NewObjectID(), Name: "root", Email: "root@example.com", Password: string(hash), IsAdmin: true, CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), Name: "user1", Email: "user1@example.com", Password: string(hash), CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), Name: "user2", Email: "user2@example.com", Password: string(hash), CreatedAt: now, UpdatedAt: now},
	}

	docs := make([]any, 0, len(users))
	for _, user := range users {
		docs = append(docs, user)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return users, nil
}

func seedCategories(ctx context.Context, collection *mongo.Collection) ([]categoryDocument, error) {
	now := time.Now().UTC()
	categories := make([]categoryDocument, 0, len(categoryNames))
	docs := make([]any, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := categoryDocument{ID: primitive.NewObjectID(), Name: name, CreatedAt: now, UpdatedAt: now}
		categories = append(categories, category)
		docs = append(docs, category)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return categories, nil
}

func seedRestaurants(ctx context.Context, collection *mongo.Collection, categories []categoryDocument, perCategory int) ([]restaurantDocument, error) {
	if perCategory < 1 {
		perCategory = 1
	}

	now := time.Now().UTC()
	restaurants := make([]restaurantDocument, 0, len(categories)*perCategory)
	docs := make([]any, 0, len(categories)*perCategory)
	seq := 1
	for _, category := range categories {
		for i := 0; i < perCategory; i++ {
			restaurant := restaurantDocument{
				ID:           primitive.NewObjectID(),
				Name:         fmt.Sprintf("%s %d号店", category.Name, i+1),
				Tel:          fmt.Sprintf("03-0000-%04d", seq),
				Address:      fmt.Sprintf("東京都渋谷区 %d-%d", seq, i+1),
				OpeningHours: "11:00〜22:00",
				Description:  fmt.Sprintf("%s の人気店です。落ち着いた雰囲気でゆっくり食事を楽しめます。ランチタイムはお得なセットメニューもご用意しています。", category.Name),
				Image:        fmt.Sprintf("https://loremflickr.com/320/240/restaurant,food?lock=%d", seq),
				CategoryID:   category.ID,
				CreatedAt:    now.Add(time.Duration(-seq) * time.Minute),
				UpdatedAt:    now,
			}
			restaurants = append(restaurants, restaurant)
			docs = append(docs, restaurant)
			seq++
		}
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func seedComments(ctx context.Context, collection *mongo.Collection, users []userDocument, restaurants []restaurantDocument, perUser int) error {
	if perUser < 1 || len(restaurants) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(users)*perUser)
	seq := 0
	for _, user := range users {
		for i := 0; i < perUser; i++ {
			restaurant := restaurants[seq%len(restaurants)]
			docs = append(docs, commentDocument{
				ID:              primitive.NewObjectID(),
				Text:            fmt.Sprintf("%s に行ってきました。料理もサービスも大満足です。", restaurant.Name),
				RestaurantID:    restaurant.ID,
				RestaurantName:  restaurant.Name,
				RestaurantImage: restaurant.Image,
				UserID:          user.ID,
				UserName:        user.Name,
				CreatedAt:       now.Add(time.Duration(-seq) * time.Minute),
			})
			seq++
		}
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}
