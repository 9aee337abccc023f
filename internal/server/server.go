package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	"github.com/sngm3741/gurume-club-services/api/internal/config"
	"github.com/sngm3741/gurume-club-services/api/internal/infrastructure/media"
	mongodoc "github.com/sngm3741/gurume-club-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
// DDD の Interface 層に相当し、アプリケーションサービスをルータへ接続する責務を担う。
type Server struct {
	logger           *log.Logger
	client           *mongo.Client
	database         *mongo.Database
	location         *time.Location
	jwtSecret        []byte
	jwtIssuer        string
	jwtAudience      string
	tokenTTL         time.Duration
	uploadDir        string
	uploader         media.Uploader
	userRepo         *mongodoc.UserRepository
	restaurantQuery  publicapp.RestaurantQueryService
	commentCommands  publicapp.CommentCommandService
	relationCommands publicapp.RelationCommandService
	userService      publicapp.UserService
	adminRestaurants adminapp.RestaurantService
	adminCategories  adminapp.CategoryService
	adminUsers       adminapp.UserService
	cfg              config.Config
	addr             string
	allowedOrigins   []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run はHTTPサーバーを起動し、Public/Adminのルーティングやミドルウェアを組み立てる。
// インフラ初期化に限定し、ドメインロジックをここに書かないことで層の責務を守る。
func (s *Server) Run() error {
	if err := s.ensureIndexes(context.Background()); err != nil {
		return fmt.Errorf("インデックスの準備に失敗: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	fileServer := http.StripPrefix("/"+strings.Trim(s.uploadDir, "/")+"/", http.FileServer(http.Dir(s.uploadDir)))
	router.Get("/"+strings.Trim(s.uploadDir, "/")+"/*", fileServer.ServeHTTP)

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:           s.logger,
		RestaurantQuery:  s.restaurantQuery,
		CommentCommands:  s.commentCommands,
		RelationCommands: s.relationCommands,
		Users:            s.userService,
		Uploader:         s.uploader,
		JWTSecret:        s.jwtSecret,
		JWTIssuer:        s.jwtIssuer,
		JWTAudience:      s.jwtAudience,
		TokenTTL:         s.tokenTTL,
	})
	publicHandler.Register(router, s.authMiddleware, s.optionalAuthMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:      s.logger,
		Restaurants: s.adminRestaurants,
		Categories:  s.adminCategories,
		Users:       s.adminUsers,
		Uploader:    s.uploader,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.adminMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
// Public/Admin 双方のルートで利用するため Server に集約している。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization ヘッダーがありません"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Bearer トークンを指定してください"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "アクセストークンが空です"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		ctx := commonhttp.ContextWithUser(r.Context(), claimsToUser(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuthMiddleware はトークンがあれば検証してコンテキストへ詰め、
// 無ければ匿名のままリクエストを通す。一覧系の isFavorited/isLiked 判定用。
func (s *Server) optionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := commonhttp.ContextWithUser(r.Context(), claimsToUser(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminMiddleware は DB 上の isAdmin フラグを確認する。トークン発行後に
// 権限を剥奪されたユーザーを締め出すため、クレームだけでは信用しない。
func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := commonhttp.UserFromContext(r.Context())
		if !ok {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "認証されていません"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		user, err := s.userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			s.logger.Printf("管理者チェックに失敗: %v", err)
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "権限の確認に失敗しました"})
			return
		}
		if user == nil || !user.IsAdmin {
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "管理者権限が必要です"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// parseAuthToken は署名検証と Issuer/Audience の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.jwtSecret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	if s.jwtIssuer != "" && claims.Issuer != s.jwtIssuer {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	return claims, nil
}

// contains は Audience 等の検証で利用する単純な包含チェック。
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

func claimsToUser(claims *authClaims) authenticatedUser {
	return authenticatedUser{
		ID:      claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}
}

// ensureIndexes は一意性をインデックスで保証するための起動時フック。
// 事前チェックではなくインデックス違反で重複を検出する前提のため、
// ここで張れない場合はサーバーを起動しない。
func (s *Server) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	users := s.database.Collection(s.cfg.UserCollection)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	pair := bson.D{{Key: "userId", Value: 1}, {Key: "restaurantId", Value: 1}}
	for _, name := range []string{s.cfg.FavoriteCollection, s.cfg.LikeCollection} {
		if _, err := s.database.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    pair,
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return err
		}
	}

	follows := s.database.Collection(s.cfg.FollowCollection)
	if _, err := follows.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "followerId", Value: 1}, {Key: "followingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return nil
}

// writeJSON は JSON レスポンスの共通書き込み処理。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// 依存解決の起点となるファクトリとして機能する。
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
		cfg.ServerLog.Printf("タイムゾーン %s の読み込みに失敗: %v, JST を使用します", cfg.Timezone, err)
	}

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		location:       loc,
		jwtSecret:      append([]byte(nil), cfg.JWTSecret...),
		jwtIssuer:      cfg.JWTIssuer,
		jwtAudience:    cfg.JWTAudience,
		tokenTTL:       cfg.TokenTTL,
		uploadDir:      cfg.UploadDir,
		uploader:       media.NewLocalUploader(cfg.UploadDir, cfg.MediaBaseURL),
		cfg:            cfg,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	restaurantRepo := mongodoc.NewRestaurantRepository(srv.database, cfg.RestaurantCollection, cfg.CategoryCollection)
	categoryRepo := mongodoc.NewCategoryRepository(srv.database, cfg.CategoryCollection)
	commentRepo := mongodoc.NewCommentRepository(srv.database, cfg.CommentCollection)
	userRepo := mongodoc.NewUserRepository(srv.database, cfg.UserCollection)
	favoriteRepo := mongodoc.NewRelationRepository(srv.database, cfg.FavoriteCollection)
	likeRepo := mongodoc.NewRelationRepository(srv.database, cfg.LikeCollection)
	followRepo := mongodoc.NewFollowRepository(srv.database, cfg.FollowCollection)

	srv.userRepo = userRepo

	memberships := publicapp.NewMembershipQueryService(favoriteRepo, likeRepo, followRepo)
	srv.restaurantQuery = publicapp.NewRestaurantReadService(restaurantRepo, categoryRepo, commentRepo, favoriteRepo, likeRepo, memberships)
	srv.commentCommands = publicapp.NewCommentWriteService(commentRepo, restaurantRepo, userRepo)
	srv.relationCommands = publicapp.NewRelationWriteService(favoriteRepo, likeRepo, followRepo, restaurantRepo, userRepo)
	srv.userService = publicapp.NewAccountService(userRepo, commentRepo, followRepo, memberships)

	adminRestaurantRepo := mongodoc.NewAdminRestaurantRepository(srv.database, cfg.RestaurantCollection, cfg.CategoryCollection)
	adminCategoryRepo := mongodoc.NewAdminCategoryRepository(srv.database, cfg.CategoryCollection)
	adminUserRepo := mongodoc.NewAdminUserRepository(srv.database, cfg.UserCollection)
	srv.adminRestaurants = adminapp.NewRestaurantService(adminRestaurantRepo, adminCategoryRepo)
	srv.adminCategories = adminapp.NewCategoryService(adminCategoryRepo)
	srv.adminUsers = adminapp.NewUserService(adminUserRepo)

	return srv
}
