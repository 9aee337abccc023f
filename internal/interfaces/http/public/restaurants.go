package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
)

func (h *Handler) restaurantListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		categoryID := strings.TrimSpace(query.Get("categoryId"))
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), publicapp.DefaultPageLimit)

		actor, _ := common.UserFromContext(r.Context())

		filter := publicapp.RestaurantFilter{CategoryID: categoryID}
		paging := publicapp.Paging{Page: page, Limit: limit}

		result, err := h.restaurantQuery.List(ctx, filter, paging, actor.ID)
		if err != nil {
			h.respondServiceError(w, err, "restaurant list fetch failed", "レストラン一覧の取得に失敗しました")
			return
		}

		restaurants := make([]restaurantSummaryResponse, 0, len(result.Items))
		for _, item := range result.Items {
			restaurants = append(restaurants, buildRestaurantSummary(item.Restaurant, item.IsFavorite, item.IsLiked))
		}

		categories := make([]categoryResponse, 0, len(result.Categories))
		for _, category := range result.Categories {
			categories = append(categories, buildCategoryResponse(category))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, restaurantListResponse{
			Restaurants: restaurants,
			Categories:  categories,
			CategoryID:  categoryID,
			Pagination:  common.BuildPagination(result.Total, paging.PerPage(), paging.CurrentPage()),
			Total:       result.Total,
		})
	}
}

func (h *Handler) restaurantFeedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		feeds, err := h.restaurantQuery.Feeds(ctx)
		if err != nil {
			h.respondServiceError(w, err, "feeds fetch failed", "最新情報の取得に失敗しました")
			return
		}

		restaurants := make([]restaurantSummaryResponse, 0, len(feeds.Restaurants))
		for _, restaurant := range feeds.Restaurants {
			restaurants = append(restaurants, buildRestaurantSummary(restaurant, false, false))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, feedsResponse{
			Restaurants: restaurants,
			Comments:    buildCommentResponses(feeds.Comments),
		})
	}
}

func (h *Handler) restaurantTopHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		actor, _ := common.UserFromContext(r.Context())

		top, err := h.restaurantQuery.Top(ctx, actor.ID)
		if err != nil {
			h.respondServiceError(w, err, "top restaurants fetch failed", "人気レストランの取得に失敗しました")
			return
		}

		items := make([]topRestaurantResponse, 0, len(top))
		for _, entry := range top {
			items = append(items, topRestaurantResponse{
				restaurantSummaryResponse: buildRestaurantSummary(entry.Restaurant, entry.IsFavorite, false),
				FavoritedCount:            entry.FavoritedCount,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"restaurants": items})
	}
}

func (h *Handler) restaurantDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レストランIDが指定されていません"})
			return
		}

		actor, _ := common.UserFromContext(r.Context())

		detail, err := h.restaurantQuery.Detail(ctx, id, actor.ID)
		if err != nil {
			h.respondServiceError(w, err, "restaurant detail fetch failed", "レストラン情報の取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildRestaurantDetail(*detail))
	}
}

func (h *Handler) restaurantDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "レストランIDが指定されていません"})
			return
		}

		dashboard, err := h.restaurantQuery.Dashboard(ctx, id)
		if err != nil {
			h.respondServiceError(w, err, "restaurant dashboard fetch failed", "ダッシュボードの取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, dashboardResponse{
			ID:           dashboard.Restaurant.ID,
			Name:         dashboard.Restaurant.Name,
			CategoryName: dashboard.Restaurant.CategoryName,
			ViewCounts:   dashboard.Restaurant.ViewCount,
			CommentCount: dashboard.CommentCount,
			CreatedAt:    formatTime(dashboard.Restaurant.CreatedAt),
		})
	}
}
