package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

func (h *Handler) restaurantListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		restaurants, err := h.restaurants.List(ctx)
		if err != nil {
			h.respondServiceError(w, err, "admin restaurant list fetch failed", "レストラン一覧の取得に失敗しました")
			return
		}

		items := make([]restaurantResponse, 0, len(restaurants))
		for _, restaurant := range restaurants {
			items = append(items, buildRestaurantResponse(restaurant))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"restaurants": items})
	}
}

func (h *Handler) restaurantDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		restaurant, err := h.restaurants.Detail(ctx, id)
		if err != nil {
			h.respondServiceError(w, err, "admin restaurant detail fetch failed", "レストラン情報の取得に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildRestaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cmd, ok := h.decodeRestaurantForm(w, r)
		if !ok {
			return
		}

		restaurant, err := h.restaurants.Create(ctx, cmd)
		if err != nil {
			h.respondServiceError(w, err, "admin restaurant create failed", "レストランの登録に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildRestaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		cmd, ok := h.decodeRestaurantForm(w, r)
		if !ok {
			return
		}

		restaurant, err := h.restaurants.Update(ctx, id, cmd)
		if err != nil {
			h.respondServiceError(w, err, "admin restaurant update failed", "レストランの更新に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildRestaurantResponse(*restaurant))
	}
}

func (h *Handler) restaurantDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.restaurants.Delete(ctx, id); err != nil {
			h.respondServiceError(w, err, "admin restaurant delete failed", "レストランの削除に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// decodeRestaurantForm は multipart フォームから登録/更新コマンドを組み立てる。
// image ファイルは任意で、添付があれば保存して URL をコマンドへ載せる。
func (h *Handler) decodeRestaurantForm(w http.ResponseWriter, r *http.Request) (adminapp.UpsertRestaurantCommand, bool) {
	if err := r.ParseMultipartForm(common.MaxUploadMemory); err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
		return adminapp.UpsertRestaurantCommand{}, false
	}

	cmd := adminapp.UpsertRestaurantCommand{
		Name:         r.FormValue("name"),
		Tel:          r.FormValue("tel"),
		Address:      r.FormValue("address"),
		OpeningHours: r.FormValue("openingHours"),
		Description:  r.FormValue("description"),
		CategoryID:   r.FormValue("categoryId"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		url, err := h.uploader.Save(file, header)
		if err != nil {
			h.logger.Printf("restaurant image upload failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "画像の保存に失敗しました"})
			return adminapp.UpsertRestaurantCommand{}, false
		}
		cmd.Image = url
	case errors.Is(err, http.ErrMissingFile):
		// 画像なしを許可する
	default:
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "画像の読み取りに失敗しました"})
		return adminapp.UpsertRestaurantCommand{}, false
	}

	return cmd, true
}
