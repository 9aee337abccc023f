package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

func (h *Handler) categoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categories, err := h.categories.List(ctx)
		if err != nil {
			h.respondServiceError(w, err, "admin category list fetch failed", "カテゴリ一覧の取得に失敗しました")
			return
		}

		items := make([]categoryResponse, 0, len(categories))
		for _, category := range categories {
			items = append(items, buildCategoryResponse(category))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"categories": items})
	}
}

func (h *Handler) categoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		req, ok := h.decodeCategoryRequest(w, r)
		if !ok {
			return
		}

		category, err := h.categories.Create(ctx, adminapp.UpsertCategoryCommand{Name: req.Name})
		if err != nil {
			h.respondServiceError(w, err, "admin category create failed", "カテゴリの登録に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildCategoryResponse(*category))
	}
}

func (h *Handler) categoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		req, ok := h.decodeCategoryRequest(w, r)
		if !ok {
			return
		}

		category, err := h.categories.Update(ctx, id, adminapp.UpsertCategoryCommand{Name: req.Name})
		if err != nil {
			h.respondServiceError(w, err, "admin category update failed", "カテゴリの更新に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildCategoryResponse(*category))
	}
}

func (h *Handler) categoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.categories.Delete(ctx, id); err != nil {
			h.respondServiceError(w, err, "admin category delete failed", "カテゴリの削除に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handler) decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (categoryUpsertRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
	var req categoryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
		return categoryUpsertRequest{}, false
	}
	return req, true
}
