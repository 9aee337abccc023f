package public

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

func (h *Handler) commentCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		actor, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "ログインが必要です"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		var req commentCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		comment, err := h.commentCommands.Post(ctx, actor.ID, strings.TrimSpace(req.RestaurantID), req.Text)
		if err != nil {
			h.respondServiceError(w, err, "comment create failed", "コメントの投稿に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildCommentResponse(*comment))
	}
}

func (h *Handler) commentDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		actor, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "ログインが必要です"})
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "コメントIDが指定されていません"})
			return
		}

		if err := h.commentCommands.Delete(ctx, actor.ID, actor.IsAdmin, id); err != nil {
			h.respondServiceError(w, err, "comment delete failed", "コメントの削除に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
