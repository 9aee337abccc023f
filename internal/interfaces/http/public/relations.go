package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

// relationHandler は favorite/like/follow 系エンドポイントの共通骨格。
// URL パラメータを取り出してコマンドを実行し、成功時は status を返す。
func (h *Handler) relationHandler(param, logContext, fallbackMessage, status string, run func(ctx context.Context, actorID, targetID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		actor, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "ログインが必要です"})
			return
		}

		targetID := strings.TrimSpace(chi.URLParam(r, param))
		if targetID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "IDが指定されていません"})
			return
		}

		if err := run(ctx, actor.ID, targetID); err != nil {
			h.respondServiceError(w, err, logContext, fallbackMessage)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": status})
	}
}

func (h *Handler) favoriteAddHandler() http.HandlerFunc {
	return h.relationHandler("restaurantId", "favorite add failed", "お気に入りの登録に失敗しました", "favorited", h.relationCommands.AddFavorite)
}

func (h *Handler) favoriteRemoveHandler() http.HandlerFunc {
	return h.relationHandler("restaurantId", "favorite remove failed", "お気に入りの解除に失敗しました", "unfavorited", h.relationCommands.RemoveFavorite)
}

func (h *Handler) likeAddHandler() http.HandlerFunc {
	return h.relationHandler("restaurantId", "like add failed", "Like の登録に失敗しました", "liked", h.relationCommands.AddLike)
}

func (h *Handler) likeRemoveHandler() http.HandlerFunc {
	return h.relationHandler("restaurantId", "like remove failed", "Like の解除に失敗しました", "unliked", h.relationCommands.RemoveLike)
}

func (h *Handler) followAddHandler() http.HandlerFunc {
	return h.relationHandler("userId", "follow add failed", "フォローに失敗しました", "followed", h.relationCommands.Follow)
}

func (h *Handler) followRemoveHandler() http.HandlerFunc {
	return h.relationHandler("userId", "follow remove failed", "フォロー解除に失敗しました", "unfollowed", h.relationCommands.Unfollow)
}
