package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

func (h *Handler) userListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		users, err := h.users.List(ctx)
		if err != nil {
			h.respondServiceError(w, err, "admin user list fetch failed", "ユーザー一覧の取得に失敗しました")
			return
		}

		items := make([]userResponse, 0, len(users))
		for _, user := range users {
			items = append(items, buildUserResponse(user))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"users": items})
	}
}

func (h *Handler) userToggleAdminHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		user, err := h.users.ToggleAdmin(ctx, id)
		if err != nil {
			h.respondServiceError(w, err, "admin user toggle failed", "ユーザー権限の変更に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildUserResponse(*user))
	}
}
