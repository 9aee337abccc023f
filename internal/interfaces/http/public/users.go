package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

func (h *Handler) userTopHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		actor, _ := common.UserFromContext(r.Context())

		top, err := h.users.Top(ctx, actor.ID)
		if err != nil {
			h.respondServiceError(w, err, "top users fetch failed", "人気ユーザーの取得に失敗しました")
			return
		}

		items := make([]topUserResponse, 0, len(top))
		for _, entry := range top {
			items = append(items, topUserResponse{
				ID:            entry.User.ID,
				Name:          entry.User.Name,
				Image:         entry.User.Image,
				FollowerCount: entry.FollowerCount,
				IsFollowed:    entry.IsFollowed,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"users": items})
	}
}

func (h *Handler) userProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ユーザーIDが指定されていません"})
			return
		}

		profile, err := h.users.Profile(ctx, id)
		if err != nil {
			h.respondServiceError(w, err, "user profile fetch failed", "プロフィールの取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, userProfileResponse{
			User:         buildUserResponse(profile.User),
			Comments:     buildCommentResponses(profile.Comments),
			CommentCount: profile.CommentCount,
		})
	}
}

// userUpdateHandler はプロフィール更新。multipart/form-data で name と
// 任意の image ファイルを受け取る。ファイル未添付なら画像は据え置き。
func (h *Handler) userUpdateHandler() http.HandlerFunc {
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
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ユーザーIDが指定されていません"})
			return
		}

		if err := r.ParseMultipartForm(common.MaxUploadMemory); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		imageURL := ""
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			imageURL, err = h.uploader.Save(file, header)
			if err != nil {
				h.logger.Printf("avatar upload failed: %v", err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "画像の保存に失敗しました"})
				return
			}
		case errors.Is(err, http.ErrMissingFile):
			// 画像なしの更新を許可する
		default:
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "画像の読み取りに失敗しました"})
			return
		}

		user, err := h.users.Update(ctx, actor.ID, id, r.FormValue("name"), imageURL)
		if err != nil {
			h.respondServiceError(w, err, "user update failed", "プロフィールの更新に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildUserResponse(*user))
	}
}
