package admin

import (
	"errors"
	"net/http"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
)

// serviceErrorStatus は管理サービスのエラーを HTTP ステータスと利用者向け
// メッセージへ変換する。未知のエラーは 500 として扱う。
func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, adminapp.ErrRestaurantNotFound):
		return http.StatusNotFound, "レストランが見つかりません"
	case errors.Is(err, adminapp.ErrCategoryNotFound):
		return http.StatusNotFound, "カテゴリが見つかりません"
	case errors.Is(err, adminapp.ErrUserNotFound):
		return http.StatusNotFound, "ユーザーが見つかりません"
	case errors.Is(err, adminapp.ErrNameRequired):
		return http.StatusBadRequest, "名前を入力してください"
	case errors.Is(err, adminapp.ErrCategoryRequired):
		return http.StatusBadRequest, "カテゴリを選択してください"
	case errors.Is(err, adminapp.ErrRootAdminImmutable):
		return http.StatusForbidden, "root 管理者の権限は変更できません"
	default:
		return http.StatusInternalServerError, ""
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error, logContext, fallbackMessage string) {
	status, message := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Printf("%s: %v", logContext, err)
		message = fallbackMessage
	}
	common.WriteJSON(h.logger, w, status, map[string]string{"error": message})
}
