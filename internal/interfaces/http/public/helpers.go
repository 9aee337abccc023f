package public

import (
	"errors"
	"net/http"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
)

// serviceErrorStatus はアプリケーション層のエラーを HTTP ステータスと
// 利用者向けメッセージへ変換する。未知のエラーは 500 として扱う。
func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, publicapp.ErrRestaurantNotFound):
		return http.StatusNotFound, "レストランが見つかりません"
	case errors.Is(err, publicapp.ErrUserNotFound):
		return http.StatusNotFound, "ユーザーが見つかりません"
	case errors.Is(err, publicapp.ErrCommentNotFound):
		return http.StatusNotFound, "コメントが見つかりません"
	case errors.Is(err, publicapp.ErrCommentTextRequired):
		return http.StatusBadRequest, "コメントを入力してください"
	case errors.Is(err, publicapp.ErrUserNameRequired):
		return http.StatusBadRequest, "名前を入力してください"
	case errors.Is(err, publicapp.ErrEmailRequired):
		return http.StatusBadRequest, "メールアドレスを入力してください"
	case errors.Is(err, publicapp.ErrPasswordRequired):
		return http.StatusBadRequest, "パスワードを入力してください"
	case errors.Is(err, publicapp.ErrPasswordMismatch):
		return http.StatusBadRequest, "パスワードが一致しません"
	case errors.Is(err, publicapp.ErrSelfFollow):
		return http.StatusBadRequest, "自分自身をフォローすることはできません"
	case errors.Is(err, publicapp.ErrEmailTaken):
		return http.StatusConflict, "このメールアドレスは既に登録されています"
	case errors.Is(err, publicapp.ErrAlreadyFavorited):
		return http.StatusConflict, "既にお気に入りに登録されています"
	case errors.Is(err, publicapp.ErrFavoriteNotFound):
		return http.StatusNotFound, "お気に入りが見つかりません"
	case errors.Is(err, publicapp.ErrAlreadyLiked):
		return http.StatusConflict, "既に Like 済みです"
	case errors.Is(err, publicapp.ErrLikeNotFound):
		return http.StatusNotFound, "Like が見つかりません"
	case errors.Is(err, publicapp.ErrAlreadyFollowing):
		return http.StatusConflict, "既にフォローしています"
	case errors.Is(err, publicapp.ErrFollowNotFound):
		return http.StatusNotFound, "フォローが見つかりません"
	case errors.Is(err, publicapp.ErrInvalidCredentials):
		return http.StatusUnauthorized, "メールアドレスまたはパスワードが正しくありません"
	case errors.Is(err, publicapp.ErrForbidden):
		return http.StatusForbidden, "この操作を行う権限がありません"
	default:
		return http.StatusInternalServerError, ""
	}
}

// respondServiceError は変換済みエラーを書き出す。500 系はログに残し、
// 呼び出し元指定のメッセージを返す。
func (h *Handler) respondServiceError(w http.ResponseWriter, err error, logContext, fallbackMessage string) {
	status, message := serviceErrorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Printf("%s: %v", logContext, err)
		message = fallbackMessage
	}
	common.WriteJSON(h.logger, w, status, map[string]string{"error": message})
}
