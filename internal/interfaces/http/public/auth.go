package public

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
	publicdomain "github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

// authClaims は発行するトークンのクレーム構造。Subject にユーザー ID を置く。
type authClaims struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// issueToken は HS256 署名のアクセストークンを発行する。
func (h *Handler) issueToken(user publicdomain.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    h.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
	}
	if h.jwtAudience != "" {
		claims.Audience = jwt.ClaimStrings{h.jwtAudience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

func (h *Handler) signUpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		var req signUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		user, err := h.users.SignUp(ctx, publicapp.SignUpCommand{
			Name:          req.Name,
			Email:         req.Email,
			Password:      req.Password,
			PasswordCheck: req.PasswordCheck,
		})
		if err != nil {
			h.respondServiceError(w, err, "signup failed", "アカウント登録に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildUserResponse(*user))
	}
}

func (h *Handler) signInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		user, err := h.users.VerifyCredentials(ctx, req.Email, req.Password)
		if err != nil {
			h.respondServiceError(w, err, "signin failed", "ログインに失敗しました")
			return
		}

		token, err := h.issueToken(*user)
		if err != nil {
			h.logger.Printf("token issue failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "ログインに失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, authResponse{
			Token: token,
			User:  buildUserResponse(*user),
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "認証されていません"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"user": user})
	}
}
