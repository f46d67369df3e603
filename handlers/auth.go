package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ray-remotestate/bakepos/middlewares"
	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/userstore"
	"github.com/ray-remotestate/bakepos/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "all fields are required", http.StatusBadRequest)
		return
	}

	if len(req.Password) < 6 {
		http.Error(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	// Every self-registered account is staff; the admin is seeded.
	user, err := h.Users.Create(req.Name, req.Email, req.Password, models.RoleStaff)
	if err != nil {
		h.Log.WithError(err).Warn("failed to register user")
		writeError(w, err)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(user.ID, string(user.Role), h.Secret)
	if err != nil {
		h.Log.WithError(err).Error("failed to generate tokens")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	setRefreshCookie(w, refToken)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":          user,
		"access_token":  accToken,
		"refresh_token": refToken,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, userstore.ErrInvalidCredentials)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(user.ID, string(user.Role), h.Secret)
	if err != nil {
		h.Log.WithError(err).Error("failed to generate tokens")
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	setRefreshCookie(w, refToken)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":          user,
		"access_token":  accToken,
		"refresh_token": refToken,
	})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		http.Error(w, "refresh token missing", http.StatusUnauthorized)
		return
	}

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return h.Secret, nil
	})
	if err != nil || !token.Valid {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(claims.UserID, claims.Role, h.Secret)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	setRefreshCookie(w, refToken)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  accToken,
		"refresh_token": refToken,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "logged out"})
}

// Me returns the account behind the bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
	})
}
