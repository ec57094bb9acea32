package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"timecal/internal/auth"
)

// AuthHandler exposes login and registration for the HTTP API.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts the routes that need an authenticated user.
func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Put("/api/me/language", h.SetLanguage)
	r.With(auth.RequireAdmin).Get("/api/users", h.ListUsers)
}

type credentials struct {
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	user, err := h.svc.Register(creds.Username, creds.FullName, creds.Password)
	if err != nil {
		log.Printf("register %s: %v", creds.Username, err)
		writeError(w, http.StatusConflict, "could not register user")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	token, user, err := h.svc.Login(creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		log.Printf("login %s: %v", creds.Username, err)
		writeError(w, http.StatusInternalServerError, "could not log in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// SetLanguage stores the caller's language preference.
func (h *AuthHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var payload struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Language == "" {
		writeError(w, http.StatusBadRequest, "malformed payload")
		return
	}
	if err := h.svc.SetLanguage(user.ID, payload.Language); err != nil {
		log.Printf("set language for user %d: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "could not save language")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users()
	if err != nil {
		log.Printf("list users: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}
