package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nextgenbank/voicebank/internal/bank"
	"github.com/nextgenbank/voicebank/internal/history"
)

var errSpeechUnavailable = errors.New("speech transcription unavailable")

type AuthHandler struct {
	auth    bank.AuthService
	records history.Service
	log     *zap.Logger
}

func NewAuthHandler(auth bank.AuthService, records history.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, records: records, log: log}
}

func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid json"})
		return
	}

	profile, token, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
		return
	}

	// fresh session, fresh transcript
	if err := h.records.ClearForUser(r.Context(), profile.UserID); err != nil {
		h.log.Warn("clear transcript on login", zap.String("user", profile.UserID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    profile,
		"token":   token,
	})
}

type UserHandler struct {
	users bank.UserRepo
}

func NewUserHandler(users bank.UserRepo) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "lookup failed"})
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": profile})
}

type TransactionsHandler struct {
	transactions bank.TransactionRepo
}

func NewTransactionsHandler(transactions bank.TransactionRepo) *TransactionsHandler {
	return &TransactionsHandler{transactions: transactions}
}

func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	list, err := h.transactions.ListByUser(r.Context(), userID, 10)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "lookup failed"})
		return
	}
	if len(list) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "No transactions found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "transactions": list})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
