package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeShowREX/major-project/internal/application/auth"
	"github.com/codeShowREX/major-project/internal/domain"
	"github.com/codeShowREX/major-project/internal/pkg/validate"
	"github.com/codeShowREX/major-project/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// sessionIssuer signs the identity token placed in the session cookie.
type sessionIssuer interface {
	Sign(userID string) (string, error)
	Expiry() time.Duration
}

// AuthHandler handles the signup/verify/login/logout/forgot/reset/check flow.
type AuthHandler struct {
	svc           auth.Service
	sessions      sessionIssuer
	secureCookies bool
}

func NewAuthHandler(svc auth.Service, sessions sessionIssuer, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, secureCookies: secureCookies}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	u, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	h.issueSession(w, u.UserID)
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: "User created successfully", User: u})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Code == "" {
		writeError(w, http.StatusBadRequest, "Verification code is required")
		return
	}
	u, err := h.svc.VerifyEmail(r.Context(), body.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Email verified successfully", User: u})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpError(w, err)
		return
	}
	h.issueSession(w, u.UserID)
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Logged in successfully", User: u})
}

// Logout clears the cookie unconditionally. There is no server-side
// revocation; a stolen token stays valid until its embedded expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w, h.secureCookies)
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := h.svc.ForgotPassword(r.Context(), body.Email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Password reset link sent to your email"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}
	if err := h.svc.ResetPassword(r.Context(), chi.URLParam(r, "token"), body.Password); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Password reset successful"})
}

func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized - no token provided")
		return
	}
	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, User: u})
}

// issueSession signs a token for the user and sets the session cookie.
// Signing only fails on a broken key setup; the signup/login itself already
// succeeded, so respond normally and let check-auth surface the problem.
func (h *AuthHandler) issueSession(w http.ResponseWriter, userID string) {
	token, err := h.sessions.Sign(userID)
	if err != nil {
		slog.Error("failed to sign session token", "user_id", userID, "err", err)
		return
	}
	setSessionCookie(w, token, h.sessions.Expiry(), h.secureCookies)
}
