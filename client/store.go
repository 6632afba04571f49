// Package client provides an observable auth state store for Go frontends.
// It mirrors the server's auth state: each operation performs one HTTP call
// against the auth API and republishes loading/success/error state to
// subscribers. Overlapping calls are not coordinated; last write wins.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"github.com/codeShowREX/major-project/internal/domain"
)

// State is the snapshot published to subscribers after every change.
type State struct {
	User            *domain.User
	IsAuthenticated bool
	IsLoading       bool
	IsCheckingAuth  bool
	Error           string
	Message         string
}

// Store wraps the auth HTTP API behind an observable state container.
// The underlying http.Client carries a cookie jar so the session cookie
// issued on signup/login rides along on subsequent requests.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    []func(State)
	http    *http.Client
	baseURL string
}

// New creates a Store targeting baseURL (e.g. "http://localhost:5000").
func New(baseURL string) (*Store, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Store{
		state:   State{IsCheckingAuth: true},
		http:    &http.Client{Jar: jar},
		baseURL: baseURL + "/api/auth",
	}, nil
}

// Subscribe registers fn to be called with every state change. The current
// state is delivered immediately.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	st := s.state
	s.mu.Unlock()
	fn(st)
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Signup(ctx context.Context, email, password, name string) (*domain.User, error) {
	s.begin()
	resp, err := s.post(ctx, "/signup", map[string]string{"email": email, "password": password, "name": name}, "Error signing up")
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.update(func(st *State) {
		st.User = resp.User
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return resp.User, nil
}

func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.begin()
	resp, err := s.post(ctx, "/login", map[string]string{"email": email, "password": password}, "Error logging in")
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.update(func(st *State) {
		st.User = resp.User
		st.IsAuthenticated = true
		st.Error = ""
		st.IsLoading = false
	})
	return resp.User, nil
}

func (s *Store) Logout(ctx context.Context) error {
	s.begin()
	if _, err := s.post(ctx, "/logout", nil, "Error logging out"); err != nil {
		s.fail(err)
		return err
	}
	s.update(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.Error = ""
		st.IsLoading = false
	})
	return nil
}

func (s *Store) VerifyEmail(ctx context.Context, code string) (*domain.User, error) {
	s.begin()
	resp, err := s.post(ctx, "/verify-email", map[string]string{"code": code}, "Error verifying email")
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.update(func(st *State) {
		st.User = resp.User
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return resp.User, nil
}

func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	s.begin()
	resp, err := s.post(ctx, "/forgot-password", map[string]string{"email": email}, "Error sending reset password email")
	if err != nil {
		s.fail(err)
		return err
	}
	s.update(func(st *State) {
		st.Message = resp.Message
		st.IsLoading = false
	})
	return nil
}

func (s *Store) ResetPassword(ctx context.Context, token, password string) error {
	s.begin()
	resp, err := s.post(ctx, "/reset-password/"+token, map[string]string{"password": password}, "Error resetting password")
	if err != nil {
		s.fail(err)
		return err
	}
	s.update(func(st *State) {
		st.Message = resp.Message
		st.IsLoading = false
	})
	return nil
}

// CheckAuth asks the server who the session cookie belongs to. Unlike the
// other operations it never records an error message: an invalid or absent
// session simply means "not authenticated".
func (s *Store) CheckAuth(ctx context.Context) (*domain.User, error) {
	s.update(func(st *State) { st.IsCheckingAuth = true })
	resp, err := s.get(ctx, "/check-auth")
	if err != nil {
		s.update(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsCheckingAuth = false
		})
		return nil, err
	}
	s.update(func(st *State) {
		st.User = resp.User
		st.IsAuthenticated = true
		st.IsCheckingAuth = false
	})
	return resp.User, nil
}

// --- internals ---

type apiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

func (s *Store) begin() {
	s.update(func(st *State) {
		st.IsLoading = true
		st.Error = ""
		st.Message = ""
	})
}

func (s *Store) fail(err error) {
	s.update(func(st *State) {
		st.Error = err.Error()
		st.IsLoading = false
	})
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	subs := s.subs
	s.mu.Unlock()
	for _, sub := range subs {
		sub(st)
	}
}

func (s *Store) post(ctx context.Context, path string, body interface{}, fallbackMsg string) (*apiResponse, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, fallbackMsg)
}

func (s *Store) get(ctx context.Context, path string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return s.do(req, "request failed")
}

func (s *Store) do(req *http.Request, fallbackMsg string) (*apiResponse, error) {
	httpResp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s", fallbackMsg)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%s", fallbackMsg)
	}
	if httpResp.StatusCode >= 400 || !resp.Success {
		// Prefer the server-provided message, fall back to a generic one.
		if resp.Message != "" {
			return nil, fmt.Errorf("%s", resp.Message)
		}
		return nil, fmt.Errorf("%s", fallbackMsg)
	}
	return &resp, nil
}
