package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	if err := InitSessionStore("0123456789abcdef0123456789abcdef"); err != nil {
		t.Fatalf("init session store: %v", err)
	}

	svc, err := NewService("admin", "default")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

// loggedInRequest performs a login and returns a fresh request carrying
// the resulting session cookies.
func loggedInRequest(t *testing.T, svc *Service) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := svc.Login(w, r, "admin", "default"); err != nil {
		t.Fatalf("login: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		next.AddCookie(cookie)
	}
	return next
}

func TestInitSessionStoreRejectsShortKey(t *testing.T) {
	if err := InitSessionStore("too-short"); err == nil {
		t.Fatal("expected an error for a short session key")
	}
}

func TestLoginChecksUsernameFirst(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	// Both values are wrong; the username mismatch must win.
	err := svc.Login(w, r, "intruder", "wrong")
	if !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	err := svc.Login(w, r, "admin", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestLoginFailureDoesNotAuthenticate(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	_ = svc.Login(w, r, "admin", "wrong")

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		next.AddCookie(cookie)
	}
	if svc.IsLoggedIn(next) {
		t.Fatal("failed login must not authenticate the session")
	}
}

func TestLoginSuccessAuthenticates(t *testing.T) {
	svc := newTestService(t)

	r := loggedInRequest(t, svc)
	if !svc.IsLoggedIn(r) {
		t.Fatal("expected an authenticated session after login")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestService(t)

	r := loggedInRequest(t, svc)

	w := httptest.NewRecorder()
	svc.Logout(w, r)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		next.AddCookie(cookie)
	}
	if svc.IsLoggedIn(next) {
		t.Fatal("expected logout to clear the session")
	}
}

func TestRequireLoginRejectsAnonymous(t *testing.T) {
	svc := newTestService(t)

	called := false
	handler := svc.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/delete/1", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Fatal("handler must not run for an unauthenticated request")
	}
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	svc := newTestService(t)

	called := false
	handler := svc.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, loggedInRequest(t, svc))

	if !called {
		t.Fatal("expected handler to run for an authenticated request")
	}
}
