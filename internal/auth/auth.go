package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

const sessionName = "flaskr-session"

// Store will hold the session store.
var Store *sessions.CookieStore

func InitSessionStore(sessionKey string) error {
	if len(sessionKey) < 32 {
		return errors.New("session key must be at least 32 characters long")
	}
	Store = sessions.NewCookieStore([]byte(sessionKey))
	Store.Options.HttpOnly = true
	Store.Options.Path = "/"
	Store.Options.SameSite = http.SameSiteLaxMode // Protect against CSRF
	return nil
}

// Credential errors, surfaced on the login form. The username is
// checked before the password.
var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

// Service authenticates the single configured admin account and tracks
// the logged-in flag in the session.
type Service struct {
	username     string
	passwordHash []byte
}

// NewService creates a new authentication service for the configured
// credential pair. The password is hashed once here and only the hash
// is kept for the lifetime of the process.
func NewService(username, password string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{username: username, passwordHash: hash}, nil
}

// Login checks the submitted credentials and marks the session as
// authenticated on success.
func (s *Service) Login(w http.ResponseWriter, r *http.Request, username, password string) error {
	if username != s.username {
		return ErrInvalidUsername
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}

	session, _ := Store.Get(r, sessionName)
	session.Values["logged_in"] = true
	session.AddFlash("You were logged in")

	// Set Secure flag based on request scheme or X-Forwarded-Proto header
	// This is crucial for correct behavior behind reverse proxies.
	session.Options.Secure = r.URL.Scheme == "https" || r.Header.Get("X-Forwarded-Proto") == "https"

	return session.Save(r, w)
}

// Logout clears the authenticated flag unconditionally.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, sessionName)
	delete(session.Values, "logged_in")
	session.AddFlash("You were logged out")

	// Ensure Secure flag is set correctly for logout cookie as well
	session.Options.Secure = r.URL.Scheme == "https" || r.Header.Get("X-Forwarded-Proto") == "https"

	session.Save(r, w)
}

// IsLoggedIn reports whether the request carries an authenticated session.
func (s *Service) IsLoggedIn(r *http.Request) bool {
	session, _ := Store.Get(r, sessionName)
	loggedIn, ok := session.Values["logged_in"].(bool)
	return ok && loggedIn
}

// Flash queues a one-time message for the next rendered page.
func (s *Service) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := Store.Get(r, sessionName)
	session.AddFlash(message)
	session.Save(r, w)
}

// Flashes drains the queued flash messages for display.
func (s *Service) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := Store.Get(r, sessionName)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		// Reading flashes removes them; persist the cleared session.
		session.Save(r, w)
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages
}

// RequireLogin is middleware that rejects unauthenticated requests
// with 401 before the wrapped handler runs.
func (s *Service) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.IsLoggedIn(r) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
