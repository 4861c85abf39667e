package auth

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	cookieName      = "eiho_session"
	sessionLifetime = 12 * time.Hour
)

type sessionPayload struct {
	Username string    `json:"u"`
	IssuedAt time.Time `json:"iat"`
}

// Sessions issues and verifies the signed admin session cookie. There is a
// single admin account, so the payload is just the username plus an issue
// timestamp for expiry.
type Sessions struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewSessions derives the cookie signing and encryption keys from the
// configured secret.
func NewSessions(secret string, secureCookies bool) *Sessions {
	hashKey := sha256.Sum256([]byte(secret + ":hash"))
	blockKey := sha256.Sum256([]byte(secret + ":block"))

	codec := securecookie.New(hashKey[:], blockKey[:])
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(sessionLifetime.Seconds()))

	return &Sessions{codec: codec, secure: secureCookies}
}

// Issue writes a fresh session cookie for username.
func (s *Sessions) Issue(w http.ResponseWriter, username string) error {
	encoded, err := s.codec.Encode(cookieName, sessionPayload{
		Username: username,
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("auth: encode session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie immediately.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Username returns the logged-in username from the request cookie, or false
// when there is no valid session.
func (s *Sessions) Username(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	var payload sessionPayload
	if err := s.codec.Decode(cookieName, cookie.Value, &payload); err != nil {
		return "", false
	}
	if payload.Username == "" || time.Since(payload.IssuedAt) > sessionLifetime {
		return "", false
	}
	return payload.Username, true
}
