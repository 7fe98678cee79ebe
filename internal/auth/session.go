package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog/internal/models"
)

const CookieName = "blog_session"

// Sessions is the session boundary: it issues, validates and revokes the
// opaque per-browser token and resolves it back to a user. Cookie values are
// HMAC-signed with the session secret so a tampered token never reaches the
// store.
type Sessions struct {
	db     *sql.DB
	secret []byte
	maxAge time.Duration
}

func NewSessions(db *sql.DB, secret string, maxAge time.Duration) *Sessions {
	return &Sessions{db: db, secret: []byte(secret), maxAge: maxAge}
}

// Login establishes an authenticated session. A fresh id is issued on every
// call and the user's previous sessions are revoked, so a pre-login token can
// never be promoted (session fixation).
func (s *Sessions) Login(ctx context.Context, w http.ResponseWriter, userID int64) error {
	sid := uuid.NewString()
	expires := time.Now().Add(s.maxAge)
	if err := models.CreateSession(ctx, s.db, userID, sid, expires); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.sign(sid),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout revokes the presented session and expires the cookie. A no-op for
// anonymous callers.
func (s *Sessions) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if sid, ok := s.verify(c.Value); ok {
			models.RevokeSession(ctx, s.db, sid)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// CurrentUser resolves the request's session token to a user. Any miss — no
// cookie, bad signature, revoked or expired session, user gone — degrades to
// nil rather than an error.
func (s *Sessions) CurrentUser(ctx context.Context, r *http.Request) *models.User {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	sid, ok := s.verify(c.Value)
	if !ok {
		return nil
	}
	sess, err := models.GetSession(ctx, s.db, sid)
	if err != nil || sess.RevokedAt != nil || sess.ExpiresAt.Before(time.Now()) {
		return nil
	}
	user, err := models.GetUserByID(ctx, s.db, sess.UserID)
	if err != nil {
		return nil
	}
	return user
}

func (s *Sessions) IsAuthenticated(ctx context.Context, r *http.Request) bool {
	return s.CurrentUser(ctx, r) != nil
}

func (s *Sessions) sign(sid string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sid))
	return sid + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Sessions) verify(value string) (string, bool) {
	sid, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sid))
	if !hmac.Equal(mac.Sum(nil), got) {
		return "", false
	}
	return sid, true
}
