package models

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("not found")
)

func CreateUser(ctx context.Context, db *sql.DB, username, passwordHash string) (*User, error) {
	res, err := db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return GetUserByID(ctx, db, id)
}

func GetUserByID(ctx context.Context, db *sql.DB, id int64) (*User, error) {
	return scanUser(db.QueryRowContext(ctx, `SELECT id, username, password_hash, google_id, created_at FROM users WHERE id = ?`, id))
}

func GetUserByUsername(ctx context.Context, db *sql.DB, username string) (*User, error) {
	return scanUser(db.QueryRowContext(ctx, `SELECT id, username, password_hash, google_id, created_at FROM users WHERE username = ?`, username))
}

func GetUserByGoogleID(ctx context.Context, db *sql.DB, googleID string) (*User, error) {
	return scanUser(db.QueryRowContext(ctx, `SELECT id, username, password_hash, google_id, created_at FROM users WHERE google_id = ?`, googleID))
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.GoogleID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertGoogleUser maps a federated identity to a user record. An existing
// link by google_id wins; otherwise the id is attached to a local account
// with the same username, or a fresh credential-less user is inserted. The
// upsert plus the unique index on google_id keep concurrent first-time
// logins from creating two rows: the loser of the race re-reads the winner.
func UpsertGoogleUser(ctx context.Context, db *sql.DB, username, googleID string) (*User, error) {
	u, err := GetUserByGoogleID(ctx, db, googleID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	_, err = db.ExecContext(ctx, `INSERT INTO users (username, google_id) VALUES (?, ?)
        ON CONFLICT(username) DO UPDATE SET google_id = excluded.google_id
        WHERE users.google_id IS NULL`, username, googleID)
	if err != nil && !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil, err
	}
	u, err = GetUserByGoogleID(ctx, db, googleID)
	if errors.Is(err, ErrNotFound) {
		// username is taken by an account already linked to a different
		// federated identity
		return nil, ErrDuplicateUsername
	}
	return u, err
}

func CreateSession(ctx context.Context, db *sql.DB, userID int64, sessionID string, expires time.Time) error {
	// revoke existing
	_, err := db.ExecContext(ctx, `UPDATE sessions SET revoked_at = CURRENT_TIMESTAMP WHERE user_id = ? AND revoked_at IS NULL`, userID)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`, sessionID, userID, expires)
	return err
}

func GetSession(ctx context.Context, db *sql.DB, id string) (*Session, error) {
	row := db.QueryRowContext(ctx, `SELECT id, user_id, created_at, expires_at, revoked_at FROM sessions WHERE id = ?`, id)
	var s Session
	var revoked sql.NullTime
	err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt, &revoked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if revoked.Valid {
		s.RevokedAt = &revoked.Time
	}
	return &s, nil
}

func RevokeSession(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `UPDATE sessions SET revoked_at = CURRENT_TIMESTAMP WHERE id = ? AND revoked_at IS NULL`, id)
	return err
}

func CreatePost(ctx context.Context, db *sql.DB, userID int64, title, content, image string) (int64, error) {
	var img any
	if image != "" {
		img = image
	}
	res, err := db.ExecContext(ctx, `INSERT INTO posts (user_id, title, content, image) VALUES (?, ?, ?, ?)`, userID, title, content, img)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func ListPosts(ctx context.Context, db *sql.DB) ([]Post, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, user_id, title, content, image, created_at FROM posts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func GetPost(ctx context.Context, db *sql.DB, id int64) (*Post, error) {
	row := db.QueryRowContext(ctx, `SELECT id, user_id, title, content, image, created_at FROM posts WHERE id = ?`, id)
	var p Post
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Image, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
