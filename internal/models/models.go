package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash sql.NullString
	GoogleID     sql.NullString
	CreatedAt    time.Time
}

type Post struct {
	ID        int64
	UserID    sql.NullInt64
	Title     string
	Content   string
	Image     sql.NullString
	CreatedAt time.Time
}

type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}
