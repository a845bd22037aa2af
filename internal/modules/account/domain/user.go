package domain

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Token is an opaque bearer credential minted at login. It replaces the
// cookie session: the client sends it on every request until it expires
// or logout deletes it.
type Token struct {
	Value     string
	UserID    string
	ExpiresAt time.Time
}

func (t Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
