package model

import "time"

// UserID uniquely identifies a user account
type UserID string

// Role is the closed set of roles a user account can hold
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// ParseRole validates a role string against the closed set
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RolePlayer:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents a login account. PlayerID is set iff Role is RolePlayer,
// in which case it points back at the Player owned by this account.
type User struct {
	ID           UserID
	Username     string // login username, unique across users
	PasswordHash string // bcrypt hash
	Role         Role
	PlayerID     PlayerID
	CreatedAt    time.Time
}
