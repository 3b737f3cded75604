package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PlayerStatus indicates whether a player is currently on the roster
type PlayerStatus string

const (
	PlayerActive   PlayerStatus = "active"
	PlayerInactive PlayerStatus = "inactive"
)

// Player represents a team member. Every player has exactly one User account
// with RolePlayer; UserID is the back-reference to it.
type Player struct {
	ID           PlayerID
	Name         string
	Email        string
	Phone        string
	Position     string
	JerseyNumber int
	DateOfBirth  string // ISO date, as entered
	JoinedDate   time.Time
	Status       PlayerStatus
	UserID       UserID
}
