package storage

import (
	"context"

	"github.com/rosterhub/rosterhub/internal/model"
)

// Storage defines the interface for data persistence.
//
// List operations return records in creation order. Delete operations on
// matches, tournaments, events and attendance are no-ops when the id is
// absent; player deletion reports absence so callers can 404.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// CreatePlayerWithUser atomically creates a player and its login account.
	// Fails with model.ErrUsernameTaken leaving no partial player behind.
	CreatePlayerWithUser(ctx context.Context, player *model.Player, user *model.User) error

	// DeletePlayerCascade deletes a player and its linked user account as one
	// operation. Returns model.ErrPlayerNotFound if the player is absent.
	// userMissing reports that the linked user did not exist; the player is
	// still deleted in that case.
	DeletePlayerCascade(ctx context.Context, id model.PlayerID) (userMissing bool, err error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Tournament operations
	SaveTournament(ctx context.Context, tournament *model.Tournament) error
	GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error)
	ListTournaments(ctx context.Context) ([]*model.Tournament, error)
	DeleteTournament(ctx context.Context, id model.TournamentID) error

	// Event operations
	SaveEvent(ctx context.Context, event *model.Event) error
	GetEvent(ctx context.Context, id model.EventID) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	DeleteEvent(ctx context.Context, id model.EventID) error

	// Attendance operations
	SaveAttendance(ctx context.Context, record *model.Attendance) error
	GetAttendance(ctx context.Context, id model.AttendanceID) (*model.Attendance, error)
	ListAttendance(ctx context.Context) ([]*model.Attendance, error)
	DeleteAttendance(ctx context.Context, id model.AttendanceID) error
}
