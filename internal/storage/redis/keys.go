package redis

import (
	"fmt"

	"github.com/rosterhub/rosterhub/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "rosterhub"

// Key generation functions for each entity type

func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

func tournamentKey(id model.TournamentID) string {
	return fmt.Sprintf("%s:tournament:%s", keyPrefix, id)
}

func eventKey(id model.EventID) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, id)
}

func attendanceKey(id model.AttendanceID) string {
	return fmt.Sprintf("%s:attendance:%s", keyPrefix, id)
}

// orderKey returns the key for the LIST holding a collection's creation order
func orderKey(collection string) string {
	return fmt.Sprintf("%s:order:%s", keyPrefix, collection)
}
