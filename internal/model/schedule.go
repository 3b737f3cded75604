package model

// MatchID uniquely identifies a match
type MatchID string

// Match is a scheduled or played fixture against an opponent.
// PlayerIDs holds the squad selected for it; order is irrelevant.
type Match struct {
	ID        MatchID
	Title     string
	Opponent  string
	Date      string
	Time      string
	Location  string
	Result    string
	Score     string
	PlayerIDs []PlayerID
}

// TournamentID uniquely identifies a tournament
type TournamentID string

// Tournament is a multi-match competition with a participating squad
type Tournament struct {
	ID          TournamentID
	Name        string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	Status      string
	PlayerIDs   []PlayerID
}

// EventID uniquely identifies an event
type EventID string

// Event is any non-match team activity (training, meeting, social)
type Event struct {
	ID          EventID
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Type        string
	PlayerIDs   []PlayerID
}

// Includes reports whether the given player is part of the match squad
func (m *Match) Includes(id PlayerID) bool {
	return containsPlayer(m.PlayerIDs, id)
}

// Includes reports whether the given player participates in the tournament
func (t *Tournament) Includes(id PlayerID) bool {
	return containsPlayer(t.PlayerIDs, id)
}

// Includes reports whether the given player is invited to the event
func (e *Event) Includes(id PlayerID) bool {
	return containsPlayer(e.PlayerIDs, id)
}

func containsPlayer(ids []PlayerID, id PlayerID) bool {
	for _, pid := range ids {
		if pid == id {
			return true
		}
	}
	return false
}
