package response

import (
	"time"

	"github.com/rosterhub/rosterhub/internal/model"
)

// UserSummary is the identity block returned from auth endpoints.
// PlayerID is present only for player-role accounts.
type UserSummary struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	PlayerID string `json:"playerId,omitempty"`
}

// UserSummaryFromModel converts a model.User to its identity block
func UserSummaryFromModel(u *model.User) UserSummary {
	return UserSummary{
		ID:       string(u.ID),
		Role:     string(u.Role),
		PlayerID: string(u.PlayerID),
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// MeResponse is the response for GET /auth/me
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	PlayerID string `json:"playerId,omitempty"`
}

// MeResponseFromModel converts a model.User for /auth/me
func MeResponseFromModel(u *model.User) MeResponse {
	return MeResponse{
		ID:       string(u.ID),
		Username: u.Username,
		Role:     string(u.Role),
		PlayerID: string(u.PlayerID),
	}
}

// Player represents a roster member in API responses
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	DateOfBirth  string `json:"dateOfBirth"`
	JoinedDate   string `json:"joinedDate"`
	Status       string `json:"status"`
	UserID       string `json:"userId"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           string(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Position:     p.Position,
		JerseyNumber: p.JerseyNumber,
		DateOfBirth:  p.DateOfBirth,
		JoinedDate:   p.JoinedDate.Format(time.RFC3339),
		Status:       string(p.Status),
		UserID:       string(p.UserID),
	}
}

// PlayersResponse wraps a player listing
type PlayersResponse struct {
	Players []Player `json:"players"`
}

// PlayersFromModel converts a player listing
func PlayersFromModel(players []*model.Player) PlayersResponse {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayersResponse{Players: out}
}

// CreatedPlayerResponse is the response for creating a player, echoing the
// provisioned account's identifiers
type CreatedPlayerResponse struct {
	Player Player `json:"player"`
	User   struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
	} `json:"user"`
}

// Match represents a fixture in API responses
type Match struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Opponent  string   `json:"opponent"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
	Result    string   `json:"result"`
	Score     string   `json:"score"`
	PlayerIDs []string `json:"playerIds"`
}

// MatchFromModel converts a model.Match
func MatchFromModel(m *model.Match) Match {
	return Match{
		ID:        string(m.ID),
		Title:     m.Title,
		Opponent:  m.Opponent,
		Date:      m.Date,
		Time:      m.Time,
		Location:  m.Location,
		Result:    m.Result,
		Score:     m.Score,
		PlayerIDs: playerIDStrings(m.PlayerIDs),
	}
}

// MatchesResponse wraps a match listing
type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

// MatchesFromModel converts a match listing
func MatchesFromModel(matches []*model.Match) MatchesResponse {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = MatchFromModel(m)
	}
	return MatchesResponse{Matches: out}
}

// Tournament represents a tournament in API responses
type Tournament struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	PlayerIDs   []string `json:"playerIds"`
}

// TournamentFromModel converts a model.Tournament
func TournamentFromModel(t *model.Tournament) Tournament {
	return Tournament{
		ID:          string(t.ID),
		Name:        t.Name,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Location:    t.Location,
		Description: t.Description,
		Status:      t.Status,
		PlayerIDs:   playerIDStrings(t.PlayerIDs),
	}
}

// TournamentsResponse wraps a tournament listing
type TournamentsResponse struct {
	Tournaments []Tournament `json:"tournaments"`
}

// TournamentsFromModel converts a tournament listing
func TournamentsFromModel(tournaments []*model.Tournament) TournamentsResponse {
	out := make([]Tournament, len(tournaments))
	for i, t := range tournaments {
		out[i] = TournamentFromModel(t)
	}
	return TournamentsResponse{Tournaments: out}
}

// Event represents an event in API responses
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	PlayerIDs   []string `json:"playerIds"`
}

// EventFromModel converts a model.Event
func EventFromModel(e *model.Event) Event {
	return Event{
		ID:          string(e.ID),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Type:        e.Type,
		PlayerIDs:   playerIDStrings(e.PlayerIDs),
	}
}

// EventsResponse wraps an event listing
type EventsResponse struct {
	Events []Event `json:"events"`
}

// EventsFromModel converts an event listing
func EventsFromModel(events []*model.Event) EventsResponse {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = EventFromModel(e)
	}
	return EventsResponse{Events: out}
}

// Attendance represents an attendance record in API responses
type Attendance struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}

// AttendanceFromModel converts a model.Attendance
func AttendanceFromModel(a *model.Attendance) Attendance {
	return Attendance{
		ID:       string(a.ID),
		PlayerID: string(a.PlayerID),
		Date:     a.Date,
		Status:   string(a.Status),
		Notes:    a.Notes,
	}
}

// AttendanceListResponse wraps an attendance listing
type AttendanceListResponse struct {
	Attendance []Attendance `json:"attendance"`
}

// AttendanceListFromModel converts an attendance listing
func AttendanceListFromModel(records []*model.Attendance) AttendanceListResponse {
	out := make([]Attendance, len(records))
	for i, a := range records {
		out[i] = AttendanceFromModel(a)
	}
	return AttendanceListResponse{Attendance: out}
}

// MessageResponse is a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

func playerIDStrings(ids []model.PlayerID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
