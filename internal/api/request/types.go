package request

import "github.com/rosterhub/rosterhub/internal/model"

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for creating a player together
// with its login account
type CreatePlayerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	DateOfBirth  string `json:"dateOfBirth"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// UpdatePlayerRequest is the request body for a partial player update;
// omitted fields are left unchanged
type UpdatePlayerRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Position     *string `json:"position"`
	JerseyNumber *int    `json:"jerseyNumber"`
	DateOfBirth  *string `json:"dateOfBirth"`
	Status       *string `json:"status"`
}

// CreateMatchRequest is the request body for creating a match
type CreateMatchRequest struct {
	Title     string   `json:"title"`
	Opponent  string   `json:"opponent"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location"`
	Result    string   `json:"result"`
	Score     string   `json:"score"`
	PlayerIDs []string `json:"playerIds"`
}

// UpdateMatchRequest is the request body for a partial match update
type UpdateMatchRequest struct {
	Title     *string   `json:"title"`
	Opponent  *string   `json:"opponent"`
	Date      *string   `json:"date"`
	Time      *string   `json:"time"`
	Location  *string   `json:"location"`
	Result    *string   `json:"result"`
	Score     *string   `json:"score"`
	PlayerIDs *[]string `json:"playerIds"`
}

// CreateTournamentRequest is the request body for creating a tournament
type CreateTournamentRequest struct {
	Name        string   `json:"name"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	PlayerIDs   []string `json:"playerIds"`
}

// UpdateTournamentRequest is the request body for a partial tournament update
type UpdateTournamentRequest struct {
	Name        *string   `json:"name"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	PlayerIDs   *[]string `json:"playerIds"`
}

// CreateEventRequest is the request body for creating an event
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	PlayerIDs   []string `json:"playerIds"`
}

// UpdateEventRequest is the request body for a partial event update
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Location    *string   `json:"location"`
	Type        *string   `json:"type"`
	PlayerIDs   *[]string `json:"playerIds"`
}

// CreateAttendanceRequest is the request body for recording attendance
type CreateAttendanceRequest struct {
	PlayerID string `json:"playerId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// UpdateAttendanceRequest is the request body for a partial attendance update
type UpdateAttendanceRequest struct {
	Date   *string `json:"date"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// PlayerIDs converts a wire-format id list to model ids
func PlayerIDs(ids []string) []model.PlayerID {
	converted := make([]model.PlayerID, len(ids))
	for i, id := range ids {
		converted[i] = model.PlayerID(id)
	}
	return converted
}
