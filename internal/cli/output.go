package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LoginResult:
		o.printLoginResult(v)
	case MeResult:
		o.printMe(v)
	case Player:
		o.printPlayer(v)
	case PlayersResult:
		o.printPlayers(v)
	case CreatedPlayerResult:
		o.printCreatedPlayer(v)
	case Match:
		o.printMatch(v)
	case MatchesResult:
		o.printMatches(v)
	case Tournament:
		o.printTournament(v)
	case TournamentsResult:
		o.printTournaments(v)
	case Event:
		o.printEvent(v)
	case EventsResult:
		o.printEvents(v)
	case Attendance:
		o.printAttendance(v)
	case AttendanceResult:
		o.printAttendanceList(v)
	case MessageResult:
		fmt.Println(v.Message)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// UserSummary response type (matches API)
type UserSummary struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	PlayerID string `json:"playerId,omitempty"`
}

// LoginResult response type
type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// MeResult response type
type MeResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	PlayerID string `json:"playerId,omitempty"`
}

// Player response type
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

// PlayersResult response type
type PlayersResult struct {
	Players []Player `json:"players"`
}

// CreatedPlayerResult response type
type CreatedPlayerResult struct {
	Player Player `json:"player"`
	User   struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
	} `json:"user"`
}

// PlayerResult wraps a single player
type PlayerResult struct {
	Player Player `json:"player"`
}

// Match response type
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

// MatchesResult response type
type MatchesResult struct {
	Matches []Match `json:"matches"`
}

// MatchResult wraps a single match
type MatchResult struct {
	Match Match `json:"match"`
}

// Tournament response type
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

// TournamentsResult response type
type TournamentsResult struct {
	Tournaments []Tournament `json:"tournaments"`
}

// TournamentResult wraps a single tournament
type TournamentResult struct {
	Tournament Tournament `json:"tournament"`
}

// Event response type
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

// EventsResult response type
type EventsResult struct {
	Events []Event `json:"events"`
}

// EventResult wraps a single event
type EventResult struct {
	Event Event `json:"event"`
}

// Attendance response type
type Attendance struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}

// AttendanceResult response type
type AttendanceResult struct {
	Attendance []Attendance `json:"attendance"`
}

// AttendanceRecordResult wraps a single attendance record
type AttendanceRecordResult struct {
	Attendance Attendance `json:"attendance"`
}

// MessageResult response type
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Printf("Logged in as %s (%s)\n", l.User.ID, l.User.Role)
	if l.User.PlayerID != "" {
		fmt.Printf("Player: %s\n", l.User.PlayerID)
	}
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printMe(m MeResult) {
	fmt.Printf("User: %s (%s)\n", m.Username, m.ID)
	fmt.Printf("Role: %s\n", m.Role)
	if m.PlayerID != "" {
		fmt.Printf("Player: %s\n", m.PlayerID)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	if p.Position != "" {
		fmt.Printf("Position: %s\n", p.Position)
	}
	if p.JerseyNumber != 0 {
		fmt.Printf("Jersey: %d\n", p.JerseyNumber)
	}
	if p.Email != "" {
		fmt.Printf("Email: %s\n", p.Email)
	}
	if p.Phone != "" {
		fmt.Printf("Phone: %s\n", p.Phone)
	}
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Joined: %s\n", p.JoinedDate)
}

func (o *Output) printPlayers(pr PlayersResult) {
	fmt.Printf("Players (%d):\n", len(pr.Players))
	for _, p := range pr.Players {
		fmt.Printf("  - %s #%d %s [%s] (%s)\n", p.Name, p.JerseyNumber, p.Position, p.Status, p.ID)
	}
}

func (o *Output) printCreatedPlayer(c CreatedPlayerResult) {
	o.printPlayer(c.Player)
	fmt.Printf("Account: %s (%s)\n", c.User.Username, c.User.UserID)
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s (%s)\n", m.Title, m.ID)
	if m.Opponent != "" {
		fmt.Printf("Opponent: %s\n", m.Opponent)
	}
	if m.Date != "" {
		fmt.Printf("When: %s %s\n", m.Date, m.Time)
	}
	if m.Location != "" {
		fmt.Printf("Location: %s\n", m.Location)
	}
	if m.Result != "" {
		fmt.Printf("Result: %s %s\n", m.Result, m.Score)
	}
	fmt.Printf("Squad: %s\n", joinOrNone(m.PlayerIDs))
}

func (o *Output) printMatches(mr MatchesResult) {
	fmt.Printf("Matches (%d):\n", len(mr.Matches))
	for _, m := range mr.Matches {
		line := fmt.Sprintf("  - %s vs %s", m.Title, m.Opponent)
		if m.Date != "" {
			line += " on " + m.Date
		}
		fmt.Printf("%s (%s)\n", line, m.ID)
	}
}

func (o *Output) printTournament(t Tournament) {
	fmt.Printf("Tournament: %s (%s)\n", t.Name, t.ID)
	if t.StartDate != "" {
		fmt.Printf("Dates: %s - %s\n", t.StartDate, t.EndDate)
	}
	if t.Location != "" {
		fmt.Printf("Location: %s\n", t.Location)
	}
	if t.Status != "" {
		fmt.Printf("Status: %s\n", t.Status)
	}
	fmt.Printf("Squad: %s\n", joinOrNone(t.PlayerIDs))
}

func (o *Output) printTournaments(tr TournamentsResult) {
	fmt.Printf("Tournaments (%d):\n", len(tr.Tournaments))
	for _, t := range tr.Tournaments {
		fmt.Printf("  - %s [%s] (%s)\n", t.Name, t.Status, t.ID)
	}
}

func (o *Output) printEvent(e Event) {
	fmt.Printf("Event: %s (%s)\n", e.Title, e.ID)
	if e.Type != "" {
		fmt.Printf("Type: %s\n", e.Type)
	}
	if e.Date != "" {
		fmt.Printf("When: %s %s\n", e.Date, e.Time)
	}
	if e.Location != "" {
		fmt.Printf("Location: %s\n", e.Location)
	}
	fmt.Printf("Squad: %s\n", joinOrNone(e.PlayerIDs))
}

func (o *Output) printEvents(er EventsResult) {
	fmt.Printf("Events (%d):\n", len(er.Events))
	for _, e := range er.Events {
		fmt.Printf("  - %s [%s] on %s (%s)\n", e.Title, e.Type, e.Date, e.ID)
	}
}

func (o *Output) printAttendance(a Attendance) {
	fmt.Printf("Attendance: %s (%s)\n", a.ID, a.Status)
	fmt.Printf("Player: %s\n", a.PlayerID)
	fmt.Printf("Date: %s\n", a.Date)
	if a.Notes != "" {
		fmt.Printf("Notes: %s\n", a.Notes)
	}
}

func (o *Output) printAttendanceList(ar AttendanceResult) {
	fmt.Printf("Attendance (%d):\n", len(ar.Attendance))
	for _, a := range ar.Attendance {
		line := fmt.Sprintf("  - %s: %s on %s", a.PlayerID, a.Status, a.Date)
		if a.Notes != "" {
			line += " (" + a.Notes + ")"
		}
		fmt.Printf("%s (%s)\n", line, a.ID)
	}
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}
