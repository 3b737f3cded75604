package memory

import (
	"context"
	"sync"

	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single RWMutex serializes writers across all collections so compound
// operations (player+user create, cascading delete) are atomic; reads may
// proceed concurrently with other reads.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID

	players     map[model.PlayerID]*model.Player
	playerOrder []model.PlayerID

	matches    map[model.MatchID]*model.Match
	matchOrder []model.MatchID

	tournaments     map[model.TournamentID]*model.Tournament
	tournamentOrder []model.TournamentID

	events     map[model.EventID]*model.Event
	eventOrder []model.EventID

	attendance      map[model.AttendanceID]*model.Attendance
	attendanceOrder []model.AttendanceID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		players:       make(map[model.PlayerID]*model.Player),
		matches:       make(map[model.MatchID]*model.Match),
		tournaments:   make(map[model.TournamentID]*model.Tournament),
		events:        make(map[model.EventID]*model.Event),
		attendance:    make(map[model.AttendanceID]*model.Attendance),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createUserLocked(user)
}

// createUserLocked assumes the write lock is held
func (s *Storage) createUserLocked(user *model.User) error {
	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrUsernameTaken
	}
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteUserLocked(id)
	return nil
}

// deleteUserLocked assumes the write lock is held
func (s *Storage) deleteUserLocked(id model.UserID) {
	if user, ok := s.users[id]; ok {
		delete(s.usernameIndex, user.Username)
		delete(s.users, id)
	}
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		s.playerOrder = append(s.playerOrder, player.ID)
	}
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		players = append(players, s.players[id])
	}
	return players, nil
}

func (s *Storage) CreatePlayerWithUser(ctx context.Context, player *model.Player, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.createUserLocked(user); err != nil {
		return err
	}
	s.playerOrder = append(s.playerOrder, player.ID)
	s.players[player.ID] = player
	return nil
}

func (s *Storage) DeletePlayerCascade(ctx context.Context, id model.PlayerID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return false, model.ErrPlayerNotFound
	}

	userMissing := true
	if player.UserID != "" {
		if _, ok := s.users[player.UserID]; ok {
			userMissing = false
			s.deleteUserLocked(player.UserID)
		}
	}

	delete(s.players, id)
	s.playerOrder = removeID(s.playerOrder, id)
	return userMissing, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; !ok {
		s.matchOrder = append(s.matchOrder, match.ID)
	}
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]*model.Match, 0, len(s.matchOrder))
	for _, id := range s.matchOrder {
		matches = append(matches, s.matches[id])
	}
	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; ok {
		delete(s.matches, id)
		s.matchOrder = removeID(s.matchOrder, id)
	}
	return nil
}

// Tournament operations

func (s *Storage) SaveTournament(ctx context.Context, tournament *model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tournaments[tournament.ID]; !ok {
		s.tournamentOrder = append(s.tournamentOrder, tournament.ID)
	}
	s.tournaments[tournament.ID] = tournament
	return nil
}

func (s *Storage) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tournament, ok := s.tournaments[id]
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	return tournament, nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]*model.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tournaments := make([]*model.Tournament, 0, len(s.tournamentOrder))
	for _, id := range s.tournamentOrder {
		tournaments = append(tournaments, s.tournaments[id])
	}
	return tournaments, nil
}

func (s *Storage) DeleteTournament(ctx context.Context, id model.TournamentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tournaments[id]; ok {
		delete(s.tournaments, id)
		s.tournamentOrder = removeID(s.tournamentOrder, id)
	}
	return nil
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		s.eventOrder = append(s.eventOrder, event.ID)
	}
	s.events[event.ID] = event
	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return event, nil
}

func (s *Storage) ListEvents(ctx context.Context) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]*model.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		events = append(events, s.events[id])
	}
	return events, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; ok {
		delete(s.events, id)
		s.eventOrder = removeID(s.eventOrder, id)
	}
	return nil
}

// Attendance operations

func (s *Storage) SaveAttendance(ctx context.Context, record *model.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendance[record.ID]; !ok {
		s.attendanceOrder = append(s.attendanceOrder, record.ID)
	}
	s.attendance[record.ID] = record
	return nil
}

func (s *Storage) GetAttendance(ctx context.Context, id model.AttendanceID) (*model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.attendance[id]
	if !ok {
		return nil, model.ErrAttendanceNotFound
	}
	return record, nil
}

func (s *Storage) ListAttendance(ctx context.Context) ([]*model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.Attendance, 0, len(s.attendanceOrder))
	for _, id := range s.attendanceOrder {
		records = append(records, s.attendance[id])
	}
	return records, nil
}

func (s *Storage) DeleteAttendance(ctx context.Context, id model.AttendanceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendance[id]; ok {
		delete(s.attendance, id)
		s.attendanceOrder = removeID(s.attendanceOrder, id)
	}
	return nil
}

// removeID removes the first occurrence of id, preserving order
func removeID[T comparable](ids []T, id T) []T {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
