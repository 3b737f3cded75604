package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/rosterhub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{ID: "user-1", Username: "alice", Role: model.RolePlayer, PlayerID: "player-1"}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal(model.RolePlayer, retrieved.Role)

	byName, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), byName.ID)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"}))

	err := s.storage.CreateUser(s.ctx, &model.User{ID: "user-2", Username: "alice"})
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUserFreesUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"}))

	s.Require().NoError(s.storage.DeleteUser(s.ctx, "user-1"))

	err := s.storage.CreateUser(s.ctx, &model.User{ID: "user-2", Username: "alice"})
	s.NoError(err)
}

// Player tests

func (s *StorageSuite) TestCreatePlayerWithUser() {
	player := &model.Player{ID: "player-1", Name: "Alice", UserID: "user-1", Status: model.PlayerActive}
	user := &model.User{ID: "user-1", Username: "alice", Role: model.RolePlayer, PlayerID: "player-1"}

	err := s.storage.CreatePlayerWithUser(s.ctx, player, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)

	account, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), account.PlayerID)
}

func (s *StorageSuite) TestCreatePlayerWithUserConflictLeavesNoPlayer() {
	player1 := &model.Player{ID: "player-1", Name: "Alice", UserID: "user-1"}
	user1 := &model.User{ID: "user-1", Username: "alice", Role: model.RolePlayer, PlayerID: "player-1"}
	s.Require().NoError(s.storage.CreatePlayerWithUser(s.ctx, player1, user1))

	player2 := &model.Player{ID: "player-2", Name: "Impostor", UserID: "user-2"}
	user2 := &model.User{ID: "user-2", Username: "alice", Role: model.RolePlayer, PlayerID: "player-2"}
	err := s.storage.CreatePlayerWithUser(s.ctx, player2, user2)
	s.ErrorIs(err, model.ErrUsernameTaken)

	_, err = s.storage.GetPlayer(s.ctx, "player-2")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *StorageSuite) TestDeletePlayerCascade() {
	player := &model.Player{ID: "player-1", Name: "Alice", UserID: "user-1"}
	user := &model.User{ID: "user-1", Username: "alice", Role: model.RolePlayer, PlayerID: "player-1"}
	s.Require().NoError(s.storage.CreatePlayerWithUser(s.ctx, player, user))

	userMissing, err := s.storage.DeletePlayerCascade(s.ctx, "player-1")
	s.Require().NoError(err)
	s.False(userMissing)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeletePlayerCascadeMissingUser() {
	player := &model.Player{ID: "player-1", Name: "Alice", UserID: "user-gone"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	userMissing, err := s.storage.DeletePlayerCascade(s.ctx, "player-1")
	s.Require().NoError(err)
	s.True(userMissing)
}

func (s *StorageSuite) TestDeletePlayerCascadeNotFound() {
	_, err := s.storage.DeletePlayerCascade(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersPreservesCreationOrder() {
	for _, name := range []string{"a", "b", "c"} {
		player := &model.Player{ID: model.PlayerID("player-" + name), Name: name, UserID: model.UserID("user-" + name)}
		user := &model.User{ID: model.UserID("user-" + name), Username: name, Role: model.RolePlayer, PlayerID: player.ID}
		s.Require().NoError(s.storage.CreatePlayerWithUser(s.ctx, player, user))
	}

	_, err := s.storage.DeletePlayerCascade(s.ctx, "player-b")
	s.Require().NoError(err)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("player-a"), players[0].ID)
	s.Equal(model.PlayerID("player-c"), players[1].ID)
}

// Collection tests

func (s *StorageSuite) TestMatchLifecycle() {
	match := &model.Match{ID: "match-1", Title: "vs Rovers", PlayerIDs: []model.PlayerID{"player-1"}}

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal("vs Rovers", retrieved.Title)
	s.Equal([]model.PlayerID{"player-1"}, retrieved.PlayerIDs)

	s.Require().NoError(s.storage.DeleteMatch(s.ctx, "match-1"))
	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestSaveMatchUpsertKeepsOrder() {
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1", Title: "first"}))
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-2", Title: "second"}))
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1", Title: "updated"}))

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal("updated", matches[0].Title)
	s.Equal("second", matches[1].Title)
}

func (s *StorageSuite) TestTournamentLifecycle() {
	tournament := &model.Tournament{ID: "tournament-1", Name: "Spring Cup", Status: "upcoming"}

	s.Require().NoError(s.storage.SaveTournament(s.ctx, tournament))

	retrieved, err := s.storage.GetTournament(s.ctx, "tournament-1")
	s.Require().NoError(err)
	s.Equal("Spring Cup", retrieved.Name)

	s.Require().NoError(s.storage.DeleteTournament(s.ctx, "tournament-1"))
	_, err = s.storage.GetTournament(s.ctx, "tournament-1")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

func (s *StorageSuite) TestEventLifecycle() {
	event := &model.Event{ID: "event-1", Title: "Training", Type: "training"}

	s.Require().NoError(s.storage.SaveEvent(s.ctx, event))

	retrieved, err := s.storage.GetEvent(s.ctx, "event-1")
	s.Require().NoError(err)
	s.Equal("Training", retrieved.Title)

	s.Require().NoError(s.storage.DeleteEvent(s.ctx, "event-1"))
	_, err = s.storage.GetEvent(s.ctx, "event-1")
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *StorageSuite) TestAttendanceLifecycle() {
	record := &model.Attendance{ID: "attendance-1", PlayerID: "player-1", Date: "2024-03-01", Status: model.AttendanceLate, Notes: "traffic"}

	s.Require().NoError(s.storage.SaveAttendance(s.ctx, record))

	retrieved, err := s.storage.GetAttendance(s.ctx, "attendance-1")
	s.Require().NoError(err)
	s.Equal(model.AttendanceLate, retrieved.Status)
	s.Equal("traffic", retrieved.Notes)

	s.Require().NoError(s.storage.DeleteAttendance(s.ctx, "attendance-1"))
	_, err = s.storage.GetAttendance(s.ctx, "attendance-1")
	s.ErrorIs(err, model.ErrAttendanceNotFound)
}

func (s *StorageSuite) TestDeleteNoopWhenAbsent() {
	s.NoError(s.storage.DeleteMatch(s.ctx, "nonexistent"))
	s.NoError(s.storage.DeleteTournament(s.ctx, "nonexistent"))
	s.NoError(s.storage.DeleteEvent(s.ctx, "nonexistent"))
	s.NoError(s.storage.DeleteAttendance(s.ctx, "nonexistent"))
}
