package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/rosterhub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newPlayerWithUser(playerID, userID, username string) (*model.Player, *model.User) {
	player := &model.Player{
		ID:         model.PlayerID(playerID),
		Name:       "Alice",
		Status:     model.PlayerActive,
		JoinedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:     model.UserID(userID),
	}
	user := &model.User{
		ID:       model.UserID(userID),
		Username: username,
		Role:     model.RolePlayer,
		PlayerID: model.PlayerID(playerID),
	}
	return player, user
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{ID: "user-1", Username: "alice", Role: model.RolePlayer, PlayerID: "player-1"}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)

	byName, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, byName.ID)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	_ = s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"})

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
	_ = s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"})

	err := s.storage.DeleteUser(s.ctx, "user-1")
	s.Require().NoError(err)

	// Username is reusable after deletion
	err = s.storage.CreateUser(s.ctx, &model.User{ID: "user-2", Username: "alice"})
	s.NoError(err)
}

func (s *StorageSuite) TestDeleteUserIdempotent() {
	s.NoError(s.storage.DeleteUser(s.ctx, "nonexistent"))
}

// Player tests

func (s *StorageSuite) TestCreatePlayerWithUser() {
	player, user := s.newPlayerWithUser("player-1", "user-1", "alice")

	err := s.storage.CreatePlayerWithUser(s.ctx, player, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.UserID)

	account, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), account.PlayerID)
}

func (s *StorageSuite) TestCreatePlayerWithUserConflictLeavesNoPlayer() {
	player1, user1 := s.newPlayerWithUser("player-1", "user-1", "alice")
	s.Require().NoError(s.storage.CreatePlayerWithUser(s.ctx, player1, user1))

	player2, user2 := s.newPlayerWithUser("player-2", "user-2", "alice")
	err := s.storage.CreatePlayerWithUser(s.ctx, player2, user2)
	s.ErrorIs(err, model.ErrUsernameTaken)

	// No partial player record
	_, err = s.storage.GetPlayer(s.ctx, "player-2")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *StorageSuite) TestDeletePlayerCascadeRemovesUser() {
	player, user := s.newPlayerWithUser("player-1", "user-1", "alice")
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
	// Player whose linked user was lost
	player := &model.Player{ID: "player-1", Name: "Alice", UserID: "user-gone"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	userMissing, err := s.storage.DeletePlayerCascade(s.ctx, "player-1")
	s.Require().NoError(err)
	s.True(userMissing)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerCascadeNotFound() {
	_, err := s.storage.DeletePlayerCascade(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersPreservesCreationOrder() {
	for _, name := range []string{"a", "b", "c"} {
		player, user := s.newPlayerWithUser("player-"+name, "user-"+name, name)
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

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := &model.Match{ID: "match-1", Title: "vs Rovers", PlayerIDs: []model.PlayerID{"player-1"}}

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal("vs Rovers", retrieved.Title)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
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

func (s *StorageSuite) TestDeleteMatchNoopWhenAbsent() {
	s.NoError(s.storage.DeleteMatch(s.ctx, "nonexistent"))
}

// Tournament tests

func (s *StorageSuite) TestTournamentLifecycle() {
	tournament := &model.Tournament{ID: "tournament-1", Name: "Spring Cup"}

	s.Require().NoError(s.storage.SaveTournament(s.ctx, tournament))

	retrieved, err := s.storage.GetTournament(s.ctx, "tournament-1")
	s.Require().NoError(err)
	s.Equal("Spring Cup", retrieved.Name)

	s.Require().NoError(s.storage.DeleteTournament(s.ctx, "tournament-1"))
	_, err = s.storage.GetTournament(s.ctx, "tournament-1")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

// Event tests

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

// Attendance tests

func (s *StorageSuite) TestAttendanceLifecycle() {
	record := &model.Attendance{ID: "attendance-1", PlayerID: "player-1", Status: model.AttendancePresent}

	s.Require().NoError(s.storage.SaveAttendance(s.ctx, record))

	retrieved, err := s.storage.GetAttendance(s.ctx, "attendance-1")
	s.Require().NoError(err)
	s.Equal(model.AttendancePresent, retrieved.Status)

	s.Require().NoError(s.storage.DeleteAttendance(s.ctx, "attendance-1"))
	_, err = s.storage.GetAttendance(s.ctx, "attendance-1")
	s.ErrorIs(err, model.ErrAttendanceNotFound)
}

func (s *StorageSuite) TestListAttendancePreservesCreationOrder() {
	for i, id := range []model.AttendanceID{"attendance-1", "attendance-2", "attendance-3"} {
		record := &model.Attendance{ID: id, PlayerID: model.PlayerID("player-1"), Date: time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")}
		s.Require().NoError(s.storage.SaveAttendance(s.ctx, record))
	}

	records, err := s.storage.ListAttendance(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(model.AttendanceID("attendance-1"), records[0].ID)
	s.Equal(model.AttendanceID("attendance-3"), records[2].ID)
}
