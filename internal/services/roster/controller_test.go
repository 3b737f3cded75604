package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/rosterhub/internal/dependencies/mocks"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/storage/memory"
	"github.com/rosterhub/rosterhub/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, s.clock, mocks.NewMockRandom(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) alice() NewPlayer {
	return NewPlayer{
		Name:         "Alice",
		Email:        "alice@example.com",
		Phone:        "555-0101",
		Position:     "Forward",
		JerseyNumber: 9,
		DateOfBirth:  "1998-04-12",
		Username:     "alice",
		Password:     "pw1",
	}
}

func (s *ControllerSuite) TestCreatePlayerProvisionsAccount() {
	player, user, err := s.controller.CreatePlayer(s.ctx, s.alice())
	s.Require().NoError(err)

	s.Equal("Alice", player.Name)
	s.Equal(model.PlayerActive, player.Status)
	s.Equal(s.clock.Now(), player.JoinedDate)
	s.Equal(user.ID, player.UserID)

	s.Equal(model.RolePlayer, user.Role)
	s.Equal(player.ID, user.PlayerID)
	s.NotEqual("pw1", user.PasswordHash)
	s.True(auth.CheckPassword("pw1", user.PasswordHash))

	stored, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, stored.ID)
}

func (s *ControllerSuite) TestCreatePlayerDuplicateUsername() {
	_, _, err := s.controller.CreatePlayer(s.ctx, s.alice())
	s.Require().NoError(err)

	input := s.alice()
	input.Name = "Other Alice"
	_, _, err = s.controller.CreatePlayer(s.ctx, input)
	s.ErrorIs(err, model.ErrUsernameTaken)

	players, err := s.controller.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *ControllerSuite) TestUpdatePlayerMergesFields() {
	player, _, err := s.controller.CreatePlayer(s.ctx, s.alice())
	s.Require().NoError(err)

	position := "Midfielder"
	status := model.PlayerInactive
	updated, err := s.controller.UpdatePlayer(s.ctx, player.ID, PlayerUpdate{
		Position: &position,
		Status:   &status,
	})
	s.Require().NoError(err)

	s.Equal("Midfielder", updated.Position)
	s.Equal(model.PlayerInactive, updated.Status)
	// Untouched fields survive
	s.Equal("Alice", updated.Name)
	s.Equal(9, updated.JerseyNumber)
}

func (s *ControllerSuite) TestUpdatePlayerNotFound() {
	name := "Ghost"
	_, err := s.controller.UpdatePlayer(s.ctx, "nonexistent", PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestDeletePlayerCascades() {
	player, user, err := s.controller.CreatePlayer(s.ctx, s.alice())
	s.Require().NoError(err)

	s.Require().NoError(s.controller.DeletePlayer(s.ctx, player.ID))

	_, err = s.storage.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetUser(s.ctx, user.ID)
	s.ErrorIs(err, model.ErrUserNotFound)
	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ControllerSuite) TestDeletePlayerMissingUserStillDeletes() {
	// Simulate a corrupt record whose account is gone
	player := &model.Player{ID: "player-1", Name: "Orphan", UserID: "user-gone"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.controller.DeletePlayer(s.ctx, "player-1"))

	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestDeletePlayerNotFound() {
	err := s.controller.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
