package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/rosterhub/internal/dependencies/mocks"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/storage/memory"
)

var (
	adminIdentity = auth.Identity{UserID: "user-admin", Role: model.RoleAdmin}
	aliceIdentity = auth.Identity{UserID: "user-alice", Role: model.RolePlayer, PlayerID: "player-alice"}
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, clk, mocks.NewMockRandom())
	s.ctx = context.Background()
}

// Match tests

func (s *ControllerSuite) TestCreateMatchAssignsID() {
	match, err := s.controller.CreateMatch(s.ctx, NewMatch{
		Title:     "vs Rovers",
		Opponent:  "Rovers",
		Date:      "2024-02-10",
		PlayerIDs: []model.PlayerID{"player-alice"},
	})
	s.Require().NoError(err)

	s.NotEmpty(match.ID)
	s.Contains(string(match.ID), "match-")
	s.Equal("vs Rovers", match.Title)
}

func (s *ControllerSuite) TestCreateMatchNilSquadBecomesEmpty() {
	match, err := s.controller.CreateMatch(s.ctx, NewMatch{Title: "open fixture"})
	s.Require().NoError(err)
	s.NotNil(match.PlayerIDs)
	s.Empty(match.PlayerIDs)
}

func (s *ControllerSuite) TestListMatchesScopedByIdentity() {
	inSquad, err := s.controller.CreateMatch(s.ctx, NewMatch{
		Title:     "with alice",
		PlayerIDs: []model.PlayerID{"player-bob", "player-alice"},
	})
	s.Require().NoError(err)
	_, err = s.controller.CreateMatch(s.ctx, NewMatch{
		Title:     "without alice",
		PlayerIDs: []model.PlayerID{"player-bob"},
	})
	s.Require().NoError(err)

	all, err := s.controller.ListMatches(s.ctx, adminIdentity)
	s.Require().NoError(err)
	s.Len(all, 2)

	visible, err := s.controller.ListMatches(s.ctx, aliceIdentity)
	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal(inSquad.ID, visible[0].ID)
}

func (s *ControllerSuite) TestUpdateMatchMergesFields() {
	match, err := s.controller.CreateMatch(s.ctx, NewMatch{Title: "vs Rovers", Opponent: "Rovers"})
	s.Require().NoError(err)

	result := "won"
	score := "3-1"
	updated, err := s.controller.UpdateMatch(s.ctx, match.ID, MatchUpdate{
		Result: &result,
		Score:  &score,
	})
	s.Require().NoError(err)

	s.Equal("won", updated.Result)
	s.Equal("3-1", updated.Score)
	s.Equal("Rovers", updated.Opponent)
}

func (s *ControllerSuite) TestUpdateMatchNotFound() {
	title := "ghost"
	_, err := s.controller.UpdateMatch(s.ctx, "nonexistent", MatchUpdate{Title: &title})
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestDeleteMatchNoopWhenAbsent() {
	s.NoError(s.controller.DeleteMatch(s.ctx, "nonexistent"))
}

// Tournament tests

func (s *ControllerSuite) TestTournamentScopedListing() {
	_, err := s.controller.CreateTournament(s.ctx, NewTournament{
		Name:      "Spring Cup",
		Status:    "upcoming",
		PlayerIDs: []model.PlayerID{"player-alice"},
	})
	s.Require().NoError(err)
	_, err = s.controller.CreateTournament(s.ctx, NewTournament{Name: "Closed Invitational"})
	s.Require().NoError(err)

	all, err := s.controller.ListTournaments(s.ctx, adminIdentity)
	s.Require().NoError(err)
	s.Len(all, 2)

	visible, err := s.controller.ListTournaments(s.ctx, aliceIdentity)
	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal("Spring Cup", visible[0].Name)
}

func (s *ControllerSuite) TestUpdateTournamentStatus() {
	tournament, err := s.controller.CreateTournament(s.ctx, NewTournament{Name: "Spring Cup", Status: "upcoming"})
	s.Require().NoError(err)

	status := "completed"
	updated, err := s.controller.UpdateTournament(s.ctx, tournament.ID, TournamentUpdate{Status: &status})
	s.Require().NoError(err)
	s.Equal("completed", updated.Status)
	s.Equal("Spring Cup", updated.Name)
}

// Event tests

func (s *ControllerSuite) TestEventScopedListing() {
	_, err := s.controller.CreateEvent(s.ctx, NewEvent{
		Title:     "Training",
		Type:      "training",
		PlayerIDs: []model.PlayerID{"player-alice", "player-bob"},
	})
	s.Require().NoError(err)
	_, err = s.controller.CreateEvent(s.ctx, NewEvent{Title: "Board Meeting", Type: "meeting"})
	s.Require().NoError(err)

	visible, err := s.controller.ListEvents(s.ctx, aliceIdentity)
	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal("Training", visible[0].Title)
}

func (s *ControllerSuite) TestUpdateEventSquad() {
	event, err := s.controller.CreateEvent(s.ctx, NewEvent{Title: "Training", Type: "training"})
	s.Require().NoError(err)

	squad := []model.PlayerID{"player-alice"}
	updated, err := s.controller.UpdateEvent(s.ctx, event.ID, EventUpdate{PlayerIDs: &squad})
	s.Require().NoError(err)
	s.Equal(squad, updated.PlayerIDs)

	visible, err := s.controller.ListEvents(s.ctx, aliceIdentity)
	s.Require().NoError(err)
	s.Len(visible, 1)
}
