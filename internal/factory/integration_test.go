package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/attendance"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/services/roster"
	"github.com/rosterhub/rosterhub/internal/services/schedule"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) provisionPlayer(name, username string) (*model.Player, *model.User) {
	player, user, err := s.app.RosterController.CreatePlayer(s.ctx, roster.NewPlayer{
		Name:     name,
		Username: username,
		Password: "pw-" + username,
	})
	s.Require().NoError(err)
	return player, user
}

func (s *IntegrationSuite) identityFor(username string) auth.Identity {
	token, _, err := s.app.AuthService.Login(s.ctx, username, "pw-"+username)
	s.Require().NoError(err)
	identity, err := s.app.AuthService.Authenticate(token)
	s.Require().NoError(err)
	return identity
}

// Test: Admin provisions a player, who can then log in and see themselves
func (s *IntegrationSuite) TestProvisionAndLoginFlow() {
	// Step 1: Seed the admin account
	err := s.app.AuthService.SeedAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	adminToken, adminUser, err := s.app.AuthService.Login(s.ctx, "admin", "admin123")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, adminUser.Role)

	adminIdentity, err := s.app.AuthService.Authenticate(adminToken)
	s.Require().NoError(err)
	s.True(adminIdentity.IsAdmin())

	// Step 2: Provision a player with a login account
	player, user := s.provisionPlayer("Alice Cooper", "alice")
	s.Equal(player.ID, user.PlayerID)
	s.Equal(user.ID, player.UserID)
	s.Equal(model.RolePlayer, user.Role)

	// Step 3: The new player logs in and resolves their own account
	token, loggedIn, err := s.app.AuthService.Login(s.ctx, "alice", "pw-alice")
	s.Require().NoError(err)
	s.Equal(user.ID, loggedIn.ID)

	identity, err := s.app.AuthService.Authenticate(token)
	s.Require().NoError(err)
	s.Equal(player.ID, identity.PlayerID)
	s.False(identity.IsAdmin())

	me, err := s.app.AuthService.Me(s.ctx, identity)
	s.Require().NoError(err)
	s.Equal("alice", me.Username)
}

// Test: Schedule listings are scoped to squad membership
func (s *IntegrationSuite) TestScopedScheduleVisibility() {
	s.Require().NoError(s.app.AuthService.SeedAdmin(s.ctx, "admin", "pw-admin"))
	alice, _ := s.provisionPlayer("Alice", "alice")
	s.provisionPlayer("Bob", "bob")

	rostered, err := s.app.ScheduleController.CreateMatch(s.ctx, schedule.NewMatch{
		Title:     "Season opener",
		PlayerIDs: []model.PlayerID{alice.ID},
	})
	s.Require().NoError(err)

	_, err = s.app.ScheduleController.CreateMatch(s.ctx, schedule.NewMatch{
		Title: "Reserves friendly",
	})
	s.Require().NoError(err)

	adminIdentity := s.identityFor("admin")
	aliceIdentity := s.identityFor("alice")
	bobIdentity := s.identityFor("bob")

	adminView, err := s.app.ScheduleController.ListMatches(s.ctx, adminIdentity)
	s.Require().NoError(err)
	s.Len(adminView, 2)

	aliceView, err := s.app.ScheduleController.ListMatches(s.ctx, aliceIdentity)
	s.Require().NoError(err)
	s.Require().Len(aliceView, 1)
	s.Equal(rostered.ID, aliceView[0].ID)

	bobView, err := s.app.ScheduleController.ListMatches(s.ctx, bobIdentity)
	s.Require().NoError(err)
	s.Empty(bobView)
}

// Test: Attendance records are visible to their player and to admins
func (s *IntegrationSuite) TestAttendanceScoping() {
	s.Require().NoError(s.app.AuthService.SeedAdmin(s.ctx, "admin", "pw-admin"))
	alice, _ := s.provisionPlayer("Alice", "alice")
	bob, _ := s.provisionPlayer("Bob", "bob")

	_, err := s.app.AttendanceController.Create(s.ctx, attendance.NewRecord{
		PlayerID: alice.ID,
		Date:     "2024-01-05",
		Status:   model.AttendancePresent,
	})
	s.Require().NoError(err)

	_, err = s.app.AttendanceController.Create(s.ctx, attendance.NewRecord{
		PlayerID: bob.ID,
		Date:     "2024-01-05",
		Status:   model.AttendanceLate,
		Notes:    "traffic",
	})
	s.Require().NoError(err)

	adminView, err := s.app.AttendanceController.List(s.ctx, s.identityFor("admin"))
	s.Require().NoError(err)
	s.Len(adminView, 2)

	aliceView, err := s.app.AttendanceController.List(s.ctx, s.identityFor("alice"))
	s.Require().NoError(err)
	s.Require().Len(aliceView, 1)
	s.Equal(alice.ID, aliceView[0].PlayerID)
}

// Test: Deleting a player removes its login and frees the username
func (s *IntegrationSuite) TestPlayerDeleteCascades() {
	alice, _ := s.provisionPlayer("Alice", "alice")

	token, _, err := s.app.AuthService.Login(s.ctx, "alice", "pw-alice")
	s.Require().NoError(err)

	s.Require().NoError(s.app.RosterController.DeletePlayer(s.ctx, alice.ID))

	// The login is gone
	_, _, err = s.app.AuthService.Login(s.ctx, "alice", "pw-alice")
	s.ErrorIs(err, auth.ErrInvalidCredentials)

	// An already-issued token no longer resolves to an account
	identity, err := s.app.AuthService.Authenticate(token)
	s.Require().NoError(err)
	_, err = s.app.AuthService.Me(s.ctx, identity)
	s.ErrorIs(err, model.ErrUserNotFound)

	// The username can be claimed again
	replacement, _ := s.provisionPlayer("Alice Mk II", "alice")
	s.NotEqual(alice.ID, replacement.ID)
}

// Test: Duplicate usernames leave no orphaned player behind
func (s *IntegrationSuite) TestDuplicateUsernameLeavesNoOrphan() {
	s.provisionPlayer("Alice", "alice")

	_, _, err := s.app.RosterController.CreatePlayer(s.ctx, roster.NewPlayer{
		Name:     "Impostor",
		Username: "alice",
		Password: "whatever",
	})
	s.ErrorIs(err, model.ErrUsernameTaken)

	players, err := s.app.RosterController.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

// Test: Tokens expire on the shared clock
func (s *IntegrationSuite) TestTokenExpiryAcrossServices() {
	s.provisionPlayer("Alice", "alice")

	token, _, err := s.app.AuthService.Login(s.ctx, "alice", "pw-alice")
	s.Require().NoError(err)

	s.app.MockClock.Advance(7*24*time.Hour + time.Minute)

	_, err = s.app.AuthService.Authenticate(token)
	s.ErrorIs(err, auth.ErrTokenExpired)
}
