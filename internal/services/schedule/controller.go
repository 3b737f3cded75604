package schedule

import (
	"context"

	"github.com/rosterhub/rosterhub/internal/dependencies/clock"
	"github.com/rosterhub/rosterhub/internal/dependencies/random"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/services/roster"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// Controller manages matches, tournaments and events. Listings are scoped
// to the caller's identity: admins see everything, players only records
// whose squad includes their player id.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new schedule controller
func NewController(store storage.Storage, clk clock.Clock, rnd random.Random) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		random:  rnd,
	}
}

func (c *Controller) newID(prefix string) string {
	return prefix + "-" + c.random.String(roster.IDLength, random.IDAlphabet)
}

// Match operations

// NewMatch is the input for creating a match
type NewMatch struct {
	Title     string
	Opponent  string
	Date      string
	Time      string
	Location  string
	Result    string
	Score     string
	PlayerIDs []model.PlayerID
}

// MatchUpdate carries a partial match update; nil fields are unchanged
type MatchUpdate struct {
	Title     *string
	Opponent  *string
	Date      *string
	Time      *string
	Location  *string
	Result    *string
	Score     *string
	PlayerIDs *[]model.PlayerID
}

// CreateMatch creates a match with a fresh id
func (c *Controller) CreateMatch(ctx context.Context, input NewMatch) (*model.Match, error) {
	match := &model.Match{
		ID:        model.MatchID(c.newID("match")),
		Title:     input.Title,
		Opponent:  input.Opponent,
		Date:      input.Date,
		Time:      input.Time,
		Location:  input.Location,
		Result:    input.Result,
		Score:     input.Score,
		PlayerIDs: normalizeSquad(input.PlayerIDs),
	}
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ListMatches returns the matches visible to the identity, in creation order
func (c *Controller) ListMatches(ctx context.Context, identity auth.Identity) ([]*model.Match, error) {
	matches, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	return auth.Scope(identity, matches, func(m *model.Match, id model.PlayerID) bool {
		return m.Includes(id)
	}), nil
}

// UpdateMatch merges the supplied fields into an existing match
func (c *Controller) UpdateMatch(ctx context.Context, id model.MatchID, update MatchUpdate) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *match
	if update.Title != nil {
		updated.Title = *update.Title
	}
	if update.Opponent != nil {
		updated.Opponent = *update.Opponent
	}
	if update.Date != nil {
		updated.Date = *update.Date
	}
	if update.Time != nil {
		updated.Time = *update.Time
	}
	if update.Location != nil {
		updated.Location = *update.Location
	}
	if update.Result != nil {
		updated.Result = *update.Result
	}
	if update.Score != nil {
		updated.Score = *update.Score
	}
	if update.PlayerIDs != nil {
		updated.PlayerIDs = normalizeSquad(*update.PlayerIDs)
	}

	if err := c.storage.SaveMatch(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMatch removes a match; deleting an absent id is a no-op
func (c *Controller) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return c.storage.DeleteMatch(ctx, id)
}

// Tournament operations

// NewTournament is the input for creating a tournament
type NewTournament struct {
	Name        string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	Status      string
	PlayerIDs   []model.PlayerID
}

// TournamentUpdate carries a partial tournament update
type TournamentUpdate struct {
	Name        *string
	StartDate   *string
	EndDate     *string
	Location    *string
	Description *string
	Status      *string
	PlayerIDs   *[]model.PlayerID
}

// CreateTournament creates a tournament with a fresh id
func (c *Controller) CreateTournament(ctx context.Context, input NewTournament) (*model.Tournament, error) {
	tournament := &model.Tournament{
		ID:          model.TournamentID(c.newID("tournament")),
		Name:        input.Name,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location:    input.Location,
		Description: input.Description,
		Status:      input.Status,
		PlayerIDs:   normalizeSquad(input.PlayerIDs),
	}
	if err := c.storage.SaveTournament(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// ListTournaments returns the tournaments visible to the identity
func (c *Controller) ListTournaments(ctx context.Context, identity auth.Identity) ([]*model.Tournament, error) {
	tournaments, err := c.storage.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	return auth.Scope(identity, tournaments, func(t *model.Tournament, id model.PlayerID) bool {
		return t.Includes(id)
	}), nil
}

// UpdateTournament merges the supplied fields into an existing tournament
func (c *Controller) UpdateTournament(ctx context.Context, id model.TournamentID, update TournamentUpdate) (*model.Tournament, error) {
	tournament, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *tournament
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.StartDate != nil {
		updated.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		updated.EndDate = *update.EndDate
	}
	if update.Location != nil {
		updated.Location = *update.Location
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Status != nil {
		updated.Status = *update.Status
	}
	if update.PlayerIDs != nil {
		updated.PlayerIDs = normalizeSquad(*update.PlayerIDs)
	}

	if err := c.storage.SaveTournament(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTournament removes a tournament; deleting an absent id is a no-op
func (c *Controller) DeleteTournament(ctx context.Context, id model.TournamentID) error {
	return c.storage.DeleteTournament(ctx, id)
}

// Event operations

// NewEvent is the input for creating an event
type NewEvent struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Type        string
	PlayerIDs   []model.PlayerID
}

// EventUpdate carries a partial event update
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	Type        *string
	PlayerIDs   *[]model.PlayerID
}

// CreateEvent creates an event with a fresh id
func (c *Controller) CreateEvent(ctx context.Context, input NewEvent) (*model.Event, error) {
	event := &model.Event{
		ID:          model.EventID(c.newID("event")),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Type:        input.Type,
		PlayerIDs:   normalizeSquad(input.PlayerIDs),
	}
	if err := c.storage.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns the events visible to the identity
func (c *Controller) ListEvents(ctx context.Context, identity auth.Identity) ([]*model.Event, error) {
	events, err := c.storage.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return auth.Scope(identity, events, func(e *model.Event, id model.PlayerID) bool {
		return e.Includes(id)
	}), nil
}

// UpdateEvent merges the supplied fields into an existing event
func (c *Controller) UpdateEvent(ctx context.Context, id model.EventID, update EventUpdate) (*model.Event, error) {
	event, err := c.storage.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *event
	if update.Title != nil {
		updated.Title = *update.Title
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Date != nil {
		updated.Date = *update.Date
	}
	if update.Time != nil {
		updated.Time = *update.Time
	}
	if update.Location != nil {
		updated.Location = *update.Location
	}
	if update.Type != nil {
		updated.Type = *update.Type
	}
	if update.PlayerIDs != nil {
		updated.PlayerIDs = normalizeSquad(*update.PlayerIDs)
	}

	if err := c.storage.SaveEvent(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent removes an event; deleting an absent id is a no-op
func (c *Controller) DeleteEvent(ctx context.Context, id model.EventID) error {
	return c.storage.DeleteEvent(ctx, id)
}

// normalizeSquad keeps a nil squad from leaking to the wire as null
func normalizeSquad(ids []model.PlayerID) []model.PlayerID {
	if ids == nil {
		return []model.PlayerID{}
	}
	return ids
}
