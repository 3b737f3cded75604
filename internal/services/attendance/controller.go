package attendance

import (
	"context"

	"github.com/rosterhub/rosterhub/internal/dependencies/random"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/services/roster"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// Controller manages attendance records. A record belongs to exactly one
// player; listings for a player identity are limited to that player's
// records.
type Controller struct {
	storage storage.Storage
	random  random.Random
}

// NewController creates a new attendance controller
func NewController(store storage.Storage, rnd random.Random) *Controller {
	return &Controller{
		storage: store,
		random:  rnd,
	}
}

// NewRecord is the input for recording attendance
type NewRecord struct {
	PlayerID model.PlayerID
	Date     string
	Status   model.AttendanceStatus
	Notes    string
}

// RecordUpdate carries a partial attendance update; nil fields are unchanged
type RecordUpdate struct {
	Date   *string
	Status *model.AttendanceStatus
	Notes  *string
}

// Create records attendance for a player with a fresh id
func (c *Controller) Create(ctx context.Context, input NewRecord) (*model.Attendance, error) {
	record := &model.Attendance{
		ID:       model.AttendanceID("attendance-" + c.random.String(roster.IDLength, random.IDAlphabet)),
		PlayerID: input.PlayerID,
		Date:     input.Date,
		Status:   input.Status,
		Notes:    input.Notes,
	}
	if err := c.storage.SaveAttendance(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the attendance records visible to the identity
func (c *Controller) List(ctx context.Context, identity auth.Identity) ([]*model.Attendance, error) {
	records, err := c.storage.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	return auth.Scope(identity, records, func(r *model.Attendance, id model.PlayerID) bool {
		return r.PlayerID == id
	}), nil
}

// Update merges the supplied fields into an existing record
func (c *Controller) Update(ctx context.Context, id model.AttendanceID, update RecordUpdate) (*model.Attendance, error) {
	record, err := c.storage.GetAttendance(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *record
	if update.Date != nil {
		updated.Date = *update.Date
	}
	if update.Status != nil {
		updated.Status = *update.Status
	}
	if update.Notes != nil {
		updated.Notes = *update.Notes
	}

	if err := c.storage.SaveAttendance(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a record; deleting an absent id is a no-op
func (c *Controller) Delete(ctx context.Context, id model.AttendanceID) error {
	return c.storage.DeleteAttendance(ctx, id)
}
