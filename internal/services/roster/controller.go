package roster

import (
	"context"
	"log/slog"

	"github.com/rosterhub/rosterhub/internal/dependencies/clock"
	"github.com/rosterhub/rosterhub/internal/dependencies/random"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// IDLength is the random suffix length of generated identifiers
const IDLength = 12

// Controller manages the player roster and the login accounts tied to it.
// Players and their users are created and destroyed together; the storage
// layer guarantees the compound operations are atomic.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new roster controller
func NewController(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// NewPlayer is the input for creating a player together with its account
type NewPlayer struct {
	Name         string
	Email        string
	Phone        string
	Position     string
	JerseyNumber int
	DateOfBirth  string
	Username     string
	Password     string
}

// PlayerUpdate carries the fields of a partial player update; nil fields
// are left unchanged
type PlayerUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Position     *string
	JerseyNumber *int
	DateOfBirth  *string
	Status       *model.PlayerStatus
}

// CreatePlayer provisions a player and its player-role user account in one
// operation. If the username is taken, no player record is created and
// model.ErrUsernameTaken is returned.
func (c *Controller) CreatePlayer(ctx context.Context, input NewPlayer) (*model.Player, *model.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	playerID := model.PlayerID("player-" + c.random.String(IDLength, random.IDAlphabet))
	userID := model.UserID("user-" + c.random.String(IDLength, random.IDAlphabet))
	now := c.clock.Now()

	player := &model.Player{
		ID:           playerID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		JerseyNumber: input.JerseyNumber,
		DateOfBirth:  input.DateOfBirth,
		JoinedDate:   now,
		Status:       model.PlayerActive,
		UserID:       userID,
	}

	user := &model.User{
		ID:           userID,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         model.RolePlayer,
		PlayerID:     playerID,
		CreatedAt:    now,
	}

	if err := c.storage.CreatePlayerWithUser(ctx, player, user); err != nil {
		return nil, nil, err
	}

	return player, user, nil
}

// GetPlayer fetches a single player
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// ListPlayers returns every player in creation order
func (c *Controller) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return c.storage.ListPlayers(ctx)
}

// UpdatePlayer merges the supplied fields into an existing player
func (c *Controller) UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *player
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.Email != nil {
		updated.Email = *update.Email
	}
	if update.Phone != nil {
		updated.Phone = *update.Phone
	}
	if update.Position != nil {
		updated.Position = *update.Position
	}
	if update.JerseyNumber != nil {
		updated.JerseyNumber = *update.JerseyNumber
	}
	if update.DateOfBirth != nil {
		updated.DateOfBirth = *update.DateOfBirth
	}
	if update.Status != nil {
		updated.Status = *update.Status
	}

	if err := c.storage.SavePlayer(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlayer removes a player and its linked user account. A missing
// linked account is logged at warning level but does not abort the delete.
func (c *Controller) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	userMissing, err := c.storage.DeletePlayerCascade(ctx, id)
	if err != nil {
		return err
	}
	if userMissing {
		c.logger.Warn("deleted player had no linked user account",
			slog.String("player_id", string(id)))
	}
	return nil
}
