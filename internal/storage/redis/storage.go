package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// Collection names used for creation-order lists
const (
	collectionPlayers     = "players"
	collectionMatches     = "matches"
	collectionTournaments = "tournaments"
	collectionEvents      = "events"
	collectionAttendance  = "attendance"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON values; each collection keeps a LIST of ids
// so listings preserve creation order, and the username index enforces
// account uniqueness via SETNX.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrUsernameTaken
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, userKey(user.ID), data, 0).Err(); err != nil {
		// Release the claimed username so the failure is not sticky
		_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return getJSON[model.User](ctx, s.client, userKey(id), model.ErrUserNotFound)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil
		}
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, userKey(id))
		pipe.Del(ctx, usernameIndexKey(user.Username))
		return nil
	})
	return err
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	return s.saveOrdered(ctx, playerKey(player.ID), collectionPlayers, string(player.ID), player)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return getJSON[model.Player](ctx, s.client, playerKey(id), model.ErrPlayerNotFound)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return listOrdered[model.Player](ctx, s.client, collectionPlayers, func(id string) string {
		return playerKey(model.PlayerID(id))
	})
}

func (s *Storage) CreatePlayerWithUser(ctx context.Context, player *model.Player, user *model.User) error {
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrUsernameTaken
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	playerData, err := json.Marshal(player)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, userKey(user.ID), userData, 0)
		pipe.Set(ctx, playerKey(player.ID), playerData, 0)
		pipe.RPush(ctx, orderKey(collectionPlayers), string(player.ID))
		return nil
	})
	if err != nil {
		_ = s.client.Del(ctx, usernameIndexKey(user.Username)).Err()
		return err
	}
	return nil
}

func (s *Storage) DeletePlayerCascade(ctx context.Context, id model.PlayerID) (bool, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return false, err
	}

	userMissing := true
	var user *model.User
	if player.UserID != "" {
		user, err = s.GetUser(ctx, player.UserID)
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			return false, err
		}
		userMissing = user == nil
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if user != nil {
			pipe.Del(ctx, userKey(user.ID))
			pipe.Del(ctx, usernameIndexKey(user.Username))
		}
		pipe.Del(ctx, playerKey(id))
		pipe.LRem(ctx, orderKey(collectionPlayers), 1, string(id))
		return nil
	})
	if err != nil {
		return false, err
	}
	return userMissing, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	return s.saveOrdered(ctx, matchKey(match.ID), collectionMatches, string(match.ID), match)
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return getJSON[model.Match](ctx, s.client, matchKey(id), model.ErrMatchNotFound)
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	return listOrdered[model.Match](ctx, s.client, collectionMatches, func(id string) string {
		return matchKey(model.MatchID(id))
	})
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return s.deleteOrdered(ctx, matchKey(id), collectionMatches, string(id))
}

// Tournament operations

func (s *Storage) SaveTournament(ctx context.Context, tournament *model.Tournament) error {
	return s.saveOrdered(ctx, tournamentKey(tournament.ID), collectionTournaments, string(tournament.ID), tournament)
}

func (s *Storage) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	return getJSON[model.Tournament](ctx, s.client, tournamentKey(id), model.ErrTournamentNotFound)
}

func (s *Storage) ListTournaments(ctx context.Context) ([]*model.Tournament, error) {
	return listOrdered[model.Tournament](ctx, s.client, collectionTournaments, func(id string) string {
		return tournamentKey(model.TournamentID(id))
	})
}

func (s *Storage) DeleteTournament(ctx context.Context, id model.TournamentID) error {
	return s.deleteOrdered(ctx, tournamentKey(id), collectionTournaments, string(id))
}

// Event operations

func (s *Storage) SaveEvent(ctx context.Context, event *model.Event) error {
	return s.saveOrdered(ctx, eventKey(event.ID), collectionEvents, string(event.ID), event)
}

func (s *Storage) GetEvent(ctx context.Context, id model.EventID) (*model.Event, error) {
	return getJSON[model.Event](ctx, s.client, eventKey(id), model.ErrEventNotFound)
}

func (s *Storage) ListEvents(ctx context.Context) ([]*model.Event, error) {
	return listOrdered[model.Event](ctx, s.client, collectionEvents, func(id string) string {
		return eventKey(model.EventID(id))
	})
}

func (s *Storage) DeleteEvent(ctx context.Context, id model.EventID) error {
	return s.deleteOrdered(ctx, eventKey(id), collectionEvents, string(id))
}

// Attendance operations

func (s *Storage) SaveAttendance(ctx context.Context, record *model.Attendance) error {
	return s.saveOrdered(ctx, attendanceKey(record.ID), collectionAttendance, string(record.ID), record)
}

func (s *Storage) GetAttendance(ctx context.Context, id model.AttendanceID) (*model.Attendance, error) {
	return getJSON[model.Attendance](ctx, s.client, attendanceKey(id), model.ErrAttendanceNotFound)
}

func (s *Storage) ListAttendance(ctx context.Context) ([]*model.Attendance, error) {
	return listOrdered[model.Attendance](ctx, s.client, collectionAttendance, func(id string) string {
		return attendanceKey(model.AttendanceID(id))
	})
}

func (s *Storage) DeleteAttendance(ctx context.Context, id model.AttendanceID) error {
	return s.deleteOrdered(ctx, attendanceKey(id), collectionAttendance, string(id))
}

// Helpers

// saveOrdered upserts a JSON record, appending to the collection's order
// list only on first insert
func (s *Storage) saveOrdered(ctx context.Context, key, collection, id string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		if exists == 0 {
			pipe.RPush(ctx, orderKey(collection), id)
		}
		return nil
	})
	return err
}

// deleteOrdered removes a record and its order entry; no-op when absent
func (s *Storage) deleteOrdered(ctx context.Context, key, collection, id string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.LRem(ctx, orderKey(collection), 1, id)
		return nil
	})
	return err
}

// getJSON fetches and unmarshals a single record, mapping redis.Nil to the
// collection's not-found error
func getJSON[T any](ctx context.Context, client *redis.Client, key string, notFound error) (*T, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

// listOrdered fetches all records of a collection in creation order.
// Records deleted between reading the order list and fetching values are
// skipped.
func listOrdered[T any](ctx context.Context, client *redis.Client, collection string, keyFn func(id string) string) ([]*T, error) {
	ids, err := client.LRange(ctx, orderKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*T, 0, len(ids))
	for _, id := range ids {
		data, err := client.Get(ctx, keyFn(id)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		records = append(records, &value)
	}
	return records, nil
}
