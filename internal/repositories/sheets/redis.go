package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Data is the serialized form of a sheet in Redis.
type Data struct {
	Sheet     *character.Character `json:"sheet"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// redisRepo implements Repository on Redis. Sheets expire after the
// configured TTL, keeping the store transient: an abandoned editing
// session cleans itself up.
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider  // Optional, defaults to the system clock
	SessionTTL   time.Duration // How long to keep idle sheets (default: 24 hours)
}

// NewRedisRepository creates a new Redis-backed sheet repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = SystemTimeProvider{}
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          ttl,
	}
}

// key generates the Redis key for a sheet
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("sheet:%s", id)
}

// ownerSheetsKey generates the Redis key for an owner's sheet list
func (r *redisRepo) ownerSheetsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:sheets", ownerID)
}

// set serializes and stores a sheet with the session TTL, refreshing the
// owner index alongside it.
func (r *redisRepo) set(ctx context.Context, data *Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.Sheet.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, r.ownerSheetsKey(data.Sheet.OwnerID), data.Sheet.ID)
	pipe.Expire(ctx, r.ownerSheetsKey(data.Sheet.OwnerID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store sheet in Redis: %w", err)
	}

	return nil
}

// Create stores a new sheet
func (r *redisRepo) Create(ctx context.Context, sheet *character.Character) error {
	if sheet == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}
	if sheet.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}
	if sheet.OwnerID == "" {
		return apperr.InvalidArgument("sheet owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(sheet.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check sheet existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("sheet with ID '%s' already exists", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	now := r.timeProvider.Now()
	return r.set(ctx, &Data{Sheet: sheet, CreatedAt: now, UpdatedAt: now})
}

// Get retrieves a sheet by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	var data Data
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet: %w", unmarshalErr)
	}

	return data.Sheet, nil
}

// GetByOwner retrieves all sheets for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerSheetsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet IDs: %w", err)
	}

	sheets := make([]*character.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			sheet, err := r.Get(ctx, id)
			if err != nil {
				if apperr.IsNotFound(err) {
					// Expired sheet still in the index, skip it
					return nil
				}
				return fmt.Errorf("failed to get sheet %s: %w", id, err)
			}
			sheets[i] = sheet
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*character.Character, 0, len(sheets))
	for _, sheet := range sheets {
		if sheet != nil {
			result = append(result, sheet)
		}
	}

	return result, nil
}

// Update updates an existing sheet
func (r *redisRepo) Update(ctx context.Context, sheet *character.Character) error {
	if sheet == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}
	if sheet.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(sheet.ID)).Result()
	if err == redis.Nil {
		return apperr.NotFoundf("sheet with ID '%s' not found", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing sheet: %w", err)
	}

	var existing Data
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing sheet: %w", unmarshalErr)
	}

	return r.set(ctx, &Data{
		Sheet:     sheet,
		CreatedAt: existing.CreatedAt, // Preserve creation time
		UpdatedAt: r.timeProvider.Now(),
	})
}

// Delete removes a sheet
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	sheet, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerSheetsKey(sheet.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}

	return nil
}
