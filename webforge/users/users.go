package users

import (
	"context"
	"errors"
	"time"

	"codeberg.org/webforge/server/internal/quota"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
		name,
		avatarURL,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.PromptsUsedToday,
		&user.PromptsResetDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.PromptsUsedToday,
		&user.PromptsResetDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// updates the user's display name and avatar
func (r *Repository) UpdateProfile(ctx context.Context, userID, name, avatarURL string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryUpdateProfile, userID, name, avatarURL).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.PromptsUsedToday,
		&user.PromptsResetDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ConsumePromptCredit atomically spends one of the user's daily generation
// credits, rolling the counter over when the calendar day changed since the
// last spend. Returns false without mutating anything once the daily limit
// is reached.
func (r *Repository) ConsumePromptCredit(ctx context.Context, userID string, now time.Time) (bool, error) {
	var used int

	err := r.db.QueryRow(ctx, queryConsumePromptCredit, userID, now, quota.DailyLimit).Scan(&used)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// PromptsRemaining reports how many generation attempts the user has left
// today without spending one.
func (u *User) PromptsRemaining(now time.Time) int {
	counter := quota.Counter{Used: u.PromptsUsedToday, ResetAt: u.PromptsResetDate}

	return counter.Remaining(now)
}
