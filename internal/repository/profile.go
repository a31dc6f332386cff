package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/profiles/internal/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	ByID(ctx context.Context, id string) (*model.Profile, error)
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*model.Profile, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, id string) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts the profile. The UNIQUE index on user_id turns a second
// profile for the same user into ErrDuplicateProfile, including when two
// requests race past the service's existence check.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, first_name, last_name, gender, birthdate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, profile.ID, profile.UserID, profile.FirstName, profile.LastName, profile.Gender, profile.Birthdate, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateProfile
		}
		return err
	}

	return nil
}

func (r *profileRepository) ByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM profiles WHERE id = $1`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, userID)
	return exists, err
}

// List returns profiles in insertion order.
func (r *profileRepository) List(ctx context.Context, limit, offset int) ([]*model.Profile, error) {
	profiles := []*model.Profile{}
	err := r.db.SelectContext(ctx, &profiles, `
		SELECT * FROM profiles
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM profiles`)
	return count, err
}

// Update writes the editable fields; user_id never changes after Create.
func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	profile.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET first_name = $1, last_name = $2, gender = $3, birthdate = $4, updated_at = $5
		WHERE id = $6
	`, profile.FirstName, profile.LastName, profile.Gender, profile.Birthdate, profile.UpdatedAt, profile.ID)
	if err != nil {
		return err
	}

	return expectRow(result, ErrProfileNotFound)
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectRow(result, ErrProfileNotFound)
}
