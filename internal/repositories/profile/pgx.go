package profile

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/internal/repositories"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("BusinessProfileRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

const profileColumns = "id, user_id, business_name, business_type, industry, target_audience, " +
	"business_description, location, website, phone, email, brand_voice, " +
	"social_media_platforms, business_goals, business_challenges, competitors, " +
	"onboarding_completed, created_at, updated_at"

// Upsert inserts the profile for its user or replaces the existing one
func (p *Pgx) Upsert(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error) {
	now := time.Now()
	query, args, err := repositories.SqBuilder.
		Insert("business_profiles").
		Columns(
			"user_id", "business_name", "business_type", "industry", "target_audience",
			"business_description", "location", "website", "phone", "email", "brand_voice",
			"social_media_platforms", "business_goals", "business_challenges", "competitors",
			"onboarding_completed", "created_at", "updated_at",
		).
		Values(
			profile.UserID, profile.BusinessName, profile.BusinessType, profile.Industry,
			profile.TargetAudience, profile.BusinessDescription, profile.Location,
			profile.Website, profile.Phone, profile.Email, profile.BrandVoice,
			profile.SocialMediaPlatforms, profile.BusinessGoals, profile.BusinessChallenges,
			profile.Competitors, profile.OnboardingCompleted, now, now,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			business_type = EXCLUDED.business_type,
			industry = EXCLUDED.industry,
			target_audience = EXCLUDED.target_audience,
			business_description = EXCLUDED.business_description,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			brand_voice = EXCLUDED.brand_voice,
			social_media_platforms = EXCLUDED.social_media_platforms,
			business_goals = EXCLUDED.business_goals,
			business_challenges = EXCLUDED.business_challenges,
			competitors = EXCLUDED.competitors,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	row := p.pg.QueryRow(ctx, query, args...)
	saved, err := scanProfile(row)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByUserID returns the profile owned by the given user
func (p *Pgx) GetByUserID(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	query, args, err := repositories.SqBuilder.
		Select(profileColumns).
		From("business_profiles").
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	row := p.pg.QueryRow(ctx, query, args...)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// DeleteByUserID removes the profile owned by the given user
func (p *Pgx) DeleteByUserID(ctx context.Context, userID string) error {
	query, args, err := repositories.SqBuilder.
		Delete("business_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.BusinessName, &profile.BusinessType,
		&profile.Industry, &profile.TargetAudience, &profile.BusinessDescription,
		&profile.Location, &profile.Website, &profile.Phone, &profile.Email,
		&profile.BrandVoice, &profile.SocialMediaPlatforms, &profile.BusinessGoals,
		&profile.BusinessChallenges, &profile.Competitors, &profile.OnboardingCompleted,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
