package template

import (
	"context"
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
		logger: logger.WithComponent("PostTemplateRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

const templateColumns = "id, user_id, name, title_template, caption_template, " +
	"hashtags_template, platform, post_type, is_active, created_at, updated_at"

// Create adds a new template and returns it with its assigned id
func (p *Pgx) Create(ctx context.Context, tpl domain.PostTemplate) (*domain.PostTemplate, error) {
	now := time.Now()
	query, args, err := repositories.SqBuilder.
		Insert("post_templates").
		Columns(
			"user_id", "name", "title_template", "caption_template", "hashtags_template",
			"platform", "post_type", "is_active", "created_at", "updated_at",
		).
		Values(
			tpl.UserID, tpl.Name, tpl.TitleTemplate, tpl.CaptionTemplate,
			tpl.HashtagsTemplate, string(tpl.Platform), string(tpl.PostType),
			tpl.IsActive, now, now,
		).
		Suffix("RETURNING " + templateColumns).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	row := p.pg.QueryRow(ctx, query, args...)
	saved, err := scanTemplate(row)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByUserID returns all templates owned by the given user, newest first
func (p *Pgx) GetByUserID(ctx context.Context, userID string) ([]*domain.PostTemplate, error) {
	query, args, err := repositories.SqBuilder.
		Select(templateColumns).
		From("post_templates").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.queryTemplates(ctx, query, args)
}

// GetActiveByPlatform returns the active templates for a user and platform
func (p *Pgx) GetActiveByPlatform(ctx context.Context, userID string, platform domain.Platform) ([]*domain.PostTemplate, error) {
	query, args, err := repositories.SqBuilder.
		Select(templateColumns).
		From("post_templates").
		Where(sq.Eq{
			"user_id":   userID,
			"platform":  string(platform),
			"is_active": true,
		}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.queryTemplates(ctx, query, args)
}

// Delete removes a template if it belongs to the given user
func (p *Pgx) Delete(ctx context.Context, userID string, id int64) error {
	query, args, err := repositories.SqBuilder.
		Delete("post_templates").
		Where(sq.Eq{"id": id, "user_id": userID}).
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

func (p *Pgx) queryTemplates(ctx context.Context, query string, args []any) ([]*domain.PostTemplate, error) {
	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*domain.PostTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func scanTemplate(row pgx.Row) (*domain.PostTemplate, error) {
	var (
		tpl      domain.PostTemplate
		platform string
		postType string
	)
	err := row.Scan(
		&tpl.ID, &tpl.UserID, &tpl.Name, &tpl.TitleTemplate, &tpl.CaptionTemplate,
		&tpl.HashtagsTemplate, &platform, &postType, &tpl.IsActive,
		&tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	tpl.Platform = domain.Platform(platform)
	tpl.PostType = domain.PostType(postType)
	return &tpl, nil
}
