package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upPostTemplates, downPostTemplates)
}

func upPostTemplates(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE post_templates (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		title_template TEXT NOT NULL DEFAULT '',
		caption_template TEXT NOT NULL DEFAULT '',
		hashtags_template TEXT NOT NULL DEFAULT '',
		platform VARCHAR NOT NULL,
		post_type VARCHAR NOT NULL DEFAULT 'normal',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX idx_post_templates_user_platform ON post_templates (user_id, platform) WHERE is_active;
	`)
	if err != nil {
		return err
	}
	return nil
}

func downPostTemplates(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE post_templates;
	`)
	if err != nil {
		return err
	}
	return nil
}
