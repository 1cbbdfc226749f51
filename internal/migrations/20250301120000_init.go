package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE business_profiles (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL UNIQUE,
		business_name VARCHAR NOT NULL,
		business_type VARCHAR NOT NULL DEFAULT '',
		industry VARCHAR NOT NULL DEFAULT '',
		target_audience TEXT NOT NULL DEFAULT '',
		business_description TEXT NOT NULL DEFAULT '',
		location VARCHAR NOT NULL DEFAULT '',
		website VARCHAR NOT NULL DEFAULT '',
		phone VARCHAR NOT NULL DEFAULT '',
		email VARCHAR NOT NULL DEFAULT '',
		brand_voice VARCHAR NOT NULL DEFAULT '',
		social_media_platforms TEXT[] NOT NULL DEFAULT '{}',
		business_goals TEXT[] NOT NULL DEFAULT '{}',
		business_challenges TEXT[] NOT NULL DEFAULT '{}',
		competitors TEXT[] NOT NULL DEFAULT '{}',
		onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE business_profiles;
	`)
	if err != nil {
		return err
	}
	return nil
}
