package database

import (
	"context"
	"database/sql"
	"log"
	"strings"
)

// Migrate creates the tables the service needs.  Statements are idempotent
// so restarting the server against an existing database is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id                   BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name                 VARCHAR(255) NOT NULL,
			phone                VARCHAR(50)  NOT NULL,
			tour                 TEXT,
			tours                TEXT,
			date                 DATE NOT NULL,
			time                 VARCHAR(50) NOT NULL,
			people               INT NOT NULL DEFAULT 1,
			total_price          DECIMAL(10,2) NOT NULL DEFAULT 0,
			transport            BOOLEAN NOT NULL DEFAULT FALSE,
			special_request      TEXT,
			confirmation_message TEXT,
			status ENUM('pending','confirmed','cancelled','successful') NOT NULL DEFAULT 'pending',
			created_at           TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			token_hash CHAR(64) NOT NULL UNIQUE,
			expires_at DATETIME NOT NULL,
			revoked_at DATETIME NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}

	// MySQL has no CREATE INDEX IF NOT EXISTS; tolerate "duplicate key name"
	// (error 1061) on reruns.
	indexes := []string{
		`CREATE INDEX idx_reservations_status ON reservations (status)`,
		`CREATE INDEX idx_reservations_created ON reservations (created_at)`,
		`CREATE INDEX idx_refresh_expires ON refresh_tokens (expires_at)`,
	}
	for _, s := range indexes {
		if _, err := db.ExecContext(ctx, s); err != nil {
			if strings.Contains(err.Error(), "Duplicate key name") ||
				strings.Contains(err.Error(), "1061") {
				continue
			}
			return err
		}
	}

	log.Println("database migration complete")
	return nil
}
