// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalStateSchemaQuery = `
		CREATE TABLE IF NOT EXISTS local_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	upsertLocalStateQuery = `
		INSERT INTO local_state (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	getLocalStateQuery = `
		SELECT value
		FROM local_state
		WHERE key = $1;`

	deleteLocalStateQuery = `
		DELETE FROM local_state
		WHERE key = $1;`
)
