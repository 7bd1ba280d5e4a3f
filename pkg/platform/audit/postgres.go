package audit

import (
	"context"
	"database/sql"
	"fmt"

	txcontext "promohub/pkg/platform/tx"
)

// PostgresSink appends events to an audit table. It joins an in-flight
// transaction from context, so finalize writes its audit row atomically
// with the talent insert.
type PostgresSink struct {
	db *sql.DB
}

func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

// Schema creates the audit table when missing.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id         BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMPTZ NOT NULL,
	action     TEXT NOT NULL,
	subject    TEXT NOT NULL,
	actor      TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	request_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_audit_events_subject ON audit_events (subject);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *PostgresSink) Append(ctx context.Context, event Event) error {
	const q = `
		INSERT INTO audit_events (occurred_at, action, subject, actor, reason, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	var err error
	if tx, ok := txcontext.From(ctx); ok {
		_, err = tx.ExecContext(ctx, q, event.Timestamp, event.Action, event.Subject, event.Actor, event.Reason, event.RequestID)
	} else {
		_, err = s.db.ExecContext(ctx, q, event.Timestamp, event.Action, event.Subject, event.Actor, event.Reason, event.RequestID)
	}
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
