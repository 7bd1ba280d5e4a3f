package draft

import (
	"context"
	"encoding/json"
)

// Store snapshots one wizard step's form data, keyed per session and step.
// Drafts are saved only on an explicit user action, are never wired back into
// the live wizard state automatically, and all of a session's keys are cleared
// together on successful finalize.
//
// Implementations return sentinel.ErrNotFound from Load when no draft exists.
type Store interface {
	Save(ctx context.Context, sessionID, stepKey string, data json.RawMessage) error
	Load(ctx context.Context, sessionID, stepKey string) (json.RawMessage, error)
	Clear(ctx context.Context, sessionID string, stepKeys ...string) error
}
