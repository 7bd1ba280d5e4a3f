// Package audit records key actions taken against the talent registry:
// registrations, status changes, deletions and admin logins. Events fan
// out to one or more sinks; the memory sink backs tests and single-node
// deployments, the Kafka sink feeds downstream pipelines.
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Action identifies what happened.
type Action string

const (
	ActionTalentRegistered    Action = "talent_registered"
	ActionTalentStatusChanged Action = "talent_status_changed"
	ActionTalentDeleted       Action = "talent_deleted"
	ActionAdminLoginSucceeded Action = "admin_login_succeeded"
	ActionAdminLoginFailed    Action = "admin_login_failed"
	ActionNotificationFailed  Action = "notification_failed"
)

// Event is emitted from domain logic to capture key actions. Kept
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	// Subject is the entity acted on: a talent uniqueId or an admin username.
	Subject string `json:"subject"`
	// Actor is the admin who performed the action, empty for self-service
	// registration events.
	Actor     string `json:"actor,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Sink receives events. Append must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher fans events out to its sinks. Sink failures are logged,
// never propagated: an audit outage must not fail the user's request.
type Publisher struct {
	sinks  []Sink
	logger *slog.Logger
	now    func() time.Time
}

func NewPublisher(logger *slog.Logger, sinks ...Sink) *Publisher {
	return &Publisher{sinks: sinks, logger: logger, now: time.Now}
}

// Emit stamps the event if needed and appends it to every sink.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}
	for _, sink := range p.sinks {
		if err := sink.Append(ctx, event); err != nil {
			p.logger.Warn("audit append failed",
				"action", event.Action,
				"subject", event.Subject,
				"error", err,
			)
		}
	}
}
