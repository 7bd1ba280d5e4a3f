package notification

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"promohub/internal/talent/models"
	"promohub/pkg/platform/audit"
)

// Notifier sends the two registration emails: a confirmation to the
// applicant and a heads-up to the admin inbox. Delivery is best-effort;
// a completed registration is never rolled back over a bounced email.
type Notifier struct {
	mailer     Mailer
	adminEmail string
	logger     *slog.Logger
	auditor    *audit.Publisher
}

func NewNotifier(mailer Mailer, adminEmail string, logger *slog.Logger, auditor *audit.Publisher) *Notifier {
	return &Notifier{
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
		auditor:    auditor,
	}
}

// RegistrationCompleted fans both emails out concurrently and waits for
// them. Callers run it in a goroutine when they must not block.
func (n *Notifier) RegistrationCompleted(ctx context.Context, t models.Talent) {
	data := registrationData{
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		UniqueID:    t.UniqueID,
		SubmittedAt: formatSubmittedAt(t.CreatedAt),
		Nationality: t.Nationality,
		Area:        t.Area,
		TalentType:  string(t.TalentType),
	}

	// Plain group: one recipient failing must not cancel the other send.
	var g errgroup.Group
	g.Go(func() error {
		subject, body, err := renderConfirmation(data)
		if err != nil {
			return err
		}
		return n.deliver(ctx, t.Email, subject, body, t.UniqueID)
	})
	if n.adminEmail != "" {
		g.Go(func() error {
			subject, body, err := renderAdminNotify(data)
			if err != nil {
				return err
			}
			return n.deliver(ctx, n.adminEmail, subject, body, t.UniqueID)
		})
	}
	// Failures were already logged and audited per recipient.
	_ = g.Wait()
}

func (n *Notifier) deliver(ctx context.Context, to, subject, body, uniqueID string) error {
	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := n.mailer.Send(sendCtx, to, subject, body); err != nil {
		n.logger.Error("registration email failed",
			"to", to,
			"unique_id", uniqueID,
			"error", err,
		)
		n.auditor.Emit(ctx, audit.Event{
			Action:  audit.ActionNotificationFailed,
			Subject: uniqueID,
			Reason:  err.Error(),
		})
		return err
	}
	return nil
}
