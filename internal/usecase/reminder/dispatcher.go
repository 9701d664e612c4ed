package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/domain"
	reminderdomain "github.com/BruksfildServices01/dentismart/internal/domain/reminder"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const (
	failedBodyPlaceholder  = "Erreur lors de la génération du message"
	failedPhonePlaceholder = "unknown"
)

// Failure is returned for every dispatch that did not complete. Primary is
// what the caller sees; AuditErr is set when the failure row itself could
// not be written.
type Failure struct {
	Primary  error
	AuditErr error
}

func (f *Failure) Error() string {
	if f.AuditErr != nil {
		return fmt.Sprintf("%v (audit: %v)", f.Primary, f.AuditErr)
	}
	return f.Primary.Error()
}

func (f *Failure) Unwrap() error {
	return f.Primary
}

type Result struct {
	Outcome reminderdomain.Outcome
	Message *models.Message
}

// Dispatcher sends one reminder for a rendez-vous and records the attempt.
type Dispatcher struct {
	repo     reminderdomain.Repository
	provider sms.Provider
	log      *zap.Logger
	now      func() time.Time
}

func NewDispatcher(
	repo reminderdomain.Repository,
	provider sms.Provider,
	log *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

func (d *Dispatcher) Provider() sms.Provider {
	return d.provider
}

func (d *Dispatcher) Dispatch(ctx context.Context, rendezVousID string) (*Result, error) {

	// --------------------------------------------------
	// 1. Re-fetch with patient, dentist, cabinet
	// --------------------------------------------------
	rv, err := d.repo.GetRendezVousWithDetails(ctx, rendezVousID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, d.fail(ctx, rendezVousID, nil, "", rendezvous.ErrNotFound())
	}
	if err != nil {
		return nil, d.fail(ctx, rendezVousID, nil, "",
			httperr.ErrUpstream("rendezvous_lookup_failed", "Erreur serveur", err))
	}

	// --------------------------------------------------
	// 2. Patient reachable
	// --------------------------------------------------
	if err := rendezvous.RequirePhone(rv); err != nil {
		return nil, d.fail(ctx, rendezVousID, rv, "", err)
	}

	// --------------------------------------------------
	// 3. Render
	// --------------------------------------------------
	body := reminderdomain.RenderBody(rv)
	now := d.now()

	msg := newMessage(rv)
	msg.Body = body
	msg.SentAt = &now

	// --------------------------------------------------
	// 4-5. Send, or simulate
	// --------------------------------------------------
	var outcome reminderdomain.Outcome

	if sender, ok := d.provider.Sender(); ok {
		receipt, err := sender.Send(ctx, rv.Patient.Phone, body)
		if err != nil {
			return nil, d.fail(ctx, rendezVousID, rv, body,
				httperr.ErrUpstream("sms_send_failed", "Erreur d'envoi SMS: "+err.Error(), err))
		}

		outcome = reminderdomain.OutcomeSent
		msg.ProviderMessageID = &receipt.MessageID
		msg.ProviderStatus = &receipt.Status
	} else {
		outcome = reminderdomain.OutcomeSimulated
		simulatedID := reminderdomain.SimulatedMessageID(now)
		providerStatus := reminderdomain.ProviderStatusSimulated
		note := reminderdomain.SimulatedNote

		msg.ProviderMessageID = &simulatedID
		msg.ProviderStatus = &providerStatus
		msg.ErrorMessage = &note

		d.log.Info("reminder simulated",
			zap.String("rendez_vous_id", rendezVousID),
			zap.String("to", rv.Patient.Phone),
			zap.String("body", body),
		)
	}
	msg.Status = outcome.MessageStatus()

	// --------------------------------------------------
	// 6. Record the attempt
	// --------------------------------------------------
	if err := d.repo.CreateMessage(ctx, msg); err != nil {
		return nil, httperr.ErrUpstream("message_record_failed", "Erreur lors de l'enregistrement du message", err)
	}

	// --------------------------------------------------
	// 7. Flag the rendez-vous
	// --------------------------------------------------
	if err := d.repo.MarkReminderSent(ctx, rendezVousID, now); err != nil {
		return nil, httperr.ErrUpstream("reminder_flag_failed", "Erreur lors de la mise à jour du rendez-vous", err)
	}

	return &Result{Outcome: outcome, Message: msg}, nil
}

// fail records a failed attempt on a best-effort basis and reports both
// errors in a single log entry.
func (d *Dispatcher) fail(
	ctx context.Context,
	rendezVousID string,
	rv *models.RendezVous,
	body string,
	primary error,
) error {

	row := newMessage(rv)
	row.RendezVousID = &rendezVousID
	row.Status = reminderdomain.MessageStatusFailed
	row.Body = body
	if row.Body == "" {
		row.Body = failedBodyPlaceholder
	}
	if row.ToPhone == "" {
		row.ToPhone = failedPhonePlaceholder
	}
	reason := clientMessage(primary)
	row.ErrorMessage = &reason

	auditErr := d.repo.CreateMessage(context.WithoutCancel(ctx), row)

	d.log.Error("reminder dispatch failed",
		zap.String("rendez_vous_id", rendezVousID),
		zap.Error(primary),
		zap.NamedError("audit_error", auditErr),
	)

	return &Failure{Primary: primary, AuditErr: auditErr}
}

func newMessage(rv *models.RendezVous) *models.Message {
	msg := &models.Message{
		Channel:   reminderdomain.ChannelSMS,
		Type:      reminderdomain.TypeReminder,
		Direction: reminderdomain.DirectionOutbound,
	}
	if rv == nil {
		return msg
	}

	msg.RendezVousID = &rv.ID
	msg.CabinetID = &rv.CabinetID
	if rv.Patient != nil {
		msg.PatientID = &rv.Patient.ID
		msg.ToPhone = rv.Patient.Phone
	}
	return msg
}

func clientMessage(err error) string {
	var be httperr.BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return err.Error()
}
