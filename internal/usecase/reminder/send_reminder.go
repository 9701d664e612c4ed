package reminder

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/domain"
	reminderdomain "github.com/BruksfildServices01/dentismart/internal/domain/reminder"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/infra/lock"
)

const (
	MsgSent      = "SMS de rappel envoyé avec succès"
	MsgSimulated = "Rappel traité en mode simulation (fournisseur SMS non configuré)"

	msgMissingID  = "Le paramètre rendezVousId est obligatoire"
	msgInProgress = "Un rappel est déjà en cours d'envoi pour ce rendez-vous"

	lockPrefix = "reminder:"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SendReminderInput struct {
	RendezVousID string

	// Session tenant; when set the rendez-vous must belong to it.
	CabinetID string
	ProfileID string
}

type SendReminderResult struct {
	Outcome   reminderdomain.Outcome `json:"outcome"`
	Simulated bool                   `json:"simulated"`
	MessageID string                 `json:"message_id"`
	Message   string                 `json:"-"`
}

// ======================================================
// USE CASE
// ======================================================

type SendReminder struct {
	repo       reminderdomain.Repository
	dispatcher *Dispatcher
	locker     lock.Locker
	events     events.Publisher
	audit      *audit.Dispatcher
	log        *zap.Logger
	now        func() time.Time
}

func NewSendReminder(
	repo reminderdomain.Repository,
	dispatcher *Dispatcher,
	locker lock.Locker,
	publisher events.Publisher,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *SendReminder {
	return &SendReminder{
		repo:       repo,
		dispatcher: dispatcher,
		locker:     locker,
		events:     publisher,
		audit:      auditDispatcher,
		log:        log,
		now:        time.Now,
	}
}

func (uc *SendReminder) Execute(
	ctx context.Context,
	in SendReminderInput,
) (*SendReminderResult, error) {

	id := strings.TrimSpace(in.RendezVousID)
	if id == "" {
		return nil, httperr.ErrValidation("missing_rendezvous_id", msgMissingID)
	}
	if !domain.ValidID(id) {
		return nil, rendezvous.ErrNotFound()
	}

	// --------------------------------------------------
	// 1. Serialize dispatches for this rendez-vous
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lockPrefix+id)
	if errors.Is(err, lock.ErrLocked) {
		return nil, httperr.ErrConflict("reminder_in_progress", msgInProgress)
	}
	if err != nil {
		return nil, httperr.ErrUpstream("reminder_lock_failed", "Erreur serveur", err)
	}
	defer release()

	// --------------------------------------------------
	// 2. Preconditions
	// --------------------------------------------------
	rv, err := uc.repo.GetRendezVousWithDetails(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, rendezvous.ErrNotFound()
	}
	if err != nil {
		return nil, httperr.ErrUpstream("rendezvous_lookup_failed", "Erreur serveur", err)
	}
	if in.CabinetID != "" && rv.CabinetID != in.CabinetID {
		return nil, rendezvous.ErrNotFound()
	}

	if err := rendezvous.CanSendReminder(rv, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Dispatch
	// --------------------------------------------------
	res, err := uc.dispatcher.Dispatch(ctx, id)
	if err != nil {
		uc.record(ctx, rv.CabinetID, id, in.ProfileID, reminderdomain.OutcomeFailed, "", err)
		return nil, err
	}

	messageID := ""
	if res.Message.ProviderMessageID != nil {
		messageID = *res.Message.ProviderMessageID
	}
	uc.record(ctx, rv.CabinetID, id, in.ProfileID, res.Outcome, messageID, nil)

	out := &SendReminderResult{
		Outcome:   res.Outcome,
		Simulated: res.Outcome == reminderdomain.OutcomeSimulated,
		MessageID: messageID,
		Message:   MsgSent,
	}
	if out.Simulated {
		out.Message = MsgSimulated
	}
	return out, nil
}

// record publishes the outcome event and queues the audit entry. Neither
// can fail the request.
func (uc *SendReminder) record(
	ctx context.Context,
	cabinetID, rendezVousID, profileID string,
	outcome reminderdomain.Outcome,
	messageID string,
	cause error,
) {
	ev := events.ReminderEvent{
		RendezVousID:      rendezVousID,
		CabinetID:         cabinetID,
		Outcome:           string(outcome),
		ProviderMessageID: messageID,
		OccurredAt:        uc.now(),
	}
	key := events.ReminderSent
	action := "reminder_sent"
	if cause != nil {
		ev.Error = clientMessage(cause)
		key = events.ReminderFailed
		action = "reminder_failed"
	}

	if err := uc.events.PublishJSON(context.WithoutCancel(ctx), key, ev); err != nil {
		uc.log.Warn("publish reminder event failed",
			zap.String("rendez_vous_id", rendezVousID),
			zap.Error(err),
		)
	}

	var pid *string
	if profileID != "" {
		pid = &profileID
	}
	uc.audit.Dispatch(audit.Event{
		CabinetID: cabinetID,
		ProfileID: pid,
		Action:    action,
		Entity:    "rendez_vous",
		EntityID:  &rendezVousID,
		Metadata:  map[string]any{"outcome": outcome, "provider_message_id": messageID},
	})
}
