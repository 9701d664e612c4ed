package lead

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const (
	MsgSubmitted = "Votre demande a été envoyée avec succès"
	MsgFailed    = "Une erreur est survenue lors du traitement de votre demande. Veuillez réessayer."
)

type Encryptor interface {
	Encrypt(plaintext string) (string, error)
}

// Service runs one contact submission end to end.
type Service struct {
	analyzer   Analyzer
	encryptor  Encryptor
	store      Store
	archiver   Archiver
	mailer     Mailer
	publisher  events.Publisher
	adminEmail string
	log        *zap.Logger
	now        func() time.Time
}

type Deps struct {
	Analyzer   Analyzer // nil means keyword analysis only
	Encryptor  Encryptor
	Store      Store
	Archiver   Archiver
	Mailer     Mailer
	Publisher  events.Publisher
	AdminEmail string
	Log        *zap.Logger
}

func NewService(d Deps) *Service {
	s := &Service{
		analyzer:   d.Analyzer,
		encryptor:  d.Encryptor,
		store:      d.Store,
		archiver:   d.Archiver,
		mailer:     d.Mailer,
		publisher:  d.Publisher,
		adminEmail: d.AdminEmail,
		log:        d.Log,
		now:        time.Now,
	}
	if s.archiver == nil {
		s.archiver = NoopArchiver{}
	}
	if s.publisher == nil {
		s.publisher = events.Noop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Submit validates, analyzes, stores and notifies. Validation problems come
// back as httperr validation errors; everything else is an upstream failure
// carrying MsgFailed.
func (s *Service) Submit(ctx context.Context, raw Submission) (*models.Lead, error) {
	sub := raw.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	analysis := s.analyze(ctx, sub.Details)

	lead, err := s.seal(sub, analysis)
	if err != nil {
		return nil, s.upstream("encrypt", err)
	}
	if err := s.store.CreateLead(ctx, lead); err != nil {
		return nil, s.upstream("store lead", err)
	}

	if err := s.archiver.Archive(ctx, lead); err != nil {
		s.log.Warn("lead archive failed", zap.String("lead_id", lead.ID), zap.Error(err))
	}

	admin, err := AdminMail(s.adminEmail, sub, analysis)
	if err != nil {
		return nil, s.upstream("render admin mail", err)
	}
	if err := s.mailer.Send(ctx, admin); err != nil {
		return nil, s.upstream("send admin mail", err)
	}

	client, err := ClientMail(sub, analysis)
	if err != nil {
		return nil, s.upstream("render client mail", err)
	}
	if err := s.mailer.Send(ctx, client); err != nil {
		return nil, s.upstream("send client mail", err)
	}

	err = s.publisher.PublishJSON(ctx, events.LeadCreated, events.LeadEvent{
		LeadID:     lead.ID,
		Priority:   string(analysis.Priority),
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Warn("lead event publish failed", zap.String("lead_id", lead.ID), zap.Error(err))
	}

	return lead, nil
}

func (s *Service) analyze(ctx context.Context, details string) Analysis {
	if s.analyzer == nil {
		return KeywordAnalysis(details)
	}
	a, err := s.analyzer.Analyze(ctx, details)
	if err != nil {
		s.log.Warn("ai analysis failed, using keyword fallback", zap.Error(err))
		return KeywordAnalysis(details)
	}
	return a
}

func (s *Service) seal(sub Submission, a Analysis) (*models.Lead, error) {
	email, err := s.encryptor.Encrypt(sub.Email)
	if err != nil {
		return nil, err
	}
	details, err := s.encryptor.Encrypt(sub.Details)
	if err != nil {
		return nil, err
	}

	return &models.Lead{
		Name:      sub.Name,
		Email:     email,
		Company:   optional(sub.Company),
		Budget:    optional(sub.Budget),
		Deadline:  optional(sub.Deadline),
		Details:   details,
		AISummary: a.Summary,
		Priority:  string(a.Priority),
		CreatedAt: s.now(),
	}, nil
}

func (s *Service) upstream(step string, err error) error {
	return httperr.ErrUpstream("lead_failed", MsgFailed, fmt.Errorf("%s: %w", step, err))
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
