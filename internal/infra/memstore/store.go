// Package memstore is an in-process implementation of the domain
// repositories. It backs the use case and handler tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/domain"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/domain/reminder"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type Store struct {
	mu sync.Mutex

	cabinets   []models.Cabinet
	profiles   []models.Profile
	dentists   []models.Dentist
	patients   []models.Patient
	rendezVous []models.RendezVous
	messages   []models.Message
	auditLogs  []models.AuditLog

	clock time.Time

	// Failure injection.
	FailCreateMessage    error
	FailMarkReminderSent error
	FailList             error
}

func New() *Store {
	return &Store{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// tick returns strictly increasing timestamps so created_at ordering is stable.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// ======================================================
// SEEDING
// ======================================================

func (s *Store) AddCabinet(c models.Cabinet) models.Cabinet {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignID(&c.ID)
	c.CreatedAt = s.tick()
	s.cabinets = append(s.cabinets, c)
	return c
}

func (s *Store) AddDentist(d models.Dentist) models.Dentist {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignID(&d.ID)
	d.CreatedAt = s.tick()
	s.dentists = append(s.dentists, d)
	return d
}

func (s *Store) AddPatient(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignID(&p.ID)
	p.CreatedAt = s.tick()
	s.patients = append(s.patients, p)
	return p
}

func (s *Store) AddRendezVous(rv models.RendezVous) models.RendezVous {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignID(&rv.ID)
	rv.CreatedAt = s.tick()
	s.rendezVous = append(s.rendezVous, rv)
	return rv
}

// ======================================================
// INSPECTION
// ======================================================

func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

func (s *Store) Patients() []models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Patient(nil), s.patients...)
}

func (s *Store) RendezVousByID(id string) (models.RendezVous, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.rendezVous {
		if rv.ID == id {
			return rv, true
		}
	}
	return models.RendezVous{}, false
}

func (s *Store) RendezVousCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rendezVous)
}

// ======================================================
// CABINET
// ======================================================

func (s *Store) GetCabinet(_ context.Context, id string) (*models.Cabinet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.cabinet(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (s *Store) FirstCabinet(context.Context) (*models.Cabinet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cabinets) == 0 {
		return nil, domain.ErrNotFound
	}
	cp := s.cabinets[0]
	return &cp, nil
}

func (s *Store) cabinet(id string) *models.Cabinet {
	for i := range s.cabinets {
		if s.cabinets[i].ID == id {
			return &s.cabinets[i]
		}
	}
	return nil
}

// ======================================================
// DENTIST / PATIENT
// ======================================================

func (s *Store) ListActiveDentists(_ context.Context, cabinetID string) ([]models.Dentist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailList != nil {
		return nil, s.FailList
	}

	var out []models.Dentist
	for _, d := range s.dentists {
		if d.IsActive && (cabinetID == "" || d.CabinetID == cabinetID) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (s *Store) dentist(id string) *models.Dentist {
	for i := range s.dentists {
		if s.dentists[i].ID == id {
			return &s.dentists[i]
		}
	}
	return nil
}

func (s *Store) patient(id string) *models.Patient {
	for i := range s.patients {
		if s.patients[i].ID == id {
			return &s.patients[i]
		}
	}
	return nil
}

func (s *Store) DentistInCabinet(_ context.Context, cabinetID, dentistID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.dentist(dentistID)
	return d != nil && d.CabinetID == cabinetID, nil
}

func (s *Store) PatientInCabinet(_ context.Context, cabinetID, patientID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.patient(patientID)
	return p != nil && p.CabinetID == cabinetID, nil
}

func (s *Store) CreatePatient(_ context.Context, p *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.DentistID != nil && s.dentist(*p.DentistID) == nil {
		return fkViolation("fk_patients_dentist")
	}
	assignID(&p.ID)
	p.CreatedAt = s.tick()
	p.UpdatedAt = p.CreatedAt
	s.patients = append(s.patients, *p)
	return nil
}

func (s *Store) ListActivePatients(_ context.Context, cabinetID string) ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailList != nil {
		return nil, s.FailList
	}

	var out []models.Patient
	for _, p := range s.patients {
		if !p.IsActive || (cabinetID != "" && p.CabinetID != cabinetID) {
			continue
		}
		if p.DentistID != nil {
			if d := s.dentist(*p.DentistID); d != nil {
				cp := *d
				p.Dentist = &cp
			}
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CountActivePatients(ctx context.Context, cabinetID string) (int64, error) {
	list, err := s.ListActivePatients(ctx, cabinetID)
	return int64(len(list)), err
}

// ======================================================
// PROFILE
// ======================================================

func (s *Store) CreateCabinetWithOwner(_ context.Context, cabinet *models.Cabinet, owner *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if strings.EqualFold(p.Email, owner.Email) {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_profiles_email"}
		}
	}

	assignID(&cabinet.ID)
	cabinet.CreatedAt = s.tick()
	s.cabinets = append(s.cabinets, *cabinet)

	assignID(&owner.ID)
	owner.CabinetID = cabinet.ID
	owner.CreatedAt = s.tick()
	s.profiles = append(s.profiles, *owner)
	return nil
}

func (s *Store) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Email == email {
			return s.withCabinet(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return s.withCabinet(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) withCabinet(p models.Profile) *models.Profile {
	if c := s.cabinet(p.CabinetID); c != nil {
		p.Cabinet = *c
	}
	return &p
}

// ======================================================
// RENDEZ-VOUS
// ======================================================

func (s *Store) CreateRendezVous(_ context.Context, rv *models.RendezVous) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.patient(rv.PatientID) == nil {
		return fkViolation("fk_rendez_vous_patient")
	}
	if s.dentist(rv.DentistID) == nil {
		return fkViolation("fk_rendez_vous_dentist")
	}
	assignID(&rv.ID)
	rv.CreatedAt = s.tick()
	rv.UpdatedAt = rv.CreatedAt
	s.rendezVous = append(s.rendezVous, *rv)
	return nil
}

func (s *Store) ListRendezVous(_ context.Context, cabinetID string) ([]models.RendezVous, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailList != nil {
		return nil, s.FailList
	}

	var out []models.RendezVous
	for _, rv := range s.rendezVous {
		if cabinetID == "" || rv.CabinetID == cabinetID {
			out = append(out, s.details(rv))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (s *Store) CountStartingBetween(_ context.Context, cabinetID string, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, rv := range s.rendezVous {
		if cabinetID != "" && rv.CabinetID != cabinetID {
			continue
		}
		if !rv.StartsAt.Before(from) && rv.StartsAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetRendezVous(_ context.Context, id string) (*models.RendezVous, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.rendezVous {
		if rv.ID == id {
			return &rv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) UpdateStatus(_ context.Context, id string, status rendezvous.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rendezVous {
		if s.rendezVous[i].ID == id {
			s.rendezVous[i].Status = string(status)
			s.rendezVous[i].UpdatedAt = s.tick()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) details(rv models.RendezVous) models.RendezVous {
	if p := s.patient(rv.PatientID); p != nil {
		cp := *p
		rv.Patient = &cp
	}
	if d := s.dentist(rv.DentistID); d != nil {
		cp := *d
		rv.Dentist = &cp
	}
	if c := s.cabinet(rv.CabinetID); c != nil {
		cp := *c
		rv.Cabinet = &cp
	}
	return rv
}

// ======================================================
// REMINDER
// ======================================================

func (s *Store) GetRendezVousWithDetails(_ context.Context, id string) (*models.RendezVous, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.rendezVous {
		if rv.ID == id {
			out := s.details(rv)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) CreateMessage(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreateMessage != nil {
		return s.FailCreateMessage
	}
	assignID(&msg.ID)
	msg.CreatedAt = s.tick()
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *Store) MarkReminderSent(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailMarkReminderSent != nil {
		return s.FailMarkReminderSent
	}
	for i := range s.rendezVous {
		if s.rendezVous[i].ID == id {
			s.rendezVous[i].ReminderSent = true
			s.rendezVous[i].ReminderSentAt = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

// ======================================================
// AUDIT
// ======================================================

func (s *Store) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := models.AuditLog{
		CabinetID: ev.CabinetID,
		ProfileID: ev.ProfileID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		CreatedAt: s.tick(),
	}
	assignID(&row.ID)
	s.auditLogs = append(s.auditLogs, row)
	return nil
}

func (s *Store) ListAuditLogs(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f = f.Normalize()

	var matched []models.AuditLog
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		l := s.auditLogs[i]
		switch {
		case l.CabinetID != f.CabinetID,
			f.Action != "" && l.Action != f.Action,
			f.Entity != "" && l.Entity != f.Entity,
			f.From != nil && l.CreatedAt.Before(*f.From),
			f.To != nil && !l.CreatedAt.Before(*f.To):
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	start := f.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

var (
	_ audit.Writer             = (*Store)(nil)
	_ audit.Reader             = (*Store)(nil)
	_ clinic.Repository        = (*Store)(nil)
	_ clinic.ProfileRepository = (*Store)(nil)
	_ rendezvous.Repository    = (*Store)(nil)
	_ reminder.Repository      = (*Store)(nil)
)
