package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/infra/memstore"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

var testNow = time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *memstore.Store
	rv    models.RendezVous
}

func newFixture(t *testing.T, phone string) fixture {
	t.Helper()

	store := memstore.New()
	cab := store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac", Timezone: "Europe/Zurich"})
	dentist := store.AddDentist(models.Dentist{CabinetID: cab.ID, FirstName: "Claire", LastName: "Martin", IsActive: true})
	patient := store.AddPatient(models.Patient{CabinetID: cab.ID, FirstName: "Jean", LastName: "Dupont", Phone: phone, IsActive: true})
	rv := store.AddRendezVous(models.RendezVous{
		CabinetID: cab.ID,
		PatientID: patient.ID,
		DentistID: dentist.ID,
		StartsAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:    "scheduled",
	})

	return fixture{store: store, rv: rv}
}

// fakeSender records calls and can block until released.
type fakeSender struct {
	mu    sync.Mutex
	calls []string
	err   error

	arrived chan struct{}
	release chan struct{}
}

func (s *fakeSender) Send(ctx context.Context, to, body string) (sms.Receipt, error) {
	s.mu.Lock()
	s.calls = append(s.calls, to)
	n := len(s.calls)
	s.mu.Unlock()

	if s.arrived != nil {
		s.arrived <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return sms.Receipt{}, s.err
	}
	return sms.Receipt{MessageID: "SM" + string(rune('0'+n)), Status: "queued"}, nil
}

func (s *fakeSender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func configured(sender sms.Sender) sms.Provider {
	return sms.Configured(sender, sms.Status{PhoneNumber: "+41445551234"})
}

func unconfigured() sms.Provider {
	return sms.Unconfigured(sms.Status{})
}

func newDispatcher(store *memstore.Store, provider sms.Provider, log *zap.Logger) *Dispatcher {
	d := NewDispatcher(store, provider, log)
	d.now = func() time.Time { return testNow }
	return d
}

var errBoom = errors.New("boom")
