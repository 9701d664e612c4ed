package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/infra/lock"
	"github.com/BruksfildServices01/dentismart/internal/infra/memstore"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

func newSendReminder(store *memstore.Store, provider sms.Provider, locker lock.Locker, pub events.Publisher) *SendReminder {
	uc := NewSendReminder(store, newDispatcher(store, provider, zap.NewNop()), locker, pub, nil, zap.NewNop())
	uc.now = func() time.Time { return testNow }
	return uc
}

func sentRows(store *memstore.Store) int {
	n := 0
	for _, m := range store.Messages() {
		if m.Status == "sent" {
			n++
		}
	}
	return n
}

func TestSendReminderSimulated(t *testing.T) {
	f := newFixture(t, "+41791234567")
	pub := &recordingPublisher{}
	uc := newSendReminder(f.store, unconfigured(), lock.Noop{}, pub)

	out, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Simulated || out.Message != MsgSimulated {
		t.Errorf("result = %+v", out)
	}
	if keys := pub.Keys(); len(keys) != 1 || keys[0] != events.ReminderSent {
		t.Errorf("published = %v", keys)
	}
}

func TestSendReminderPreconditions(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		f := newFixture(t, "+41791234567")
		uc := newSendReminder(f.store, unconfigured(), lock.Noop{}, events.Noop{})

		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: "  "})
		if !httperr.IsBusiness(err, "missing_rendezvous_id") || httperr.Status(err) != 400 {
			t.Errorf("err = %v", err)
		}
	})

	for name, id := range map[string]string{
		"not found":    "7d444840-9dc0-11d1-b245-5ffdce74fad2",
		"malformed id": "abc",
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, "+41791234567")
			uc := newSendReminder(f.store, unconfigured(), lock.Noop{}, events.Noop{})

			_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: id})
			if !httperr.IsBusiness(err, "rendezvous_not_found") || httperr.Status(err) != 404 {
				t.Errorf("err = %v, status = %d, want 404", err, httperr.Status(err))
			}
			if len(f.store.Messages()) != 0 {
				t.Error("precheck failure should not write a message row")
			}
		})
	}

	t.Run("other cabinet", func(t *testing.T) {
		f := newFixture(t, "+41791234567")
		uc := newSendReminder(f.store, unconfigured(), lock.Noop{}, events.Noop{})

		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID, CabinetID: "another"})
		if httperr.Status(err) != 404 {
			t.Errorf("status = %d, want 404", httperr.Status(err))
		}
	})

	t.Run("already sent rejected before provider", func(t *testing.T) {
		f := newFixture(t, "+41791234567")
		if err := f.store.MarkReminderSent(context.Background(), f.rv.ID, testNow); err != nil {
			t.Fatal(err)
		}
		sender := &fakeSender{}
		uc := newSendReminder(f.store, configured(sender), lock.Noop{}, events.Noop{})

		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
		if !httperr.IsBusiness(err, "reminder_already_sent") || httperr.Status(err) != 400 {
			t.Errorf("err = %v", err)
		}
		if sender.Calls() != 0 {
			t.Errorf("provider called %d times", sender.Calls())
		}
	})

	t.Run("past rendez-vous", func(t *testing.T) {
		f := newFixture(t, "+41791234567")
		sender := &fakeSender{}
		uc := newSendReminder(f.store, configured(sender), lock.Noop{}, events.Noop{})
		uc.now = func() time.Time { return f.rv.StartsAt.Add(time.Minute) }

		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
		if !httperr.IsBusiness(err, "rendezvous_in_past") {
			t.Errorf("err = %v", err)
		}
		if sender.Calls() != 0 {
			t.Errorf("provider called %d times", sender.Calls())
		}
	})

	t.Run("no phone", func(t *testing.T) {
		f := newFixture(t, "")
		sender := &fakeSender{}
		uc := newSendReminder(f.store, configured(sender), lock.Noop{}, events.Noop{})

		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
		if !httperr.IsBusiness(err, "patient_without_phone") || httperr.Status(err) != 400 {
			t.Errorf("err = %v", err)
		}
		if sender.Calls() != 0 {
			t.Errorf("provider called %d times", sender.Calls())
		}
	})
}

func TestSendReminderProviderFailurePublishesFailed(t *testing.T) {
	f := newFixture(t, "+41791234567")
	pub := &recordingPublisher{}
	uc := newSendReminder(f.store, configured(&fakeSender{err: errBoom}), lock.Noop{}, pub)

	_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
	if httperr.Status(err) != 500 {
		t.Fatalf("status = %d, want 500", httperr.Status(err))
	}
	if keys := pub.Keys(); len(keys) != 1 || keys[0] != events.ReminderFailed {
		t.Errorf("published = %v", keys)
	}
}

func TestSendReminderTwiceSequentially(t *testing.T) {
	f := newFixture(t, "+41791234567")
	sender := &fakeSender{}
	uc := newSendReminder(f.store, configured(sender), lock.Noop{}, events.Noop{})

	if _, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID}); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
	if !httperr.IsBusiness(err, "reminder_already_sent") {
		t.Fatalf("second Execute err = %v", err)
	}

	if sentRows(f.store) != 1 || sender.Calls() != 1 {
		t.Errorf("sent rows = %d, provider calls = %d, want 1 and 1", sentRows(f.store), sender.Calls())
	}
}

// Without serialization both callers pass the flag check before either
// sets it, and two reminders go out.
func TestSendReminderRaceWindowWithoutLock(t *testing.T) {
	f := newFixture(t, "+41791234567")
	sender := &fakeSender{
		arrived: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	uc := newSendReminder(f.store, configured(sender), lock.Noop{}, events.Noop{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
		}(i)
	}

	<-sender.arrived
	<-sender.arrived
	close(sender.release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("call %d: %v", i, err)
		}
	}
	if got := sentRows(f.store); got != 2 {
		t.Errorf("sent rows = %d, want 2 (race window)", got)
	}
}

func TestSendReminderLockRejectsConcurrentCall(t *testing.T) {
	f := newFixture(t, "+41791234567")
	sender := &fakeSender{
		arrived: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	uc := newSendReminder(f.store, configured(sender), lock.NewMemory(), events.Noop{})

	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
		firstErr <- err
	}()

	<-sender.arrived

	_, err := uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
	if !httperr.IsBusiness(err, "reminder_in_progress") || httperr.Status(err) != 409 {
		t.Errorf("concurrent call err = %v, want reminder_in_progress", err)
	}

	close(sender.release)
	if err := <-firstErr; err != nil {
		t.Fatalf("first call: %v", err)
	}

	// once the flag is committed, the next call is rejected by the flag check
	_, err = uc.Execute(context.Background(), SendReminderInput{RendezVousID: f.rv.ID})
	if !httperr.IsBusiness(err, "reminder_already_sent") {
		t.Errorf("follow-up err = %v", err)
	}

	if got := sentRows(f.store); got != 1 {
		t.Errorf("sent rows = %d, want 1", got)
	}
}
