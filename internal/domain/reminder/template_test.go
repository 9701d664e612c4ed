package reminder

import (
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

func TestRenderBody(t *testing.T) {
	rv := &models.RendezVous{
		StartsAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Patient:  &models.Patient{FirstName: "Jean", Phone: "+41791234567"},
		Dentist:  &models.Dentist{FirstName: "Claire", LastName: "Martin"},
		Cabinet:  &models.Cabinet{Name: "Cabinet du Lac", Timezone: "Europe/Zurich"},
	}

	body := RenderBody(rv)

	for _, want := range []string{
		"Bonjour Jean,",
		"chez Cabinet du Lac :",
		"📅 dimanche 1 juin 2025",
		"⏰ 11:00",
		"👨‍⚕️ Dr. Claire Martin",
		"À bientôt !",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderBodyFallbacks(t *testing.T) {
	rv := &models.RendezVous{
		StartsAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Patient:  &models.Patient{FirstName: "Jean"},
	}

	body := RenderBody(rv)

	if !strings.Contains(body, "chez notre cabinet :") {
		t.Errorf("missing cabinet fallback:\n%s", body)
	}
	if !strings.Contains(body, "votre dentiste") {
		t.Errorf("missing dentist fallback:\n%s", body)
	}
	// no cabinet timezone: default zone applies
	if !strings.Contains(body, "⏰ 11:00") {
		t.Errorf("expected default timezone rendering:\n%s", body)
	}
}

func TestSimulatedMessageID(t *testing.T) {
	now := time.UnixMilli(1748768400123)
	if got := SimulatedMessageID(now); got != "SIMULATED_1748768400123" {
		t.Errorf("SimulatedMessageID = %q", got)
	}
}

func TestOutcomeMessageStatus(t *testing.T) {
	if OutcomeSimulated.MessageStatus() != "sent" {
		t.Error("simulated should be recorded as sent")
	}
	if OutcomeSent.MessageStatus() != "sent" {
		t.Error("sent should be recorded as sent")
	}
	if OutcomeFailed.MessageStatus() != "failed" {
		t.Error("failed should be recorded as failed")
	}
}
