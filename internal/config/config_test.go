package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears keys for the duration of the test. An empty value is not
// the same as unset: defaults only apply to absent variables.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if prev, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, prev) })
		}
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t,
		"SERVER_PORT",
		"DEFAULT_TIMEZONE",
		"TWILIO_ACCOUNT_SID",
		"TWILIO_AUTH_TOKEN",
		"TWILIO_PHONE_NUMBER",
		"REMINDER_LOCK_TTL",
	)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr())
	}
	if cfg.DefaultTimezone != "Europe/Zurich" {
		t.Errorf("DefaultTimezone = %q", cfg.DefaultTimezone)
	}
	if cfg.ReminderLockTTL != 2*time.Minute {
		t.Errorf("ReminderLockTTL = %v", cfg.ReminderLockTTL)
	}
	if cfg.TwilioAccountSID != "" || cfg.TwilioPhoneNumber != "" {
		t.Errorf("twilio credentials = %q/%q, want empty", cfg.TwilioAccountSID, cfg.TwilioPhoneNumber)
	}
}

func TestLoadSMSCredentials(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_PHONE_NUMBER", "+41445551234")
	unsetenv(t, "REMINDER_LOCK_TTL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TwilioAccountSID != "AC123" || cfg.TwilioAuthToken != "secret" || cfg.TwilioPhoneNumber != "+41445551234" {
		t.Errorf("twilio credentials = %+v", cfg)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REMINDER_LOCK_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REMINDER_LOCK_TTL")
	}
}

func TestContactMissing(t *testing.T) {
	t.Setenv("GMAIL_USER", "bot@example.ch")
	t.Setenv("ENCRYPTION_KEY", "k")
	unsetenv(t, "GMAIL_APP_PASSWORD", "ADMIN_EMAIL", "AI_API_KEY", "PORT", "AI_MODEL", "SMTP_PORT")

	cfg, err := LoadContact()
	if err != nil {
		t.Fatalf("LoadContact: %v", err)
	}

	if cfg.Addr() != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr())
	}
	if cfg.AIModel != "gpt-4" {
		t.Errorf("AIModel = %q", cfg.AIModel)
	}

	missing := map[string]bool{}
	for _, m := range cfg.Missing() {
		missing[m] = true
	}
	for _, want := range []string{"GMAIL_APP_PASSWORD", "ADMIN_EMAIL", "AI_API_KEY"} {
		if !missing[want] {
			t.Errorf("Missing() lacks %s: %v", want, cfg.Missing())
		}
	}
	if missing["GMAIL_USER"] || missing["ENCRYPTION_KEY"] {
		t.Errorf("Missing() reports set variables: %v", cfg.Missing())
	}
}
