package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrValidation("missing", "x"), http.StatusBadRequest},
		{ErrInvalidState("already_sent", "x"), http.StatusBadRequest},
		{ErrBusiness("invalid_state"), http.StatusBadRequest},
		{ErrNotFound("not_found", "x"), http.StatusNotFound},
		{ErrConflict("busy", "x"), http.StatusConflict},
		{ErrUnauthorized("bad_credentials", "x"), http.StatusUnauthorized},
		{ErrUpstream("sms", "x", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound("not_found", "x")), http.StatusNotFound},
	}

	for _, tt := range tests {
		if got := Status(tt.err); got != tt.want {
			t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func respond(err error) (*httptest.ResponseRecorder, map[string]any) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespondBusinessError(t *testing.T) {
	w, body := respond(ErrUpstream("sms_failed", "Erreur d'envoi SMS: quota", errors.New("twilio 429")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body["success"] != false || body["error"] != "Erreur d'envoi SMS: quota" || body["error_code"] != "sms_failed" {
		t.Errorf("body = %v", body)
	}
	if strings.Contains(w.Body.String(), "twilio 429") {
		t.Error("cause must not be exposed")
	}
}

func TestRespondPlainErrorIsGeneric(t *testing.T) {
	w, body := respond(errors.New("dial tcp: connection refused"))

	if w.Code != http.StatusInternalServerError || body["error"] != genericMessage {
		t.Errorf("%d %v", w.Code, body)
	}
}

func TestPostgresCodes(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	uniq := &pgconn.PgError{Code: "23505"}

	if !IsForeignKeyViolation(fk) || IsUniqueViolation(fk) {
		t.Error("foreign key violation not recognised")
	}
	if !IsUniqueViolation(uniq) || IsForeignKeyViolation(uniq) {
		t.Error("unique violation not recognised")
	}
	if IsForeignKeyViolation(errors.New("other")) {
		t.Error("plain error is not a violation")
	}
}
