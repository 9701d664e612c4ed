package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/lead"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type leadRows struct {
	rows []*models.Lead
	err  error
}

func (s *leadRows) CreateLead(_ context.Context, l *models.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, l)
	return nil
}

type outbox struct {
	sent []lead.Mail
}

func (o *outbox) Send(_ context.Context, m lead.Mail) error {
	o.sent = append(o.sent, m)
	return nil
}

func newContactRouter(store *leadRows, mails *outbox) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := lead.NewService(lead.Deps{
		Encryptor:  lead.NewFieldEncryptor("0123456789abcdef0123456789abcdef"),
		Store:      store,
		Mailer:     mails,
		AdminEmail: "admin@agence.ch",
		Log:        zap.NewNop(),
	})

	r := gin.New()
	RegisterContactRoutes(r, svc, nil, zap.NewNop())
	return r
}

func postContact(r *gin.Engine, body string) (*httptest.ResponseRecorder, httpresp.Envelope[any]) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env httpresp.Envelope[any]
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestContactSubmit(t *testing.T) {
	store, mails := &leadRows{}, &outbox{}
	r := newContactRouter(store, mails)

	w, env := postContact(r, `{"name":"Marie","email":"marie@example.ch","details":"Un chatbot, asap"}`)
	if w.Code != http.StatusOK || !env.Success || env.Message != lead.MsgSubmitted {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	if len(store.rows) != 1 || store.rows[0].Priority != "high" || len(mails.sent) != 2 {
		t.Errorf("rows=%d mails=%d", len(store.rows), len(mails.sent))
	}
}

func TestContactValidation(t *testing.T) {
	store, mails := &leadRows{}, &outbox{}
	r := newContactRouter(store, mails)

	w, env := postContact(r, `{"name":"Marie","email":"marie@","details":"x"}`)
	if w.Code != http.StatusBadRequest || env.Success || env.Error != "Le format de l'email est invalide" {
		t.Errorf("bad email: %d %s", w.Code, w.Body.String())
	}
	if len(store.rows) != 0 || len(mails.sent) != 0 {
		t.Error("nothing should be stored or sent")
	}
}

func TestContactUpstreamFailure(t *testing.T) {
	store := &leadRows{err: errors.New("connection refused")}
	r := newContactRouter(store, &outbox{})

	w, env := postContact(r, `{"name":"Marie","email":"marie@example.ch","details":"x"}`)
	if w.Code != http.StatusInternalServerError || env.Error != lead.MsgFailed {
		t.Errorf("store failure: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("internal error leaked to the client")
	}
}
