package lead

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"
)

const (
	clientSubject = "Confirmation de réception de votre demande"
	notSpecified  = "Non spécifié"
)

// Mail is a rendered HTML message.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// ------------------------------------------------------------
// Templates
// ------------------------------------------------------------

var adminTmpl = template.Must(template.New("admin").Parse(`<h2>Nouveau contact reçu</h2>
<ul>
  <li><strong>Nom :</strong> {{.Name}}</li>
  <li><strong>Email :</strong> {{.Email}}</li>
  <li><strong>Entreprise :</strong> {{.Company}}</li>
  <li><strong>Budget :</strong> {{.Budget}}</li>
  <li><strong>Délai :</strong> {{.Deadline}}</li>
</ul>
<h3>Détails de la demande</h3>
<p>{{.Details}}</p>
<h3>Analyse IA</h3>
<p><strong>Résumé :</strong> {{.Summary}}</p>
<p><strong>Niveau de priorité :</strong> {{.PriorityLabel}}</p>
`))

var clientTmpl = template.Must(template.New("client").Parse(`<p>Bonjour {{.Name}},</p>
<p>Merci pour votre demande. Nous l'avons bien reçue et elle est en cours d'analyse.</p>
<h3>Résumé de votre besoin</h3>
<p>{{.Summary}}</p>
<p>Notre équipe reviendra vers vous sous 24 à 48 heures.</p>
<p>Vos données sont traitées de manière confidentielle et hébergées en Suisse.</p>
<p>Cordialement,<br>L'équipe de votre agence d'automatisation IA</p>
<hr>
<p><small>Cet email a été envoyé automatiquement suite à votre demande sur notre site.</small></p>
`))

type adminView struct {
	Name, Email, Company, Budget, Deadline, Details string
	Summary, PriorityLabel                          string
}

type clientView struct {
	Name, Summary string
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}

// AdminMail renders the notification sent to the agency inbox.
func AdminMail(to string, sub Submission, a Analysis) (Mail, error) {
	var buf bytes.Buffer
	err := adminTmpl.Execute(&buf, adminView{
		Name:          sub.Name,
		Email:         sub.Email,
		Company:       orNotSpecified(sub.Company),
		Budget:        orNotSpecified(sub.Budget),
		Deadline:      orNotSpecified(sub.Deadline),
		Details:       sub.Details,
		Summary:       a.Summary,
		PriorityLabel: a.Priority.Label(),
	})
	if err != nil {
		return Mail{}, err
	}
	return Mail{
		To:      to,
		Subject: fmt.Sprintf("Nouveau lead: %s (Priorité: %s)", sub.Name, strings.ToUpper(string(a.Priority))),
		HTML:    buf.String(),
	}, nil
}

// ClientMail renders the acknowledgement sent to the prospect.
func ClientMail(sub Submission, a Analysis) (Mail, error) {
	var buf bytes.Buffer
	if err := clientTmpl.Execute(&buf, clientView{Name: sub.Name, Summary: a.Summary}); err != nil {
		return Mail{}, err
	}
	return Mail{To: sub.Email, Subject: clientSubject, HTML: buf.String()}, nil
}

// ------------------------------------------------------------
// SMTP
// ------------------------------------------------------------

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", mail.To, err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
