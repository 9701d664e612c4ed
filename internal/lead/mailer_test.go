package lead

import (
	"strings"
	"testing"
)

func TestAdminMailEscapesInput(t *testing.T) {
	sub := Submission{Name: "<script>x</script>", Email: "a@b.ch", Details: "d"}
	m, err := AdminMail("admin@agence.ch", sub, Analysis{Summary: "s", Priority: PriorityLow})
	if err != nil {
		t.Fatalf("AdminMail: %v", err)
	}
	if strings.Contains(m.HTML, "<script>") {
		t.Error("name should be escaped in the body")
	}
	if !strings.Contains(m.HTML, "🟢 Faible") {
		t.Error("missing priority label")
	}
	if m.Subject != "Nouveau lead: <script>x</script> (Priorité: LOW)" {
		t.Errorf("subject = %q", m.Subject)
	}
}

func TestClientMail(t *testing.T) {
	m, err := ClientMail(Submission{Name: "Marie", Email: "marie@example.ch"}, Analysis{Summary: "Un résumé"})
	if err != nil {
		t.Fatalf("ClientMail: %v", err)
	}
	for _, want := range []string{"Bonjour Marie", "Un résumé", "24 à 48 heures"} {
		if !strings.Contains(m.HTML, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
