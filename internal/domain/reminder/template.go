package reminder

import (
	"fmt"

	"github.com/goodsign/monday"

	"github.com/BruksfildServices01/dentismart/internal/models"
	"github.com/BruksfildServices01/dentismart/internal/timezone"
)

const (
	fallbackCabinet = "notre cabinet"
	fallbackDentist = "votre dentiste"

	longDateLayout = "Monday 2 January 2006"
	timeLayout     = "15:04"
)

const bodyTemplate = `Bonjour %s,

Ceci est un rappel de votre rendez-vous chez %s :

📅 %s
⏰ %s
👨‍⚕️ %s

Merci de nous prévenir en cas d'empêchement.

À bientôt !`

// RenderBody builds the SMS text. Date and time are shown in the cabinet's
// timezone. rv.Patient must be loaded.
func RenderBody(rv *models.RendezVous) string {
	cabinetName := fallbackCabinet
	tz := ""
	if rv.Cabinet != nil {
		if rv.Cabinet.Name != "" {
			cabinetName = rv.Cabinet.Name
		}
		tz = rv.Cabinet.Timezone
	}

	dentistName := fallbackDentist
	if rv.Dentist != nil {
		dentistName = rv.Dentist.DisplayName()
	}

	local := rv.StartsAt.In(timezone.Location(tz))

	return fmt.Sprintf(
		bodyTemplate,
		rv.Patient.FirstName,
		cabinetName,
		monday.Format(local, longDateLayout, monday.LocaleFrFR),
		local.Format(timeLayout),
		dentistName,
	)
}
