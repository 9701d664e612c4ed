package dto

type StatsDTO struct {
	CabinetName        string `json:"cabinet_name"`
	Role               string `json:"role"`
	TotalPatients      int64  `json:"total_patients"`
	RendezVousToday    int64  `json:"rendezvous_today"`
	RendezVousTomorrow int64  `json:"rendezvous_tomorrow"`
}
