package dto

import "github.com/BruksfildServices01/dentismart/internal/models"

type ProfileDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CabinetID string `json:"cabinet_id"`
}

type CabinetDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Timezone string  `json:"timezone"`
}

type SessionDTO struct {
	Profile ProfileDTO `json:"profile"`
	Cabinet CabinetDTO `json:"cabinet"`
	Token   string     `json:"token,omitempty"`
}

func NewSession(p *models.Profile, c *models.Cabinet, token string) SessionDTO {
	return SessionDTO{
		Profile: ProfileDTO{
			ID:        p.ID,
			Email:     p.Email,
			FullName:  p.FullName,
			Role:      p.Role,
			CabinetID: p.CabinetID,
		},
		Cabinet: CabinetDTO{
			ID:       c.ID,
			Name:     c.Name,
			Address:  c.Address,
			Phone:    c.Phone,
			Timezone: c.Timezone,
		},
		Token: token,
	}
}
