package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/auth"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/dto"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
	"github.com/BruksfildServices01/dentismart/internal/timezone"
	"github.com/BruksfildServices01/dentismart/internal/validators"
)

const minPasswordLength = 6

type RegisterInput struct {
	CabinetName    string
	CabinetAddress string
	CabinetPhone   string
	Timezone       string

	FullName string
	Email    string
	Password string
}

type Register struct {
	repo   clinic.ProfileRepository
	tokens *auth.TokenIssuer
	audit  *audit.Dispatcher

	// domainCheck verifies the email domain can receive mail.
	domainCheck func(ctx context.Context, email string) bool
}

func NewRegister(
	repo clinic.ProfileRepository,
	tokens *auth.TokenIssuer,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		audit:       audit,
		domainCheck: validators.IsEmailDomainValid,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*dto.SessionDTO, error) {
	name := strings.TrimSpace(in.CabinetName)
	email := validators.NormalizeEmail(in.Email)

	if name == "" {
		return nil, httperr.ErrValidation("missing_cabinet_name", "Le nom du cabinet est obligatoire")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrValidation("invalid_email", "Le format de l'email est invalide")
	}
	if !uc.domainCheck(ctx, email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "Le domaine de l'email ne semble pas valide")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrValidation("weak_password", "Le mot de passe doit contenir au moins 6 caractères")
	}

	tz := timezone.Resolve(strings.TrimSpace(in.Timezone))

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httperr.ErrUpstream("password_hash_failed", "Erreur serveur", err)
	}

	cab := &models.Cabinet{
		Name:     name,
		Address:  optional(in.CabinetAddress),
		Phone:    optional(in.CabinetPhone),
		Timezone: tz,
	}
	owner := &models.Profile{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         models.RoleOwner,
	}

	if err := uc.repo.CreateCabinetWithOwner(ctx, cab, owner); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("email_already_registered", "Un compte existe déjà pour cet email")
		}
		return nil, httperr.ErrUpstream("register_failed", "Erreur lors de la création du compte", err)
	}

	token, err := uc.tokens.Issue(owner.ID, cab.ID, owner.Role)
	if err != nil {
		return nil, httperr.ErrUpstream("token_failed", "Erreur serveur", err)
	}

	uc.audit.Dispatch(audit.Event{
		CabinetID: cab.ID,
		ProfileID: &owner.ID,
		Action:    "cabinet_registered",
		Entity:    "cabinet",
		EntityID:  &cab.ID,
	})

	session := dto.NewSession(owner, cab, token)
	return &session, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
