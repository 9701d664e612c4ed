package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/dentismart/internal/auth"
	"github.com/BruksfildServices01/dentismart/internal/domain"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/dto"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/validators"
)

func errInvalidCredentials() error {
	return httperr.ErrUnauthorized("invalid_credentials", "Email ou mot de passe incorrect")
}

type Login struct {
	repo   clinic.ProfileRepository
	tokens *auth.TokenIssuer
}

func NewLogin(repo clinic.ProfileRepository, tokens *auth.TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*dto.SessionDTO, error) {
	email = validators.NormalizeEmail(email)

	p, err := uc.repo.GetProfileByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials()
	}
	if err != nil {
		return nil, httperr.ErrUpstream("login_failed", "Erreur serveur", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials()
	}

	token, err := uc.tokens.Issue(p.ID, p.CabinetID, p.Role)
	if err != nil {
		return nil, httperr.ErrUpstream("token_failed", "Erreur serveur", err)
	}

	session := dto.NewSession(p, &p.Cabinet, token)
	return &session, nil
}

type GetMe struct {
	repo clinic.ProfileRepository
}

func NewGetMe(repo clinic.ProfileRepository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, profileID string) (*dto.SessionDTO, error) {
	p, err := uc.repo.GetProfile(ctx, profileID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("profile_not_found", "Profil introuvable")
	}
	if err != nil {
		return nil, httperr.ErrUpstream("profile_lookup_failed", "Erreur serveur", err)
	}

	session := dto.NewSession(p, &p.Cabinet, "")
	return &session, nil
}
