// Package auth implémente le service d'authentification mock : pas de backend,
// pas de vérification de mot de passe, une latence réseau simulée. Le contrat
// d'erreur existe déjà (domain.ErrNetwork) pour le jour où l'API sera réelle.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/application/session"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Identité mock renvoyée par Login, calquée sur le comportement d'origine.
const (
	loginMockID      = "1"
	adminMarker      = "admin" // sous-chaîne détectée dans l'email, sensible à la casse
	adminMockName    = "Admin User"
	supplierMockName = "Supplier User"
	supplierMockCo   = "Agricultural Company"
)

// Delays latences simulées des deux opérations asynchrones.
type Delays struct {
	Login    time.Duration
	Register time.Duration
}

// AuthUseCase cas d'usage d'authentification : connexion, inscription, déconnexion.
// Toutes les mutations passent par le session.Store injecté; aucun état propre.
type AuthUseCase struct {
	store  *session.Store
	delays Delays
}

// NewAuthUseCase construit le cas d'usage au-dessus du store de session.
func NewAuthUseCase(store *session.Store, delays Delays) *AuthUseCase {
	return &AuthUseCase{store: store, delays: delays}
}

// Login simule l'appel réseau puis connecte l'utilisateur. Ne refuse jamais :
// le rôle est déduit de la présence de « admin » dans l'email, le statut est
// approved inconditionnellement, et la session est sauvegardée (la dernière
// écriture gagne en cas d'appels concurrents).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.IdentityResponse, error) {
	if err := wait(ctx, uc.delays.Login); err != nil {
		return nil, err
	}

	isAdmin := strings.Contains(in.Email, adminMarker)
	id := entity.Identity{
		ID:     loginMockID,
		Email:  in.Email,
		Status: entity.StatusApproved,
	}
	if isAdmin {
		id.Role = entity.RoleAdmin
		id.Name = adminMockName
	} else {
		id.Role = entity.RoleSupplier
		id.Name = supplierMockName
		id.CompanyName = supplierMockCo
	}

	if err := uc.store.Save(id); err != nil {
		return nil, err
	}
	out := toIdentityResponse(id)
	return &out, nil
}

// Register simule un appel réseau plus long puis crée l'identité.
//
// Asymétrie voulue, à ne pas « corriger » : seul un admin est connecté
// immédiatement. Un fournisseur reçoit son identité (status pending) mais la
// session n'est PAS ouverte — son compte doit d'abord être approuvé.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest, role string) (*dto.RegisterResponse, error) {
	if err := wait(ctx, uc.delays.Register); err != nil {
		return nil, err
	}

	email := in.ContactEmail
	if email == "" {
		email = in.Email
	}
	name := in.CompanyLegalName
	if name == "" {
		name = in.Name
	}

	id := entity.Identity{
		ID:    uuid.New().String(),
		Email: email,
		Role:  role,
		Name:  name,
	}
	if role == entity.RoleSupplier {
		id.CompanyName = in.CompanyLegalName
		id.Status = entity.StatusPending
	} else {
		id.Status = entity.StatusApproved
	}

	loggedIn := role == entity.RoleAdmin
	if loggedIn {
		if err := uc.store.Save(id); err != nil {
			return nil, err
		}
	}

	return &dto.RegisterResponse{
		User:     toIdentityResponse(id),
		LoggedIn: loggedIn,
	}, nil
}

// Logout vide la session. Idempotent : sans session courante, ne fait rien.
func (uc *AuthUseCase) Logout() {
	uc.store.Clear()
}

// wait simule la latence réseau; annulable par le contexte, ce que le front
// d'origine ne faisait jamais mais que tout appelant Go attend.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func toIdentityResponse(id entity.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:          id.ID,
		Email:       id.Email,
		Role:        id.Role,
		Name:        id.Name,
		CompanyName: id.CompanyName,
		Status:      id.Status,
	}
}
