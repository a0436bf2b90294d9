package entity

// Rôles valides pour une Identity.
const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
)

// Statuts de vérification d'un compte fournisseur.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Identity représente l'utilisateur connecté (la seule entité persistée).
// CompanyName n'est renseigné que pour les fournisseurs; Status n'a de sens
// que pour eux aussi : un admin est approuvé d'office.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"` // "admin" | "supplier"
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Status      string `json:"status,omitempty"` // "pending" | "approved" | "rejected"
}

// EffectiveStatus renvoie le statut réellement applicable :
//   - admin  -> toujours approved, quelle que soit la valeur stockée;
//   - supplier sans statut explicite -> pending jusqu'à approbation.
func (i Identity) EffectiveStatus() string {
	if i.Role == RoleAdmin {
		return StatusApproved
	}
	if i.Status == "" {
		return StatusPending
	}
	return i.Status
}

// IsValid indique si l'objet désérialisé ressemble à une identité exploitable.
// Un slot corrompu ou partiel est traité comme « déconnecté », jamais comme une erreur.
func (i Identity) IsValid() bool {
	if i.ID == "" || i.Email == "" {
		return false
	}
	return i.Role == RoleAdmin || i.Role == RoleSupplier
}
