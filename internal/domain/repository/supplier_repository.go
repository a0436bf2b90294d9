package repository

import "github.com/rayaneflai9-afk/phynteck/internal/domain/entity"

// SupplierApplicationRepository définit le port des demandes d'inscription
// fournisseur examinées depuis le centre d'administration.
type SupplierApplicationRepository interface {
	List() ([]entity.SupplierApplication, error)
	// GetByID renvoie nil (sans erreur) si la demande n'existe pas.
	GetByID(id int) (*entity.SupplierApplication, error)
	// UpdateStatus change l'état d'une demande (approve/reject).
	// Renvoie domain.ErrNotFound si l'id est inconnu.
	UpdateStatus(id int, status string) error
}
