package memory

import (
	"sync"

	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// SupplierApplicationRepository tient les demandes d'inscription fournisseur.
// Seul repository mutable : l'admin approuve ou rejette, d'où le mutex.
// Les changements ne survivent pas au redémarrage, comme dans la maquette.
type SupplierApplicationRepository struct {
	mu           sync.RWMutex
	applications []entity.SupplierApplication
}

// NewSupplierApplicationRepository construit le repository avec le jeu d'exemple.
func NewSupplierApplicationRepository() *SupplierApplicationRepository {
	return &SupplierApplicationRepository{
		applications: []entity.SupplierApplication{
			{ID: 1, Name: "Ferme Bio Alger", Email: "contact@fermebio.dz", Status: entity.ApplicationPending, Submitted: "2024-01-15"},
			{ID: 2, Name: "Équipements Agricoles Sahra", Email: "info@sahra.dz", Status: entity.ApplicationReview, Submitted: "2024-01-14"},
			{ID: 3, Name: "Semences Premium", Email: "admin@semences.dz", Status: entity.ApplicationApproved, Submitted: "2024-01-13"},
		},
	}
}

// List renvoie toutes les demandes.
func (r *SupplierApplicationRepository) List() ([]entity.SupplierApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.SupplierApplication(nil), r.applications...), nil
}

// GetByID renvoie nil si la demande n'existe pas.
func (r *SupplierApplicationRepository) GetByID(id int) (*entity.SupplierApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.applications {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

// UpdateStatus change l'état d'une demande; ErrNotFound si l'id est inconnu.
func (r *SupplierApplicationRepository) UpdateStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.applications {
		if r.applications[i].ID == id {
			r.applications[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}
