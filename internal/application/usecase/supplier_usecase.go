package usecase

import (
	"github.com/rayaneflai9-afk/phynteck/internal/application/dto"
	"github.com/rayaneflai9-afk/phynteck/internal/domain"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/repository"
)

// SupplierUseCase examen des demandes d'inscription fournisseur
// (centre d'administration : voir, approuver, rejeter).
type SupplierUseCase struct {
	repo repository.SupplierApplicationRepository
}

// NewSupplierUseCase construit le cas d'usage.
func NewSupplierUseCase(repo repository.SupplierApplicationRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List renvoie toutes les demandes, dernières soumises en premier
// (l'ordre du repository est conservé).
func (uc *SupplierUseCase) List() (*dto.SupplierApplicationListResponse, error) {
	apps, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierApplicationDTO, 0, len(apps))
	for _, a := range apps {
		items = append(items, toApplicationDTO(a))
	}
	return &dto.SupplierApplicationListResponse{Items: items}, nil
}

// Approve approuve une demande. Seules les demandes pending ou review sont
// approuvables; sinon ErrConflict. ErrNotFound si l'id est inconnu.
func (uc *SupplierUseCase) Approve(id int) (*dto.SupplierApplicationDTO, error) {
	return uc.review(id, entity.ApplicationApproved)
}

// Reject rejette une demande, mêmes règles qu'Approve.
func (uc *SupplierUseCase) Reject(id int) (*dto.SupplierApplicationDTO, error) {
	return uc.review(id, entity.ApplicationRejected)
}

func (uc *SupplierUseCase) review(id int, status string) (*dto.SupplierApplicationDTO, error) {
	app, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if app.Status != entity.ApplicationPending && app.Status != entity.ApplicationReview {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	app.Status = status
	out := toApplicationDTO(*app)
	return &out, nil
}

func toApplicationDTO(a entity.SupplierApplication) dto.SupplierApplicationDTO {
	return dto.SupplierApplicationDTO{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Status:    a.Status,
		Submitted: a.Submitted,
	}
}
