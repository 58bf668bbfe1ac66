package usecase

import (
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DepotUseCase casos de uso CRUD para depósitos. Colaborador simple: el
// motor de stock solo los lee por id para validar los movimientos.
type DepotUseCase struct {
	repo repository.DepotRepository
}

// NewDepotUseCase construye el caso de uso.
func NewDepotUseCase(repo repository.DepotRepository) *DepotUseCase {
	return &DepotUseCase{repo: repo}
}

// Create crea un nuevo depósito activo.
func (uc *DepotUseCase) Create(in dto.CreateDepotRequest) (*dto.DepotResponse, error) {
	depot := &entity.Depot{
		Name:    in.Name,
		Address: in.Address,
		Active:  true,
	}
	if err := uc.repo.Create(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// GetByID obtiene un depósito por ID. nil si no existe.
func (uc *DepotUseCase) GetByID(id int64) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, nil
	}
	return toDepotResponse(depot), nil
}

// Update aplica un parche de campos a un depósito. nil si no existe.
func (uc *DepotUseCase) Update(id int64, in dto.UpdateDepotRequest) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, nil
	}
	if in.Name != nil {
		depot.Name = *in.Name
	}
	if in.Address != nil {
		depot.Address = *in.Address
	}
	if err := uc.repo.Update(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// List lista depósitos con paginación.
func (uc *DepotUseCase) List(limit, offset int) ([]dto.DepotResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepotResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDepotResponse(d))
	}
	return out, nil
}

// Deactivate desactiva un depósito (no borra su historia de stock).
func (uc *DepotUseCase) Deactivate(id int64) error {
	affected, err := uc.repo.SetActive(id, false)
	if err != nil {
		return err
	}
	if !affected {
		return fmt.Errorf("%w: deposito %d", domain.ErrNotFound, id)
	}
	return nil
}

func toDepotResponse(d *entity.Depot) *dto.DepotResponse {
	return &dto.DepotResponse{
		ID:      d.ID,
		Name:    d.Name,
		Address: d.Address,
		Active:  d.Active,
	}
}
