package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type memDepotRepo struct {
	depots map[int64]*entity.Depot
	nextID int64
}

func newMemDepotRepo() *memDepotRepo {
	return &memDepotRepo{depots: map[int64]*entity.Depot{}}
}

func (r *memDepotRepo) Create(d *entity.Depot) error {
	r.nextID++
	d.ID = r.nextID
	cp := *d
	r.depots[d.ID] = &cp
	return nil
}

func (r *memDepotRepo) GetByID(id int64) (*entity.Depot, error) {
	d, ok := r.depots[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDepotRepo) Update(d *entity.Depot) error {
	cp := *d
	r.depots[d.ID] = &cp
	return nil
}

func (r *memDepotRepo) List(limit, offset int) ([]*entity.Depot, error) {
	var out []*entity.Depot
	for i := int64(1); i <= r.nextID; i++ {
		if d, ok := r.depots[i]; ok {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memDepotRepo) SetActive(id int64, active bool) (bool, error) {
	d, ok := r.depots[id]
	if !ok {
		return false, nil
	}
	d.Active = active
	return true, nil
}

func TestDepotUseCase_CreateYGet(t *testing.T) {
	uc := usecase.NewDepotUseCase(newMemDepotRepo())

	created, err := uc.Create(dto.CreateDepotRequest{Name: "Central", Address: "Av. Siempreviva 742"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active, "un depósito nuevo nace activo")

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Central", got.Name)
}

func TestDepotUseCase_Get_Inexistente(t *testing.T) {
	uc := usecase.NewDepotUseCase(newMemDepotRepo())

	got, err := uc.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDepotUseCase_Update_ParcheParcial(t *testing.T) {
	uc := usecase.NewDepotUseCase(newMemDepotRepo())
	created, err := uc.Create(dto.CreateDepotRequest{Name: "Central", Address: "Calle 1"})
	require.NoError(t, err)

	nuevoNombre := "Central Renombrado"
	updated, err := uc.Update(created.ID, dto.UpdateDepotRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Central Renombrado", updated.Name)
	assert.Equal(t, "Calle 1", updated.Address, "campo no enviado se conserva")
}

func TestDepotUseCase_Deactivate(t *testing.T) {
	repo := newMemDepotRepo()
	uc := usecase.NewDepotUseCase(repo)
	created, err := uc.Create(dto.CreateDepotRequest{Name: "Central"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))
	assert.False(t, repo.depots[created.ID].Active)

	assert.ErrorIs(t, uc.Deactivate(999), domain.ErrNotFound)
}
