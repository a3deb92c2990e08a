package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/reorder"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/pkg/textutil"
)

// ArticuloUseCase casos de uso CRUD y de reposición para artículos.
type ArticuloUseCase struct {
	repo      repository.ArticuloRepository
	ordenRepo repository.OrdenCompraRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository, ordenRepo repository.OrdenCompraRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo, ordenRepo: ordenRepo}
}

// Create crea un artículo nuevo. El código debe ser único.
func (uc *ArticuloUseCase) Create(in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 || in.StockSeguridad < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	a := &entity.Articulo{
		ID:              uuid.New().String(),
		Codigo:          in.Codigo,
		Nombre:          in.Nombre,
		Descripcion:     in.Descripcion,
		StockActual:     in.StockActual,
		StockSeguridad:  in.StockSeguridad,
		ProveedorPredID: in.ProveedorPredID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toArticuloResponse(a), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticuloUseCase) GetByID(id string) (*dto.ArticuloResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toArticuloResponse(a), nil
}

// Update modifica un artículo: solo los campos presentes en el patch.
func (uc *ArticuloUseCase) Update(id string, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		a.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		a.Descripcion = *in.Descripcion
	}
	if in.StockActual != nil {
		if *in.StockActual < 0 {
			return nil, domain.ErrInvalidInput
		}
		a.StockActual = *in.StockActual
	}
	if in.StockSeguridad != nil {
		if *in.StockSeguridad < 0 {
			return nil, domain.ErrInvalidInput
		}
		a.StockSeguridad = *in.StockSeguridad
	}
	if in.ProveedorPredID != nil {
		a.ProveedorPredID = in.ProveedorPredID
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toArticuloResponse(a), nil
}

// DarDeBaja marca el artículo como inactivo fijando la fecha de baja.
// Aplica las mismas reglas que la eliminación: sin stock y sin órdenes abiertas.
func (uc *ArticuloUseCase) DarDeBaja(id string) (*dto.ArticuloResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	abiertas, err := uc.ordenRepo.CountAbiertasPorArticulo(id)
	if err != nil {
		return nil, err
	}
	if err := reorder.CanDelete(a, abiertas); err != nil {
		return nil, err
	}
	now := time.Now()
	a.FechaBaja = &now
	a.UpdatedAt = now
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toArticuloResponse(a), nil
}

// Delete elimina un artículo. Falla con ErrHasInventory si tiene stock y con
// ErrHasPendingOrders si tiene órdenes de compra abiertas. Las órdenes y
// ventas históricas conservan su nombre desnormalizado.
func (uc *ArticuloUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	abiertas, err := uc.ordenRepo.CountAbiertasPorArticulo(id)
	if err != nil {
		return err
	}
	if err := reorder.CanDelete(a, abiertas); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// List lista artículos con paginación.
func (uc *ArticuloUseCase) List(limit, offset int) (*dto.ArticuloListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticuloResponse(a))
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AReponer devuelve los artículos activos con stock entre 1 y su stock de
// seguridad. Disjunto de Faltantes por construcción de la política.
func (uc *ArticuloUseCase) AReponer(ctx context.Context) ([]dto.ArticuloResponse, error) {
	activos, err := uc.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	_, aReponer := reorder.Partition(activos)
	return toArticuloResponses(aReponer), nil
}

// Faltantes devuelve los artículos activos con stock cero.
func (uc *ArticuloUseCase) Faltantes(ctx context.Context) ([]dto.ArticuloResponse, error) {
	activos, err := uc.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	faltantes, _ := reorder.Partition(activos)
	return toArticuloResponses(faltantes), nil
}

// Search busca artículos por código o nombre, ignorando mayúsculas y tildes.
// El término se normaliza acá y el repositorio compara contra columnas plegadas.
func (uc *ArticuloUseCase) Search(ctx context.Context, q string, limit int) ([]dto.ArticuloResponse, error) {
	q = textutil.Fold(q)
	if q == "" {
		return []dto.ArticuloResponse{}, nil
	}
	activos, err := uc.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.ArticuloResponse
	for _, a := range activos {
		if textutil.ContainsFold(a.Codigo, q) || textutil.ContainsFold(a.Nombre, q) {
			out = append(out, *toArticuloResponse(a))
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	if out == nil {
		out = []dto.ArticuloResponse{}
	}
	return out, nil
}

func toArticuloResponses(list []*entity.Articulo) []dto.ArticuloResponse {
	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticuloResponse(a))
	}
	return items
}

func toArticuloResponse(a *entity.Articulo) *dto.ArticuloResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticuloResponse{
		ID:              a.ID,
		Codigo:          a.Codigo,
		Nombre:          a.Nombre,
		Descripcion:     a.Descripcion,
		StockActual:     a.StockActual,
		StockSeguridad:  a.StockSeguridad,
		Activo:          a.Activo(),
		Categoria:       string(reorder.Classify(a)),
		FechaBaja:       a.FechaBaja,
		ProveedorPredID: a.ProveedorPredID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
