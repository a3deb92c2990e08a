package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/terms"
)

// TermsValidationError acumula los errores de campo de las condiciones
// proveedor-artículo de un request. Implementa error para propagarse por la
// cadena usecase -> handler sin perder la estructura.
type TermsValidationError struct {
	Errores []dto.CampoError
}

func (e *TermsValidationError) Error() string {
	return "condiciones proveedor-artículo inválidas"
}

// ProveedorUseCase casos de uso para proveedores y sus condiciones por artículo.
type ProveedorUseCase struct {
	provRepo     repository.ProveedorRepository
	paRepo       repository.ProveedorArticuloRepository
	articuloRepo repository.ArticuloRepository
	txRunner     ProveedorTxRunner
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(
	provRepo repository.ProveedorRepository,
	paRepo repository.ProveedorArticuloRepository,
	articuloRepo repository.ArticuloRepository,
	txRunner ProveedorTxRunner,
) *ProveedorUseCase {
	return &ProveedorUseCase{
		provRepo:     provRepo,
		paRepo:       paRepo,
		articuloRepo: articuloRepo,
		txRunner:     txRunner,
	}
}

// validarTerminos valida un lote de condiciones. Los errores se acumulan con el
// índice del registro en el campo (articulos[i].campo) para que el cliente
// pueda mostrarlos junto al formulario correcto. La completitud parcial se
// rechaza: o pasan todos los registros o no se persiste ninguno.
func (uc *ProveedorUseCase) validarTerminos(articulos []dto.TerminosRequest) []dto.CampoError {
	var errores []dto.CampoError
	for i, t := range articulos {
		prefijo := fmt.Sprintf("articulos[%d].", i)
		if t.ArticuloID == "" {
			errores = append(errores, dto.CampoError{Campo: prefijo + "articuloId", Error: string(terms.Requerido)})
		} else if a, _ := uc.articuloRepo.GetByID(t.ArticuloID); a == nil {
			errores = append(errores, dto.CampoError{Campo: prefijo + "articuloId", Error: string(terms.ValorInvalido)})
		}
		for _, fe := range terms.Validate(terminosInput(t)) {
			errores = append(errores, dto.CampoError{Campo: prefijo + fe.Campo, Error: string(fe.Kind)})
		}
	}
	return errores
}

// Create crea un proveedor junto con sus condiciones por artículo, en una sola
// transacción. Requiere nombre no vacío y al menos un artículo asociado con
// condiciones completas.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorConArticulosResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Articulos) == 0 {
		return nil, domain.ErrSupplierNeedsTerms
	}
	if errores := uc.validarTerminos(in.Articulos); len(errores) > 0 {
		return nil, &TermsValidationError{Errores: errores}
	}

	now := time.Now()
	prov := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	condiciones := make([]*entity.ProveedorArticulo, 0, len(in.Articulos))
	for _, t := range in.Articulos {
		condiciones = append(condiciones, toProveedorArticulo(prov.ID, t, now))
	}

	err := uc.txRunner.RunProveedor(ctx, func(
		provRepo repository.ProveedorRepository,
		paRepo repository.ProveedorArticuloRepository,
	) error {
		if err := provRepo.Create(prov); err != nil {
			return err
		}
		for _, pa := range condiciones {
			// Un solo predeterminado por artículo: marcar este implica
			// desmarcar los del resto de los proveedores.
			if pa.Predeterminado {
				if err := paRepo.ClearPredeterminadoPorArticulo(pa.ArticuloID); err != nil {
					return err
				}
			}
			if err := paRepo.Create(pa); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ProveedorConArticulosResponse{
		ProveedorResponse: *toProveedorResponse(prov),
		Articulos:         make([]dto.TerminosResponse, 0, len(condiciones)),
	}
	for _, pa := range condiciones {
		resp.Articulos = append(resp.Articulos, *toTerminosResponse(pa))
	}
	return resp, nil
}

// GetByID obtiene un proveedor con sus condiciones por artículo.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorConArticulosResponse, error) {
	prov, err := uc.provRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, nil
	}
	condiciones, err := uc.paRepo.ListByProveedor(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProveedorConArticulosResponse{
		ProveedorResponse: *toProveedorResponse(prov),
		Articulos:         make([]dto.TerminosResponse, 0, len(condiciones)),
	}
	for _, pa := range condiciones {
		resp.Articulos = append(resp.Articulos, *toTerminosResponse(pa))
	}
	return resp, nil
}

// List lista proveedores con paginación.
func (uc *ProveedorUseCase) List(limit, offset int) (*dto.ProveedorListResponse, error) {
	list, err := uc.provRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica nombre o estado del proveedor.
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	prov, err := uc.provRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		prov.Nombre = *in.Nombre
	}
	if in.Activo != nil {
		prov.Activo = *in.Activo
	}
	prov.UpdatedAt = time.Now()
	if err := uc.provRepo.Update(prov); err != nil {
		return nil, err
	}
	return toProveedorResponse(prov), nil
}

// Deactivate da de baja lógica al proveedor. Las órdenes históricas conservan
// su nombre desnormalizado; solo se bloquean órdenes nuevas.
func (uc *ProveedorUseCase) Deactivate(id string) error {
	prov, err := uc.provRepo.GetByID(id)
	if err != nil {
		return err
	}
	if prov == nil {
		return domain.ErrNotFound
	}
	return uc.provRepo.Deactivate(id)
}

// ListArticulos devuelve las condiciones por artículo del proveedor.
func (uc *ProveedorUseCase) ListArticulos(proveedorID string) ([]dto.TerminosResponse, error) {
	prov, err := uc.provRepo.GetByID(proveedorID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, domain.ErrNotFound
	}
	condiciones, err := uc.paRepo.ListByProveedor(proveedorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TerminosResponse, 0, len(condiciones))
	for _, pa := range condiciones {
		out = append(out, *toTerminosResponse(pa))
	}
	return out, nil
}

// AgregarArticulo asocia un artículo (con condiciones) a un proveedor existente.
func (uc *ProveedorUseCase) AgregarArticulo(ctx context.Context, proveedorID string, in dto.TerminosRequest) (*dto.TerminosResponse, error) {
	prov, err := uc.provRepo.GetByID(proveedorID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, domain.ErrNotFound
	}
	if errores := uc.validarTerminos([]dto.TerminosRequest{in}); len(errores) > 0 {
		return nil, &TermsValidationError{Errores: errores}
	}
	existing, _ := uc.paRepo.GetByProveedorYArticulo(proveedorID, in.ArticuloID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	pa := toProveedorArticulo(proveedorID, in, time.Now())
	err = uc.txRunner.RunProveedor(ctx, func(
		_ repository.ProveedorRepository,
		paRepo repository.ProveedorArticuloRepository,
	) error {
		if pa.Predeterminado {
			if err := paRepo.ClearPredeterminadoPorArticulo(pa.ArticuloID); err != nil {
				return err
			}
		}
		return paRepo.Create(pa)
	})
	if err != nil {
		return nil, err
	}
	return toTerminosResponse(pa), nil
}

// ActualizarArticulo modifica las condiciones de un artículo del proveedor.
func (uc *ProveedorUseCase) ActualizarArticulo(ctx context.Context, proveedorID, paID string, in dto.TerminosRequest) (*dto.TerminosResponse, error) {
	pa, err := uc.paRepo.GetByID(paID)
	if err != nil {
		return nil, err
	}
	if pa == nil || pa.ProveedorID != proveedorID {
		return nil, domain.ErrNotFound
	}
	in.ArticuloID = pa.ArticuloID // la relación no cambia de artículo
	if errores := uc.validarTerminos([]dto.TerminosRequest{in}); len(errores) > 0 {
		return nil, &TermsValidationError{Errores: errores}
	}

	pa.TipoModelo = *in.TipoModelo
	pa.DemoraEntregaDias = *in.DemoraEntregaDias
	pa.PrecioUnitario = *in.PrecioUnitario
	pa.CargosPedido = *in.CargosPedido
	pa.PeriodoRevisionDias = terms.PeriodoRevision(*in.TipoModelo, in.PeriodoRevisionDias)
	pa.Predeterminado = in.Predeterminado
	pa.UpdatedAt = time.Now()

	err = uc.txRunner.RunProveedor(ctx, func(
		_ repository.ProveedorRepository,
		paRepo repository.ProveedorArticuloRepository,
	) error {
		if pa.Predeterminado {
			if err := paRepo.ClearPredeterminadoPorArticulo(pa.ArticuloID); err != nil {
				return err
			}
		}
		return paRepo.Update(pa)
	})
	if err != nil {
		return nil, err
	}
	return toTerminosResponse(pa), nil
}

// EliminarArticulo quita una condición proveedor-artículo. El proveedor debe
// conservar al menos una.
func (uc *ProveedorUseCase) EliminarArticulo(proveedorID, paID string) error {
	pa, err := uc.paRepo.GetByID(paID)
	if err != nil {
		return err
	}
	if pa == nil || pa.ProveedorID != proveedorID {
		return domain.ErrNotFound
	}
	total, err := uc.paRepo.CountByProveedor(proveedorID)
	if err != nil {
		return err
	}
	if total <= 1 {
		return domain.ErrSupplierNeedsTerms
	}
	return uc.paRepo.Delete(paID)
}

func terminosInput(t dto.TerminosRequest) terms.Input {
	return terms.Input{
		TipoModelo:          t.TipoModelo,
		DemoraEntregaDias:   t.DemoraEntregaDias,
		PrecioUnitario:      t.PrecioUnitario,
		CargosPedido:        t.CargosPedido,
		PeriodoRevisionDias: t.PeriodoRevisionDias,
	}
}

// toProveedorArticulo asume condiciones ya validadas (punteros no nulos salvo
// el período de revisión, que se normaliza según el modelo).
func toProveedorArticulo(proveedorID string, t dto.TerminosRequest, now time.Time) *entity.ProveedorArticulo {
	return &entity.ProveedorArticulo{
		ID:                  uuid.New().String(),
		ProveedorID:         proveedorID,
		ArticuloID:          t.ArticuloID,
		TipoModelo:          *t.TipoModelo,
		DemoraEntregaDias:   *t.DemoraEntregaDias,
		PrecioUnitario:      *t.PrecioUnitario,
		CargosPedido:        *t.CargosPedido,
		PeriodoRevisionDias: terms.PeriodoRevision(*t.TipoModelo, t.PeriodoRevisionDias),
		Predeterminado:      t.Predeterminado,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toTerminosResponse(pa *entity.ProveedorArticulo) *dto.TerminosResponse {
	if pa == nil {
		return nil
	}
	return &dto.TerminosResponse{
		ID:                  pa.ID,
		ProveedorID:         pa.ProveedorID,
		ArticuloID:          pa.ArticuloID,
		TipoModelo:          pa.TipoModelo,
		DemoraEntregaDias:   pa.DemoraEntregaDias,
		PrecioUnitario:      pa.PrecioUnitario,
		CargosPedido:        pa.CargosPedido,
		PeriodoRevisionDias: pa.PeriodoRevisionDias,
		Predeterminado:      pa.Predeterminado,
	}
}
