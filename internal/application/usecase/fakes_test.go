package usecase

import (
	"context"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/purchase"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de casos de uso. Slices para orden estable.
// ─────────────────────────────────────────────────────────────────────────────

type fakeArticuloRepo struct {
	articulos []*entity.Articulo
}

func (r *fakeArticuloRepo) Create(a *entity.Articulo) error {
	r.articulos = append(r.articulos, a)
	return nil
}

func (r *fakeArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	for _, a := range r.articulos {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArticuloRepo) GetByCodigo(codigo string) (*entity.Articulo, error) {
	for _, a := range r.articulos {
		if a.Codigo == codigo {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	return r.articulos, nil
}

func (r *fakeArticuloRepo) ListActivos(ctx context.Context) ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range r.articulos {
		if a.Activo() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArticuloRepo) Update(a *entity.Articulo) error {
	for i, existing := range r.articulos {
		if existing.ID == a.ID {
			r.articulos[i] = a
			return nil
		}
	}
	return nil
}

func (r *fakeArticuloRepo) Delete(id string) error {
	for i, a := range r.articulos {
		if a.ID == id {
			r.articulos = append(r.articulos[:i], r.articulos[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProveedorRepo struct {
	proveedores []*entity.Proveedor
}

func (r *fakeProveedorRepo) Create(p *entity.Proveedor) error {
	r.proveedores = append(r.proveedores, p)
	return nil
}

func (r *fakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	return r.proveedores, nil
}

func (r *fakeProveedorRepo) Update(p *entity.Proveedor) error {
	for i, existing := range r.proveedores {
		if existing.ID == p.ID {
			r.proveedores[i] = p
			return nil
		}
	}
	return nil
}

func (r *fakeProveedorRepo) Deactivate(id string) error {
	for _, p := range r.proveedores {
		if p.ID == id {
			p.Activo = false
			return nil
		}
	}
	return nil
}

type fakePARepo struct {
	condiciones []*entity.ProveedorArticulo
}

func (r *fakePARepo) Create(pa *entity.ProveedorArticulo) error {
	r.condiciones = append(r.condiciones, pa)
	return nil
}

func (r *fakePARepo) GetByID(id string) (*entity.ProveedorArticulo, error) {
	for _, pa := range r.condiciones {
		if pa.ID == id {
			return pa, nil
		}
	}
	return nil, nil
}

func (r *fakePARepo) GetByProveedorYArticulo(proveedorID, articuloID string) (*entity.ProveedorArticulo, error) {
	for _, pa := range r.condiciones {
		if pa.ProveedorID == proveedorID && pa.ArticuloID == articuloID {
			return pa, nil
		}
	}
	return nil, nil
}

func (r *fakePARepo) ListByProveedor(proveedorID string) ([]*entity.ProveedorArticulo, error) {
	var out []*entity.ProveedorArticulo
	for _, pa := range r.condiciones {
		if pa.ProveedorID == proveedorID {
			out = append(out, pa)
		}
	}
	return out, nil
}

func (r *fakePARepo) CountByProveedor(proveedorID string) (int, error) {
	n := 0
	for _, pa := range r.condiciones {
		if pa.ProveedorID == proveedorID {
			n++
		}
	}
	return n, nil
}

func (r *fakePARepo) Update(pa *entity.ProveedorArticulo) error {
	for i, existing := range r.condiciones {
		if existing.ID == pa.ID {
			r.condiciones[i] = pa
			return nil
		}
	}
	return nil
}

func (r *fakePARepo) ClearPredeterminadoPorArticulo(articuloID string) error {
	for _, pa := range r.condiciones {
		if pa.ArticuloID == articuloID {
			pa.Predeterminado = false
		}
	}
	return nil
}

func (r *fakePARepo) Delete(id string) error {
	for i, pa := range r.condiciones {
		if pa.ID == id {
			r.condiciones = append(r.condiciones[:i], r.condiciones[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrdenRepo struct {
	ordenes    []*entity.OrdenCompra
	secuencias map[int]int
}

func (r *fakeOrdenRepo) Create(o *entity.OrdenCompra) error {
	r.ordenes = append(r.ordenes, o)
	return nil
}

func (r *fakeOrdenRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	for _, o := range r.ordenes {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrdenRepo) List(limit, offset int) ([]*entity.OrdenCompra, error) {
	return r.ordenes, nil
}

func (r *fakeOrdenRepo) ListByEstado(estado string, limit, offset int) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range r.ordenes {
		if o.Estado == estado {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrdenRepo) Update(o *entity.OrdenCompra) error {
	for i, existing := range r.ordenes {
		if existing.ID == o.ID {
			r.ordenes[i] = o
			return nil
		}
	}
	return nil
}

func (r *fakeOrdenRepo) Delete(id string) error {
	for i, o := range r.ordenes {
		if o.ID == id {
			r.ordenes = append(r.ordenes[:i], r.ordenes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeOrdenRepo) CountAbiertasPorArticulo(articuloID string) (int, error) {
	n := 0
	for _, o := range r.ordenes {
		if o.ArticuloID == articuloID && purchase.EsAbierta(o.Estado) {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrdenRepo) NextNumero(ctx context.Context, anio int) (int, error) {
	if r.secuencias == nil {
		r.secuencias = make(map[int]int)
	}
	r.secuencias[anio]++
	return r.secuencias[anio], nil
}

func (r *fakeOrdenRepo) Estadisticas(ctx context.Context) ([]repository.EstadisticaEstado, error) {
	porEstado := make(map[string]*repository.EstadisticaEstado)
	var orden []string
	for _, o := range r.ordenes {
		s, ok := porEstado[o.Estado]
		if !ok {
			s = &repository.EstadisticaEstado{Estado: o.Estado}
			porEstado[o.Estado] = s
			orden = append(orden, o.Estado)
		}
		s.Cantidad++
		s.MontoTotal = s.MontoTotal.Add(o.Total)
	}
	out := make([]repository.EstadisticaEstado, 0, len(orden))
	for _, e := range orden {
		out = append(out, *porEstado[e])
	}
	return out, nil
}

type fakeVentaRepo struct {
	ventas []*entity.Venta
	items  []*entity.VentaItem
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *fakeVentaRepo) CreateItem(it *entity.VentaItem) error {
	r.items = append(r.items, it)
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVentaRepo) GetItemsByVentaID(ventaID string) ([]entity.VentaItem, error) {
	var out []entity.VentaItem
	for _, it := range r.items {
		if it.VentaID == ventaID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	return r.ventas, nil
}

func (r *fakeVentaRepo) Update(v *entity.Venta) error {
	for i, existing := range r.ventas {
		if existing.ID == v.ID {
			r.ventas[i] = v
			return nil
		}
	}
	return nil
}

func (r *fakeVentaRepo) Delete(id string) error {
	for i, v := range r.ventas {
		if v.ID == id {
			r.ventas = append(r.ventas[:i], r.ventas[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner pasa los mismos repos en memoria al callback: sin transacción
// real, el test observa directamente los efectos.
type fakeTxRunner struct {
	provRepo  *fakeProveedorRepo
	paRepo    *fakePARepo
	ordenRepo *fakeOrdenRepo
	ventaRepo *fakeVentaRepo
}

func (r *fakeTxRunner) RunProveedor(ctx context.Context, fn func(
	provRepo repository.ProveedorRepository,
	paRepo repository.ProveedorArticuloRepository,
) error) error {
	return fn(r.provRepo, r.paRepo)
}

func (r *fakeTxRunner) RunOrden(ctx context.Context, fn func(
	ordenRepo repository.OrdenCompraRepository,
) error) error {
	return fn(r.ordenRepo)
}

func (r *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
) error) error {
	return fn(r.ventaRepo)
}
