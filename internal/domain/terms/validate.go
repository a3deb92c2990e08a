package terms

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// Kind enumera los tipos de error de campo. El contrato es estructurado
// (campo -> tipo de error), no strings libres.
type Kind string

const (
	Requerido          Kind = "REQUERIDO"
	DebeSerPositivo    Kind = "DEBE_SER_POSITIVO"
	NoPuedeSerNegativo Kind = "NO_PUEDE_SER_NEGATIVO"
	ValorInvalido      Kind = "VALOR_INVALIDO"
)

// FieldError es un error de validación asociado a un campo.
type FieldError struct {
	Campo string
	Kind  Kind
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Kind)
}

// Input son las condiciones proveedor-artículo a validar. Los campos son
// punteros para distinguir "ausente" de "cero" en el request.
type Input struct {
	TipoModelo          *string
	DemoraEntregaDias   *int
	PrecioUnitario      *decimal.Decimal
	CargosPedido        *decimal.Decimal
	PeriodoRevisionDias *int
}

// Validate aplica todas las reglas de forma independiente y acumula los
// errores (no corta en el primero):
//   - tipoModelo requerido, uno de LOTE_FIJO | INTERVALO_FIJO
//   - demoraEntregaDias requerido, > 0
//   - precioUnitario requerido, > 0
//   - cargosPedido requerido, >= 0 (cero permitido)
//   - periodoRevisionDias requerido y > 0, salvo con modelo LOTE_FIJO,
//     donde se fuerza a 0 y queda exento del chequeo
//
// Un registro está completo si y solo si Validate devuelve vacío.
func Validate(in Input) []FieldError {
	var errs []FieldError

	esLoteFijo := false
	switch {
	case in.TipoModelo == nil || *in.TipoModelo == "":
		errs = append(errs, FieldError{Campo: "tipoModelo", Kind: Requerido})
	case *in.TipoModelo != entity.ModeloLoteFijo && *in.TipoModelo != entity.ModeloIntervaloFijo:
		errs = append(errs, FieldError{Campo: "tipoModelo", Kind: ValorInvalido})
	default:
		esLoteFijo = *in.TipoModelo == entity.ModeloLoteFijo
	}

	switch {
	case in.DemoraEntregaDias == nil:
		errs = append(errs, FieldError{Campo: "demoraEntregaDias", Kind: Requerido})
	case *in.DemoraEntregaDias <= 0:
		errs = append(errs, FieldError{Campo: "demoraEntregaDias", Kind: DebeSerPositivo})
	}

	switch {
	case in.PrecioUnitario == nil:
		errs = append(errs, FieldError{Campo: "precioUnitario", Kind: Requerido})
	case !in.PrecioUnitario.GreaterThan(decimal.Zero):
		errs = append(errs, FieldError{Campo: "precioUnitario", Kind: DebeSerPositivo})
	}

	switch {
	case in.CargosPedido == nil:
		errs = append(errs, FieldError{Campo: "cargosPedido", Kind: Requerido})
	case in.CargosPedido.LessThan(decimal.Zero):
		errs = append(errs, FieldError{Campo: "cargosPedido", Kind: NoPuedeSerNegativo})
	}

	if !esLoteFijo {
		switch {
		case in.PeriodoRevisionDias == nil:
			errs = append(errs, FieldError{Campo: "periodoRevisionDias", Kind: Requerido})
		case *in.PeriodoRevisionDias <= 0:
			errs = append(errs, FieldError{Campo: "periodoRevisionDias", Kind: DebeSerPositivo})
		}
	}

	return errs
}

// PeriodoRevision normaliza el período de revisión según el modelo: para
// LOTE_FIJO siempre es 0, aunque el cliente haya enviado otro valor.
func PeriodoRevision(tipoModelo string, dias *int) int {
	if tipoModelo == entity.ModeloLoteFijo || dias == nil {
		return 0
	}
	return *dias
}
