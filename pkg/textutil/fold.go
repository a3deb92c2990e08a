package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un texto para búsqueda: minúsculas y sin tildes/diacríticos
// ("Lápiz HB" -> "lapiz hb"). Si la transformación falla, degrada a minúsculas.
func Fold(s string) string {
	// Descomponer (NFD), quitar marcas no-espaciadas (tildes) y recomponer (NFC).
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si substr aparece dentro de s ignorando mayúsculas y tildes.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
