package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza um texto para comparação: minúsculas e sem diacríticos,
// de forma que "Salário" e "salario" colidam
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// CellText produz a forma textual de um valor bruto de célula, usada na
// busca livre. Números sem parte fracionária não ganham casa decimal
func CellText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// FormatNumber é a forma textual de um número canônico, sem zeros à direita
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
