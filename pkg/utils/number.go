package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseFloat tenta converter um valor bruto de célula em float64 finito.
// Strings aceitam o formato brasileiro ("1.500,00"): quando há vírgula
// decimal, os pontos anteriores são tratados como separador de milhar
func parseFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return parseFloat(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseFloatString(v)
	default:
		return parseFloatString(fmt.Sprintf("%v", raw))
	}
}

func parseFloatString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDecimal converte um valor bruto em número finito, substituindo o
// fallback quando a conversão não produz um número finito. O contrato
// garante que o retorno nunca é NaN nem infinito
func ParseDecimal(raw any, fallback float64) float64 {
	f, ok := parseFloat(raw)
	if !ok {
		return fallback
	}
	return f
}

// ParseInteger converte um valor bruto em inteiro, truncando a parte
// fracionária, com o mesmo contrato de fallback de ParseDecimal
func ParseInteger(raw any, fallback int) int {
	f, ok := parseFloat(raw)
	if !ok {
		return fallback
	}
	return int(math.Trunc(f))
}
