// Package filtering aplica busca livre e filtro categórico sobre a coleção
// de registros canônicos de uma sessão
package filtering

import (
	"strconv"
	"strings"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// AllFilter é o valor-sentinela que desativa o filtro categórico
const AllFilter = "all"

// Apply retorna os registros que satisfazem a busca livre e, quando o
// domínio define campo categórico, a igualdade (sem caixa) com o filtro.
// Busca vazia casa com tudo; domínios sem campo categórico ignoram o filtro
func Apply(records []domain.CanonicalRecord, search, categorical string, descriptor *domain.DomainDescriptor) []domain.CanonicalRecord {
	search = strings.ToLower(search)

	filtered := make([]domain.CanonicalRecord, 0, len(records))
	for _, record := range records {
		if !matchesSearch(record, search, descriptor) {
			continue
		}
		if !matchesCategorical(record, categorical, descriptor) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// Options lista os valores válidos do filtro categórico: os valores
// distintos e não vazios do campo sobre a coleção original completa, na
// ordem do primeiro encontro. Domínios sem campo categórico retornam vazio
func Options(records []domain.CanonicalRecord, descriptor *domain.DomainDescriptor) []string {
	if descriptor.FilterField == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var options []string
	for _, record := range records {
		value := record.Text(descriptor.FilterField)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}
	return options
}

func matchesSearch(record domain.CanonicalRecord, search string, descriptor *domain.DomainDescriptor) bool {
	if search == "" {
		return true
	}

	for _, field := range descriptor.Fields {
		var text string
		switch field.Kind {
		case domain.FieldNumber:
			text = utils.FormatNumber(record.Number(field.Name))
		case domain.FieldInteger:
			text = strconv.Itoa(record.Integer(field.Name))
		default:
			text = record.Text(field.Name)
		}

		if strings.Contains(strings.ToLower(text), search) {
			return true
		}
	}
	return false
}

func matchesCategorical(record domain.CanonicalRecord, categorical string, descriptor *domain.DomainDescriptor) bool {
	if categorical == "" || categorical == AllFilter || descriptor.FilterField == "" {
		return true
	}
	return strings.EqualFold(record.Text(descriptor.FilterField), categorical)
}
