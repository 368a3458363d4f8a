package normalizing

import (
	"strings"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Resolve obtém o valor bruto de um campo canônico tentando cada sinônimo
// declarado, em ordem de prioridade, como busca exata de chave (sensível a
// maiúsculas e acentos). Retorna o primeiro valor presente e não vazio
func Resolve(row domain.RawRow, field domain.FieldSpec) (any, bool) {
	for _, synonym := range field.Synonyms {
		if value, ok := row[synonym]; ok && !isEmptyCell(value) {
			return value, true
		}
	}
	return nil, false
}

func isEmptyCell(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// CheckCoverage é o diagnóstico de cobertura de colunas: lista os campos
// canônicos cujo nome não aparece como substring de nenhum cabeçalho bruto,
// comparando sem caixa e sem acentos. É apenas informativo e independe da
// resolução por sinônimos que de fato extrai os valores
func CheckCoverage(headers []string, descriptor *domain.DomainDescriptor) []string {
	folded := make([]string, 0, len(headers))
	for _, header := range headers {
		folded = append(folded, utils.Fold(header))
	}

	var missing []string
	for _, field := range descriptor.Fields {
		name := utils.Fold(field.Name)

		found := false
		for _, header := range folded {
			if strings.Contains(header, name) {
				found = true
				break
			}
		}

		if !found {
			missing = append(missing, field.Name)
		}
	}
	return missing
}
