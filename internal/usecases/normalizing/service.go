// Package normalizing converte linhas brutas de planilha em registros
// canônicos tipados de um domínio, aplicando a tabela de sinônimos do
// descritor e substituindo valores ausentes ou inválidos pelos padrões
package normalizing

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Normalizer transforma um lote de linhas brutas nos registros canônicos
// de um domínio, emitindo o diagnóstico de cobertura do cabeçalho
type Normalizer interface {
	Normalize(rows []domain.RawRow, descriptor *domain.DomainDescriptor) ([]domain.CanonicalRecord, []string, error)
}

// Service implementa Normalizer
type Service struct {
	// now é substituível em testes para fixar o ano corrente usado como
	// padrão de campos de ano
	now func() time.Time
}

// NewService cria uma nova instância do serviço de normalização
func NewService() *Service {
	return &Service{now: time.Now}
}

// Normalize processa todas as linhas do lote. Falha apenas quando o lote é
// vazio; linhas individuais nunca falham, cada campo cai de forma
// independente para o seu padrão
func (s *Service) Normalize(rows []domain.RawRow, descriptor *domain.DomainDescriptor) ([]domain.CanonicalRecord, []string, error) {
	if len(rows) == 0 {
		return nil, nil, ErrEmptyInput
	}

	warnings := CheckCoverage(rows[0].Headers(), descriptor)
	if len(warnings) > 0 {
		logrus.WithFields(logrus.Fields{
			"domain":  descriptor.Key,
			"columns": strings.Join(warnings, ", "),
		}).Warn("Colunas recomendadas não encontradas na planilha")
	}

	records := make([]domain.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.normalizeRow(row, descriptor))
	}

	return records, warnings, nil
}

func (s *Service) normalizeRow(row domain.RawRow, descriptor *domain.DomainDescriptor) domain.CanonicalRecord {
	record := domain.NewCanonicalRecord()

	for _, field := range descriptor.Fields {
		raw, _ := Resolve(row, field)

		switch field.Kind {
		case domain.FieldNumber:
			record.Numbers[field.Name] = utils.ParseDecimal(raw, 0)
		case domain.FieldInteger:
			record.Integers[field.Name] = utils.ParseInteger(raw, s.integerDefault(field))
		default:
			text := strings.TrimSpace(utils.CellText(raw))
			if text == "" {
				text = field.TextDefault
			}
			record.Texts[field.Name] = text
		}
	}

	return record
}

func (s *Service) integerDefault(field domain.FieldSpec) int {
	if field.IntDefault == domain.IntDefaultCurrentYear {
		return s.now().Year()
	}
	return 0
}
