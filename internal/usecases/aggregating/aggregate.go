// Package aggregating deriva os indicadores, rankings, breakdowns e séries
// temporais de um domínio a partir de uma coleção filtrada de registros
// canônicos. O cálculo é puro e refeito do zero a cada chamada; os cinco
// conjuntos de fórmulas compartilham as mesmas primitivas de soma,
// agrupamento, ranking e bucket temporal, dirigidas pelo descritor
package aggregating

import (
	"fmt"
	"sort"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Aggregate calcula o resultado agregado do domínio para o conjunto de
// registros recebido, tipicamente já filtrado
func Aggregate(records []domain.CanonicalRecord, descriptor *domain.DomainDescriptor) *domain.AggregateResult {
	result := &domain.AggregateResult{
		Domain:      descriptor.Key,
		RecordCount: len(records),
		KPIs:        make(map[string]float64),
		Groups:      make(map[string][]domain.GroupMetric),
		Series:      make(map[string][]domain.TimeSeriesPoint),
	}

	// KPIs derivados (ratio, difference) referenciam KPIs anteriores da
	// lista, por isso a ordem de declaração importa
	for _, spec := range descriptor.KPIs {
		result.KPIs[spec.Name] = computeKPI(spec, records, result.KPIs)
	}

	for _, spec := range descriptor.Groups {
		result.Groups[spec.Name] = groupMetrics(spec, records)
	}

	for _, spec := range descriptor.Series {
		result.Series[spec.Name] = timeSeries(spec, records)
	}

	return result
}

func computeKPI(spec domain.KPISpec, records []domain.CanonicalRecord, kpis map[string]float64) float64 {
	switch spec.Op {
	case domain.KPISum:
		return sum(records, spec.Field)

	case domain.KPICount:
		return float64(len(records))

	case domain.KPIDistinct:
		seen := make(map[string]struct{})
		for _, record := range records {
			seen[groupKey(record, spec.Field)] = struct{}{}
		}
		return float64(len(seen))

	case domain.KPISumPositive:
		total := 0.0
		for _, record := range records {
			if value := fieldValue(record, spec.Field); value > 0 {
				total += value
			}
		}
		return total

	case domain.KPISumNegativeAbs:
		total := 0.0
		for _, record := range records {
			if value := fieldValue(record, spec.Field); value < 0 {
				total += -value
			}
		}
		return total

	case domain.KPIAveragePerItem:
		return sum(records, spec.Field) / float64(denominator(len(records)))

	case domain.KPIRatio:
		den := kpis[spec.RightKPI]
		if den == 0 {
			den = 1
		}
		return kpis[spec.LeftKPI] / den

	case domain.KPIDifference:
		return kpis[spec.LeftKPI] - kpis[spec.RightKPI]
	}

	return 0
}

// groupMetrics agrupa os registros pelo campo indicado somando o campo de
// valor. Rankings são ordenados de forma estável em ordem decrescente e
// truncados; breakdowns preservam a ordem do primeiro encontro, completos
func groupMetrics(spec domain.GroupSpec, records []domain.CanonicalRecord) []domain.GroupMetric {
	index := make(map[string]int)
	groups := make([]domain.GroupMetric, 0)

	for _, record := range records {
		name := groupKey(record, spec.GroupBy)

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, domain.GroupMetric{Name: name})
		}

		groups[i].Value += fieldValue(record, spec.SumField)
		groups[i].Count++
	}

	if spec.Ranked {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Value > groups[j].Value
		})
		if spec.TopN > 0 && len(groups) > spec.TopN {
			groups = groups[:spec.TopN]
		}
	}

	return groups
}

// timeSeries acumula o campo de valor por período "AAAA-MM". O mês com dois
// dígitos garante que a ordenação lexicográfica das chaves é cronológica
func timeSeries(spec domain.SeriesSpec, records []domain.CanonicalRecord) []domain.TimeSeriesPoint {
	index := make(map[string]int)
	points := make([]domain.TimeSeriesPoint, 0)

	for _, record := range records {
		month := record.Integer(spec.MonthField)
		if month < 1 {
			// mês ausente entra no primeiro período do ano
			month = 1
		}
		key := fmt.Sprintf("%d-%02d", record.Integer(spec.YearField), month)

		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, domain.TimeSeriesPoint{PeriodKey: key})
		}

		points[i].Value += fieldValue(record, spec.SumField)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].PeriodKey < points[j].PeriodKey
	})

	return points
}

func sum(records []domain.CanonicalRecord, field string) float64 {
	total := 0.0
	for _, record := range records {
		total += fieldValue(record, field)
	}
	return total
}

// fieldValue lê um campo somável independentemente de ser numérico ou
// inteiro no esquema do domínio
func fieldValue(record domain.CanonicalRecord, field string) float64 {
	if value, ok := record.Numbers[field]; ok {
		return value
	}
	if value, ok := record.Integers[field]; ok {
		return float64(value)
	}
	return 0
}

func groupKey(record domain.CanonicalRecord, field string) string {
	if value, ok := record.Texts[field]; ok {
		return value
	}
	return utils.FormatNumber(fieldValue(record, field))
}

// denominator aplica o piso de divisão: contagem zero vira 1 para que
// médias de conjuntos vazios resultem em 0, nunca NaN ou infinito
func denominator(count int) int {
	if count == 0 {
		return 1
	}
	return count
}
