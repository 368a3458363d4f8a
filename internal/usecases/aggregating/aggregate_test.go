package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
)

func itRecord(valor float64, mes, ano int, tipo, fornecedor string) domain.CanonicalRecord {
	record := domain.NewCanonicalRecord()
	record.Numbers["valor"] = valor
	record.Integers["mes"] = mes
	record.Integers["ano"] = ano
	record.Texts["tipo"] = tipo
	record.Texts["fornecedor"] = fornecedor
	return record
}

func financeRecord(valor float64, categoria, tipo string) domain.CanonicalRecord {
	record := domain.NewCanonicalRecord()
	record.Numbers["valor"] = valor
	record.Texts["categoria"] = categoria
	record.Texts["tipo"] = tipo
	return record
}

func TestAggregate_TI(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainIT)

	records := []domain.CanonicalRecord{
		itRecord(1500, 3, 2024, "Software", "ACME"),
		itRecord(500, 3, 2024, "Software", "ACME"),
	}

	result := Aggregate(records, descriptor)

	assert.Equal(t, registry.DomainIT, result.Domain)
	assert.Equal(t, 2, result.RecordCount)

	assert.Equal(t, 2000.0, result.KPIs["total_gasto"])
	assert.Equal(t, 1.0, result.KPIs["fornecedores"])
	assert.Equal(t, 1000.0, result.KPIs["gasto_medio"])

	require.Len(t, result.Groups["fornecedores"], 1)
	assert.Equal(t, domain.GroupMetric{Name: "ACME", Value: 2000, Count: 2}, result.Groups["fornecedores"][0])

	require.Len(t, result.Groups["tipos"], 1)
	assert.Equal(t, domain.GroupMetric{Name: "Software", Value: 2000, Count: 2}, result.Groups["tipos"][0])

	require.Len(t, result.Series["timeline_mensal"], 1)
	assert.Equal(t, domain.TimeSeriesPoint{PeriodKey: "2024-03", Value: 2000}, result.Series["timeline_mensal"][0])
}

func TestAggregate_Financeiro(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainFinance)

	tests := []struct {
		name     string
		records  []domain.CanonicalRecord
		receitas float64
		despesas float64
		saldo    float64
	}{
		{
			name: "Valores com sinais mistos",
			records: []domain.CanonicalRecord{
				financeRecord(100, "Vendas", "Receita"),
				financeRecord(-40, "Aluguel", "Despesa"),
				financeRecord(10, "Juros", "Receita"),
			},
			receitas: 110,
			despesas: 40,
			saldo:    70,
		},
		{
			name:     "Coleção vazia zera todos os indicadores",
			records:  nil,
			receitas: 0,
			despesas: 0,
			saldo:    0,
		},
		{
			name: "Somente despesas produz saldo negativo",
			records: []domain.CanonicalRecord{
				financeRecord(-25, "Aluguel", "Despesa"),
				financeRecord(-75, "Folha", "Despesa"),
			},
			receitas: 0,
			despesas: 100,
			saldo:    -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.records, descriptor)

			assert.Equal(t, tt.receitas, result.KPIs["receitas"])
			assert.Equal(t, tt.despesas, result.KPIs["despesas"])
			assert.Equal(t, tt.saldo, result.KPIs["saldo"])
		})
	}
}

func TestAggregate_RankingTruncadoEmDez(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainIT)

	var records []domain.CanonicalRecord
	for i := 1; i <= 50; i++ {
		records = append(records, itRecord(float64(i), 1, 2024, "Software", fmt.Sprintf("Fornecedor %02d", i)))
	}

	result := Aggregate(records, descriptor)

	ranking := result.Groups["fornecedores"]
	require.Len(t, ranking, registry.RankingSize)

	// decrescente: o maior valor vem primeiro
	assert.Equal(t, "Fornecedor 50", ranking[0].Name)
	assert.Equal(t, 50.0, ranking[0].Value)
	assert.Equal(t, "Fornecedor 41", ranking[9].Name)

	// breakdowns não são truncados nem reordenados
	assert.Len(t, result.Groups["tipos"], 1)
}

func TestAggregate_RankingEmpateEstavel(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainSales)

	sale := func(valor float64, vendedor string) domain.CanonicalRecord {
		record := domain.NewCanonicalRecord()
		record.Numbers["valor"] = valor
		record.Texts["cliente"] = "ACME"
		record.Texts["produto"] = "Widget"
		record.Texts["vendedor"] = vendedor
		record.Texts["regiao"] = "Sul"
		return record
	}

	result := Aggregate([]domain.CanonicalRecord{
		sale(100, "Ana"),
		sale(100, "Bruno"),
		sale(200, "Carla"),
		sale(100, "Diego"),
	}, descriptor)

	ranking := result.Groups["vendedores"]
	require.Len(t, ranking, 4)

	// empates preservam a ordem do primeiro encontro na planilha
	assert.Equal(t, "Carla", ranking[0].Name)
	assert.Equal(t, "Ana", ranking[1].Name)
	assert.Equal(t, "Bruno", ranking[2].Name)
	assert.Equal(t, "Diego", ranking[3].Name)
}

func TestAggregate_SerieTemporal(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainIT)

	records := []domain.CanonicalRecord{
		itRecord(10, 1, 2024, "Software", "ACME"),
		itRecord(20, 12, 2023, "Software", "ACME"),
		itRecord(5, 1, 2024, "Software", "ACME"),
		itRecord(7, 0, 2024, "Software", "ACME"), // mês ausente cai no período 01
	}

	result := Aggregate(records, descriptor)

	serie := result.Series["timeline_mensal"]
	require.Len(t, serie, 2)

	// ordenação lexicográfica das chaves é cronológica
	assert.Equal(t, domain.TimeSeriesPoint{PeriodKey: "2023-12", Value: 20}, serie[0])
	assert.Equal(t, domain.TimeSeriesPoint{PeriodKey: "2024-01", Value: 22}, serie[1])
}

func TestAggregate_MediasComColecaoVazia(t *testing.T) {
	reg := registry.New()

	tests := []struct {
		name   string
		domain string
		kpi    string
	}{
		{name: "Gasto médio de TI", domain: registry.DomainIT, kpi: "gasto_medio"},
		{name: "Salário médio de RH", domain: registry.DomainHR, kpi: "salario_medio"},
		{name: "Ticket médio de Vendas", domain: registry.DomainSales, kpi: "ticket_medio"},
		{name: "Custo por conversão de Marketing", domain: registry.DomainMarketing, kpi: "custo_conversao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(nil, reg.MustGet(tt.domain))

			assert.Equal(t, 0.0, result.KPIs[tt.kpi])
			assert.Equal(t, 0, result.RecordCount)
		})
	}
}

func TestAggregate_CustoPorConversaoComDenominadorZero(t *testing.T) {
	descriptor := registry.New().MustGet(registry.DomainMarketing)

	record := domain.NewCanonicalRecord()
	record.Numbers["investimento"] = 300
	record.Integers["impressoes"] = 1000
	record.Integers["cliques"] = 50
	record.Integers["conversoes"] = 0
	record.Texts["campanha"] = "Institucional"

	result := Aggregate([]domain.CanonicalRecord{record}, descriptor)

	// sem conversões o denominador vira 1: o custo é o próprio investimento
	assert.Equal(t, 300.0, result.KPIs["investimento_total"])
	assert.Equal(t, 0.0, result.KPIs["conversoes_total"])
	assert.Equal(t, 300.0, result.KPIs["custo_conversao"])
}
