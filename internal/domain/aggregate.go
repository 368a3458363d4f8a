package domain

// GroupMetric é o agregado de um grupo de registros: soma do campo de
// valor e quantidade de registros do grupo
type GroupMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// TimeSeriesPoint é um ponto de série temporal mensal. PeriodKey usa o
// formato "AAAA-MM" com mês de dois dígitos, de forma que a ordenação
// lexicográfica coincide com a cronológica
type TimeSeriesPoint struct {
	PeriodKey string  `json:"period"`
	Value     float64 `json:"value"`
}

// AggregateResult é o resultado derivado de uma agregação: indicadores
// escalares, agrupamentos nomeados e séries temporais. Nunca é persistido;
// é recalculado a cada mudança de busca ou filtro
type AggregateResult struct {
	Domain      string                       `json:"domain"`
	RecordCount int                          `json:"record_count"`
	KPIs        map[string]float64           `json:"kpis"`
	Groups      map[string][]GroupMetric     `json:"groups"`
	Series      map[string][]TimeSeriesPoint `json:"series"`
}
