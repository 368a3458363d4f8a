// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// FieldKind define como o valor bruto de um campo canônico é convertido
type FieldKind string

const (
	FieldNumber  FieldKind = "number"
	FieldInteger FieldKind = "integer"
	FieldText    FieldKind = "text"
)

// IntDefault define o valor assumido por um campo inteiro quando o valor
// bruto está ausente ou não pode ser convertido
type IntDefault string

const (
	IntDefaultZero        IntDefault = "zero"
	IntDefaultCurrentYear IntDefault = "current_year"
)

// FieldSpec descreve um campo canônico de um domínio: o nome normalizado,
// os sinônimos aceitos como cabeçalho bruto (em ordem de prioridade) e o
// valor padrão aplicado quando nenhum sinônimo resolve
type FieldSpec struct {
	Name        string     `json:"name"`
	Kind        FieldKind  `json:"kind"`
	Synonyms    []string   `json:"synonyms"`
	TextDefault string     `json:"text_default,omitempty"`
	IntDefault  IntDefault `json:"int_default,omitempty"`
}

// DashboardVariant é uma visão nomeada disponível para um domínio
type DashboardVariant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// KPIOp identifica a fórmula declarativa de um indicador escalar
type KPIOp string

const (
	KPISum            KPIOp = "sum"          // soma do campo
	KPICount          KPIOp = "count"        // quantidade de registros
	KPIDistinct       KPIOp = "distinct"     // valores distintos do campo
	KPISumPositive    KPIOp = "sum_positive" // soma dos valores > 0
	KPISumNegativeAbs KPIOp = "sum_negative" // soma absoluta dos valores < 0
	KPIAveragePerItem KPIOp = "avg_per_item" // soma do campo / max(registros, 1)
	KPIRatio          KPIOp = "ratio"        // KPI numerador / max(KPI denominador, 1)
	KPIDifference     KPIOp = "difference"   // KPI minuendo - KPI subtraendo
)

// KPISpec descreve um indicador escalar. Para KPIRatio e KPIDifference os
// operandos referenciam KPIs já declarados (a ordem da lista importa)
type KPISpec struct {
	Name     string `json:"name"`
	Op       KPIOp  `json:"op"`
	Field    string `json:"field,omitempty"`
	LeftKPI  string `json:"left_kpi,omitempty"`
	RightKPI string `json:"right_kpi,omitempty"`
}

// GroupSpec descreve um agrupamento: ranking (ordenado e truncado) ou
// breakdown (lista completa, sem ordenação)
type GroupSpec struct {
	Name     string `json:"name"`
	GroupBy  string `json:"group_by"`
	SumField string `json:"sum_field"`
	Ranked   bool   `json:"ranked"`
	TopN     int    `json:"top_n,omitempty"`
}

// SeriesSpec descreve uma série temporal mensal derivada de campos de
// ano e mês, somando o campo indicado por período "AAAA-MM"
type SeriesSpec struct {
	Name       string `json:"name"`
	YearField  string `json:"year_field"`
	MonthField string `json:"month_field"`
	SumField   string `json:"sum_field"`
}

// DomainDescriptor descreve um domínio de negócio: esquema canônico,
// variantes de dashboard e fórmulas de agregação. Imutável após a
// construção do registro
type DomainDescriptor struct {
	Key        string             `json:"key"`
	Name       string             `json:"name"`
	Color      string             `json:"color"`
	Fields     []FieldSpec        `json:"fields"`
	Dashboards []DashboardVariant `json:"dashboards"`

	// FilterField é o campo categórico filtrável do domínio; vazio quando
	// o domínio não define filtro categórico
	FilterField string `json:"filter_field,omitempty"`

	KPIs   []KPISpec    `json:"kpis"`
	Groups []GroupSpec  `json:"groups"`
	Series []SeriesSpec `json:"series"`
}

// Field retorna a especificação do campo canônico com o nome informado
func (d *DomainDescriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// ExpectedColumns retorna o cabeçalho preferencial de cada campo canônico,
// usado como dica de preenchimento na interface de upload
func (d *DomainDescriptor) ExpectedColumns() []string {
	columns := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if len(f.Synonyms) > 0 {
			columns = append(columns, f.Synonyms[0])
			continue
		}
		columns = append(columns, f.Name)
	}
	return columns
}
