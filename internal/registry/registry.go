// Package registry mantém a configuração estática dos domínios de negócio:
// esquema canônico, sinônimos de cabeçalho, variantes de dashboard e as
// fórmulas declarativas de agregação de cada domínio
package registry

import (
	"fmt"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// Chaves dos domínios suportados
const (
	DomainIT        = "it"
	DomainHR        = "hr"
	DomainSales     = "sales"
	DomainFinance   = "finance"
	DomainMarketing = "marketing"
)

// Valores-sentinela aplicados a campos categóricos ausentes
const (
	NotInformed    = "Não informado"
	NotCategorized = "Não categorizado"
	OtherTypes     = "Outros"
	RankingSize    = 10
)

// Registry é a tabela imutável de descritores de domínio. Construída uma
// única vez na inicialização e passada explicitamente aos componentes
type Registry struct {
	descriptors map[string]*domain.DomainDescriptor
	order       []string
}

// New constrói o registro com os cinco domínios suportados
func New() *Registry {
	r := &Registry{descriptors: make(map[string]*domain.DomainDescriptor)}
	for _, d := range []*domain.DomainDescriptor{
		itDescriptor(),
		hrDescriptor(),
		salesDescriptor(),
		financeDescriptor(),
		marketingDescriptor(),
	} {
		r.descriptors[d.Key] = d
		r.order = append(r.order, d.Key)
	}
	return r
}

// Get retorna o descritor do domínio informado
func (r *Registry) Get(key string) (*domain.DomainDescriptor, bool) {
	d, ok := r.descriptors[key]
	return d, ok
}

// MustGet retorna o descritor do domínio ou entra em pânico. Uma chave
// desconhecida aqui é erro de programação, não entrada de usuário
func (r *Registry) MustGet(key string) *domain.DomainDescriptor {
	d, ok := r.descriptors[key]
	if !ok {
		panic(fmt.Sprintf("registry: domínio desconhecido %q", key))
	}
	return d
}

// All retorna os descritores na ordem de declaração
func (r *Registry) All() []*domain.DomainDescriptor {
	all := make([]*domain.DomainDescriptor, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.descriptors[key])
	}
	return all
}

func itDescriptor() *domain.DomainDescriptor {
	return &domain.DomainDescriptor{
		Key:   DomainIT,
		Name:  "Tecnologia da Informação",
		Color: "#FF6B35",
		Fields: []domain.FieldSpec{
			{Name: "valor", Kind: domain.FieldNumber, Synonyms: []string{"valor"}},
			{Name: "mes", Kind: domain.FieldInteger, Synonyms: []string{"Mês", "mes"}, IntDefault: domain.IntDefaultZero},
			{Name: "ano", Kind: domain.FieldInteger, Synonyms: []string{"Ano", "ano"}, IntDefault: domain.IntDefaultCurrentYear},
			{Name: "tipo", Kind: domain.FieldText, Synonyms: []string{"Tipo", "tipo"}, TextDefault: OtherTypes},
			{Name: "fornecedor", Kind: domain.FieldText, Synonyms: []string{"A2_NREDUZ", "fornecedor"}, TextDefault: NotInformed},
		},
		Dashboards: []domain.DashboardVariant{
			{ID: "despesas", Name: "Análise de Despesas", Icon: "💰"},
			{ID: "fornecedores", Name: "Gestão de Fornecedores", Icon: "🏢"},
			{ID: "timeline", Name: "Timeline de Gastos", Icon: "📈"},
		},
		FilterField: "tipo",
		KPIs: []domain.KPISpec{
			{Name: "total_gasto", Op: domain.KPISum, Field: "valor"},
			{Name: "fornecedores", Op: domain.KPIDistinct, Field: "fornecedor"},
			{Name: "gasto_medio", Op: domain.KPIAveragePerItem, Field: "valor"},
		},
		Groups: []domain.GroupSpec{
			{Name: "fornecedores", GroupBy: "fornecedor", SumField: "valor", Ranked: true, TopN: RankingSize},
			{Name: "tipos", GroupBy: "tipo", SumField: "valor"},
		},
		Series: []domain.SeriesSpec{
			{Name: "timeline_mensal", YearField: "ano", MonthField: "mes", SumField: "valor"},
		},
	}
}

func hrDescriptor() *domain.DomainDescriptor {
	return &domain.DomainDescriptor{
		Key:   DomainHR,
		Name:  "Recursos Humanos",
		Color: "#8338EC",
		Fields: []domain.FieldSpec{
			{Name: "salario", Kind: domain.FieldNumber, Synonyms: []string{"Salario", "salario"}},
			{Name: "funcionario", Kind: domain.FieldText, Synonyms: []string{"Funcionario", "funcionario"}, TextDefault: NotInformed},
			{Name: "cargo", Kind: domain.FieldText, Synonyms: []string{"Cargo", "cargo"}, TextDefault: NotInformed},
			{Name: "departamento", Kind: domain.FieldText, Synonyms: []string{"Departamento", "departamento"}, TextDefault: NotInformed},
		},
		Dashboards: []domain.DashboardVariant{
			{ID: "folha", Name: "Análise de Folha de Pagamento", Icon: "👥"},
			{ID: "turnover", Name: "Turnover e Retenção", Icon: "🔄"},
			{ID: "beneficios", Name: "Benefícios e Custos", Icon: "🎯"},
		},
		KPIs: []domain.KPISpec{
			{Name: "funcionarios", Op: domain.KPICount},
			{Name: "folha_total", Op: domain.KPISum, Field: "salario"},
			{Name: "salario_medio", Op: domain.KPIAveragePerItem, Field: "salario"},
		},
		Groups: []domain.GroupSpec{
			{Name: "departamentos", GroupBy: "departamento", SumField: "salario"},
		},
	}
}

func salesDescriptor() *domain.DomainDescriptor {
	return &domain.DomainDescriptor{
		Key:   DomainSales,
		Name:  "Vendas",
		Color: "#06FFA5",
		Fields: []domain.FieldSpec{
			{Name: "valor", Kind: domain.FieldNumber, Synonyms: []string{"Valor", "valor"}},
			{Name: "cliente", Kind: domain.FieldText, Synonyms: []string{"Cliente", "cliente"}, TextDefault: NotInformed},
			{Name: "produto", Kind: domain.FieldText, Synonyms: []string{"Produto", "produto"}, TextDefault: NotInformed},
			{Name: "vendedor", Kind: domain.FieldText, Synonyms: []string{"Vendedor", "vendedor"}, TextDefault: NotInformed},
			{Name: "regiao", Kind: domain.FieldText, Synonyms: []string{"Regiao", "regiao"}, TextDefault: NotInformed},
		},
		Dashboards: []domain.DashboardVariant{
			{ID: "performance", Name: "Performance de Vendas", Icon: "📊"},
			{ID: "clientes", Name: "Análise de Clientes", Icon: "👤"},
			{ID: "produtos", Name: "Produtos Mais Vendidos", Icon: "📦"},
		},
		FilterField: "regiao",
		KPIs: []domain.KPISpec{
			{Name: "total_vendas", Op: domain.KPISum, Field: "valor"},
			{Name: "clientes", Op: domain.KPIDistinct, Field: "cliente"},
			{Name: "ticket_medio", Op: domain.KPIAveragePerItem, Field: "valor"},
		},
		Groups: []domain.GroupSpec{
			{Name: "vendedores", GroupBy: "vendedor", SumField: "valor", Ranked: true, TopN: RankingSize},
		},
	}
}

func financeDescriptor() *domain.DomainDescriptor {
	return &domain.DomainDescriptor{
		Key:   DomainFinance,
		Name:  "Financeiro",
		Color: "#004E89",
		Fields: []domain.FieldSpec{
			// valor é assinado: positivo indica receita, negativo despesa
			{Name: "valor", Kind: domain.FieldNumber, Synonyms: []string{"Valor", "valor"}},
			{Name: "categoria", Kind: domain.FieldText, Synonyms: []string{"Categoria", "categoria"}, TextDefault: NotCategorized},
			{Name: "tipo", Kind: domain.FieldText, Synonyms: []string{"Tipo", "tipo"}, TextDefault: NotInformed},
		},
		Dashboards: []domain.DashboardVariant{
			{ID: "fluxo", Name: "Fluxo de Caixa", Icon: "💸"},
			{ID: "receitas", Name: "Análise de Receitas", Icon: "📈"},
			{ID: "despesas", Name: "Controle de Despesas", Icon: "📉"},
		},
		KPIs: []domain.KPISpec{
			{Name: "receitas", Op: domain.KPISumPositive, Field: "valor"},
			{Name: "despesas", Op: domain.KPISumNegativeAbs, Field: "valor"},
			{Name: "saldo", Op: domain.KPIDifference, LeftKPI: "receitas", RightKPI: "despesas"},
		},
	}
}

func marketingDescriptor() *domain.DomainDescriptor {
	return &domain.DomainDescriptor{
		Key:   DomainMarketing,
		Name:  "Marketing",
		Color: "#F4B942",
		Fields: []domain.FieldSpec{
			{Name: "investimento", Kind: domain.FieldNumber, Synonyms: []string{"Investimento", "investimento"}},
			{Name: "impressoes", Kind: domain.FieldInteger, Synonyms: []string{"Impressoes", "impressoes"}, IntDefault: domain.IntDefaultZero},
			{Name: "cliques", Kind: domain.FieldInteger, Synonyms: []string{"Cliques", "cliques"}, IntDefault: domain.IntDefaultZero},
			{Name: "conversoes", Kind: domain.FieldInteger, Synonyms: []string{"Conversoes", "conversoes"}, IntDefault: domain.IntDefaultZero},
			{Name: "campanha", Kind: domain.FieldText, Synonyms: []string{"Campanha", "campanha"}, TextDefault: NotInformed},
		},
		Dashboards: []domain.DashboardVariant{
			{ID: "campanhas", Name: "Performance de Campanhas", Icon: "🎯"},
			{ID: "roi", Name: "ROI Marketing", Icon: "💰"},
			{ID: "canais", Name: "Análise de Canais", Icon: "📱"},
		},
		KPIs: []domain.KPISpec{
			{Name: "investimento_total", Op: domain.KPISum, Field: "investimento"},
			{Name: "conversoes_total", Op: domain.KPISum, Field: "conversoes"},
			{Name: "custo_conversao", Op: domain.KPIRatio, LeftKPI: "investimento_total", RightKPI: "conversoes_total"},
		},
	}
}
