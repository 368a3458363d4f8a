package domain

// RawRow é uma linha bruta produzida pelo decodificador de planilhas:
// cabeçalho bruto → valor da célula (string, número ou vazio). Descartada
// após a normalização
type RawRow map[string]any

// Headers retorna os cabeçalhos presentes na linha
func (r RawRow) Headers() []string {
	headers := make([]string, 0, len(r))
	for header := range r {
		headers = append(headers, header)
	}
	return headers
}

// CanonicalRecord é um registro tipado de um domínio: todo campo canônico
// está sempre presente, com o valor padrão substituído quando o bruto está
// ausente ou inválido. Campos numéricos nunca carregam NaN/Inf
type CanonicalRecord struct {
	Numbers  map[string]float64 `json:"numbers"`
	Integers map[string]int     `json:"integers"`
	Texts    map[string]string  `json:"texts"`
}

// NewCanonicalRecord cria um registro vazio pronto para receber os campos
// canônicos de um domínio
func NewCanonicalRecord() CanonicalRecord {
	return CanonicalRecord{
		Numbers:  make(map[string]float64),
		Integers: make(map[string]int),
		Texts:    make(map[string]string),
	}
}

// Number retorna o valor numérico do campo, ou zero quando inexistente
func (c CanonicalRecord) Number(field string) float64 {
	return c.Numbers[field]
}

// Integer retorna o valor inteiro do campo, ou zero quando inexistente
func (c CanonicalRecord) Integer(field string) int {
	return c.Integers[field]
}

// Text retorna o valor textual do campo, ou vazio quando inexistente
func (c CanonicalRecord) Text(field string) string {
	return c.Texts[field]
}
