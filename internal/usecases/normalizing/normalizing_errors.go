package normalizing

import "errors"

// Erros específicos do contexto de normalização
var (
	// ErrEmptyInput indica que a tabela decodificada não possui linhas de
	// dados. É a única falha visível ao usuário nesta etapa: dados ruins em
	// linhas individuais são absorvidos por substituição de padrão
	ErrEmptyInput = errors.New("planilha está vazia")
)
