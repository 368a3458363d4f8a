package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Acentos e caixa devem ser normalizados",
			input:    "Salário",
			expected: "salario",
		},
		{
			name:     "Texto sem acentos só perde a caixa",
			input:    "FORNECEDOR",
			expected: "fornecedor",
		},
		{
			name:     "Cedilha e til são reduzidos",
			input:    "Não Informado",
			expected: "nao informado",
		},
		{
			name:     "String vazia permanece vazia",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.input))
		})
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "Nil vira string vazia",
			input:    nil,
			expected: "",
		},
		{
			name:     "String passa intacta",
			input:    "ACME123",
			expected: "ACME123",
		},
		{
			name:     "Float inteiro não ganha casa decimal",
			input:    float64(1500),
			expected: "1500",
		},
		{
			name:     "Float fracionário preserva as casas",
			input:    float64(10.5),
			expected: "10.5",
		},
		{
			name:     "Inteiro nativo",
			input:    42,
			expected: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CellText(tt.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "2000", FormatNumber(2000))
	assert.Equal(t, "1234.56", FormatNumber(1234.56))
	assert.Equal(t, "-40", FormatNumber(-40))
}
