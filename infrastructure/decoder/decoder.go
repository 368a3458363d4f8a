// Package decoder decodifica o arquivo enviado (planilha Excel ou CSV) em
// linhas brutas cabeçalho → célula. A primeira linha define as chaves; as
// demais fornecem os valores
package decoder

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// ErrUnsupportedFileType indica que o tipo declarado do arquivo não é
// planilha nem CSV. A rejeição acontece antes de qualquer decodificação
var ErrUnsupportedFileType = errors.New("tipo de arquivo não suportado. Use arquivos Excel (.xlsx, .xls) ou CSV")

// Extensões e tipos MIME aceitos para upload
var (
	acceptedExtensions = map[string]struct{}{
		".xlsx": {},
		".xls":  {},
		".csv":  {},
	}

	acceptedContentTypes = map[string]struct{}{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
		"application/vnd.ms-excel":                                          {},
		"text/csv":                                                          {},
	}
)

// Supported verifica o tipo declarado do arquivo: extensão aceita ou, na
// ausência dela, tipo MIME aceito
func Supported(filename, contentType string) bool {
	if _, ok := acceptedExtensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return true
	}
	mime, _, _ := strings.Cut(contentType, ";")
	_, ok := acceptedContentTypes[strings.TrimSpace(mime)]
	return ok
}

// Spreadsheet decodifica arquivos .xlsx/.xls via excelize e .csv via o
// leitor padrão de CSV
type Spreadsheet struct{}

// NewSpreadsheetDecoder cria um novo decodificador de planilhas
func NewSpreadsheetDecoder() *Spreadsheet {
	return &Spreadsheet{}
}

// Decode lê o arquivo inteiro e devolve as linhas de dados. Uma tabela sem
// linhas de dados devolve um lote vazio; quem decide falhar é o normalizador
func (d *Spreadsheet) Decode(_ context.Context, filename string, r io.Reader) ([]domain.RawRow, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return decodeCSV(r)
	}
	return decodeExcel(r)
}

func decodeExcel(r io.Reader) ([]domain.RawRow, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao abrir a planilha")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao ler a planilha")
	}

	return rowsFromCells(rows), nil
}

func decodeCSV(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao ler o arquivo CSV")
	}

	return rowsFromCells(rows), nil
}

// rowsFromCells monta as linhas brutas a partir da matriz de células: a
// primeira linha é o cabeçalho, células vazias ficam de fora da linha
func rowsFromCells(rows [][]string) []domain.RawRow {
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	decoded := make([]domain.RawRow, 0, len(rows)-1)

	for _, cells := range rows[1:] {
		row := make(domain.RawRow, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(cells) {
				continue
			}
			if strings.TrimSpace(cells[i]) == "" {
				continue
			}
			row[header] = cells[i]
		}
		decoded = append(decoded, row)
	}

	return decoded
}
