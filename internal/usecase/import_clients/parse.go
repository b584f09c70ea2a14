package import_clients

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ReadingsCRM/pkg/autofill"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/types"
)

const (
	colName = iota
	colPhone
	colMessenger
	colBirthdate
)

// row строка файла с номером
type row struct {
	line   int
	fields []string
}

// readRows читает CSV с разделителем "," или ";". Заголовок пропускается.
func readRows(r io.Reader) ([]row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read file: %v", ErrInvalidFile, err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := make([]row, 0)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(fields) {
			continue
		}
		if len(rows) == 0 && isHeader(fields) {
			continue
		}
		rows = append(rows, row{line: line, fields: fields})
	}

	return rows, nil
}

// detectDelimiter выбирает разделитель по первой строке
func detectDelimiter(data []byte) rune {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return ','
	}
	first := scanner.Text()
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func isHeader(fields []string) bool {
	switch strings.ToLower(strings.TrimSpace(fields[colName])) {
	case "имя", "name", "клиент":
		return true
	}
	return false
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func field(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

// parseBirthdate принимает YYYY-MM-DD и те же записи, что автозаполнение (25.03.1990, 25 марта 1990)
func parseBirthdate(s string) (*types.Date, bool) {
	if s == "" {
		return nil, true
	}
	if d, err := types.ParseDate(s); err == nil {
		return &d, true
	}
	if d, ok := autofill.ExtractBirthdate(s); ok {
		return &d, true
	}
	return nil, false
}
