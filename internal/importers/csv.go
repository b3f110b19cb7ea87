package importers

import (
	"encoding/csv"
	"io"
	"strings"
)

// csvRow is one record keyed by lowercased header name.
type csvRow map[string]string

// parseCSVRows reads an RFC-4180 CSV document (quoted fields, embedded
// commas and doubled-quote escaping included) and returns its rows keyed by
// header name. Rows that fail to parse are skipped; a malformed row never
// aborts the rest of the file. Returns false when the header row is missing
// any of the required columns.
func parseCSVRows(content string, required ...string) ([]csvRow, bool) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, false
	}

	// Build header index map
	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, col := range required {
		if _, ok := headerIndex[strings.ToLower(col)]; !ok {
			return nil, false
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		row := make(csvRow, len(headerIndex))
		for name, idx := range headerIndex {
			if idx < len(record) {
				row[name] = strings.TrimSpace(record[idx])
			}
		}
		rows = append(rows, row)
	}

	return rows, true
}
