package stockcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/hjkwon/stockroom/internal/encoding"
	"github.com/hjkwon/stockroom/internal/importer"
	"github.com/hjkwon/stockroom/internal/ledger"
)

// Parser reads stock sheet CSV exports and produces ledger movements.
// It auto-detects the sheet layout (hangul or english headers) by
// matching column names against known profiles.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]importer.Movement, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching sheet layout found: expected hangul or english stock columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts movements from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file
// (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]importer.Movement, error) {
	dateIdx := cols[p.DateCol]
	itemIdx := cols[p.ItemCol]
	typeIdx := cols[p.TypeCol]
	qtyIdx := cols[p.QtyCol]

	descIdx := -1
	if i, ok := cols[p.DescCol]; ok {
		descIdx = i
	}

	var movements []importer.Movement

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(p, row, dateIdx)
		if !ok {
			// Footer or blank row.
			continue
		}

		name := cellValue(row, itemIdx)
		if name == "" {
			return nil, fmt.Errorf("row %d: missing item name", rowNum)
		}

		typ, ok := parseType(p, cellValue(row, typeIdx))
		if !ok {
			return nil, fmt.Errorf("row %d: unrecognized movement type %q", rowNum, cellValue(row, typeIdx))
		}

		qty, err := parseQuantity(cellValue(row, qtyIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		movements = append(movements, importer.Movement{
			ItemName:    name,
			Type:        typ,
			Quantity:    qty,
			Description: cellValue(row, descIdx),
			Date:        date,
		})
	}

	return movements, nil
}

// parseDate tries the profile's date formats against the given cell.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range p.DateFmts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseType(p *Profile, s string) (ledger.Type, bool) {
	switch strings.ToUpper(s) {
	case strings.ToUpper(p.InMark):
		return ledger.TypeIn, true
	case strings.ToUpper(p.OutMark):
		return ledger.TypeOut, true
	}

	return "", false
}

// parseQuantity accepts plain integers, with or without thousand
// separators ("1,200").
func parseQuantity(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing quantity")
	}

	clean := strings.ReplaceAll(s, ",", "")

	qty, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}

	if qty <= 0 {
		return 0, fmt.Errorf("quantity %q must be positive", s)
	}

	return qty, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
