package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hjkwon/stockroom/internal/item"
	"github.com/hjkwon/stockroom/internal/ledger"
)

// ItemResolver maps item names from import files to stored items.
type ItemResolver interface {
	FindByName(ctx context.Context, name string) (*item.Item, error)
}

// Recorder is the slice of the ledger service imports need.
type Recorder interface {
	Record(ctx context.Context, params ledger.RecordParams) (*ledger.Transaction, error)
}

type Service struct {
	parsers map[Format]Parser
	items   ItemResolver
	ledger  Recorder
}

func NewService(parsers map[Format]Parser, items ItemResolver, recorder Recorder) *Service {
	return &Service{
		parsers: parsers,
		items:   items,
		ledger:  recorder,
	}
}

// SkippedRow reports one import row that could not be applied.
type SkippedRow struct {
	Row    int    `json:"row"`
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

type Result struct {
	Recorded int          `json:"recorded"`
	Skipped  []SkippedRow `json:"skipped"`
}

// Import parses the file and records each movement through the ledger.
// Rows naming unknown items or overdrawing stock are skipped and
// reported; a malformed file fails as a whole.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (*Result, error) {
	parser, ok := s.parsers[format]
	if !ok {
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	movements, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	result := &Result{}

	for i, m := range movements {
		rowNum := i + 1

		it, err := s.items.FindByName(ctx, m.ItemName)
		if err != nil {
			if errors.Is(err, item.ErrNotFound) {
				result.Skipped = append(result.Skipped, SkippedRow{
					Row:    rowNum,
					Item:   m.ItemName,
					Reason: "unknown item",
				})

				continue
			}

			return nil, fmt.Errorf("resolving item %q: %w", m.ItemName, err)
		}

		_, err = s.ledger.Record(ctx, ledger.RecordParams{
			ItemID:      it.ID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Description: m.Description,
			CreatedAt:   m.Date,
		})
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientStock) {
				result.Skipped = append(result.Skipped, SkippedRow{
					Row:    rowNum,
					Item:   m.ItemName,
					Reason: "insufficient stock",
				})

				continue
			}

			return nil, fmt.Errorf("recording row %d: %w", rowNum, err)
		}

		result.Recorded++
	}

	return result, nil
}
