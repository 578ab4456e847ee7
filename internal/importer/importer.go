package importer

import (
	"io"
	"time"

	"github.com/hjkwon/stockroom/internal/ledger"
)

type Format string

const (
	FormatStockCSV Format = "stockcsv"
)

// Movement is one parsed row of an import file. Items are referenced by
// name; resolution to an id happens at import time.
type Movement struct {
	ItemName    string
	Type        ledger.Type
	Quantity    int64
	Description string
	Date        time.Time
}

type Parser interface {
	Parse(r io.Reader) ([]Movement, error)
}
