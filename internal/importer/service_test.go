package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjkwon/stockroom/internal/importer"
	"github.com/hjkwon/stockroom/internal/importer/stockcsv"
	"github.com/hjkwon/stockroom/internal/item"
	"github.com/hjkwon/stockroom/internal/ledger"
)

type fakeResolver struct {
	items map[string]*item.Item
}

func (f *fakeResolver) FindByName(_ context.Context, name string) (*item.Item, error) {
	it, ok := f.items[name]
	if !ok {
		return nil, item.ErrNotFound
	}

	return it, nil
}

type fakeRecorder struct {
	stock    map[uuid.UUID]int64
	recorded []ledger.RecordParams
}

func (f *fakeRecorder) Record(_ context.Context, params ledger.RecordParams) (*ledger.Transaction, error) {
	if params.Type == ledger.TypeOut && f.stock[params.ItemID] < params.Quantity {
		return nil, ledger.ErrInsufficientStock
	}

	if params.Type == ledger.TypeIn {
		f.stock[params.ItemID] += params.Quantity
	} else {
		f.stock[params.ItemID] -= params.Quantity
	}

	f.recorded = append(f.recorded, params)

	return &ledger.Transaction{ID: uuid.New()}, nil
}

func TestService_Import(t *testing.T) {
	paperID := uuid.New()

	resolver := &fakeResolver{items: map[string]*item.Item{
		"A4 용지": {ID: paperID, Name: "A4 용지"},
	}}
	recorder := &fakeRecorder{stock: map[uuid.UUID]int64{}}

	svc := importer.NewService(
		map[importer.Format]importer.Parser{importer.FormatStockCSV: stockcsv.New()},
		resolver,
		recorder,
	)

	csv := `일자,품목,구분,수량,내용
2026-08-20,A4 용지,입고,10,정기 발주
2026-08-21,A4 용지,출고,3,마케팅팀
2026-08-22,없는물건,출고,1,
2026-08-23,A4 용지,출고,99,과다 청구
`

	result, err := svc.Import(context.Background(), importer.FormatStockCSV, strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Recorded)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "unknown item", result.Skipped[0].Reason)
	assert.Equal(t, "없는물건", result.Skipped[0].Item)
	assert.Equal(t, "insufficient stock", result.Skipped[1].Reason)

	require.Len(t, recorder.recorded, 2)
	assert.Equal(t, paperID, recorder.recorded[0].ItemID)
	assert.Equal(t, ledger.TypeIn, recorder.recorded[0].Type)
	assert.False(t, recorder.recorded[0].CreatedAt.IsZero(), "sheet dates carry into the ledger")
}

func TestService_Import_UnknownFormat(t *testing.T) {
	svc := importer.NewService(nil, nil, nil)

	_, err := svc.Import(context.Background(), importer.Format("xlsx"), strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import format")
}
