package stockcsv_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/hjkwon/stockroom/internal/importer/stockcsv"
	"github.com/hjkwon/stockroom/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Hangul(t *testing.T) {
	csv := `사무용품 입출고 대장
작성자,김현주

일자,품목,구분,수량,내용
2026-08-24,A4 용지,출고,3,마케팅팀 김과장
2026-08-25,볼펜,입고,100,정기 발주
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 2)

	assert.Equal(t, date(2026, 8, 24), movements[0].Date)
	assert.Equal(t, "A4 용지", movements[0].ItemName)
	assert.Equal(t, ledger.TypeOut, movements[0].Type)
	assert.Equal(t, int64(3), movements[0].Quantity)
	assert.Equal(t, "마케팅팀 김과장", movements[0].Description)

	assert.Equal(t, date(2026, 8, 25), movements[1].Date)
	assert.Equal(t, ledger.TypeIn, movements[1].Type)
	assert.Equal(t, int64(100), movements[1].Quantity)
}

func TestParser_English(t *testing.T) {
	csv := `Date,Item,Type,Quantity,Description
2026-08-24,A4 Paper,OUT,3,marketing team
2026-08-25,Ballpoint Pen,IN,100,restock order
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 2)

	assert.Equal(t, "A4 Paper", movements[0].ItemName)
	assert.Equal(t, ledger.TypeOut, movements[0].Type)
	assert.Equal(t, "Ballpoint Pen", movements[1].ItemName)
	assert.Equal(t, ledger.TypeIn, movements[1].Type)
}

func TestParser_DottedDates(t *testing.T) {
	csv := `일자,품목,구분,수량
2026.08.24,테이프,입고,12
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 1)

	assert.Equal(t, date(2026, 8, 24), movements[0].Date)
	assert.Empty(t, movements[0].Description)
}

func TestParser_EUCKREncoding(t *testing.T) {
	utf8CSV := "일자,품목,구분,수량\n2026-08-24,가위,출고,2\n"

	encoder := korean.EUCKR.NewEncoder()
	eucKRBytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := stockcsv.New()
	movements, err := p.Parse(bytes.NewReader(eucKRBytes))
	require.NoError(t, err)
	require.Len(t, movements, 1)

	assert.Equal(t, "가위", movements[0].ItemName)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `수량,내용,일자,품목,구분
5,총무팀,2026-08-24,포스트잇,출고
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 1)

	assert.Equal(t, "포스트잇", movements[0].ItemName)
	assert.Equal(t, int64(5), movements[0].Quantity)
}

func TestParser_ThousandSeparators(t *testing.T) {
	csv := `Date,Item,Type,Quantity
2026-08-24,Copy Paper,IN,"1,200"
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 1)

	assert.Equal(t, int64(1200), movements[0].Quantity)
}

func TestParser_EmptyFile(t *testing.T) {
	p := stockcsv.New()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching sheet layout")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `일자,품목,구분,수량,내용`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `일자,품목,구분,수량
2026-08-24,건전지,입고,40
합계,,,40
`

	p := stockcsv.New()
	movements, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, movements, 1)
}

func TestParser_UnknownType(t *testing.T) {
	csv := `일자,품목,구분,수량
2026-08-24,건전지,폐기,40
`

	p := stockcsv.New()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized movement type")
}

func TestParser_InvalidQuantity(t *testing.T) {
	csv := `일자,품목,구분,수량
2026-08-24,건전지,입고,-40
`

	p := stockcsv.New()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestParser_MissingItemName(t *testing.T) {
	csv := `일자,품목,구분,수량
2026-08-24,,입고,40
`

	p := stockcsv.New()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing item name")
}
