package stockcsv

// Profile describes the column layout of a stock sheet CSV export.
// Adding a new layout is just adding a new Profile to the profiles slice.
type Profile struct {
	Name     string
	DateCol  string
	ItemCol  string
	TypeCol  string
	QtyCol   string
	DescCol  string
	InMark   string // TypeCol value meaning inbound
	OutMark  string // TypeCol value meaning outbound
	DateFmts []string
}

// requiredCols returns the column names that must be present for this
// profile to match. The description column is optional.
func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.ItemCol, p.TypeCol, p.QtyCol}
}

// profiles is the ordered list of sheet layouts to try during
// auto-detection.
var profiles = []Profile{
	{
		Name:     "hangul",
		DateCol:  "일자",
		ItemCol:  "품목",
		TypeCol:  "구분",
		QtyCol:   "수량",
		DescCol:  "내용",
		InMark:   "입고",
		OutMark:  "출고",
		DateFmts: []string{"2006-01-02", "2006.01.02"},
	},
	{
		Name:     "english",
		DateCol:  "Date",
		ItemCol:  "Item",
		TypeCol:  "Type",
		QtyCol:   "Quantity",
		DescCol:  "Description",
		InMark:   "IN",
		OutMark:  "OUT",
		DateFmts: []string{"2006-01-02", "01/02/2006"},
	},
}
