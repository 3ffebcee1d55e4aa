package model

// AllocationMode selects how holdings are grouped into allocation buckets.
// Modes form a closed set; unknown values are rejected at the boundary.
type AllocationMode string

const (
	// AllocationByType groups holdings into the two canonical asset-class
	// buckets, "Stocks" and "Cash & Equivalent".
	AllocationByType AllocationMode = "type"
	// AllocationByInstrument groups holdings per instrument, folding
	// everything beyond the top N into a single "Others" bucket.
	AllocationByInstrument AllocationMode = "instrument"
)

// AllocationBucket is one named slice of total portfolio value, ready for
// chart/legend display. Buckets are recomputed per request and never stored.
type AllocationBucket struct {
	Label string `json:"label"`
	// Value is the bucket total in the canonical currency.
	Value float64 `json:"value"`
	// Percent is the bucket's share of the mode total, 0 when the total is zero.
	Percent float64 `json:"percent"`
	// ColorRank is the bucket's rank index into the chart palette.
	ColorRank int    `json:"color_rank"`
	Color     string `json:"color"`
}
