package model

// AssetType classifies a holding for allocation purposes.
type AssetType string

// Recognized asset types. Values outside this set are treated as
// unclassified and fall into the cash bucket during allocation.
const (
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeETF        AssetType = "ETF"
	AssetTypeFund       AssetType = "FUND"
	AssetTypeCrypto     AssetType = "CRYPTO"
	AssetTypeBond       AssetType = "BOND"
	AssetTypeCash       AssetType = "CASH"
	AssetTypeRealEstate AssetType = "REAL_ESTATE"
	AssetTypeOther      AssetType = "OTHER"
)

// Origin indicates how a holding entered the system.
type Origin string

const (
	// OriginManual marks a holding entered by hand through the manual asset endpoints.
	OriginManual Origin = "MANUAL"
	// OriginLinked marks a holding pulled from a linked brokerage account.
	OriginLinked Origin = "LINKED"
)

// Holding represents one position as supplied by a brokerage account or a
// manual asset record. Prices are expressed in the holding's own currency.
// Symbol may be empty for non-tradable assets such as real estate.
type Holding struct {
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	AssetType    AssetType `json:"asset_type"`
	Currency     string    `json:"currency"`
	Quantity     float64   `json:"quantity"`
	BuyPrice     float64   `json:"buy_price"`
	CurrentPrice float64   `json:"current_price"`
	Brokerage    string    `json:"brokerage"`
	Origin       Origin    `json:"origin"`
}

// NormalizedHolding is a Holding extended with derived valuation fields,
// all computed by the analytics normalizer. EvalValueCanonical is expressed
// in the deployment's canonical currency; the local values remain in the
// holding's own currency.
type NormalizedHolding struct {
	Holding

	EvalValueLocal     float64 `json:"eval_value_local"`
	EvalValueCanonical float64 `json:"eval_value_canonical"`
	CostValueLocal     float64 `json:"cost_value_local"`

	// ReturnRate is the cost-basis return in percent:
	// (current_price - buy_price) / buy_price * 100.
	// Zero when the buy price is zero or negative.
	ReturnRate float64 `json:"return_rate"`
}

// ManualAsset is a persisted manual holding record. Unlike linked holdings,
// which are fetched fresh from the brokerage on every query, manual assets
// live in the database and are editable through the assets endpoints.
type ManualAsset struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	AssetType    AssetType `json:"asset_type"`
	Currency     string    `json:"currency"`
	Quantity     float64   `json:"quantity"`
	BuyPrice     float64   `json:"buy_price"`
	CurrentPrice float64   `json:"current_price"`
	Brokerage    string    `json:"brokerage"`
	UpdatedAt    string    `json:"updated_at"`
}

// ToHolding converts a manual asset record into the common holding shape used
// by the valuation pipeline.
func (a ManualAsset) ToHolding() Holding {
	return Holding{
		Symbol:       a.Symbol,
		Name:         a.Name,
		AssetType:    a.AssetType,
		Currency:     a.Currency,
		Quantity:     a.Quantity,
		BuyPrice:     a.BuyPrice,
		CurrentPrice: a.CurrentPrice,
		Brokerage:    a.Brokerage,
		Origin:       OriginManual,
	}
}
