package request

// CreateManualAssetRequest represents the request body for creating a manual asset
type CreateManualAssetRequest struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AssetType    string  `json:"assetType"`
	Currency     string  `json:"currency"`
	Quantity     float64 `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Brokerage    string  `json:"brokerage"`
}

type UpdateManualAssetRequest struct {
	Symbol       *string  `json:"symbol,omitempty"`
	Name         *string  `json:"name,omitempty"`
	AssetType    *string  `json:"assetType,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	BuyPrice     *float64 `json:"buyPrice,omitempty"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	Brokerage    *string  `json:"brokerage,omitempty"`
}
