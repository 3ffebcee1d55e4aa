package broker

// tokenResponse maps the OAuth token grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// domesticBalanceResponse maps the domestic balance inquiry (TTTC8434R).
// All numeric fields arrive as strings on the wire.
type domesticBalanceResponse struct {
	RtCd    string `json:"rt_cd"`
	Msg     string `json:"msg1"`
	Output1 []struct {
		Symbol       string `json:"pdno"`
		Name         string `json:"prdt_name"`
		Quantity     string `json:"hldg_qty"`
		AvgBuyPrice  string `json:"pchs_avg_pric"`
		CurrentPrice string `json:"prpr"`
	} `json:"output1"`
}

// overseasBalanceResponse maps the overseas present balance inquiry (CTRP6504R).
type overseasBalanceResponse struct {
	RtCd    string `json:"rt_cd"`
	Msg     string `json:"msg1"`
	Output1 []struct {
		Symbol       string `json:"pdno"`
		Name         string `json:"prdt_name"`
		Quantity     string `json:"ccld_qty_smtl1"`
		AvgBuyPrice  string `json:"avg_unpr3"`
		CurrentPrice string `json:"ovrs_now_pric1"`
	} `json:"output1"`
}
