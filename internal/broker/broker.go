// Package broker fetches linked account holdings from the Korea Investment
// open API. The analytics core never calls it; the dashboard and snapshot
// services fetch holdings here and pass them in as already-resolved data.
//
// Only balance inquiries are implemented. Order placement goes through the
// external trade service and is out of scope for this backend.
package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
)

// Transaction IDs of the balance inquiries.
const (
	trDomesticBalance = "TTTC8434R"
	trOverseasBalance = "CTRP6504R"
)

const brokerageName = "Korea Investment"

// Client talks to the brokerage open API.
type Client struct {
	cfg        config.BrokerConfig
	httpClient *http.Client
	tokens     *TokenStore
}

// NewClient creates a brokerage client. Returns an error when the token key
// is set but malformed; an empty app key yields a disabled client.
func NewClient(cfg config.BrokerConfig) (*Client, error) {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}

	if cfg.TokenKey != "" {
		tokens, err := NewTokenStore(cfg.TokenPath, cfg.TokenKey)
		if err != nil {
			return nil, err
		}
		c.tokens = tokens
	}

	return c, nil
}

// Enabled reports whether brokerage credentials are configured. A disabled
// client leaves the dashboard running on manual assets only.
func (c *Client) Enabled() bool {
	return c.cfg.AppKey != ""
}

// Holdings fetches all linked positions, domestic and overseas, as holdings
// in their native currencies. Zero-quantity lines are dropped.
func (c *Client) Holdings(ctx context.Context) ([]model.Holding, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	holdings := []model.Holding{}

	domestic, err := c.domesticHoldings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("domestic balance inquiry failed: %w", err)
	}
	holdings = append(holdings, domestic...)

	overseas, err := c.overseasHoldings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("overseas balance inquiry failed: %w", err)
	}
	holdings = append(holdings, overseas...)

	return holdings, nil
}

func (c *Client) domesticHoldings(ctx context.Context, token string) ([]model.Holding, error) {
	params := url.Values{
		"CANO":                  {c.cfg.AccountNumber},
		"ACNT_PRDT_CD":          {"01"},
		"AFHR_FLPR_YN":          {"N"},
		"OFL_YN":                {""},
		"INQR_DVSN":             {"02"},
		"UNPR_DVSN":             {"01"},
		"FUND_STTL_ICLD_YN":     {"N"},
		"FNCG_AMT_AUTO_RDPT_YN": {"N"},
		"PRCS_DVSN":             {"01"},
		"CTX_AREA_FK100":        {""},
		"CTX_AREA_NK100":        {""},
	}

	var response domesticBalanceResponse
	err := c.call(ctx, token, trDomesticBalance, "/uapi/domestic-stock/v1/trading/inquire-balance", params, &response)
	if err != nil {
		return nil, err
	}
	if response.RtCd != "0" {
		return nil, fmt.Errorf("broker returned rt_cd %s: %s", response.RtCd, response.Msg)
	}

	holdings := []model.Holding{}
	for _, item := range response.Output1 {
		quantity := parseDecimal(item.Quantity)
		if quantity <= 0 {
			continue
		}
		holdings = append(holdings, model.Holding{
			Symbol:       item.Symbol,
			Name:         item.Name,
			AssetType:    model.AssetTypeStock,
			Currency:     "KRW",
			Quantity:     quantity,
			BuyPrice:     parseDecimal(item.AvgBuyPrice),
			CurrentPrice: parseDecimal(item.CurrentPrice),
			Brokerage:    brokerageName,
			Origin:       model.OriginLinked,
		})
	}

	return holdings, nil
}

func (c *Client) overseasHoldings(ctx context.Context, token string) ([]model.Holding, error) {
	params := url.Values{
		"CANO":               {c.cfg.AccountNumber},
		"ACNT_PRDT_CD":       {"01"},
		"WCRC_FRCR_DVSN_CD":  {"02"},
		"NATN_CD":            {"000"},
		"TR_MKET_CD":         {"00"},
		"INQR_DVSN_CD":       {"00"},
	}

	var response overseasBalanceResponse
	err := c.call(ctx, token, trOverseasBalance, "/uapi/overseas-stock/v1/trading/inquire-present-balance", params, &response)
	if err != nil {
		return nil, err
	}
	if response.RtCd != "0" {
		return nil, fmt.Errorf("broker returned rt_cd %s: %s", response.RtCd, response.Msg)
	}

	holdings := []model.Holding{}
	for _, item := range response.Output1 {
		quantity := parseDecimal(item.Quantity)
		if quantity <= 0 {
			continue
		}
		holdings = append(holdings, model.Holding{
			Symbol:       item.Symbol,
			Name:         item.Name,
			AssetType:    model.AssetTypeStock,
			Currency:     "USD",
			Quantity:     quantity,
			BuyPrice:     parseDecimal(item.AvgBuyPrice),
			CurrentPrice: parseDecimal(item.CurrentPrice),
			Brokerage:    brokerageName,
			Origin:       model.OriginLinked,
		})
	}

	return holdings, nil
}

// accessToken returns a cached token when still valid, issuing and caching a
// fresh one otherwise.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		if token, ok := c.tokens.Load(); ok {
			return token, nil
		}
	}

	body, err := json.Marshal(map[string]string{
		"grant_type": "client_credentials",
		"appkey":     c.cfg.AppKey,
		"appsecret":  c.cfg.AppSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/oauth2/tokenP", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(data, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("broker returned no access token")
	}

	if c.tokens != nil {
		if err := c.tokens.Save(tokenResp.AccessToken); err != nil {
			return "", err
		}
	}

	return tokenResp.AccessToken, nil
}

// call executes an authenticated GET against the brokerage API and decodes
// the JSON response into out.
func (c *Client) call(ctx context.Context, token, trID, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("appkey", c.cfg.AppKey)
	req.Header.Set("appsecret", c.cfg.AppSecret)
	req.Header.Set("tr_id", trID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("broker API returned status %d", resp.StatusCode)
	}

	return json.Unmarshal(data, out)
}

// parseDecimal parses the broker's string-encoded numbers, treating blanks
// and malformed values as zero the same way the balance views do.
func parseDecimal(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
