package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"thriftstore/internal/config"
	"time"
)

// ErrGateway marks failures coming from the payment gateway, so callers can
// tell them apart from internal storage errors.
var ErrGateway = errors.New("payment gateway error")

type RazorpayClient interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receiptID string) (*CreateOrderResponse, error)
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

type razorpayOrderResult struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type CreateOrderResponse struct {
	OrderID string
	Status  string
}

func NewRazorpayClient(razorpayCfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: razorpayCfg.BaseApiURL,
		keyID:      razorpayCfg.KeyID,
		keySecret:  razorpayCfg.KeySecret,
	}
}

// CreateOrder mints a gateway order for the given amount. Razorpay does not
// document order creation as idempotent by receipt id, so callers must not
// retry a failed call blindly.
func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receiptID string) (*CreateOrderResponse, error) {
	payload := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receiptID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrGateway, resp.StatusCode, string(b))
	}

	var result razorpayOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode razorpay response: %w", err)
	}

	return &CreateOrderResponse{
		OrderID: result.ID,
		Status:  result.Status,
	}, nil
}
