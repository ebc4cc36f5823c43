package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fengzhui/fengzhui/internal/config"
	"github.com/fengzhui/fengzhui/pkg/clients"
)

// Gateway-side payment states as reported by the query endpoint.
const (
	StatusSuccess = "SUCCESS"
	StatusNotPay  = "NOTPAY"
	StatusClosed  = "CLOSED"
)

var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// ClientI is the surface the payment service depends on. Calls are never
// retried here; a timeout leaves the order in PAYING for the sync path.
type ClientI interface {
	Prepay(ctx context.Context, orderNo string, amount float64, openID string) (string, error)
	Query(ctx context.Context, orderNo string) (status, transactionID string, err error)
}

type prepayRequest struct {
	OrderNo string  `json:"orderNo"`
	Amount  float64 `json:"amount"`
	OpenID  string  `json:"openId"`
}

type prepayResponse struct {
	PrepayParams string `json:"prepayParams"`
}

type queryResponse struct {
	OrderNo       string `json:"orderNo"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		client: client,
	}
}

func (c *Client) Prepay(ctx context.Context, orderNo string, amount float64, openID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := json.Marshal(prepayRequest{OrderNo: orderNo, Amount: amount, OpenID: openID})
	if err != nil {
		return "", fmt.Errorf("can't marshal prepay request: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(c.url+"/api/pay/prepay", nil, body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrGatewayUnavailable, statusCode)
	}

	var resp prepayResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("can't parse prepay response: %w", err)
	}
	return resp.PrepayParams, nil
}

func (c *Client) Query(ctx context.Context, orderNo string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/api/pay/orders/"+orderNo, nil)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return "", "", fmt.Errorf("%w: unexpected status %d", ErrGatewayUnavailable, statusCode)
	}

	var resp queryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("can't parse query response: %w", err)
	}
	if resp.OrderNo != orderNo {
		return "", "", fmt.Errorf("order number mismatch: expected %s, got %s", orderNo, resp.OrderNo)
	}
	return resp.Status, resp.TransactionID, nil
}
