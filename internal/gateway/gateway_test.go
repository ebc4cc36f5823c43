package gateway

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fengzhui/fengzhui/internal/config"
	"github.com/stretchr/testify/assert"
)

type fakeHTTPClient struct {
	statusCode int
	body       []byte
	err        error

	lastURL  string
	lastBody []byte
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not used")
}

func (f *fakeHTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	f.lastURL = url
	return f.statusCode, f.body, nil, f.err
}

func (f *fakeHTTPClient) Post(url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
	f.lastURL = url
	f.lastBody = body
	return f.statusCode, f.body, nil, f.err
}

func newClient(fake *fakeHTTPClient) *Client {
	return New(&config.Config{GatewayAddress: "http://gateway"}, fake)
}

func TestPrepay(t *testing.T) {
	tests := []struct {
		name      string
		fake      *fakeHTTPClient
		expectErr bool
		params    string
	}{
		{
			name:   "successful prepay",
			fake:   &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"prepayParams":"sign=abc"}`)},
			params: "sign=abc",
		},
		{
			name:      "gateway down",
			fake:      &fakeHTTPClient{err: errors.New("connection refused")},
			expectErr: true,
		},
		{
			name:      "gateway 500",
			fake:      &fakeHTTPClient{statusCode: http.StatusInternalServerError},
			expectErr: true,
		},
		{
			name:      "bad response body",
			fake:      &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`not json`)},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(tt.fake)
			params, err := client.Prepay(context.Background(), "7992739871", 220, "open-id")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.params, params)
			assert.Equal(t, "http://gateway/api/pay/prepay", tt.fake.lastURL)
			assert.Contains(t, string(tt.fake.lastBody), "7992739871")
		})
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name       string
		fake       *fakeHTTPClient
		expectErr  bool
		status     string
		expectedTx string
	}{
		{
			name:       "paid order",
			fake:       &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"orderNo":"7992739871","status":"SUCCESS","transactionId":"wx-tx-1"}`)},
			status:     StatusSuccess,
			expectedTx: "wx-tx-1",
		},
		{
			name:   "unpaid order",
			fake:   &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"orderNo":"7992739871","status":"NOTPAY"}`)},
			status: StatusNotPay,
		},
		{
			name:      "order number mismatch",
			fake:      &fakeHTTPClient{statusCode: http.StatusOK, body: []byte(`{"orderNo":"other","status":"SUCCESS"}`)},
			expectErr: true,
		},
		{
			name:      "gateway down",
			fake:      &fakeHTTPClient{err: errors.New("timeout")},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(tt.fake)
			status, tx, err := client.Query(context.Background(), "7992739871")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.expectedTx, tx)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newClient(&fakeHTTPClient{statusCode: http.StatusOK})

	_, err := client.Prepay(ctx, "7992739871", 220, "open-id")
	assert.Error(t, err)

	_, _, err = client.Query(ctx, "7992739871")
	assert.Error(t, err)
}
