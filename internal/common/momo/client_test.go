package momo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpena/go-payroll-disbursement/internal/common/httpclient"
	"github.com/vpena/go-payroll-disbursement/internal/common/idgenerator"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/models"
)

type staticTokenProvider struct {
	token string
}

func (p staticTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return p.token, nil
}

func (p staticTokenProvider) Invalidate(ctx context.Context) error {
	return nil
}

func payrollConf() config.PayrollConfig {
	return config.PayrollConfig{
		Currency:     "GHS",
		PayerMessage: "Salary Payment",
	}
}

func newSimulatedClient(t *testing.T, randFloat func() float64) *client {
	t.Helper()

	c := NewClient(config.MomoConfig{}, payrollConf(), staticTokenProvider{token: SimulatedToken}, nil, idgenerator.New()).(*client)
	c.randFloat = randFloat
	c.latency = 0
	return c
}

func TestTransferSimulatedSuccess(t *testing.T) {
	c := newSimulatedClient(t, func() float64 { return 0.5 })

	out := c.Transfer(context.Background(), TransferIn{
		Amount:      decimal.NewFromInt(1500),
		PayeeNumber: "0241234567",
		ExternalID:  "PAY_1735689600000_EMP001",
	})

	assert.Equal(t, models.TransferStatusPending, out.Status)
	assert.True(t, out.Simulated)
	assert.Empty(t, out.Message)

	_, err := uuid.Parse(out.ReferenceID)
	assert.NoError(t, err)
}

func TestTransferSimulatedFailure(t *testing.T) {
	c := newSimulatedClient(t, func() float64 { return 0.05 })

	out := c.Transfer(context.Background(), TransferIn{
		Amount:      decimal.NewFromInt(1500),
		PayeeNumber: "0241234567",
	})

	assert.Equal(t, models.TransferStatusFailed, out.Status)
	assert.True(t, out.Simulated)
	assert.Equal(t, "Simulated Network Error", out.Message)
	assert.Empty(t, out.ReferenceID)
}

func TestTransferSimulatedDistribution(t *testing.T) {
	// deterministic sweep across [0,1): exactly the draws below 0.1 fail
	var draw float64
	c := newSimulatedClient(t, func() float64 { return draw })

	var success, failed int
	for i := 0; i < 100; i++ {
		draw = float64(i) / 100
		out := c.Transfer(context.Background(), TransferIn{Amount: decimal.NewFromInt(10)})
		if out.Status == models.TransferStatusPending {
			success++
		} else {
			failed++
		}
	}

	assert.Equal(t, 90, success)
	assert.Equal(t, 10, failed)
}

func newLiveClient(t *testing.T, baseURL string) Client {
	t.Helper()

	conf := config.MomoConfig{
		BaseURL:           baseURL,
		UserID:            "api-user",
		APIKey:            "api-key",
		SubscriptionKey:   "sub-key",
		TargetEnvironment: "sandbox",
		CallbackHost:      "https://payroll.example.com",
		Timeout:           5 * time.Second,
	}

	wrapper := httpclient.NewRequestWrapper(NewRestyClient(conf), nil, ServiceName, logMessage)
	return NewClient(conf, payrollConf(), staticTokenProvider{token: "live-token"}, wrapper, idgenerator.New())
}

func TestTransferAccepted(t *testing.T) {
	var gotReference string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_0/transfer", r.URL.Path)
		assert.Equal(t, "Bearer live-token", r.Header.Get("Authorization"))
		assert.Equal(t, "sandbox", r.Header.Get("X-Target-Environment"))
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "https://payroll.example.com/api/momo/callback", r.Header.Get("X-Callback-Url"))
		gotReference = r.Header.Get("X-Reference-Id")

		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "1500", req["amount"])
		assert.Equal(t, "GHS", req["currency"])
		assert.Equal(t, "PAY_1735689600000_EMP001", req["externalId"])
		assert.Equal(t, "Salary Payment", req["payerMessage"])

		payee := req["payee"].(map[string]any)
		assert.Equal(t, "MSISDN", payee["partyIdType"])
		assert.Equal(t, "0241234567", payee["partyId"])

		// accepted transfers answer with an empty body
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	out := newLiveClient(t, srv.URL).Transfer(context.Background(), TransferIn{
		Amount:      decimal.NewFromInt(1500),
		PayeeNumber: "0241234567",
		ExternalID:  "PAY_1735689600000_EMP001",
		PayeeNote:   "August salary",
	})

	assert.Equal(t, models.TransferStatusPending, out.Status)
	assert.False(t, out.Simulated)
	require.NotEmpty(t, gotReference)
	assert.Equal(t, gotReference, out.ReferenceID)
}

func TestTransferRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("INVALID_MSISDN"))
	}))
	defer srv.Close()

	out := newLiveClient(t, srv.URL).Transfer(context.Background(), TransferIn{
		Amount:      decimal.NewFromInt(1500),
		PayeeNumber: "0241234567",
	})

	assert.Equal(t, models.TransferStatusFailed, out.Status)
	assert.Contains(t, out.Message, "Transfer Failed: 400")
	assert.Contains(t, out.Message, "INVALID_MSISDN")
	assert.Empty(t, out.ReferenceID)
}

func TestTransferTokenError(t *testing.T) {
	c := NewClient(config.MomoConfig{}, payrollConf(), failingTokenProvider{}, nil, idgenerator.New())

	out := c.Transfer(context.Background(), TransferIn{Amount: decimal.NewFromInt(10)})
	assert.Equal(t, models.TransferStatusFailed, out.Status)
	assert.Contains(t, out.Message, "context deadline exceeded")
}

type failingTokenProvider struct{}

func (failingTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return "", context.DeadlineExceeded
}

func (failingTokenProvider) Invalidate(ctx context.Context) error { return nil }
