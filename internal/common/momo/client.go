// Package momo talks to the mobile money disbursement provider. With
// complete credentials it performs real transfers against the provider
// sandbox or production host; without them it simulates the provider
// in-process so the rest of the system behaves identically.
package momo

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vpena/go-payroll-disbursement/internal/common/httpclient"
	"github.com/vpena/go-payroll-disbursement/internal/common/idgenerator"
	"github.com/vpena/go-payroll-disbursement/internal/config"
	"github.com/vpena/go-payroll-disbursement/internal/models"
	"github.com/vpena/go-payroll-disbursement/internal/monitoring"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

var logMessage = "[MOMO-CLIENT]"

const ServiceName = "momo"

const (
	// simulatedFailureRate gives the simulation a ~90% success rate.
	simulatedFailureRate = 0.1

	// simulatedLatency mimics the provider's round trip time.
	simulatedLatency = 800 * time.Millisecond

	simulatedFailureMessage = "Simulated Network Error"
)

type Client interface {
	// Transfer submits one disbursement. It never returns an error:
	// every failure mode is folded into TransferOut.
	Transfer(ctx context.Context, in TransferIn) TransferOut
}

type client struct {
	conf    config.MomoConfig
	payroll config.PayrollConfig
	tokens  TokenProvider
	request *httpclient.RequestWrapper
	idgen   idgenerator.Generator

	// overridable in tests
	randFloat func() float64
	latency   time.Duration
}

// NewRestyClient builds the HTTP client shared by the token provider
// and the transfer client. Transfers carry an X-Reference-Id, so
// retrying on transient provider errors cannot double-pay.
func NewRestyClient(conf config.MomoConfig) *resty.Client {
	retryWaitTime := time.Duration(conf.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	return restyClient.
		SetRetryCount(conf.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(conf.Timeout)
}

func NewClient(conf config.MomoConfig, payrollConf config.PayrollConfig, tokens TokenProvider, request *httpclient.RequestWrapper, idgen idgenerator.Generator) Client {
	return &client{
		conf:      conf,
		payroll:   payrollConf,
		tokens:    tokens,
		request:   request,
		idgen:     idgen,
		randFloat: rand.Float64,
		latency:   simulatedLatency,
	}
}

func (c *client) Transfer(ctx context.Context, in TransferIn) TransferOut {
	monitor := monitoring.New(ctx, monitoring.WithLayer(monitoring.LayerService))
	defer monitor.Finish()

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return TransferOut{Status: models.TransferStatusFailed, Message: err.Error()}
	}

	if token == SimulatedToken {
		return c.simulateTransfer(ctx, in)
	}

	return c.submitTransfer(ctx, token, in)
}

func (c *client) simulateTransfer(ctx context.Context, in TransferIn) TransferOut {
	select {
	case <-ctx.Done():
		return TransferOut{Status: models.TransferStatusFailed, Message: ctx.Err().Error(), Simulated: true}
	case <-time.After(c.latency):
	}

	if c.randFloat() < simulatedFailureRate {
		return TransferOut{
			Status:    models.TransferStatusFailed,
			Message:   simulatedFailureMessage,
			Simulated: true,
		}
	}

	return TransferOut{
		Status:      models.TransferStatusPending,
		ReferenceID: c.idgen.ReferenceID(),
		Simulated:   true,
	}
}

func (c *client) submitTransfer(ctx context.Context, token string, in TransferIn) TransferOut {
	referenceID := c.idgen.ReferenceID()
	url := fmt.Sprintf("%s/v1_0/transfer", c.conf.BaseURL)

	body := transferRequest{
		Amount:     in.Amount.String(),
		Currency:   c.payroll.Currency,
		ExternalID: in.ExternalID,
		Payee: transferParty{
			PartyIDType: "MSISDN",
			PartyID:     in.PayeeNumber,
		},
		PayerMessage: c.payroll.PayerMessage,
		PayeeNote:    in.PayeeNote,
	}

	httpRes, err := c.request.DoRequest(ctx, http.MethodPost, url, func(req *resty.Request) *resty.Request {
		return req.
			SetHeader("Authorization", "Bearer "+token).
			SetHeader("X-Reference-Id", referenceID).
			SetHeader("X-Target-Environment", c.conf.TargetEnvironment).
			SetHeader("Ocp-Apim-Subscription-Key", c.conf.SubscriptionKey).
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Callback-Url", fmt.Sprintf("%s/api/momo/callback", c.conf.CallbackHost)).
			SetBody(body)
	})
	if err != nil {
		return TransferOut{Status: models.TransferStatusFailed, Message: err.Error()}
	}

	// The provider acknowledges an accepted transfer with 202 and an
	// empty body. The minted reference id is the only correlation handle.
	if httpRes.StatusCode() == http.StatusAccepted {
		return TransferOut{
			Status:      models.TransferStatusPending,
			ReferenceID: referenceID,
		}
	}

	msg := fmt.Sprintf("Transfer Failed: %d - %s", httpRes.StatusCode(), string(httpRes.Body()))
	xlog.Warn(ctx, logMessage,
		xlog.String("referenceId", referenceID),
		xlog.String("externalId", in.ExternalID),
		xlog.String("message", msg))

	return TransferOut{Status: models.TransferStatusFailed, Message: msg}
}
