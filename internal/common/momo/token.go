package momo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vpena/go-payroll-disbursement/internal/common"
	"github.com/vpena/go-payroll-disbursement/internal/common/cache"
	"github.com/vpena/go-payroll-disbursement/internal/common/httpclient"
	"github.com/vpena/go-payroll-disbursement/internal/config"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

// SimulatedToken is the sentinel returned when provider credentials are
// not configured. The transfer client switches to its local simulation
// path whenever it sees this value.
const SimulatedToken = "SIMULATED_TOKEN"

const (
	// tokenExpirySafetyMargin is subtracted from the provider's
	// expires_in so a token is refreshed before it can expire mid-batch.
	tokenExpirySafetyMargin = 60 * time.Second

	tokenCacheKey = "momo:access-token"
)

type TokenProvider interface {
	// AccessToken returns a valid bearer token, reusing the cached one
	// while it has at least the safety margin of lifetime left.
	AccessToken(ctx context.Context) (string, error)

	// Invalidate drops the cached token so the next call fetches a
	// fresh one.
	Invalidate(ctx context.Context) error
}

type tokenProvider struct {
	conf    config.MomoConfig
	request *httpclient.RequestWrapper
	cache   cache.Client[string]

	simulatedOnce sync.Once
}

func NewTokenProvider(conf config.MomoConfig, request *httpclient.RequestWrapper, tokenCache cache.Client[string]) TokenProvider {
	return &tokenProvider{
		conf:    conf,
		request: request,
		cache:   tokenCache,
	}
}

func (p *tokenProvider) AccessToken(ctx context.Context) (string, error) {
	if p.conf.Simulated() {
		p.simulatedOnce.Do(func() {
			xlog.Warn(ctx, logMessage, xlog.String("message", "provider credentials missing, using simulation mode for token"))
		})
		return SimulatedToken, nil
	}

	token, err := p.cache.Get(ctx, tokenCacheKey)
	if err == nil {
		return token, nil
	}
	if err != cache.ErrNotExists {
		xlog.Warn(ctx, logMessage, xlog.String("message", "token cache read failed"), xlog.Err(err))
	}

	token, ttl, err := p.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	if ttl > 0 {
		if err := p.cache.Set(ctx, tokenCacheKey, token, ttl); err != nil {
			xlog.Warn(ctx, logMessage, xlog.String("message", "token cache write failed"), xlog.Err(err))
		}
	}

	return token, nil
}

func (p *tokenProvider) Invalidate(ctx context.Context) error {
	return p.cache.Delete(ctx, tokenCacheKey)
}

func (p *tokenProvider) fetchToken(ctx context.Context) (string, time.Duration, error) {
	url := fmt.Sprintf("%s/token/", p.conf.BaseURL)

	httpRes, err := p.request.DoRequest(ctx, http.MethodPost, url, func(req *resty.Request) *resty.Request {
		return req.
			SetBasicAuth(p.conf.UserID, p.conf.APIKey).
			SetHeader("Ocp-Apim-Subscription-Key", p.conf.SubscriptionKey)
	})
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", common.ErrAuthenticationFailed, err)
	}

	if httpRes.StatusCode() != http.StatusOK {
		return "", 0, fmt.Errorf("%w: token auth failed with status %s", common.ErrAuthenticationFailed, httpRes.Status())
	}

	var res tokenResponse
	if err := json.Unmarshal(httpRes.Body(), &res); err != nil {
		return "", 0, fmt.Errorf("%w: malformed token response: %v", common.ErrAuthenticationFailed, err)
	}

	if res.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: empty access token", common.ErrAuthenticationFailed)
	}

	ttl := time.Duration(res.ExpiresIn)*time.Second - tokenExpirySafetyMargin
	return res.AccessToken, ttl, nil
}
