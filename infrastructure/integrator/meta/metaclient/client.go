package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errCircuitOpen = errors.New("circuit breaker open")

// Request descreve uma chamada ao Graph API. Path é relativo à versão
// (ex.: "act_123/insights"); NextURL é usado ao seguir paging.next.
type Request struct {
	Endpoint string
	Method   string
	Path     string
	Query    url.Values
	Form     url.Values
	NextURL  string
}

type Client interface {
	Do(ctx context.Context, req Request) ([]byte, error)
	ListAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	ListAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error)
	GetAdSetInsights(ctx context.Context, accountID string, adsetIDs []string, window metadomain.TimeRange) ([]metadomain.InsightRow, error)
	GetAdSetDailyInsights(ctx context.Context, adsetID string, window metadomain.TimeRange) ([]metadomain.InsightRow, error)
	GetAdSetDetails(ctx context.Context, adsetID string) (*metadomain.AdSetDetails, error)
	ListAdSetActivities(ctx context.Context, accountID, adsetID string) ([]metadomain.Activity, error)
	ListAds(ctx context.Context, adsetID string) ([]metadomain.Ad, error)
	GetAdInsights(ctx context.Context, adsetID string, window metadomain.TimeRange) ([]metadomain.InsightRow, error)
	UpdateEntity(ctx context.Context, entityID string, fields url.Values) (map[string]any, error)
	CheckCredential(ctx context.Context) (*metadomain.TokenOwner, error)
}

type MetaClient struct {
	cfg        config.Meta
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	sleep      func(time.Duration)
}

type Option func(*MetaClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.httpClient = httpClient
	}
}

// WithSleep troca a espera entre tentativas (usado nos testes)
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *MetaClient) {
		c.sleep = sleep
	}
}

func NewClient(cfg *config.Config, opts ...Option) (Client, error) {
	baseURL, err := url.Parse(cfg.Meta.URL)
	if err != nil {
		return nil, fmt.Errorf("meta: invalid base url %q: %w", cfg.Meta.URL, err)
	}

	client := &MetaClient{
		cfg:     cfg.Meta,
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: cfg.Meta.MaxConnsPerHost,
				MaxConnsPerHost:     cfg.Meta.MaxConnsPerHost,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		breaker: newBreaker("meta-graph-api"),
		sleep:   time.Sleep,
	}

	if cfg.Meta.RequestsPerSecond > 0 {
		burst := cfg.Meta.Burst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(cfg.Meta.RequestsPerSecond), burst)
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Do executa a chamada com rate limit, circuit breaker, timeout por chamada
// e novas tentativas para erros temporários
func (c *MetaClient) Do(ctx context.Context, req Request) ([]byte, error) {
	if req.Endpoint == "" {
		req.Endpoint = "graph"
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		body, err := c.execute(ctx, req)
		if err == nil {
			metrics.UpstreamRequests.WithLabelValues(req.Endpoint, "ok").Inc()
			return body, nil
		}

		lastErr = err
		if attempt >= c.cfg.MaxRetries || !isRetryable(err) || ctx.Err() != nil {
			break
		}

		wait := c.backoff(attempt)
		logrus.WithFields(logrus.Fields{
			"endpoint": req.Endpoint,
			"attempt":  attempt + 1,
			"wait":     wait.String(),
			"error":    err.Error(),
		}).Warn("meta: retrying graph api call")

		metrics.UpstreamRetries.WithLabelValues(req.Endpoint).Inc()
		c.sleep(wait)
	}

	metrics.UpstreamRequests.WithLabelValues(req.Endpoint, outcome(lastErr)).Inc()
	return nil, lastErr
}

func (c *MetaClient) execute(ctx context.Context, req Request) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: req.Endpoint, Err: err, Timeout: errors.Is(err, context.DeadlineExceeded)}
		}
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &TransportError{Op: req.Endpoint, Err: fmt.Errorf("%w: %v", errCircuitOpen, err)}
	}

	return body, err
}

func (c *MetaClient) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	callCtx := ctx
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	httpReq, err := c.buildRequest(callCtx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.UpstreamDuration.WithLabelValues(req.Endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, &TransportError{Op: req.Endpoint, Err: err, Timeout: isTimeout(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: req.Endpoint, Err: err, Timeout: isTimeout(err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, classifyError(resp.StatusCode, body)
	}

	// O Graph API às vezes devolve 200 com um objeto "error"
	var errResp metadomain.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		return nil, classifyError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *MetaClient) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	var target *url.URL
	var err error

	if req.NextURL != "" {
		target, err = url.Parse(req.NextURL)
		if err != nil {
			return nil, fmt.Errorf("meta: invalid paging url: %w", err)
		}
		if target.Scheme != c.baseURL.Scheme || target.Host != c.baseURL.Host {
			return nil, fmt.Errorf("meta: refusing to follow paging url outside %s", c.baseURL.Host)
		}
	} else {
		target, err = url.Parse(strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(req.Path, "/"))
		if err != nil {
			return nil, fmt.Errorf("meta: invalid path %q: %w", req.Path, err)
		}
	}

	query := target.Query()
	for key, values := range req.Query {
		query[key] = values
	}
	query.Del("access_token")

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		query.Set("access_token", c.cfg.AccessToken)
	} else {
		form := url.Values{}
		for key, values := range req.Form {
			form[key] = values
		}
		form.Set("access_token", c.cfg.AccessToken)
		body = strings.NewReader(form.Encode())
	}
	target.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return httpReq, nil
}

func (c *MetaClient) backoff(attempt int) time.Duration {
	initial := c.cfg.InitialBackoff
	if initial <= 0 {
		initial = 500 * time.Millisecond
	}

	wait := time.Duration(float64(initial) * math.Pow(2, float64(attempt)))
	if c.cfg.MaxBackoff > 0 && wait > c.cfg.MaxBackoff {
		wait = c.cfg.MaxBackoff
	}

	return wait
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Token inválido ou parâmetro errado não indicam que o Meta está fora do ar
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if IsTransportError(err) {
				return false
			}
			var upErr *UpstreamError
			if errors.As(err, &upErr) {
				return upErr.StatusCode < http.StatusInternalServerError
			}
			return true
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("meta: circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcome(err error) string {
	switch {
	case IsCredentialError(err):
		return "credential"
	case IsUpstreamError(err):
		return "upstream"
	case IsTransportError(err):
		return "transport"
	default:
		return "error"
	}
}

// accountPath garante um único prefixo act_ no id da conta
func accountPath(accountID, edge string) string {
	return "act_" + strings.TrimPrefix(accountID, "act_") + "/" + edge
}
