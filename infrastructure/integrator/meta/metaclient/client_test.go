package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, customize ...func(*config.Meta)) (*MetaClient, *httptest.Server, *[]time.Duration) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Meta: config.Meta{
			URL:            server.URL + "/v19.0",
			Version:        "v19.0",
			AccessToken:    "test-token",
			PageSize:       2,
			MaxPages:       5,
			RequestTimeout: time.Second,
			MaxRetries:     2,
			InitialBackoff: 10 * time.Millisecond,
			MaxBackoff:     40 * time.Millisecond,
		},
	}
	for _, fn := range customize {
		fn(&cfg.Meta)
	}

	var waits []time.Duration
	client, err := NewClient(cfg, WithSleep(func(d time.Duration) { waits = append(waits, d) }))
	require.NoError(t, err)

	return client.(*MetaClient), server, &waits
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestMetaClient_ListAdAccounts_FollowsPaging(t *testing.T) {
	var calls int32
	var serverURL string

	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v19.0/me/adaccounts", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		if r.URL.Query().Get("after") == "" {
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"data":[{"id":"act_1","account_id":"1","name":"Alpha"},{"id":"act_2","account_id":"2","name":"Beta"}],
				"paging":{"next":"%s/v19.0/me/adaccounts?after=cursor&access_token=leaked"}}`, serverURL))
			return
		}

		writeJSON(w, http.StatusOK, `{"data":[{"id":"act_3","account_id":"3","name":"Gamma"}],"paging":{}}`)
	})
	serverURL = server.URL

	accounts, err := client.ListAdAccounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, accounts, 3)
	assert.Equal(t, "Gamma", accounts[2].Name)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestMetaClient_ListAdAccounts_StopsAtPageLimit(t *testing.T) {
	var calls int32
	var serverURL string

	client, server, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"data":[{"account_id":"%d"}],"paging":{"next":"%s/v19.0/me/adaccounts?after=%d"}}`, n, serverURL, n))
	}, func(m *config.Meta) { m.MaxPages = 3 })
	serverURL = server.URL

	accounts, err := client.ListAdAccounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, accounts, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestMetaClient_RefusesForeignPagingHost(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"account_id":"1"}],"paging":{"next":"https://evil.example.com/v19.0/me/adaccounts?after=x"}}`)
	})

	accounts, err := client.ListAdAccounts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, accounts)
	assert.Contains(t, err.Error(), "refusing to follow paging url")
}

func TestMetaClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCalls int32
		validate  func(t *testing.T, err error)
	}{
		{
			name:      "code 190 is a credential error and is not retried",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"abc"}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				var credErr *CredentialError
				require.True(t, errors.As(err, &credErr))
				assert.Equal(t, 190, credErr.Code)
				assert.Equal(t, 463, credErr.Subcode)
				assert.Equal(t, "abc", credErr.FBTraceID)
			},
		},
		{
			name:      "oauth subcode without code 190 is a credential error",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"session changed","type":"OAuthException","code":102,"error_subcode":460}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				assert.True(t, IsCredentialError(err))
			},
		},
		{
			name:      "message fallback only when the payload has no code",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"The session has EXPIRED"}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				assert.True(t, IsCredentialError(err))
			},
		},
		{
			name:      "invalid parameter with a code stays an upstream error",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				var upErr *UpstreamError
				require.True(t, errors.As(err, &upErr))
				assert.Equal(t, 100, upErr.Code)
				assert.Equal(t, "Invalid parameter", upErr.Message)
				assert.False(t, upErr.Retryable)
			},
		},
		{
			name:      "throttling code is retried until the retry budget ends",
			status:    http.StatusBadRequest,
			body:      `{"error":{"message":"User request limit reached","type":"OAuthException","code":17}}`,
			wantCalls: 3,
			validate: func(t *testing.T, err error) {
				var upErr *UpstreamError
				require.True(t, errors.As(err, &upErr))
				assert.True(t, upErr.Retryable)
			},
		},
		{
			name:      "non json 502 is a retryable upstream error",
			status:    http.StatusBadGateway,
			body:      `bad gateway`,
			wantCalls: 3,
			validate: func(t *testing.T, err error) {
				var upErr *UpstreamError
				require.True(t, errors.As(err, &upErr))
				assert.Equal(t, http.StatusBadGateway, upErr.StatusCode)
				assert.Equal(t, "bad gateway", upErr.Message)
			},
		},
		{
			name:      "error object inside a 200 is still classified",
			status:    http.StatusOK,
			body:      `{"error":{"message":"token invalid","type":"OAuthException","code":190}}`,
			wantCalls: 1,
			validate: func(t *testing.T, err error) {
				assert.True(t, IsCredentialError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.CheckCredential(context.Background())

			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
			tt.validate(t, err)
		})
	}
}

func TestMetaClient_RetriesWithBackoff(t *testing.T) {
	var calls int32
	client, _, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, `{"error":{"message":"temporarily unavailable","code":2}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"42","name":"Operator"}`)
	})

	owner, err := client.CheckCredential(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Operator", owner.Name)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *waits)
}

func TestMetaClient_PerCallTimeoutIsTransportError(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, func(m *config.Meta) {
		m.RequestTimeout = 50 * time.Millisecond
		m.MaxRetries = 0
	})

	_, err := client.CheckCredential(context.Background())

	var trErr *TransportError
	require.True(t, errors.As(err, &trErr))
	assert.True(t, trErr.Timeout)
}

func TestMetaClient_GetAdSetInsights(t *testing.T) {
	t.Run("sends one filtered request per account", func(t *testing.T) {
		client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "/v19.0/act_123/insights", r.URL.Path)
			assert.Equal(t, "adset", query.Get("level"))
			assert.Equal(t, `[{"field":"adset.id","operator":"IN","value":["a","b"]}]`, query.Get("filtering"))
			assert.Equal(t, `{"since":"2025-06-01","until":"2025-06-30"}`, query.Get("time_range"))
			assert.Empty(t, query.Get("date_preset"))

			writeJSON(w, http.StatusOK, `{"data":[{"adset_id":"a","spend":"12.50","actions":[{"action_type":"lead","value":"3"}]}]}`)
		})

		rows, err := client.GetAdSetInsights(context.Background(), "act_123", []string{"a", "b"},
			metadomain.TimeRange{DatePreset: "last_7d", Since: "2025-06-01", Until: "2025-06-30"})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "a", rows[0].AdSetID)
		assert.Equal(t, "12.50", rows[0].Spend)
	})

	t.Run("no ad sets means no request", func(t *testing.T) {
		client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		})

		rows, err := client.GetAdSetInsights(context.Background(), "123", nil, metadomain.TimeRange{DatePreset: "last_7d"})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestMetaClient_UpdateEntity(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v19.0/555", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("access_token"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
		assert.Equal(t, "test-token", r.PostForm.Get("access_token"))

		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	resp, err := client.UpdateEntity(context.Background(), "555", url.Values{"status": {"PAUSED"}})

	require.NoError(t, err)
	assert.Equal(t, true, resp["success"])
}

func TestAccountPath(t *testing.T) {
	assert.Equal(t, "act_1/adsets", accountPath("1", "adsets"))
	assert.Equal(t, "act_1/adsets", accountPath("act_1", "adsets"))
}
