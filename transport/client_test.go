package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseprotocolorg-cyber/pulse-go/codec"
	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/metric"
)

func testClientConfig(serverURL string) *config.Config {
	cfg := config.Default()
	cfg.Agent.ID = "test-client"
	cfg.Client.ServerURL = serverURL
	cfg.Client.MaxRetries = 3
	cfg.Client.RetryDelay = time.Millisecond
	return cfg
}

func TestClientSend(t *testing.T) {
	srv, ts := startTestServer(t, testServerConfig())
	defer srv.Shutdown(context.Background())

	client, err := NewClient(testClientConfig(ts.URL))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA",
		message.WithSender("test-client"),
		message.WithParameters(map[string]any{"query": "ping"}))
	require.NoError(t, err)

	response, err := client.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, message.TypeResponse, response.Type)
	assert.Equal(t, "META.STATUS.OK", response.Content.Action)

	stats := client.Stats()
	assert.Equal(t, int64(1), stats.RequestsSent)
	assert.Equal(t, int64(1), stats.Successes)
	assert.Zero(t, stats.Retries)
	assert.Positive(t, stats.BytesSent)
	assert.Positive(t, stats.BytesReceived)
}

func TestClientSendCompact(t *testing.T) {
	srv, ts := startTestServer(t, testServerConfig())
	defer srv.Shutdown(context.Background())

	client, err := NewClient(testClientConfig(ts.URL), WithFormat(codec.FormatCompact))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	response, err := client.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "META.STATUS.OK", response.Content.Action)
}

func TestClientSignsWhenConfigured(t *testing.T) {
	serverCfg := testServerConfig()
	serverCfg.Security.SigningKey = "shared-secret"
	serverCfg.Security.RequireSignatures = true
	srv, ts := startTestServer(t, serverCfg)
	defer srv.Shutdown(context.Background())

	clientCfg := testClientConfig(ts.URL)
	clientCfg.Security.SigningKey = "shared-secret"
	client, err := NewClient(clientCfg)
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	_, err = client.Send(context.Background(), msg)
	require.NoError(t, err)
	require.NotNil(t, msg.Envelope.Signature)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client, err := NewClient(testClientConfig(ts.URL))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	_, err = client.Send(context.Background(), msg)
	require.Error(t, err)
	assert.Equal(t, int64(3), hits.Load())

	stats := client.Stats()
	assert.Equal(t, int64(3), stats.RequestsSent)
	assert.Equal(t, int64(2), stats.Retries)
	assert.Equal(t, int64(1), stats.Failures)
}

func TestClientDoesNotRetryRejections(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	client, err := NewClient(testClientConfig(ts.URL))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	_, err = client.Send(context.Background(), msg)
	require.Error(t, err)
	assert.Equal(t, int64(1), hits.Load())
	assert.ErrorContains(t, err, "status 400")
}

func TestClientHalfRecovery(t *testing.T) {
	var hits atomic.Int64
	echo := codec.New()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		response, _ := message.New("META.ACK")
		data, _ := echo.Encode(response, codec.FormatJSON)
		w.Header().Set(FormatHeader, string(codec.FormatJSON))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}))
	defer ts.Close()

	client, err := NewClient(testClientConfig(ts.URL))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	response, err := client.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "META.ACK", response.Content.Action)
	assert.Equal(t, int64(3), hits.Load())
}

func TestClientRequiresServerURL(t *testing.T) {
	cfg := config.Default()
	cfg.Client.ServerURL = ""
	_, err := NewClient(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "server_url")
}

func TestClientCountsSignaturesAndEncodes(t *testing.T) {
	serverCfg := testServerConfig()
	serverCfg.Security.SigningKey = "shared-secret"
	srv, ts := startTestServer(t, serverCfg)
	defer srv.Shutdown(context.Background())

	registry := metric.NewRegistry()
	clientCfg := testClientConfig(ts.URL)
	clientCfg.Security.SigningKey = "shared-secret"
	client, err := NewClient(clientCfg, WithClientMetrics(registry))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)
	_, err = client.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.Metrics.SignaturesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		registry.Metrics.EncodesTotal.WithLabelValues("json")))
}

func TestClientCountsResponseDecodeErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(FormatHeader, string(codec.FormatJSON))
		w.Write([]byte("{broken"))
	}))
	defer ts.Close()

	registry := metric.NewRegistry()
	client, err := NewClient(testClientConfig(ts.URL), WithClientMetrics(registry))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)
	_, err = client.Send(context.Background(), msg)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		registry.Metrics.CodecErrors.WithLabelValues("decode", "json")))
}

func TestClientContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client, err := NewClient(testClientConfig(ts.URL))
	require.NoError(t, err)

	msg, err := message.New("ACT.QUERY.DATA")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Send(ctx, msg)
	require.Error(t, err)
}
