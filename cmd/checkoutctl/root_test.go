package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paylane/paylane-go/internal/adapters/fakeapi"
	memclock "github.com/paylane/paylane-go/internal/adapters/memory/clock"
	memidempotency "github.com/paylane/paylane-go/internal/adapters/memory/idempotency"
	memsessionrepo "github.com/paylane/paylane-go/internal/adapters/memory/sessionrepo"
	"github.com/paylane/paylane-go/internal/app/checkouts"
	"github.com/paylane/paylane-go/internal/platform/config"
)

const cliKey = "sk_test_cli"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	api := fakeapi.NewServer(checkouts.NewService(memsessionrepo.NewRepo(), clk), memidempotency.NewStore(), clk)
	srv := httptest.NewServer(fakeapi.NewRouterWithOptions(api, fakeapi.RouterOptions{
		AuthMiddleware: fakeapi.NewAuthMiddleware(cliKey),
	}))
	t.Cleanup(srv.Close)
	return srv
}

const validYAML = `
product_cart:
  - product_id: pdt_1
    quantity: 1
billing_address:
  country: AF
customer:
  email: buyer@example.com
`

func TestValidate(t *testing.T) {
	t.Parallel()

	good := writeFile(t, "good.yaml", validYAML)
	bad := writeFile(t, "bad.jsonc", `{
		// quantity is missing
		"product_cart": [{"product_id": "p"}],
	}`)

	out, _, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, good)

	out, _, err = run(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files invalid")
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, out, "product_cart[0].quantity")
}

func TestValidate_NotAnObject(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "list.json", `[1,2,3]`)
	out, _, err := run(t, "validate", p)
	require.Error(t, err)
	assert.Contains(t, out, "request must be a JSON object")
}

func TestCreateGetComplete(t *testing.T) {
	t.Parallel()

	srv := newFakeProvider(t)
	req := writeFile(t, "req.yaml", validYAML)
	flags := []string{"--api-key", cliKey, "--base-url", srv.URL}

	out, _, err := run(t, append([]string{"create", req}, flags...)...)
	require.NoError(t, err)
	var created struct {
		SessionID   string `json:"session_id"`
		CheckoutURL string `json:"checkout_url"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.SessionID)

	out, _, err = run(t, append([]string{"get", created.SessionID, "--strict"}, flags...)...)
	require.NoError(t, err)
	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "requires_payment_method", st["payment_status"])
	assert.Equal(t, "buyer@example.com", st["customer_email"])

	out, _, err = run(t, append([]string{"complete", created.SessionID}, flags...)...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "succeeded", st["payment_status"])

	_, _, err = run(t, append([]string{"complete", created.SessionID}, flags...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")

	_, _, err = run(t, append([]string{"get", "cks_missing"}, flags...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "request_id")
}

func TestCreate_InvalidRequestIsNotSent(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	req := writeFile(t, "req.json", `{"product_cart":[],"billing_currency":"ZZZ"}`)
	_, _, err := run(t, "create", req, "--api-key", cliKey, "--base-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "billing_currency")
	assert.Zero(t, calls)
}

func TestClientConfig_FromEnvAndFile(t *testing.T) {
	srv := newFakeProvider(t)

	t.Setenv("PAYLANE_API_KEY", "")
	t.Setenv("PAYLANE_BASE_URL", "")
	_, _, err := run(t, "get", "cks_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing API key")

	t.Setenv("PAYLANE_API_KEY", cliKey)
	t.Setenv("PAYLANE_BASE_URL", srv.URL)
	_, _, err = run(t, "get", "cks_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND", "env values must reach the client")

	t.Setenv("PAYLANE_API_KEY", "")
	t.Setenv("PAYLANE_BASE_URL", "")
	cfgFile := writeFile(t, "config.yaml", "api-key: "+cliKey+"\nbase-url: "+srv.URL+"\n")
	_, _, err = run(t, "get", "cks_1", "--config", cfgFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND", "config file values must reach the client")

	_, _, err = run(t, "get", "cks_1", "--api-key", cliKey, "--environment", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--environment")
}

func TestRootFlags_OverrideEnv(t *testing.T) {
	srv := newFakeProvider(t)

	t.Setenv("PAYLANE_API_KEY", "sk_test_wrong")
	t.Setenv("PAYLANE_BASE_URL", "http://127.0.0.1:1")
	require.NotPanics(t, func() { _ = newRootCmd() })

	_, _, err := run(t, "get", "cks_1", "--api-key", cliKey, "--base-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND", "flag values must win over env")
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	srv := newFakeProvider(t)
	_, stderr, _ := run(t, "get", "cks_1", "--api-key", cliKey, "--base-url", srv.URL, "--debug")
	assert.Contains(t, stderr, "paylane request")
	assert.Contains(t, stderr, "404")
}

func TestRunFakeServer_Memory(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.FakeServerConfig{
		Port:            "0",
		StorageBackend:  config.StorageMemory,
		APIKeys:         []string{cliKey},
		ShutdownTimeout: time.Second,
	}
	addrCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- runFakeServer(ctx, cfg, newLogger(io.Discard, false), func(addr string) { addrCh <- addr })
	}()

	var addr string
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("runFakeServer exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("fake server did not start")
	}

	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	base := "http://127.0.0.1:" + port

	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, base+"/checkouts/cks_x", nil)
	req.Header.Set("Authorization", "Bearer "+cliKey)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("fake server did not shut down")
	}
}

func TestRunFakeServer_UnknownStorage(t *testing.T) {
	t.Parallel()

	err := runFakeServer(context.Background(), config.FakeServerConfig{StorageBackend: "redis"}, newLogger(io.Discard, false), nil)
	require.Error(t, err)
}
