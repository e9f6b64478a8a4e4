package itest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/internal/adapters/fakeapi"
	memclock "github.com/paylane/paylane-go/internal/adapters/memory/clock"
	memidempotency "github.com/paylane/paylane-go/internal/adapters/memory/idempotency"
	memsessionrepo "github.com/paylane/paylane-go/internal/adapters/memory/sessionrepo"
	pgidempotency "github.com/paylane/paylane-go/internal/adapters/postgres/idempotency"
	pgsessionrepo "github.com/paylane/paylane-go/internal/adapters/postgres/sessionrepo"
	postgres_testutil "github.com/paylane/paylane-go/internal/adapters/postgres/testutil"
	sqliteidempotency "github.com/paylane/paylane-go/internal/adapters/sqlite/idempotency"
	sqlitesessionrepo "github.com/paylane/paylane-go/internal/adapters/sqlite/sessionrepo"
	sqlite_testutil "github.com/paylane/paylane-go/internal/adapters/sqlite/testutil"
	"github.com/paylane/paylane-go/internal/app/checkouts"
	idempotencyport "github.com/paylane/paylane-go/internal/ports/out/idempotency"
	sessionrepoport "github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
	"github.com/paylane/paylane-go/shared"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendSQLite   backend = "sqlite"
	backendPostgres backend = "postgres"
)

func backendsFromEnv(t *testing.T) []backend {
	t.Helper()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "", "memory":
		return []backend{backendMemory}
	case "sqlite":
		return []backend{backendSQLite}
	case "postgres":
		return []backend{backendPostgres}
	case "all":
		return []backend{backendMemory, backendSQLite, backendPostgres}
	default:
		t.Fatalf("unknown ITEST_BACKEND value (expected memory|sqlite|postgres|all)")
		return nil
	}
}

type testServer struct {
	baseURL string
	client  *http.Client
	clock   *memclock.ManualClock
}

func newTestServer(t *testing.T, b backend) *testServer {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	var (
		sessionRepo sessionrepoport.Repository
		idemStore   idempotencyport.Store
	)

	switch b {
	case backendPostgres:
		pool := postgres_testutil.OpenMigratedPool(t)
		sessionRepo = pgsessionrepo.NewRepo(pool)
		idemStore = pgidempotency.NewStore(pool)
	case backendSQLite:
		db := sqlite_testutil.OpenMigratedDB(t)
		sessionRepo = sqlitesessionrepo.NewRepo(db)
		idemStore = sqliteidempotency.NewStore(db)
	case backendMemory:
		sessionRepo = memsessionrepo.NewRepo()
		idemStore = memidempotency.NewStore()
	default:
		t.Fatalf("unknown backend: %s", b)
	}

	svc := checkouts.NewService(sessionRepo, clk)
	api := fakeapi.NewServer(svc, idemStore, clk)

	// Only the two itest keys are accepted so auth failures are covered too.
	authMW := fakeapi.NewAuthMiddleware("sk_itest_alice", "sk_itest_bob")
	handler := fakeapi.NewRouterWithOptions(api, fakeapi.RouterOptions{AuthMiddleware: authMW})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
		clock:   clk,
	}
}

// call sends one request with the given API key and optional Idempotency-Key.
func (s *testServer) call(t *testing.T, method, path, apiKey, idemKey, body string) (int, []byte, http.Header) {
	t.Helper()

	req, err := http.NewRequest(method, s.baseURL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, out, resp.Header
}

// newIdemKey returns a key no earlier run can have used, so persistent backends
// never replay a session from a previous run.
func newIdemKey() string { return "itest-" + uuid.NewString() }

func decodeModel[T any, PT core.ModelPtr[T]](t *testing.T, b []byte) PT {
	t.Helper()
	m, err := core.Deserialize[T, PT](b)
	if err != nil {
		t.Fatalf("decode: %v\nbody=%s", err, b)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("invalid response: %v\nbody=%s", err, b)
	}
	return m
}

// expectError checks the status and the envelope's error code and returns the
// error body for further assertions.
func expectError(t *testing.T, status int, body []byte, wantStatus int, wantCode string) *shared.ErrorBody {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status=%d want=%d body=%s", status, wantStatus, body)
	}
	env := decodeModel[shared.ErrorResponse](t, body)
	eb, _ := env.Body()
	errBody := eb.Value()
	if code, _ := errBody.Code(); code.Value() != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", code.Value(), wantCode, body)
	}
	return &errBody
}
