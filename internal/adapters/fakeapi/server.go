package fakeapi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/paylane/paylane-go/checkoutsessions"
	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/internal/app/checkouts"
	"github.com/paylane/paylane-go/internal/domain"
	clockport "github.com/paylane/paylane-go/internal/ports/out/clock"
	"github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

const maxBodyBytes = 1 << 20

// DefaultIdempotencyTTL is how long a create can be replayed by its key.
const DefaultIdempotencyTTL = 24 * time.Hour

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Server is the HTTP adapter of the fake provider.
type Server struct {
	Checkouts *checkouts.Service
	Idem      idempotency.Store
	Clock     clockport.Clock

	// IdempotencyTTL bounds how long keys are remembered; zero means DefaultIdempotencyTTL.
	IdempotencyTTL time.Duration

	logger  *slog.Logger
	metrics *Metrics
}

func NewServer(svc *checkouts.Service, idem idempotency.Store, clk clockport.Clock) *Server {
	return &Server{
		Checkouts: svc,
		Idem:      idem,
		Clock:     clk,
		logger:    discardLogger,
		metrics:   NewMetrics(),
	}
}

// WithLogger sets the logger used for unexpected errors.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	s.logger = l
	return s
}

func (s *Server) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing principal", nil)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large", nil)
		return
	}

	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	scope := idempotency.Scope{
		Principal: principal,
		Key:       idempotency.Key(idemKey),
		Operation: idempotency.OperationCreateCheckoutSession,
	}
	bodyHash := hashBody(body)
	useIdem := s.Idem != nil && idemKey != ""
	if useIdem && s.replay(w, r, scope, bodyHash) {
		return
	}

	resp, err := s.Checkouts.CreateSession(ctx, principal, body)
	if err != nil {
		s.appError(w, r, err)
		return
	}
	b, err := core.Serialize(resp)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.metrics.sessionsCreated.Inc()

	if useIdem {
		sessionID, _ := resp.SessionID()
		saved, err := s.Idem.Save(ctx, scope, idempotency.Entry{
			RequestHash: bodyHash,
			SessionID:   domain.SessionID(sessionID.Value()),
			Response:    b,
			StoredAt:    s.Clock.Now(),
		})
		if err != nil {
			s.internalError(w, r, err)
			return
		}
		// A concurrent request with the same key finished first; answer with its outcome.
		if !saved && s.replay(w, r, scope, bodyHash) {
			return
		}
	}
	writeJSON(w, http.StatusCreated, "application/json", b)
}

// replay answers a create whose key has already been used and reports whether it
// wrote a response. The stored 201 is replayed for the same body; a different body
// is a 409. Entries older than the retention window are purged and ignored.
func (s *Server) replay(w http.ResponseWriter, r *http.Request, scope idempotency.Scope, bodyHash string) bool {
	ctx := r.Context()
	e, ok, err := s.Idem.Lookup(ctx, scope)
	if err != nil {
		s.internalError(w, r, err)
		return true
	}
	if !ok {
		return false
	}
	if cutoff := s.Clock.Now().Add(-s.idempotencyTTL()); e.StoredAt.Before(cutoff) {
		n, err := s.Idem.Purge(ctx, cutoff)
		if err != nil {
			s.internalError(w, r, err)
			return true
		}
		s.logger.Debug("expired idempotency keys purged", "count", n)
		return false
	}
	if e.RequestHash != bodyHash {
		writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
		return true
	}
	s.metrics.idempotentReplays.Inc()
	w.Header().Set("Idempotent-Replayed", "true")
	writeJSON(w, http.StatusCreated, "application/json", e.Response)
	return true
}

func (s *Server) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return DefaultIdempotencyTTL
}

func (s *Server) GetCheckoutSession(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing principal", nil)
		return
	}
	st, err := s.Checkouts.GetSession(r.Context(), principal, domain.SessionID(chi.URLParam(r, "id")))
	if err != nil {
		s.appError(w, r, err)
		return
	}
	s.writeStatus(w, st)
}

// CompleteCheckoutSession is a test hook standing in for the customer paying
// on the hosted page.
func (s *Server) CompleteCheckoutSession(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing principal", nil)
		return
	}
	st, err := s.Checkouts.CompleteSession(r.Context(), principal, domain.SessionID(chi.URLParam(r, "id")))
	if err != nil {
		s.appError(w, r, err)
		return
	}
	s.metrics.sessionsCompleted.Inc()
	s.writeStatus(w, st)
}

func (s *Server) writeStatus(w http.ResponseWriter, st *checkoutsessions.CheckoutSessionStatus) {
	writeModel(w, http.StatusOK, st)
}

func (s *Server) appError(w http.ResponseWriter, r *http.Request, err error) {
	if ae := (*checkouts.Error)(nil); errors.As(err, &ae) {
		writeError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
		return
	}
	s.internalError(w, r, err)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"err", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

// hashBody fingerprints a create body. Insignificant whitespace does not count
// as a different payload.
func hashBody(body []byte) string {
	canonical := body
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		canonical = buf.Bytes()
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
