package checkouts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/paylane/paylane-go/checkoutsessions"
	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/internal/domain"
	clockport "github.com/paylane/paylane-go/internal/ports/out/clock"
	"github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

// Service implements the checkout-session endpoints of the fake provider.
type Service struct {
	repo sessionrepo.Repository
	clk  clockport.Clock

	newSessionID func() domain.SessionID
	newPaymentID func() string

	// CheckoutBaseURL prefixes the hosted checkout URL returned for new sessions.
	CheckoutBaseURL string
}

func NewService(repo sessionrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo:         repo,
		clk:          clk,
		newSessionID: domain.NewSessionID,
		newPaymentID: func() string {
			return "pay_" + uuid.NewString()
		},
		CheckoutBaseURL: "https://checkout.paylane.test",
	}
}

// CreateSession accepts a create body exactly as received on the wire. Unknown
// fields are kept; any schema violation is a 422 naming the offending field.
func (s *Service) CreateSession(ctx context.Context, principal domain.PrincipalID, body []byte) (*checkoutsessions.CheckoutSessionResponse, error) {
	req, err := core.Deserialize[checkoutsessions.CheckoutSessionRequest](body)
	if err != nil {
		return nil, &Error{
			Status:  http.StatusBadRequest,
			Code:    "MALFORMED_PAYLOAD",
			Message: "request body must be a JSON object",
		}
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	canonical, err := core.Serialize(req)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	sess := domain.Session{
		ID:            s.newSessionID(),
		Principal:     principal,
		Request:       canonical,
		PaymentStatus: domain.PaymentStatusRequiresPaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sess.CustomerEmail, sess.CustomerName = customerContact(req)

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}

	return checkoutsessions.NewCheckoutSessionResponse(checkoutsessions.CheckoutSessionResponseParams{
		SessionID:   core.Some(string(sess.ID)),
		CheckoutURL: core.Some(strings.TrimRight(s.CheckoutBaseURL, "/") + "/session/" + string(sess.ID)),
	}), nil
}

func (s *Service) GetSession(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (*checkoutsessions.CheckoutSessionStatus, error) {
	sess, err := s.get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return toStatus(sess), nil
}

// CompleteSession simulates the customer paying: the session moves to succeeded
// and gets a payment id. Completing a session twice is a conflict.
func (s *Service) CompleteSession(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (*checkoutsessions.CheckoutSessionStatus, error) {
	sess, err := s.get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if sess.PaymentStatus == domain.PaymentStatusSucceeded {
		return nil, &Error{
			Status:  http.StatusConflict,
			Code:    "SESSION_ALREADY_COMPLETED",
			Message: "checkout session has already been paid",
		}
	}
	paymentID := s.newPaymentID()
	sess.PaymentID = &paymentID
	sess.PaymentStatus = domain.PaymentStatusSucceeded
	sess.UpdatedAt = s.clk.Now()
	if err := s.repo.Update(ctx, sess); err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return toStatus(sess), nil
}

func (s *Service) get(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (domain.Session, error) {
	sess, err := s.repo.Get(ctx, principal, id)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return domain.Session{}, notFound(id)
		}
		return domain.Session{}, err
	}
	return sess, nil
}

func notFound(id domain.SessionID) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "checkout session not found",
		Details: map[string]any{"session_id": string(id)},
	}
}

func validationError(err error) *Error {
	details := map[string]any{}
	var ide *core.InvalidDataError
	var mre *core.MissingRequiredFieldError
	switch {
	case errors.As(err, &mre):
		details["field"] = mre.Field
		details["reason"] = "missing required field"
	case errors.As(err, &ide):
		details["field"] = ide.Field
		if ide.Value != "" {
			details["value"] = ide.Value
		}
		if len(ide.Allowed) > 0 {
			details["allowed"] = ide.Allowed
		}
		if ide.Reason != "" {
			details["reason"] = ide.Reason
		}
	}
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// customerContact pulls the contact details shown on session status. The request
// has already been validated, so decode errors cannot occur here.
func customerContact(req *checkoutsessions.CheckoutSessionRequest) (email, name *string) {
	opt, _ := req.Customer()
	c, ok := opt.Get()
	if !ok {
		return nil, nil
	}
	if e, _ := c.Email(); e.IsPresent() {
		email = domain.CustomerEmail(string(e.Value()))
	}
	if n, _ := c.Name(); n.IsPresent() {
		name = domain.CustomerName(n.Value())
	}
	return email, name
}

func toStatus(sess domain.Session) *checkoutsessions.CheckoutSessionStatus {
	return checkoutsessions.NewCheckoutSessionStatus(checkoutsessions.CheckoutSessionStatusParams{
		ID:            core.Some(string(sess.ID)),
		CreatedAt:     core.Some(sess.CreatedAt),
		CustomerEmail: nullableString(sess.CustomerEmail),
		CustomerName:  nullableString(sess.CustomerName),
		PaymentID:     nullableString(sess.PaymentID),
		PaymentStatus: core.Some(core.EnumFromString[checkoutsessions.IntentStatus](string(sess.PaymentStatus))),
	})
}

func nullableString(p *string) core.Optional[string] {
	if p == nil {
		return core.Null[string]()
	}
	return core.Some(*p)
}
