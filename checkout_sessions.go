package paylane

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/paylane/paylane-go/checkoutsessions"
)

// CheckoutSessionsService groups the checkout-session endpoints.
type CheckoutSessionsService struct {
	client *Client
}

// New creates a hosted checkout session. req is validated first and no request
// is sent when it is invalid; the returned error then matches
// core.ErrInvalidData or core.ErrMissingRequiredField.
func (s *CheckoutSessionsService) New(ctx context.Context, req *checkoutsessions.CheckoutSessionRequest) (*checkoutsessions.CheckoutSessionResponse, error) {
	if req == nil {
		return nil, errors.New("paylane: nil checkout session request")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("paylane: invalid request: %w", err)
	}
	return do[checkoutsessions.CheckoutSessionResponse](ctx, s.client, http.MethodPost, "/checkouts", req)
}

// Get retrieves the current status of a checkout session.
func (s *CheckoutSessionsService) Get(ctx context.Context, id string) (*checkoutsessions.CheckoutSessionStatus, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("paylane: empty checkout session id")
	}
	return do[checkoutsessions.CheckoutSessionStatus](ctx, s.client, http.MethodGet, "/checkouts/"+url.PathEscape(id), nil)
}
