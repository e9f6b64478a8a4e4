// Package paylane is a client for the Paylane payments API.
//
// Request and response bodies are the models in the checkoutsessions and shared
// packages. A request is validated before it is sent:
//
//	client := paylane.NewClient(paylane.WithAPIKey(key))
//	req := checkoutsessions.NewCheckoutSessionRequest(checkoutsessions.CheckoutSessionRequestParams{
//		ProductCart: core.Some([]checkoutsessions.ProductItem{*item}),
//	})
//	resp, err := client.CheckoutSessions.New(ctx, req)
//
// Non-2xx responses are returned as *APIError. The client does not retry.
package paylane
