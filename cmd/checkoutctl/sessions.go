package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paylane/paylane-go"
	"github.com/paylane/paylane-go/core"
)

func newCreateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "create FILE",
		Short: "Create a checkout session from a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			req, err := loadRequest(args[0])
			if err != nil {
				return err
			}
			resp, err := client.CheckoutSessions.New(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			return printModel(cmd.OutOrStdout(), resp)
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Show the status of a checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			st, err := client.CheckoutSessions.Get(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			return printModel(cmd.OutOrStdout(), st)
		},
	}
}

// newCompleteCmd drives the fake provider's payment hook. It only works against
// checkoutctl fake-server.
func newCompleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "complete SESSION_ID",
		Short: "Mark a session paid on the fake provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			endpoint := client.BaseURL() + "/_fake/checkouts/" + url.PathEscape(args[0]) + "/complete"
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, endpoint, nil)
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+c.v.GetString("api-key"))
			hc := &http.Client{Timeout: c.v.GetDuration("http-timeout")}
			resp, err := hc.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			c.logger.Debug("complete", "status", resp.StatusCode, "session_id", args[0])
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("complete %s: %d %s", args[0], resp.StatusCode, strings.TrimSpace(string(body)))
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
}

func describe(err error) error {
	var ae *paylane.APIError
	if errors.As(err, &ae) && ae.RequestID != "" {
		return fmt.Errorf("%w (request_id %s)", err, ae.RequestID)
	}
	return err
}

func printModel(w io.Writer, m core.Model) error {
	b, err := core.Serialize(m)
	if err != nil {
		return err
	}
	return printJSON(w, b)
}

func printJSON(w io.Writer, b []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
