package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paylane/paylane-go/checkoutsessions"
	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/internal/platform/fixture"
)

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check checkout session request files (JSON, JSONC or YAML) without sending them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				req, err := loadRequest(path)
				if err == nil {
					err = req.Validate()
				}
				if err != nil {
					failed++
					c.bad.Fprint(out, "FAIL")
					fmt.Fprintf(out, " %s: %v\n", path, err)
					continue
				}
				c.ok.Fprint(out, "ok")
				fmt.Fprintf(out, "   %s\n", path)
				if extra := req.AdditionalProperties(); len(extra) > 0 {
					c.logger.Warn("unknown fields are sent as-is", "file", path, "count", len(extra))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func loadRequest(path string) (*checkoutsessions.CheckoutSessionRequest, error) {
	b, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	req, err := core.Deserialize[checkoutsessions.CheckoutSessionRequest](b)
	if err != nil {
		if errors.Is(err, core.ErrMalformedPayload) {
			return nil, fmt.Errorf("%s: request must be a JSON object", path)
		}
		return nil, err
	}
	return req, nil
}
