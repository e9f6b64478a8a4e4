package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paylane/paylane-go"
)

const appName = "checkoutctl"

// cli carries per-invocation state shared by the subcommands.
type cli struct {
	v      *viper.Viper
	logger *slog.Logger

	ok   *color.Color
	bad  *color.Color
	bold *color.Color
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Work with Paylane checkout sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.config/checkoutctl/config.yaml)")
	pf.String("api-key", "", "API key (env PAYLANE_API_KEY)")
	pf.String("environment", string(paylane.TestMode), "live_mode or test_mode (env PAYLANE_ENVIRONMENT)")
	pf.String("base-url", "", "override the API base URL (env PAYLANE_BASE_URL)")
	pf.Duration("http-timeout", 30*time.Second, "HTTP timeout (env PAYLANE_HTTP_TIMEOUT)")
	pf.Bool("strict", false, "validate responses against the model schema")
	pf.Bool("debug", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")

	if err := c.v.BindPFlags(pf); err != nil {
		panic(fmt.Sprintf("%s: bind flags: %v", appName, err))
	}
	c.v.SetEnvPrefix("PAYLANE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		newValidateCmd(c),
		newCreateCmd(c),
		newGetCmd(c),
		newCompleteCmd(c),
		newFakeServerCmd(c),
	)

	return root
}

// execute runs the command and prints a failure in red on stderr.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), color.RedString("error: %v", err))
	}
	return err
}

func (c *cli) init(cmd *cobra.Command) error {
	if err := c.readConfig(); err != nil {
		return err
	}

	c.ok = color.New(color.FgGreen)
	c.bad = color.New(color.FgRed)
	c.bold = color.New(color.Bold)
	if c.v.GetBool("no-color") {
		c.ok.DisableColor()
		c.bad.DisableColor()
		c.bold.DisableColor()
	}

	c.logger = newLogger(cmd.ErrOrStderr(), c.v.GetBool("debug"))
	return nil
}

func (c *cli) readConfig() error {
	if path := c.v.GetString("config"); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	c.v.SetConfigName("config")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(filepath.Join(home, ".config", appName))
	if err := c.v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger routes slog through charmbracelet/log.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          appName,
	})
	return slog.New(h)
}

func (c *cli) client() (*paylane.Client, error) {
	key := c.v.GetString("api-key")
	if key == "" {
		return nil, errors.New("missing API key: pass --api-key or set PAYLANE_API_KEY")
	}
	env := paylane.Environment(c.v.GetString("environment"))
	if env != paylane.LiveMode && env != paylane.TestMode {
		return nil, fmt.Errorf("--environment must be %s or %s, got %q", paylane.LiveMode, paylane.TestMode, env)
	}
	opts := []paylane.Option{
		paylane.WithAPIKey(key),
		paylane.WithEnvironment(env),
		paylane.WithHTTPClient(&http.Client{Timeout: c.v.GetDuration("http-timeout")}),
		paylane.WithLogger(c.logger),
		paylane.WithResponseValidation(c.v.GetBool("strict")),
	}
	if u := c.v.GetString("base-url"); u != "" {
		opts = append(opts, paylane.WithBaseURL(u))
	}
	return paylane.NewClient(opts...), nil
}
