package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"esafd/internal/registry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultServeOptions()

	root := &cobra.Command{
		Use:           "esafd",
		Short:         "ESAF Framework backend daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation serves, like `esafd serve`.
			return runServe(cmd, opts)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry command surface over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	for _, c := range []*cobra.Command{root, serveCmd} {
		c.Flags().StringVar(&opts.addr, "addr", opts.addr, "HTTP listen address, e.g. :8080")
		c.Flags().StringVar(&opts.configPath, "config", opts.configPath, "Path to a .yaml/.json/.toml config file")
		c.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug|info|warn|error|off")
		c.Flags().Int64Var(&opts.maxBodyBytes, "max-body-bytes", opts.maxBodyBytes, "Maximum JSON request body size in bytes (0=default)")
		c.Flags().IntVar(&opts.eventBuffer, "event-buffer", opts.eventBuffer, "Per-subscriber event buffer for /events (0=default)")
		c.Flags().BoolVar(&opts.corsEnabled, "cors", opts.corsEnabled, "Enable CORS for the host UI origin")
		c.Flags().StringVar(&opts.corsOrigins, "cors-origins", opts.corsOrigins, "Comma-separated allowed CORS origins")
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print application identity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s — %s\n", registry.AppName, registry.AppVersion, registry.AppDescription)
		},
	}

	root.AddCommand(serveCmd, versionCmd)
	return root
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// envStr returns the environment value for key, or def when unset.
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
