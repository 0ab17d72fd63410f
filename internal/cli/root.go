package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fcactx/pkg/buildinfo"
	"github.com/matzehuels/fcactx/pkg/errors"
	"github.com/matzehuels/fcactx/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root command loads the config file, sets
// the log level from --verbose or the config, routes codec events to the
// logger, and attaches the logger to the command context.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v) or verbose = true in the config: debug level
//
// With --metrics-file, codec metrics are also collected and written in the
// Prometheus text format once the command succeeds.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose     bool
		cfgPath     string
		metricsFile string
		metrics     *prometheus.Registry
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "fcactx reads, converts and inspects formal contexts",
		Long: `fcactx is a CLI tool for formal contexts (objects, attributes and the
incidence between them) as used in Formal Concept Analysis.

It reads every registered format without being told which one a file uses,
writes any of them, and offers a few context operations on the way.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, explicit := cfgPath, cfgPath != ""
			if !explicit {
				p, err := configPath()
				if err != nil {
					c.Logger.Debug("no config directory", "err", err)
				}
				path = p
			}
			if path != "" {
				cfg, unknown, err := loadConfig(path, explicit)
				if err != nil {
					return err
				}
				c.Config = cfg
				for _, key := range unknown {
					c.Logger.Warn("unknown config key", "key", key, "file", path)
				}
			}

			level := LogInfo
			if verbose || c.Config.Verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			c.Logger.Debug("starting", "version", buildinfo.String(), "config", path)
			hooks := observability.CodecHooks(logHooks{logger: c.Logger})
			if metricsFile != "" {
				metrics = prometheus.NewRegistry()
				m, err := observability.NewMetricsHooks(metrics)
				if err != nil {
					return err
				}
				hooks = observability.Multi(hooks, m)
			}
			observability.SetCodecHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if metrics == nil {
				return nil
			}
			if err := prometheus.WriteToTextfile(metricsFile, metrics); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write metrics %s", metricsFile)
			}
			c.Logger.Debug("wrote metrics", "file", metricsFile)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/fcactx/config.toml)")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write codec metrics to this file in Prometheus text format")

	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.detectCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.completionCommand())

	return root
}
