package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wizdesk/notify/pkg/config"
	"github.com/wizdesk/notify/pkg/email"
	"github.com/wizdesk/notify/pkg/environment"
	"github.com/wizdesk/notify/pkg/logger"
	"github.com/wizdesk/notify/pkg/notifier"
	"github.com/wizdesk/notify/pkg/requestid"
)

const serviceName = "notifier"

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	envFiles []string
	out      io.Writer
	logOut   io.Writer

	env      environment.Environment
	log      *slog.Logger
	notifier *notifier.Notifier
}

func newRootCommand(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out, logOut: logOut}

	root := &cobra.Command{
		Use:          "notifier",
		Short:        "Registration email notifier",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load before reading the environment")

	root.AddCommand(
		newCheckCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) init() error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}

	var (
		cfg     notifier.Config
		mailCfg email.Config
	)
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := config.Load(&mailCfg); err != nil {
		return err
	}

	a.env = environment.Parse(cfg.Environment)
	a.log = logger.New(
		logger.WithEnvironment(a.env, serviceName),
		logger.WithOutput(a.logOut),
		logger.WithContextExtractors(
			environment.LoggerExtractor(),
			requestid.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(a.log)

	a.notifier = notifier.NewFromConfig(cfg, mailCfg, notifier.WithLogger(a.log))
	return nil
}
