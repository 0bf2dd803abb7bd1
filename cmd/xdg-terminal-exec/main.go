package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"termexec/internal/config"
	"termexec/internal/logging"
	"termexec/internal/termexec"
)

func main() {
	if err := runArgs(newRootCmd(launch), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "xdg-terminal-exec:", err)
		os.Exit(1)
	}
}

// runArgs puts a "--" in front of args so cobra never matches its own
// hidden commands (such as __complete) against the wrapped command.
func runArgs(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{"--"}, args...))
	return cmd.Execute()
}

func newRootCmd(launch func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "xdg-terminal-exec [command [args...]]",
		Short: "Launch the preferred terminal emulator, optionally running a command in it",
		// Everything after the program name belongs to the wrapped command.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return launch(args)
		},
	}
}

func launch(args []string) error {
	cfg, path, err := config.Load()
	log := logging.Setup(cfg.LogLevel)
	if err != nil {
		log.Warn("ignoring config", "path", path, "err", err)
	}
	return execute(termexec.New(termexec.OptionsFromConfig(cfg), log), args, log)
}

func execute(r *termexec.Runner, args []string, log *slog.Logger) error {
	res, err := r.Run(args)
	if err != nil {
		return err
	}
	if !res.Launched {
		log.Info("no terminal launched", "attempts", res.Attempts)
	}
	return nil
}
