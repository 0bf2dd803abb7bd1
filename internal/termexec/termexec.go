package termexec

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"

	"termexec/internal/basedir"
	"termexec/internal/collect"
	"termexec/internal/config"
	"termexec/internal/desktop"
	"termexec/internal/entry"
	"termexec/internal/run"
)

type Options struct {
	Run   run.Options
	Lists collect.Options
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Run:   run.Options{Shell: cfg.Shell, DefaultExecArg: cfg.DefaultExecArg},
		Lists: collect.Options{SkipComments: cfg.Lists.SkipComments},
	}
}

// Runner wires the resolution pass to its capabilities.
type Runner struct {
	Dirs      basedir.Dirs
	Parser    entry.Parser
	Launcher  run.Launcher
	HasBinary func(string) bool
	LookupEnv func(string) (string, bool)
	Options   Options
	Log       *slog.Logger
}

// New returns a Runner backed by the real environment.
func New(opts Options, log *slog.Logger) *Runner {
	return &Runner{
		Dirs:      basedir.XDG{},
		Parser:    entry.IniParser{},
		Launcher:  run.ExecLauncher{},
		HasBinary: run.HasBinary,
		LookupEnv: os.LookupEnv,
		Options:   opts,
		Log:       log,
	}
}

type Result struct {
	Launched bool
	// ID is the candidate whose launch replaced the process.
	ID string
	// Attempts lists ids that passed filtering, in launch order.
	Attempts []string
	Failures *multierror.Error
}

// Run performs one resolution pass. If a launch succeeds the process has
// been replaced and Run only returns when the launcher is not a real exec.
// Running out of candidates is not an error.
func (r *Runner) Run(args []string) (Result, error) {
	var res Result
	log := r.Log
	if log == nil {
		log = slog.Default()
	}

	desktops, err := desktop.Current(r.LookupEnv)
	if err != nil {
		return res, err
	}
	log.Debug("desktops", "ids", desktops)

	configPaths, err := basedir.ConfigPaths(r.Dirs, basedir.ListFileNames(desktops))
	if err != nil {
		return res, err
	}
	dataRoots, err := basedir.DataRoots(r.Dirs)
	if err != nil {
		return res, err
	}
	log.Debug("search paths", "lists", configPaths, "roots", dataRoots)

	configured, err := collect.Configured(configPaths, r.Options.Lists)
	if err != nil {
		return res, err
	}
	present, err := collect.Present(dataRoots)
	if err != nil {
		return res, err
	}

	resolver := entry.Resolver{
		Roots:     dataRoots,
		Desktops:  desktops,
		Parser:    r.Parser,
		HasBinary: r.HasBinary,
		Log:       log,
	}
	for _, id := range collect.Merge(collect.Seen{}, configured, present) {
		d, ok := resolver.Resolve(id)
		if !ok {
			continue
		}
		spec, err := run.BuildSpec(d, args, r.Options.Run)
		if err != nil {
			log.Debug("candidate skipped", "id", id, "err", err)
			continue
		}
		res.Attempts = append(res.Attempts, id)
		log.Debug("launching", "id", id, "command", spec.Command)
		out := r.Launcher.Launch(spec)
		if out.IsReplaced() {
			res.Launched = true
			res.ID = id
			return res, nil
		}
		log.Debug("launch failed", "id", id, "err", out.Err())
		res.Failures = multierror.Append(res.Failures, fmt.Errorf("%s: %w", id, out.Err()))
	}

	if res.Failures != nil {
		log.Debug("no terminal launched", "failures", res.Failures.ErrorOrNil())
	} else {
		log.Debug("no terminal launched", "attempts", len(res.Attempts))
	}
	return res, nil
}
