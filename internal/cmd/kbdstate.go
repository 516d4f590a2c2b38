package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clambin/kbdstate/internal/configuration"
	"github.com/clambin/kbdstate/internal/controller"
	"github.com/clambin/kbdstate/internal/effector"
	"github.com/clambin/kbdstate/internal/logging"
	"github.com/clambin/kbdstate/internal/metrics"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Main runs one suspend/resume transition and returns its outcome.
func Main(args []string, version string) error {
	var (
		debug        bool
		dryRun       bool
		configPath   string
		textfilePath string
		transition   string
	)

	a := kingpin.New(filepath.Base(os.Args[0]), "persists and restores keyboard backlight state across suspend/resume")
	a.Version(version)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&debug)
	a.Flag("dry-run", "Report actions without performing them").Default("false").BoolVar(&dryRun)
	a.Flag("config", "Configuration file to try before the system paths").Default("").StringVar(&configPath)
	a.Flag("textfile", "Write run metrics to this file in Prometheus text format").Default("").StringVar(&textfilePath)
	a.Arg("transition", "The [pre|post] keyword from systemd-suspend.service").Required().EnumVar(&transition, "pre", "post")

	if _, err := a.Parse(args); err != nil {
		return fmt.Errorf("invalid command line arguments: %w", err)
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	}
	logging.AddJournalHook("kbdstate")

	cfg := configuration.Load(configPath)

	// device and state files can only be written by root
	if os.Geteuid() != 0 {
		dryRun = true
	}
	var e effector.Effector = effector.FileWriter{}
	if dryRun {
		log.Info("dry-run mode. actions will be reported, not performed")
		e = effector.DryRun{Out: os.Stdout}
	}

	err := controller.New(cfg, e).Run(transition)

	if textfilePath != "" && !dryRun {
		if merr := (metrics.Writer{Path: textfilePath}).Record(transition, err == nil); merr != nil {
			log.WithError(merr).Warning("failed to write run metrics")
		}
	}
	return err
}
