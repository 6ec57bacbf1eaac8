package main

import (
	"context"
	"fmt"
	"os"

	"github.com/filetug/filexp/pkg/files/osfile"
	"github.com/filetug/filexp/pkg/filexp"
	"github.com/filetug/filexp/pkg/filexp/ftlog"
	"github.com/filetug/filexp/pkg/filexp/ftsettings"
	"github.com/filetug/filexp/pkg/filexp/ftui"
	"github.com/filetug/filexp/pkg/filexp/masks"
	"github.com/filetug/filexp/pkg/filexp/screen"
	"github.com/filetug/filexp/pkg/launch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var osExit = os.Exit
var osGetwd = os.Getwd
var loadSettings = ftsettings.Load
var newScreen = screen.NewScreen
var osArgs = func() []string { return os.Args[1:] }

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(osArgs())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "filexp: %v\n", err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "filexp",
		Short:         "Terminal file explorer",
		Long:          "filexp browses the working directory in the terminal. Press h inside for the list of keys.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

var run = func(ctx context.Context) error {
	settings, settingsErr := loadSettings()
	closeLog, err := ftlog.Init(ftlog.Options{Level: settings.LogLevel, File: settings.LogFile})
	defer closeLog()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "filexp: logging disabled: %v\n", err)
	}
	logger := ftlog.Get("main")
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Msg("using default settings")
	}

	store := newStore(settings, logger)
	launcher := launch.NewSystemLauncher(settings.Opener)

	wd, err := osGetwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	dir, err := osfile.CanonicalDir(wd)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", wd)
	}
	logger.Info().Str("dir", dir).Stringer("store", store).Msg("starting")

	return screen.Run(newScreen, func(sc *screen.Context) error {
		nav := filexp.NewNavigator(ctx, store, launcher, dir)
		return runApp(ctx, filexp.NewApp(nav, sc))
	})
}

type application interface {
	Run(ctx context.Context) error
}

var runApp = func(ctx context.Context, app application) error {
	return app.Run(ctx)
}

func newStore(settings ftsettings.Settings, logger ftlog.Logger) *osfile.Store {
	filter := ftui.Filter{ShowHidden: settings.ShowHidden}
	if len(settings.Exclude) > 0 {
		mask, err := masks.NewExcludeMask("exclude", settings.Exclude...)
		if err != nil {
			logger.Warn().Err(err).Strs("exclude", settings.Exclude).Msg("ignoring exclude masks")
		} else {
			filter.MaskFilter = func(entry os.DirEntry) bool {
				visible, _ := mask.Match(entry.Name())
				return visible
			}
		}
	}
	return osfile.NewStore(osfile.WithFilter(filter), osfile.WithDirsFirst(settings.DirsFirst))
}
