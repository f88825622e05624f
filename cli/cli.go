package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/minigrep/grep"
	"github.com/ardnew/minigrep/log"
	"github.com/ardnew/minigrep/pkg"
)

// CLI holds the ambient flags of minigrep. The search arguments themselves are
// interpreted by [grep.Parse].
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`
}

// Run executes minigrep with the given context and the full argument list,
// including the executable name at position 0. Matches and help text are
// written to stdout.
//
// The exit function is called by kong if it must terminate early.
func Run(
	ctx context.Context,
	exit func(code int),
	stdout io.Writer,
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ambient, search := split(args)

	// Apply boolean logger flags first; level and format apply themselves
	// as kong decodes them.
	cli.Log.scan(ambient)

	var groups []kong.Group
	for _, g := range []kong.Group{cli.Log.group(), cli.Pprof.group()} {
		if g.Key != "" {
			groups = append(groups, g)
		}
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.Exit(exit),
		kong.Writers(stdout, io.Discard),
		kong.ExplicitGroups(groups),
		kong.Vars{}.
			CloneWith(cli.Log.vars()).
			CloneWith(cli.Pprof.vars()),
	)
	if err != nil {
		return err
	}

	_, err = parser.Parse(ambient)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	cfg, err := grep.Parse(search)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "arguments parsed", slog.Any("config", cfg))

	return grep.Run(ctx, cfg, stdout)
}
