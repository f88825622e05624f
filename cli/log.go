package cli

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/ardnew/minigrep/log"
)

// logFormat and logLevel reconfigure the default logger as soon as kong
// decodes them, so a later flag error is already logged in the requested
// style.
type (
	logFormat string
	logLevel  string
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"${logFormat}" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp format ('none' to omit)." name:"time"`
	Caller     bool      `default:"false"                                help:"Include caller information."            negatable:""`
	Pretty     bool      `default:"${logPretty}"                         help:"Enable colorized text output."          negatable:""`
}

func (*logConfig) vars() kong.Vars {
	var levels, formats []string

	for l := range log.Levels() {
		levels = append(levels, l)
	}

	for f := range log.Formats() {
		formats = append(formats, f)
	}

	return kong.Vars{
		"logLevel":      log.DefaultLevel.String(),
		"logLevelEnum":  strings.Join(levels, ","),
		"logFormat":     log.DefaultFormat.String(),
		"logFormatEnum": strings.Join(formats, ","),
		"logPretty":     strconv.FormatBool(stderrIsTerminal()),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// stderrIsTerminal reports whether log output goes to an interactive terminal.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// start applies the fully parsed logger configuration, including TimeLayout
// and Caller which have no parse-time side effects.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies boolean logger flags before Kong parses anything, so that a
// parse error is already reported in the requested style. Level and format
// are handled by their TextUnmarshaler during parsing.
//
// Each element of args is a single "--name" or "--name=value" as produced by
// [split].
func (f *logConfig) scan(args []string) {
	for _, arg := range args {
		name, value, assigned := strings.Cut(arg, "=")

		negated := strings.HasPrefix(name, "--no-")
		if negated {
			name = "--" + strings.TrimPrefix(name, "--no-")
		}

		enable := true
		if assigned {
			v, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}

			enable = v
		}

		if negated {
			enable = !enable
		}

		switch name {
		case "--log-pretty":
			f.Pretty = enable
			log.Config(log.WithPretty(enable))

		case "--log-caller":
			f.Caller = enable
			log.Config(log.WithCaller(enable))
		}
	}
}
