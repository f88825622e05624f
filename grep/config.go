package grep

import "log/slog"

// Config is the validated configuration of a single search invocation.
//
// When Help is set, Query and FilePath are empty and must not be used.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
	Help       bool
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	if c.Help {
		return slog.GroupValue(slog.Bool("help", true))
	}

	return slog.GroupValue(
		slog.String("query", c.Query),
		slog.String("file", c.FilePath),
		slog.Bool("ignore_case", c.IgnoreCase),
	)
}

// slot is the next positional argument the parser expects.
type slot int

const (
	expectDiscard slot = iota // executable name
	expectQuery
	expectPath
	full // no slots left
)

// minArgs is the fewest arguments accepted outside of a lone help flag.
const minArgs = 3

func isHelp(arg string) bool       { return arg == "-h" || arg == "--help" }
func isIgnoreCase(arg string) bool { return arg == "-i" || arg == "--ignore_case" }

// Parse builds a [Config] from a raw argument list whose first element is the
// executable name.
//
// A help flag anywhere in args yields a help Config regardless of any other
// argument. The ignore-case flag may be interleaved with positional arguments
// and may repeat. The first non-flag argument is discarded, the second is the
// query and the third is the file path; a fourth returns
// [ErrTooManyParameters]. Fewer than three arguments (other than a lone help
// flag) return [ErrUsage].
//
// A missing file path is not a parse error: the returned Config has an empty
// FilePath, which fails when [Run] reads it.
func Parse(args []string) (Config, error) {
	if len(args) == 2 && isHelp(args[1]) {
		return Config{Help: true}, nil
	}

	if len(args) < minArgs {
		return Config{}, ErrUsage.With(slog.Int("args", len(args)))
	}

	var (
		cfg  Config
		next = expectDiscard
	)

	for _, arg := range args {
		switch {
		case isHelp(arg):
			return Config{Help: true}, nil

		case isIgnoreCase(arg):
			cfg.IgnoreCase = true

		default:
			switch next {
			case expectDiscard:
			case expectQuery:
				cfg.Query = arg
			case expectPath:
				cfg.FilePath = arg
			case full:
				return Config{}, ErrTooManyParameters.With(slog.String("arg", arg))
			}

			next++
		}
	}

	return cfg, nil
}
