package grep

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/ardnew/minigrep/log"
)

// Help is the usage text printed for -h and --help.
const Help = `Usage: minigrep [PATTERN] [FILE_PATH]
Search for a pattern in the given file

Flags:
    -h, --help          display this help message
    -i, --ignore_case   ignore case distinctions in patterns
`

// Run prints the help text or the lines of cfg.FilePath matching cfg.Query
// to w, one per line, in file order.
//
// No file is accessed when cfg.Help is set. Zero matches is not an error.
func Run(ctx context.Context, cfg Config, w io.Writer) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if cfg.Help {
		// Help ends in a newline and is followed by one blank line.
		_, err = io.WriteString(w, Help+"\n")
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	content, err := ReadFile(ctx, cfg.FilePath)
	if err != nil {
		return err
	}

	result := Matcher(cfg)(cfg.Query, content)

	log.DebugContext(ctx, "search complete",
		slog.Any("config", cfg),
		slog.Int("matches", len(result)),
	)

	bw := bufio.NewWriter(w)

	for _, line := range result {
		_, err = bw.WriteString(line + "\n")
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	err = bw.Flush()
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// ReadFile reads the entire file at path as UTF-8 text.
//
// A missing or unreadable file, or content that is not valid UTF-8, returns
// an error wrapping [ErrFileRead].
func ReadFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", ErrFileRead.
			With(slog.String("file", path)).
			Wrap(err)
	}
	defer file.Close()

	// Read-ahead prefetches the next block while the validator consumes the
	// current one.
	ra := readahead.NewReader(file)
	defer ra.Close()

	data, err := io.ReadAll(transform.NewReader(ra, encoding.UTF8Validator))
	if err != nil {
		return "", ErrFileRead.
			With(slog.String("file", path)).
			Wrap(err)
	}

	if log.Default().Level() <= log.LevelDebug {
		log.DebugContext(ctx, "file loaded",
			slog.String("file", path),
			slog.Int("size", len(data)),
			slog.String("xxh3", strconv.FormatUint(xxh3.Hash(data), 16)),
		)
	}

	return string(data), nil
}
