package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/minigrep/cli"
	"github.com/ardnew/minigrep/log"
)

func main() {
	os.Exit(run(context.Background(), os.Exit, os.Stdout, os.Args...))
}

// run returns the process exit status for args.
func run(ctx context.Context, exit func(int), stdout io.Writer, args ...string) int {
	err := cli.Run(ctx, exit, stdout, args...)
	if err != nil {
		log.ErrorContext(ctx,
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()

		return 1
	}

	return 0
}
