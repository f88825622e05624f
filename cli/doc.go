// Package cli contains the command line interface for minigrep.
//
// # Usage
//
//	minigrep [flags] PATTERN FILE_PATH
//	minigrep -h | --help
//
// Search flags -h/--help and -i/--ignore_case are interpreted by
// [grep.Parse]. Ambient flags may appear anywhere and never occupy a
// positional slot:
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (text, json)
//   - --log-time: timestamp layout (RFC3339, RFC3339Nano, ..., none)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorize text logs (default when stderr is a tty)
//
// Value flags accept either "--flag=value" or "--flag value". Logs are
// written to standard error; standard output carries only search results.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o minigrep .
//
// Such a build accepts two more flags:
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default ~/.cache/minigrep/pprof)
//
// # Examples
//
//	# Case-insensitive search with debug logging
//	minigrep --log-level debug -i body poem.txt
//
//	# JSON logs with CPU profiling
//	minigrep --log-format=json --pprof-mode=cpu to poem.txt
package cli
