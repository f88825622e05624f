// Package profile provides optional runtime profiling for minigrep.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag. Built
// without the tag (the default), [Profiler.Start] is a no-op and [Modes] is
// empty.
//
//	go build -tags pprof .
//	./minigrep --pprof-mode=cpu --pprof-dir=/tmp/prof needle haystack.txt
//	go tool pprof /tmp/prof/cpu.pprof
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread and trace. The default output directory is the "pprof" directory
// under the user cache directory, for example ~/.cache/minigrep/pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
