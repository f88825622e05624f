//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Enabled reports whether the binary was built with the pprof tag.
const Enabled = true

// Modes returns the sorted list of supported profiling modes.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends a pkg/profile option for one Profiler field.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func start(m, path string, quiet bool) interface{ Stop() } {
	fn, ok := mode[m]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn}
	for _, o := range []option{withPath(path), withQuiet(quiet)} {
		opts = o(opts)
	}

	// NoShutdownHook leaves signal handling to the caller; the profile is
	// written when Stop is called.
	return profile.Start(append(opts, profile.NoShutdownHook)...)
}

func withPath(p string) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if p != "" {
			opts = append(opts, profile.ProfilePath(p))
		}

		return opts
	}
}

func withQuiet(v bool) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if v {
			opts = append(opts, profile.Quiet)
		}

		return opts
	}
}
