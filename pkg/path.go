package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// prefixRules rewrite the executable base name in order.
var prefixRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^__debug_bin\d*$`), Name}, // dlv output binary
	{regexp.MustCompile(`^\.+`), ""},
}

// Prefix returns the executable base name without extension, used as the
// directory name under [CacheDir]. Debugger builds map to [Name] and leading
// dots are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}

		base := filepath.Base(exe)
		base = strings.TrimSuffix(base, filepath.Ext(base))

		for _, rule := range prefixRules {
			base = rule.re.ReplaceAllString(base, rule.repl)
		}

		if base == "" {
			return Name
		}

		return base
	},
)

// CacheDir returns the per-user cache directory of the executable, falling
// back to ~/.cache and then the working directory. It does not create the
// directory.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(cacheRoot(), Prefix())
	},
)

func cacheRoot() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache")
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
