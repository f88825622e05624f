package cli

import "strings"

// ambientPrefixes select the flags parsed by kong. Every other argument is
// passed through, in order, to [grep.Parse].
var ambientPrefixes = []string{"--log-", "--no-log-", "--pprof-"}

// valueFlags are the ambient flags that take a value. The value may be
// attached with "=" or given as the following argument.
var valueFlags = map[string]bool{
	"--log-level":  true,
	"--log-format": true,
	"--log-time":   true,
	"--pprof-mode": true,
	"--pprof-dir":  true,
}

func isAmbient(arg string) bool {
	for _, p := range ambientPrefixes {
		if strings.HasPrefix(arg, p) {
			return true
		}
	}

	return false
}

// split separates ambient flags from search arguments.
//
// Ambient value flags given as two arguments are joined into "--name=value",
// so every ambient element is self-contained. A value flag followed by
// nothing, or by an argument starting with "-", is kept bare for kong to
// report.
func split(args []string) (ambient, search []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !isAmbient(arg) {
			search = append(search, arg)

			continue
		}

		if valueFlags[arg] && i+1 < len(args) &&
			len(args[i+1]) > 0 && args[i+1][0] != '-' {
			arg += "=" + args[i+1]
			i++
		}

		ambient = append(ambient, arg)
	}

	return ambient, search
}
