package log

import (
	"io"
	"strings"
	"time"
)

// DefaultTimeLayout is the timestamp layout of a logger made without
// [WithTimeLayout].
const DefaultTimeLayout = time.RFC3339

const (
	DefaultCaller = false
	DefaultPretty = false
)

// FormatTime renders a record timestamp. An empty result omits the time.
type FormatTime func(time.Time) string

// Option modifies the configuration of a [Logger].
type Option func(config) config

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// set adapts a field assignment into an [Option].
func set(fn func(*config)) Option {
	return func(c config) config {
		fn(&c)

		return c
	}
}

// WithDefaults resets every setting to its default and writes to w.
func WithDefaults(w io.Writer) Option {
	return set(func(c *config) {
		*c = config{
			output:     discardNil(w),
			formatTime: makeFormatTimeFunc(DefaultTimeLayout),
			level:      DefaultLevel,
			format:     DefaultFormat,
			caller:     DefaultCaller,
			pretty:     DefaultPretty,
		}
	})
}

// WithOutput sets the destination of log records. A nil w discards them.
func WithOutput(w io.Writer) Option {
	return set(func(c *config) { c.output = discardNil(w) })
}

// WithLevel sets the minimum level of records that are written.
func WithLevel(level Level) Option {
	return set(func(c *config) { c.level = level })
}

func WithFormat(format Format) Option {
	return set(func(c *config) { c.format = format })
}

// WithTimeLayout sets the timestamp layout.
//
// Named layouts of package [time] are matched ignoring case and punctuation,
// so "RFC3339", "rfc-3339" and "rfc3339" are equivalent. A few short aliases
// such as "ms" and "nano" select the Stamp variants. Any other value is used
// verbatim with [time.Time.Format]. A blank layout or "none" omits the
// timestamp.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return set(func(c *config) { c.formatTime = format })
}

// WithCaller includes the source location of the call site in each record.
func WithCaller(enable bool) Option {
	return set(func(c *config) { c.caller = enable })
}

// WithPretty colorizes text output. JSON output is never colorized.
func WithPretty(enable bool) Option {
	return set(func(c *config) { c.pretty = enable })
}

func discardNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

var namedLayouts = map[string]string{
	"none":        "",
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
}

var layoutAliases = map[string][]string{
	"stampmilli": {"milli", "millis", "ms"},
	"stampmicro": {"micro", "micros", "us"},
	"stampnano":  {"nano", "nanos", "ns"},
}

func init() {
	for name, aliases := range layoutAliases {
		for _, alias := range aliases {
			namedLayouts[alias] = namedLayouts[name]
		}
	}
}

// layoutKey reduces a layout name to lowercase letters and digits.
func layoutKey(layout string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(layout) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := layoutKey(layout)
	if std, ok := namedLayouts[key]; ok {
		layout = std
	}

	if key == "" || layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
