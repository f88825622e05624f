package grep

import (
	"slices"
	"strings"
	"testing"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

func TestSearch_CaseSensitive(t *testing.T) {
	query := "fast"
	content := "Rust:\nsafe, fast and productive\npick three."

	got := Search(query, content)
	want := []string{"safe, fast and productive"}

	if !slices.Equal(got, want) {
		t.Errorf("Search(%q) = %q, want %q", query, got, want)
	}
}

func TestSearchCaseInsensitive_MatchesAnyCase(t *testing.T) {
	query := "rUsT"
	content := "Rust:\nsafe, fast and productive\npick three.\nTrust me."

	got := SearchCaseInsensitive(query, content)
	want := []string{"Rust:", "Trust me."}

	if !slices.Equal(got, want) {
		t.Errorf("SearchCaseInsensitive(%q) = %q, want %q", query, got, want)
	}
}

func TestSearch_CaseSensitive_SkipsOtherCase(t *testing.T) {
	content := "Rust:\nsafe, fast and productive\npick three.\nDuct tape."

	got := Search("duct", content)
	want := []string{"safe, fast and productive"}

	if !slices.Equal(got, want) {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestLines_SplitsOnTerminators(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single without terminator", "one", []string{"one"}},
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines kept", "one\n\n\ntwo", []string{"one", "", "", "two"}},
		{"lone newline", "\n", []string{""}},
		{"bare carriage return kept", "one\rtwo\nthree\r", []string{"one\rtwo", "three\r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Lines(tt.content))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestLines_StopsEarly(t *testing.T) {
	var got []string

	for line := range Lines("a\nb\nc") {
		got = append(got, line)
		if line == "b" {
			break
		}
	}

	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("got %q, want [a b]", got)
	}
}

func TestSearch_EmptyQuery_MatchesEveryLine(t *testing.T) {
	for _, fn := range []Func{Search, SearchCaseInsensitive} {
		got := fn("", poem)
		want := slices.Collect(Lines(poem))

		if !slices.Equal(got, want) {
			t.Errorf("empty query = %q, want %q", got, want)
		}
	}
}

func TestSearch_EmptyContent_NoMatches(t *testing.T) {
	if got := Search("a", ""); len(got) != 0 {
		t.Errorf("Search on empty content = %q, want none", got)
	}
	if got := SearchCaseInsensitive("", ""); len(got) != 0 {
		t.Errorf("SearchCaseInsensitive on empty content = %q, want none", got)
	}
}

func TestSearch_Properties(t *testing.T) {
	queries := []string{"", "to", "To", "TO", "nobody", "!", "frog", "xyz", "you?"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			lines := slices.Collect(Lines(poem))
			sensitive := Search(q, poem)
			insensitive := SearchCaseInsensitive(q, poem)

			// Every exact match contains the query.
			for _, line := range sensitive {
				if !strings.Contains(line, q) {
					t.Errorf("result %q does not contain %q", line, q)
				}
			}

			// Results are ordered subsequences of the lines, and exact
			// matches are a subsequence of case-insensitive matches.
			if !isSubsequence(sensitive, lines) {
				t.Errorf("Search(%q) = %q is not a subsequence of the lines", q, sensitive)
			}
			if !isSubsequence(insensitive, lines) {
				t.Errorf("SearchCaseInsensitive(%q) = %q is not a subsequence of the lines", q, insensitive)
			}
			if !isSubsequence(sensitive, insensitive) {
				t.Errorf("Search(%q) = %q not within SearchCaseInsensitive = %q", q, sensitive, insensitive)
			}

			// Case-insensitive matching ignores the case of the query.
			upper := SearchCaseInsensitive(strings.ToUpper(q), poem)
			if !slices.Equal(insensitive, upper) {
				t.Errorf("SearchCaseInsensitive varies with query case: %q vs %q", insensitive, upper)
			}

			// Pure functions return identical results on identical inputs.
			if again := Search(q, poem); !slices.Equal(sensitive, again) {
				t.Errorf("Search(%q) not idempotent: %q vs %q", q, sensitive, again)
			}
		})
	}
}

func TestSearch_DuplicateLinesKept(t *testing.T) {
	content := "same\nother\nsame\n"

	got := Search("same", content)
	if !slices.Equal(got, []string{"same", "same"}) {
		t.Errorf("Search() = %q, want duplicates kept", got)
	}
}

func TestMatcher_SelectsVariant(t *testing.T) {
	content := "Alpha\nalpha\n"

	if got := Matcher(Config{})("alpha", content); !slices.Equal(got, []string{"alpha"}) {
		t.Errorf("case-sensitive matcher = %q", got)
	}
	if got := Matcher(Config{IgnoreCase: true})("alpha", content); !slices.Equal(got, []string{"Alpha", "alpha"}) {
		t.Errorf("case-insensitive matcher = %q", got)
	}
}

// isSubsequence reports whether sub appears in seq in order.
func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}

	return i == len(sub)
}

func BenchmarkSearch(b *testing.B) {
	content := strings.Repeat(poem, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Search("frog", content)
	}
}

func BenchmarkSearchCaseInsensitive(b *testing.B) {
	content := strings.Repeat(poem, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SearchCaseInsensitive("FROG", content)
	}
}
