// Package grep implements a minimal line-oriented text search.
//
// [Parse] turns a raw argument list into a [Config], [Search] and
// [SearchCaseInsensitive] select matching lines from in-memory content, and
// [Run] ties them together by reading a file and printing every match.
//
//	cfg, err := grep.Parse(os.Args)
//	if err != nil {
//		return err
//	}
//	return grep.Run(ctx, cfg, os.Stdout)
//
// Matching is plain substring containment. Case-insensitive matching
// lowercases both the query and each line with [strings.ToLower] and returns
// the original line.
package grep
