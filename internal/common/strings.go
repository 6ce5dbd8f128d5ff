package common

import "strings"

// SplitList splits comma-separated values, trims them and drops empties and
// repeats, preserving first-seen order. Matching is case-sensitive.
func SplitList(in ...string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			u := strings.TrimSpace(part)
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
