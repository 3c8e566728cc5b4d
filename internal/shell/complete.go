package shell

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Complete expands a partially typed command name. Prefix matches win; when
// none exist the closest fuzzy match is offered. Lines that already contain
// arguments are left alone.
func (in *Interpreter) Complete(text string) (string, bool) {
	prefix := strings.TrimLeft(text, " ")
	if prefix == "" || strings.ContainsAny(prefix, " \t") {
		return "", false
	}
	lowered := strings.ToLower(prefix)
	names := in.table.Names()

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, lowered) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return fuzzyComplete(lowered, names)
	case 1:
		return matches[0] + " ", true
	}
	common := commonPrefix(matches)
	if len(common) > len(lowered) {
		return common, true
	}
	return "", false
}

func fuzzyComplete(prefix string, names []string) (string, bool) {
	ranks := fuzzy.RankFindFold(prefix, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return "", false
	}
	return ranks[0].Target + " ", true
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
