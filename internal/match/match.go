// Package match implements a wildcard token matcher over whitespace-split
// word lists.
package match

import "strings"

// Wildcard is the template token that captures one or more input tokens
const Wildcard = "%"

// Match compares input tokens against a template left to right. A literal
// template token must equal the corresponding input token; a wildcard
// captures one or more consecutive input tokens, as many as possible while
// still letting the rest of the template match. On success the returned
// slice holds one binding per wildcard, each the captured tokens joined by
// single spaces. A template with no wildcards matches to an empty, non-nil
// slice. Returns nil when the input does not fit the template.
func Match(template, input []string) []string {
	bindings, ok := matchFrom(template, input)
	if !ok {
		return nil
	}
	if bindings == nil {
		bindings = []string{}
	}
	return bindings
}

func matchFrom(template, input []string) ([]string, bool) {
	if len(template) == 0 {
		return nil, len(input) == 0
	}

	if template[0] != Wildcard {
		if len(input) == 0 || input[0] != template[0] {
			return nil, false
		}
		return matchFrom(template[1:], input[1:])
	}

	// Greedy: try the longest capture first, backing off until the
	// trailing template tokens fit.
	for take := len(input); take >= 1; take-- {
		rest, ok := matchFrom(template[1:], input[take:])
		if !ok {
			continue
		}
		bindings := make([]string, 0, len(rest)+1)
		bindings = append(bindings, strings.Join(input[:take], " "))
		return append(bindings, rest...), true
	}

	return nil, false
}
