// Package mention finds @-mentions in free text and resolves them to directory identities.
package mention

import (
	"regexp"
	"strings"
)

var (
	bracketPattern = regexp.MustCompile(`@\[([^\]]+)\]`)
	barePattern    = regexp.MustCompile(`@(\w+)`)
)

// Extract returns the mention names in text: every @[Full Name] first, then every
// bare @token, each name once, in order of first appearance. Existence is not checked.
func Extract(text string) []string {
	names := []string{}
	if text == "" {
		return names
	}

	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, match := range bracketPattern.FindAllStringSubmatch(text, -1) {
		add(strings.TrimSpace(match[1]))
	}
	for _, match := range barePattern.FindAllStringSubmatch(text, -1) {
		add(match[1])
	}

	return names
}
