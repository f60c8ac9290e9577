// Package extract derives structured fields from free-text note content:
// hashtag-style tags and action-item phrases. Both functions are pure and
// deterministic; applying the results to the store is the service layer's
// job.
//
// The action-item cue set is fixed: a line is an action item when it is a
// checkbox entry ("[ ]", "[x]"), starts with a "todo:"/"action:"/"next:"
// prefix, or ends with an exclamation mark; otherwise each sentence of the
// line is kept when it contains an imperative cue phrase ("need to",
// "must", "should", "follow up", "remember to", "don't forget").
package extract

import (
	"regexp"
	"strings"
)

var (
	hashtagPattern    = regexp.MustCompile(`#(\w+)`)
	listMarkerPattern = regexp.MustCompile(`^([-*•]|\d+\.)\s*`)
	checkboxPattern   = regexp.MustCompile(`^\[[ xX]\]\s*`)
	sentencePattern   = regexp.MustCompile(`[.!?]+`)
	cuePattern        = regexp.MustCompile(`(?i)\b(need to|must|should|follow up|remember to|don't forget)\b`)
)

var keywordPrefixes = []string{"todo:", "action:", "next:"}

// Hashtags returns the distinct hashtag tokens in content, case-folded,
// in order of first appearance. A token is '#' followed by one or more
// word characters.
func Hashtags(content string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, m := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		name := strings.ToLower(m[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, name)
	}
	return tags
}

// ActionItems returns the distinct action-item phrases in content, in
// order of appearance. Duplicates are dropped case-insensitively.
func ActionItems(content string) []string {
	items := []string{}
	seen := map[string]bool{}
	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return
		}
		key := strings.ToLower(phrase)
		if seen[key] {
			return
		}
		seen[key] = true
		items = append(items, phrase)
	}

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		line = listMarkerPattern.ReplaceAllString(line, "")

		if checkboxPattern.MatchString(line) {
			add(checkboxPattern.ReplaceAllString(line, ""))
			continue
		}
		if prefix := matchKeywordPrefix(line); prefix != "" {
			add(strings.TrimPrefix(line[len(prefix):], " "))
			continue
		}
		if strings.HasSuffix(line, "!") {
			add(line)
			continue
		}
		for _, sentence := range sentencePattern.Split(line, -1) {
			if cuePattern.MatchString(sentence) {
				add(sentence)
			}
		}
	}
	return items
}

func matchKeywordPrefix(line string) string {
	lowered := strings.ToLower(line)
	for _, prefix := range keywordPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return prefix
		}
	}
	return ""
}
