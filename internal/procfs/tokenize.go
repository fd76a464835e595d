// Package procfs reads line-oriented, label-prefixed pseudo-files such as
// /proc/stat, /proc/uptime and /proc/meminfo. Each line is split into a
// token sequence and may be filtered by its first token.
package procfs

import "strings"

// FieldSeparator is the delimiter used for /proc records.
const FieldSeparator = " "

// Tokenize splits line into the maximal runs of characters not contained in
// delims, in left-to-right order. Leading, trailing and repeated delimiters
// never produce empty tokens. A line with no non-delimiter characters yields
// a nil slice. Both line and delims are read as UTF-8 runes.
func Tokenize(line, delims string) []string {
	var tokens []string
	start := -1
	for i, r := range line {
		if strings.ContainsRune(delims, r) {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}

// Fields tokenizes a /proc line on single spaces.
func Fields(line string) []string {
	return Tokenize(line, FieldSeparator)
}
