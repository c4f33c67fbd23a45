// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ed3

import "strings"

// LooksLikeJSON is a surface check: after trimming whitespace the text must
// be wrapped in {} or []. It does not parse the document and accepts many
// invalid ones. Whitespace is the Unicode White_Space set; control bytes
// such as NUL or U+001F are not trimmed.
func LooksLikeJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return false
	}

	first, last := trimmed[0], trimmed[len(trimmed)-1]

	return (first == '{' && last == '}') || (first == '[' && last == ']')
}
