// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"unicode/utf8"
)

// NeedsQuotes reports whether s is written wrapped in single quotes. The
// empty string always needs quotes so it can't be mistaken for a missing value.
//
// Embedded single quotes are not escaped.
func NeedsQuotes(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if s == "" {
		first, last = ' ', ' '
	}

	switch first {
	case '{', '[', ' ', '&', '*', '#', ',', '>', '!', '%', '@':
		return true
	}
	switch last {
	case '}', ']', ' ', ':':
		return true
	}
	return isDigitsOrColons(s)
}

func isDigitsOrColons(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != ':' {
			return false
		}
	}
	return true
}
