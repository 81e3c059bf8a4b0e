/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package util contains string helpers shared by the type-definition builder.
package util

import (
	"strings"
	"unicode"
)

// LowerCamelCase converts a Go identifier or a snake_case name into lower camel case as used by
// GraphQL field and type names. For example, it returns "userProfile" for both "UserProfile" and
// "user_profile". A leading run of capitals is treated as an acronym: "ID" becomes "id" and
// "URLPath" becomes "urlPath". Letters are handled as runes, so "ÉtatCivil" becomes "étatCivil".
// Case is only changed at word starts; "Item2go" becomes "item2go".
func LowerCamelCase(s string) string {
	var (
		buf   strings.Builder
		first = true
	)
	buf.Grow(len(s))

	for _, word := range strings.Split(s, "_") {
		if len(word) == 0 {
			continue
		}

		runes := []rune(word)
		if first {
			lowerLeadingAcronym(runes)
			first = false
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		buf.WriteString(string(runes))
	}

	return buf.String()
}

// lowerLeadingAcronym lowers the leading run of upper-case runes in place. When the run is followed
// by a lower-case rune, the last capital starts the next word and is kept.
func lowerLeadingAcronym(runes []rune) {
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
}
