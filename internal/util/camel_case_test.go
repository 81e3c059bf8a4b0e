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

package util_test

import (
	"github.com/botobag/graphtype/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LowerCamelCase", func() {
	It("converts string to lowerCamelCase", func() {
		testcases := map[string]string{
			"":              "",
			"a":             "a",
			"A":             "a",
			"foo":           "foo",
			"Foo":           "foo",
			"UserProfile":   "userProfile",
			"userProfile":   "userProfile",
			"user_profile":  "userProfile",
			"_user_profile": "userProfile",
			"ID":            "id",
			"URLPath":       "urlPath",
			"HTTP2Server":   "http2Server",
			"OAuth2token":   "oAuth2token",
			"foo___bar":     "fooBar",
			"foo_bar_":      "fooBar",
			"___":           "",
		}

		for s, expected := range testcases {
			Expect(util.LowerCamelCase(s)).Should(Equal(expected), "%s", s)
		}
	})

	It("handles non-ASCII letters", func() {
		Expect(util.LowerCamelCase("ÉtatCivil")).Should(Equal("étatCivil"))
		Expect(util.LowerCamelCase("état_civil")).Should(Equal("étatCivil"))
		Expect(util.LowerCamelCase("Ω")).Should(Equal("ω"))
		Expect(util.LowerCamelCase("ΔΣValue")).Should(Equal("δσValue"))
	})

	It("does not start a new word after a digit", func() {
		Expect(util.LowerCamelCase("Item2go")).Should(Equal("item2go"))
		Expect(util.LowerCamelCase("item_2go")).Should(Equal("item2go"))
	})
})
