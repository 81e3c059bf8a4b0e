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

package testutil

import (
	"fmt"

	"github.com/botobag/graphtype/typedef"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/onsi/gomega/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type definitionJSONMatcher struct {
	expected string
	diff     string
}

// MatchDefinitionJSON returns a Gomega matcher that succeeds when the JSON document of a
// *typedef.TypeDefinition is equivalent to expected. Key order and whitespace are ignored.
//
//	Expect(def).Should(MatchDefinitionJSON(`{"name": "article", ...}`))
func MatchDefinitionJSON(expected string) types.GomegaMatcher {
	return &definitionJSONMatcher{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *definitionJSONMatcher) Match(actual interface{}) (success bool, err error) {
	def, ok := actual.(*typedef.TypeDefinition)
	if !ok || def == nil {
		return false, fmt.Errorf("MatchDefinitionJSON matcher expects a non-nil *typedef.TypeDefinition, got %T", actual)
	}

	encoded, err := def.MarshalJSON()
	if err != nil {
		return false, fmt.Errorf("MatchDefinitionJSON matcher cannot encode %q: %s", def.Name(), err)
	}

	var decodedActual, decodedExpected interface{}
	if err := json.Unmarshal(encoded, &decodedActual); err != nil {
		return false, fmt.Errorf("MatchDefinitionJSON matcher cannot decode the document of %q: %s", def.Name(), err)
	}
	if err := json.Unmarshal([]byte(matcher.expected), &decodedExpected); err != nil {
		return false, fmt.Errorf("MatchDefinitionJSON matcher cannot decode expected JSON: %s", err)
	}

	matcher.diff = cmp.Diff(decodedExpected, decodedActual)
	return len(matcher.diff) == 0, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *definitionJSONMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected definition %q to serialize as\n\t%s\ndiff (-expected +actual):\n%s",
		actual.(*typedef.TypeDefinition).Name(), matcher.expected, matcher.diff)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *definitionJSONMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected definition %q not to serialize as\n\t%s",
		actual.(*typedef.TypeDefinition).Name(), matcher.expected)
}
