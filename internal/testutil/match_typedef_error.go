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
	"reflect"

	"github.com/botobag/graphtype/typedef"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// FieldNameIs matches the Go field name reported in the error.
func FieldNameIs(name string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["FieldName"] = gomega.Equal(name)
	}
}

// DeclaringTypeIs matches the declaring type reported in the error.
func DeclaringTypeIs(t reflect.Type) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["DeclaringType"] = gomega.Equal(t)
	}
}

// SuggestionsEqual matches the suggestions in a *typedef.TagOptionError.
func SuggestionsEqual(suggestions ...string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Suggestions"] = gomega.Equal(suggestions)
	}
}

func matchError(errType interface{}, matchers []ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gomega.And(
		gomega.BeAssignableToTypeOf(errType),
		gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields)),
	)
}

// MatchMissingFieldAnnotationError matches a *typedef.MissingFieldAnnotationError with given fields.
//
//	Expect(err).Should(MatchMissingFieldAnnotationError(
//		FieldNameIs("Extra"),
//		DeclaringTypeIs(typedef.For[User]()),
//	))
func MatchMissingFieldAnnotationError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	return matchError(&typedef.MissingFieldAnnotationError{}, matchers)
}

// MatchTagOptionError matches a *typedef.TagOptionError with given fields.
func MatchTagOptionError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	return matchError(&typedef.TagOptionError{}, matchers)
}
