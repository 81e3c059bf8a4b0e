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

package typedef

import (
	"reflect"
	"strings"

	"github.com/botobag/graphtype/internal/util"
)

// Struct tag keys read from the fields of a declaration
const (
	// TagName is the key of the tag that carries the GraphQL name and options of a field:
	//
	//	Field T `graphql:"name,type=TypeName,deprecated=reason"`
	//
	// Name may be empty to keep the derived name. A tag of "-" hides the field.
	TagName = "graphql"

	// DescriptionTagName is the key of the tag that carries a field description.
	DescriptionTagName = "description"

	// DefaultTagName is the key of the tag that carries a field default value.
	DefaultTagName = "default"
)

// DefaultDeprecationReason is used for a field tagged with "deprecated" without a reason.
const DefaultDeprecationReason = "No longer supported"

// Options recognized in the graphql tag
var fieldTagOptions = []string{"type", "deprecated"}

type fieldTag struct {
	name              string
	skip              bool
	typeName          string
	deprecationReason string
}

func parseFieldTag(declaringType reflect.Type, sf reflect.StructField) (fieldTag, error) {
	var result fieldTag

	tag, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return result, nil
	}
	if tag == "-" {
		result.skip = true
		return result, nil
	}

	parts := strings.Split(tag, ",")
	result.name = strings.TrimSpace(parts[0])
	for _, option := range parts[1:] {
		option = strings.TrimSpace(option)
		if len(option) == 0 {
			continue
		}

		key, value, hasValue := strings.Cut(option, "=")
		switch key {
		case "type":
			result.typeName = value

		case "deprecated":
			if hasValue && len(value) > 0 {
				result.deprecationReason = value
			} else {
				result.deprecationReason = DefaultDeprecationReason
			}

		default:
			return result, &TagOptionError{
				DeclaringType: declaringType,
				FieldName:     sf.Name,
				Option:        key,
				Suggestions:   util.SuggestionList(key, fieldTagOptions),
			}
		}
	}

	return result, nil
}
