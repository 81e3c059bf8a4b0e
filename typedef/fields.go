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

	"github.com/botobag/graphtype/internal/util"
	"github.com/botobag/graphtype/record"
)

// FieldExtractor builds the field descriptors of a declaring type.
type FieldExtractor interface {
	// ExtractFields returns the fields of t in declaration order.
	ExtractFields(t reflect.Type) ([]*Field, error)
}

// FieldExtractorFunc is an adapter to allow the use of ordinary functions as FieldExtractor.
type FieldExtractorFunc func(t reflect.Type) ([]*Field, error)

// ExtractFields calls f(t).
func (f FieldExtractorFunc) ExtractFields(t reflect.Type) ([]*Field, error) {
	return f(t)
}

// FieldExtractorFunc implements FieldExtractor.
var _ FieldExtractor = (FieldExtractorFunc)(nil)

// ExtractFields is the default FieldExtractor. It returns a Field for every exported field of t,
// including fields promoted from embedded structs, in declaration order. Fields tagged with
// `graphql:"-"` are left out. The name of a field is taken from its graphql tag or otherwise
// derived from the Go name in lower camel case. A field of the empty interface type must be
// annotated with a type tag option; ExtractFields fails with *MissingFieldAnnotationError otherwise.
func ExtractFields(t reflect.Type) ([]*Field, error) {
	visible, err := record.VisibleFields(t)
	if err != nil {
		return nil, err
	}

	fields := make([]*Field, 0, len(visible))
	for _, sf := range visible {
		tag, err := parseFieldTag(t, sf)
		if err != nil {
			return nil, err
		}
		if tag.skip {
			continue
		}

		// Own fields were checked before wrapping; this catches placeholders promoted from embedded
		// structs that were never declared themselves.
		if isEmptyInterface(sf.Type) && len(tag.typeName) == 0 {
			return nil, &MissingFieldAnnotationError{
				DeclaringType: declaringStruct(t, sf.Index),
				FieldName:     sf.Name,
			}
		}

		name := tag.name
		if len(name) == 0 {
			name = util.LowerCamelCase(sf.Name)
		}

		field := &Field{
			Name:              name,
			GoName:            sf.Name,
			Index:             sf.Index,
			Type:              sf.Type,
			TypeName:          tag.typeName,
			Description:       sf.Tag.Get(DescriptionTagName),
			DeprecationReason: tag.deprecationReason,
		}
		field.DefaultValue, field.HasDefault = sf.Tag.Lookup(DefaultTagName)

		fields = append(fields, field)
	}

	return fields, nil
}

// declaringStruct returns the struct type that declares the field at index in t.
func declaringStruct(t reflect.Type, index []int) reflect.Type {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
	}
	return t
}
