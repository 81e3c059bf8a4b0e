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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/botobag/graphtype/internal/util"
)

var (
	// ErrNilType is returned when declaring a nil type.
	ErrNilType = errors.New("typedef: cannot declare a nil type")

	// ErrEmptyName is returned when no name is given and none can be derived from the type, which
	// happens for anonymous struct types.
	ErrEmptyName = errors.New("typedef: type name must not be empty")

	// ErrInputInterface is returned when a declaration asks for both an input and an interface type.
	ErrInputInterface = errors.New("typedef: a type cannot be both an input and an interface")
)

// MissingFieldAnnotationError is returned when a field declared with the empty interface type has
// no type annotation in its tag. Declaration of the type is aborted.
type MissingFieldAnnotationError struct {
	// The declaring type
	DeclaringType reflect.Type

	// Name of the Go struct field that lacks the annotation
	FieldName string
}

var _ error = (*MissingFieldAnnotationError)(nil)

// Error implements Go's error interface.
func (e *MissingFieldAnnotationError) Error() string {
	return fmt.Sprintf(`Unable to determine the type of field "%s" in %s. Either declare it with a `+
		`concrete type, or provide a type in its tag like `+"`"+`graphql:",type=..."`+"`"+`.`,
		e.FieldName, typeString(e.DeclaringType))
}

// NotStructError is returned when the declared type is not a struct.
type NotStructError struct {
	Type reflect.Type
}

var _ error = (*NotStructError)(nil)

// Error implements Go's error interface.
func (e *NotStructError) Error() string {
	return fmt.Sprintf("typedef: cannot declare %s; only struct types can be declared", e.Type)
}

// DuplicateDeclarationError is returned when a type that already has a TypeDefinition in the
// registry is declared again.
type DuplicateDeclarationError struct {
	Type     reflect.Type
	Existing *TypeDefinition
}

var _ error = (*DuplicateDeclarationError)(nil)

// Error implements Go's error interface.
func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf(`typedef: %s was already declared as "%s"`, typeString(e.Type), e.Existing.Name())
}

// TagOptionError reports a malformed graphql tag on a struct field.
type TagOptionError struct {
	DeclaringType reflect.Type
	FieldName     string
	Option        string
	Suggestions   []string
}

var _ error = (*TagOptionError)(nil)

// Error implements Go's error interface.
func (e *TagOptionError) Error() string {
	var message strings.Builder
	fmt.Fprintf(&message, `Unknown option "%s" in the graphql tag of field "%s" in %s.`,
		e.Option, e.FieldName, typeString(e.DeclaringType))
	if len(e.Suggestions) > 0 {
		message.WriteString(" Did you mean ")
		message.WriteString(util.OrList(e.Suggestions, 5, true))
		message.WriteString("?")
	}
	return message.String()
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if len(t.Name()) > 0 {
		return t.Name()
	}
	return t.String()
}
