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

package record

import (
	"fmt"
	"reflect"
)

// FieldOrderError is returned by New when a field without default follows a field with default.
// Positional initialization could not tell them apart.
type FieldOrderError struct {
	RecordType       reflect.Type
	FieldName        string
	DefaultFieldName string
}

var _ error = (*FieldOrderError)(nil)

// Error implements Go's error interface.
func (e *FieldOrderError) Error() string {
	return fmt.Sprintf(`record %s: non-default field "%s" follows default field "%s"`,
		e.RecordType.Name(), e.FieldName, e.DefaultFieldName)
}

// DuplicateFieldError is returned by New when two fields promoted from embedded structs at the same
// depth have the same name.
type DuplicateFieldError struct {
	RecordType reflect.Type
	FieldName  string
}

var _ error = (*DuplicateFieldError)(nil)

// Error implements Go's error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf(`record %s: ambiguous field "%s"`, e.RecordType.Name(), e.FieldName)
}

// DefaultValueError reports a default tag that cannot be decoded into its field.
type DefaultValueError struct {
	RecordType reflect.Type
	FieldName  string
	Err        error
}

var _ error = (*DefaultValueError)(nil)

// Error implements Go's error interface.
func (e *DefaultValueError) Error() string {
	return fmt.Sprintf(`record %s: invalid default for field "%s": %s`, e.RecordType.Name(), e.FieldName, e.Err)
}

// Unwrap returns the decoding error.
func (e *DefaultValueError) Unwrap() error {
	return e.Err
}

// ArityError is returned by Construct when the number of arguments is out of range.
type ArityError struct {
	RecordType reflect.Type
	Min        int
	Max        int
	Given      int
}

var _ error = (*ArityError)(nil)

// Error implements Go's error interface.
func (e *ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("record %s: takes %d arguments but %d were given", e.RecordType.Name(), e.Min, e.Given)
	}
	return fmt.Sprintf("record %s: takes from %d to %d arguments but %d were given",
		e.RecordType.Name(), e.Min, e.Max, e.Given)
}

// ArgumentTypeError is returned by Construct when an argument cannot be assigned to its field.
type ArgumentTypeError struct {
	RecordType reflect.Type
	FieldName  string
	Expected   reflect.Type

	// Given is nil for a nil argument.
	Given reflect.Type
}

var _ error = (*ArgumentTypeError)(nil)

// Error implements Go's error interface.
func (e *ArgumentTypeError) Error() string {
	given := "nil"
	if e.Given != nil {
		given = e.Given.String()
	}
	return fmt.Sprintf(`record %s: cannot use %s as %s for field "%s"`,
		e.RecordType.Name(), given, e.Expected, e.FieldName)
}
