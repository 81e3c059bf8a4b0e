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

	"github.com/botobag/graphtype/record"
)

// Synthesizer gives value semantics to a declaring type. The default is record.New.
type Synthesizer interface {
	Synthesize(t reflect.Type) (*record.Type, error)
}

// SynthesizerFunc is an adapter to allow the use of ordinary functions as Synthesizer.
type SynthesizerFunc func(t reflect.Type) (*record.Type, error)

// Synthesize calls f(t).
func (f SynthesizerFunc) Synthesize(t reflect.Type) (*record.Type, error) {
	return f(t)
}

// SynthesizerFunc implements Synthesizer.
var _ Synthesizer = (SynthesizerFunc)(nil)

// Record is a declared type: the record synthesized from the struct together with its
// TypeDefinition.
//
// The methods of record.Type are promoted and speak about the Go struct: Name is the Go type name
// and Fields returns the Go members in initializer order as []record.Field. The GraphQL name and
// fields are TypeDefinition().Name() and TypeDefinition().Fields().
type Record struct {
	*record.Type
	def *TypeDefinition
}

// TypeDefinition returns the definition of the declared type.
func (r *Record) TypeDefinition() *TypeDefinition {
	return r.def
}

// New constructs a value of the declared type from positional arguments and returns a pointer to
// it. See record.Type.Construct.
func (r *Record) New(args ...interface{}) (interface{}, error) {
	v, err := r.Construct(args...)
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr.Interface(), nil
}

// wrapRecord checks field annotations of t and then synthesizes its record. Errors from the
// synthesizer are returned as is.
func wrapRecord(t reflect.Type, synthesizer Synthesizer) (*record.Type, error) {
	if err := checkFieldAnnotations(t); err != nil {
		return nil, err
	}
	return synthesizer.Synthesize(t)
}
