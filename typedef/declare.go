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
)

// Decorator declares a type with a preset configuration.
type Decorator func(t reflect.Type) (*Record, error)

// Must is like calling d but panics on failure.
func (d Decorator) Must(t reflect.Type) *Record {
	r, err := d(t)
	if err != nil {
		panic(err)
	}
	return r
}

// For returns the struct type for T. It is a shorthand for reflect.TypeOf((*T)(nil)).Elem().
func For[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeWith returns a Decorator that declares types with the given configuration.
func (b *Builder) TypeWith(config Config) Decorator {
	return func(t reflect.Type) (*Record, error) {
		return b.Declare(t, config)
	}
}

// InputWith is like TypeWith but always declares input types.
func (b *Builder) InputWith(config Config) Decorator {
	config.IsInput = true
	return b.TypeWith(config)
}

// InterfaceWith is like TypeWith but always declares interface types.
func (b *Builder) InterfaceWith(config Config) Decorator {
	config.IsInterface = true
	return b.TypeWith(config)
}

// Type declares an object type with default configuration.
func (b *Builder) Type(t reflect.Type) (*Record, error) {
	return b.TypeWith(Config{})(t)
}

// Input declares an input object type with default configuration.
func (b *Builder) Input(t reflect.Type) (*Record, error) {
	return b.InputWith(Config{})(t)
}

// Interface declares an interface type with default configuration.
func (b *Builder) Interface(t reflect.Type) (*Record, error) {
	return b.InterfaceWith(Config{})(t)
}

// TypeWith calls DefaultBuilder.TypeWith.
func TypeWith(config Config) Decorator {
	return DefaultBuilder.TypeWith(config)
}

// InputWith calls DefaultBuilder.InputWith.
func InputWith(config Config) Decorator {
	return DefaultBuilder.InputWith(config)
}

// InterfaceWith calls DefaultBuilder.InterfaceWith.
func InterfaceWith(config Config) Decorator {
	return DefaultBuilder.InterfaceWith(config)
}

// Type calls DefaultBuilder.Type.
func Type(t reflect.Type) (*Record, error) {
	return DefaultBuilder.Type(t)
}

// Input calls DefaultBuilder.Input.
func Input(t reflect.Type) (*Record, error) {
	return DefaultBuilder.Input(t)
}

// Interface calls DefaultBuilder.Interface.
func Interface(t reflect.Type) (*Record, error) {
	return DefaultBuilder.Interface(t)
}

// MustType is a convenience function equivalent to Type but panics on failure instead of returning
// an error.
func MustType(t reflect.Type) *Record {
	return TypeWith(Config{}).Must(t)
}

// MustInput is like Input but panics on failure.
func MustInput(t reflect.Type) *Record {
	return InputWith(Config{}).Must(t)
}

// MustInterface is like Interface but panics on failure.
func MustInterface(t reflect.Type) *Record {
	return InterfaceWith(Config{}).Must(t)
}
