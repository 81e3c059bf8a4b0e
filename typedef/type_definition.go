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

// FederationTypeParams carries Apollo Federation hints for a type. The builder passes them through
// untouched.
type FederationTypeParams struct {
	// Field sets for @key directives; one directive per entry
	Keys []string

	// Extend marks the type as an extension of a type owned by another subgraph.
	Extend bool

	// Shareable marks the type as resolvable by more than one subgraph.
	Shareable bool
}

// clone returns a deep copy of params.
func (params *FederationTypeParams) clone() *FederationTypeParams {
	c := *params
	if params.Keys != nil {
		c.Keys = append([]string(nil), params.Keys...)
	}
	return &c
}

// Field describes a field of a declared type.
type Field struct {
	// Name of the field in GraphQL
	Name string

	// Name of the Go struct field
	GoName string

	// Index sequence for reflect.Value.FieldByIndex on the declaring type
	Index []int

	// Go type of the field
	Type reflect.Type

	// Explicit GraphQL type name given in the tag; empty when the type is derived from Type.
	TypeName string

	// Description of the field
	Description string

	// Raw default value from the default tag; valid when HasDefault is true.
	DefaultValue string
	HasDefault   bool

	// Non-empty if the field is deprecated
	DeprecationReason string
}

// clone returns a copy of f that shares no memory with it.
func (f *Field) clone() *Field {
	c := *f
	c.Index = append([]int(nil), f.Index...)
	return &c
}

// IsDeprecated returns true if the field is deprecated.
func (f *Field) IsDeprecated() bool {
	return len(f.DeprecationReason) > 0
}

// TypeDefinition describes a declared type: its GraphQL name and role, the fields it exposes and
// the interfaces it implements. It is created once when the type is declared and is never modified
// afterward.
type TypeDefinition struct {
	name        string
	isInput     bool
	isInterface bool
	isGeneric   bool
	interfaces  []*TypeDefinition
	description string
	federation  *FederationTypeParams
	origin      reflect.Type
	fields      []*Field
}

// Name returns the GraphQL name of the type.
func (def *TypeDefinition) Name() string {
	return def.name
}

// IsInput returns true for input object types.
func (def *TypeDefinition) IsInput() bool {
	return def.isInput
}

// IsInterface returns true for interface types.
func (def *TypeDefinition) IsInterface() bool {
	return def.isInterface
}

// IsGeneric returns true if the declaring type is an instantiation of a generic Go type.
func (def *TypeDefinition) IsGeneric() bool {
	return def.isGeneric
}

// Interfaces returns the interfaces implemented by the type in the order of the embedding fields.
func (def *TypeDefinition) Interfaces() []*TypeDefinition {
	interfaces := make([]*TypeDefinition, len(def.interfaces))
	copy(interfaces, def.interfaces)
	return interfaces
}

// Description returns the description of the type.
func (def *TypeDefinition) Description() string {
	return def.description
}

// Federation returns a copy of the federation parameters. It is never nil.
func (def *TypeDefinition) Federation() *FederationTypeParams {
	return def.federation.clone()
}

// Origin returns the declaring struct type.
func (def *TypeDefinition) Origin() reflect.Type {
	return def.origin
}

// Fields returns copies of the fields in declaration order. Changing them does not affect the
// definition.
func (def *TypeDefinition) Fields() []*Field {
	fields := make([]*Field, len(def.fields))
	for i, field := range def.fields {
		fields[i] = field.clone()
	}
	return fields
}

// Field returns a copy of the field with the given GraphQL name or nil if there's no such field.
func (def *TypeDefinition) Field(name string) *Field {
	for _, field := range def.fields {
		if field.Name == name {
			return field.clone()
		}
	}
	return nil
}

// Implements returns true if iface is one of the interfaces of the type.
func (def *TypeDefinition) Implements(iface *TypeDefinition) bool {
	for _, i := range def.interfaces {
		if i == iface {
			return true
		}
	}
	return false
}
