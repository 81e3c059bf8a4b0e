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
	"sync"
)

// Registry maps declared struct types to their TypeDefinition. It is safe for concurrent use.
type Registry struct {
	mutex sync.RWMutex
	defs  map[reflect.Type]*TypeDefinition

	// Definitions in the order of registration
	order []*TypeDefinition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: map[reflect.Type]*TypeDefinition{},
	}
}

// Lookup returns the TypeDefinition of t. Pointer types are looked up by their element type.
func (r *Registry) Lookup(t reflect.Type) (*TypeDefinition, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	r.mutex.RLock()
	def, ok := r.defs[t]
	r.mutex.RUnlock()
	return def, ok
}

// Definitions returns all registered definitions in the order of registration.
func (r *Registry) Definitions() []*TypeDefinition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	defs := make([]*TypeDefinition, len(r.order))
	copy(defs, r.order)
	return defs
}

// ByName returns the registered definitions named name in the order of registration. Instantiations
// of one generic type derive the same name unless a name is configured explicitly.
func (r *Registry) ByName(name string) []*TypeDefinition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var defs []*TypeDefinition
	for _, def := range r.order {
		if def.name == name {
			defs = append(defs, def)
		}
	}
	return defs
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.order)
}

// register adds def for its origin type. It fails if the type already has a definition.
func (r *Registry) register(def *TypeDefinition) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.defs[def.origin]; ok {
		return &DuplicateDeclarationError{
			Type:     def.origin,
			Existing: existing,
		}
	}

	r.defs[def.origin] = def
	r.order = append(r.order, def)
	return nil
}

// Of returns the TypeDefinition registered in the default registry for the type of v. v may be a
// value of the declared type, a pointer to one or a reflect.Type.
func Of(v interface{}) (*TypeDefinition, bool) {
	if t, ok := v.(reflect.Type); ok {
		return OfType(t)
	}
	return OfType(reflect.TypeOf(v))
}

// OfType returns the TypeDefinition registered in the default registry for t.
func OfType(t reflect.Type) (*TypeDefinition, bool) {
	return DefaultRegistry.Lookup(t)
}
