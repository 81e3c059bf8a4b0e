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

	"github.com/jensneuse/abstractlogger"
)

// Config provides the options of a declaration. The zero value declares an output object type named
// after the struct.
type Config struct {
	// Name of the type in GraphQL; derived from the Go type name if empty
	Name string

	// IsInput declares an input object type.
	IsInput bool

	// IsInterface declares an interface type.
	IsInterface bool

	// Description of the type
	Description string

	// Federation parameters; an empty FederationTypeParams is used if nil.
	Federation *FederationTypeParams
}

// Builder declares types. Each collaborator can be replaced; a nil one falls back to the default.
type Builder struct {
	// Registry receives the definitions of declared types and is consulted for interfaces of
	// embedded structs.
	Registry *Registry

	// FieldExtractor builds field descriptors; defaults to ExtractFields.
	FieldExtractor FieldExtractor

	// Synthesizer gives value semantics to declared types; defaults to record.New.
	Synthesizer Synthesizer

	// GenericDetector decides whether a type is generic; defaults to IsGeneric.
	GenericDetector func(t reflect.Type) bool

	// NameConverter derives GraphQL type names from Go identifiers; defaults to lower camel case.
	NameConverter func(identifier string) string

	// Logger receives a debug entry per declared type and an error entry per failed declaration.
	Logger abstractlogger.Logger
}

// NewBuilder creates a Builder with its own registry and default collaborators.
func NewBuilder() *Builder {
	return newBuilder(NewRegistry())
}

func newBuilder(registry *Registry) *Builder {
	return &Builder{
		Registry:        registry,
		FieldExtractor:  FieldExtractorFunc(ExtractFields),
		Synthesizer:     SynthesizerFunc(record.New),
		GenericDetector: IsGeneric,
		NameConverter:   util.LowerCamelCase,
		Logger:          abstractlogger.NoopLogger,
	}
}

var (
	// DefaultRegistry holds the definitions of types declared with the package-level functions.
	DefaultRegistry = NewRegistry()

	// DefaultBuilder is used by the package-level declaration functions.
	DefaultBuilder = newBuilder(DefaultRegistry)
)

func (b *Builder) logger() abstractlogger.Logger {
	if b.Logger == nil {
		return abstractlogger.NoopLogger
	}
	return b.Logger
}

// Declare builds the TypeDefinition of the struct type t and registers it. A pointer type is
// declared by its element type. Nothing is registered on failure.
func (b *Builder) Declare(t reflect.Type, config Config) (*Record, error) {
	r, err := b.processType(t, config)
	if err != nil {
		b.logger().Error("typedef.Builder.Declare",
			abstractlogger.String("type", typeString(t)),
			abstractlogger.Error(err),
		)
		return nil, err
	}

	def := r.TypeDefinition()
	b.logger().Debug("typedef.Builder.Declare",
		abstractlogger.String("name", def.Name()),
		abstractlogger.String("type", def.Origin().String()),
		abstractlogger.Int("fields", len(def.fields)),
		abstractlogger.Int("interfaces", len(def.interfaces)),
	)
	return r, nil
}

func (b *Builder) processType(t reflect.Type, config Config) (*Record, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, &NotStructError{Type: t}
	}
	if config.IsInput && config.IsInterface {
		return nil, ErrInputInterface
	}

	registry := b.registry()
	if existing, ok := registry.Lookup(t); ok {
		return nil, &DuplicateDeclarationError{
			Type:     t,
			Existing: existing,
		}
	}

	name := config.Name
	if len(name) == 0 {
		name = b.nameConverter()(typeIdentifier(t))
	}
	if len(name) == 0 {
		return nil, ErrEmptyName
	}

	wrapped, err := wrapRecord(t, b.synthesizer())
	if err != nil {
		return nil, err
	}

	interfaces := getInterfaces(wrapped.GoType(), registry)

	extracted, err := b.fieldExtractor().ExtractFields(t)
	if err != nil {
		return nil, err
	}
	fields := make([]*Field, len(extracted))
	for i, field := range extracted {
		fields[i] = field.clone()
	}

	federation := &FederationTypeParams{}
	if config.Federation != nil {
		federation = config.Federation.clone()
	}

	def := &TypeDefinition{
		name:        name,
		isInput:     config.IsInput,
		isInterface: config.IsInterface,
		isGeneric:   b.genericDetector()(t),
		interfaces:  interfaces,
		description: config.Description,
		federation:  federation,
		origin:      t,
		fields:      fields,
	}

	if err := registry.register(def); err != nil {
		return nil, err
	}

	if others := registry.ByName(name); len(others) > 1 {
		b.logger().Warn("typedef.Builder.Declare: name is shared with another type",
			abstractlogger.String("name", name),
			abstractlogger.String("type", t.String()),
			abstractlogger.String("other", others[0].Origin().String()),
		)
	}

	return &Record{
		Type: wrapped,
		def:  def,
	}, nil
}

func (b *Builder) registry() *Registry {
	if b.Registry == nil {
		return DefaultRegistry
	}
	return b.Registry
}

func (b *Builder) fieldExtractor() FieldExtractor {
	if b.FieldExtractor == nil {
		return FieldExtractorFunc(ExtractFields)
	}
	return b.FieldExtractor
}

func (b *Builder) synthesizer() Synthesizer {
	if b.Synthesizer == nil {
		return SynthesizerFunc(record.New)
	}
	return b.Synthesizer
}

func (b *Builder) genericDetector() func(reflect.Type) bool {
	if b.GenericDetector == nil {
		return IsGeneric
	}
	return b.GenericDetector
}

func (b *Builder) nameConverter() func(string) string {
	if b.NameConverter == nil {
		return util.LowerCamelCase
	}
	return b.NameConverter
}
