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

// Package record synthesizes value semantics for plain Go struct declarations. Given a struct type,
// it derives a positional initializer (honoring per-field defaults), field-wise equality and a
// readable representation from the struct's exported fields in declaration order.
//
// Fields promoted from embedded structs are listed at the position of the embedding field, the same
// way Go's reflect.VisibleFields orders them. Defaults are given by a `default:"..."` struct tag
// whose value is decoded as a YAML literal into the field's type:
//
//	type Point struct {
//		X int
//		Y int `default:"0"`
//		Tags []string `default:"[a, b]"`
//	}
package record

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// DefaultTag is the struct tag key that supplies a field's default value.
const DefaultTag = "default"

// Field describes a member of a record in initializer order.
type Field struct {
	// Name of the Go struct field
	Name string

	// Index sequence for reflect.Value.FieldByIndex
	Index []int

	// Type of the field
	Type reflect.Type

	// HasDefault is true if the field carries a default tag.
	HasDefault bool

	// DefaultLiteral is the raw value of the default tag.
	DefaultLiteral string
}

// Type is a synthesized record type. It is immutable and safe for concurrent use.
type Type struct {
	goType reflect.Type
	fields []Field
}

// New synthesizes a record from the given struct type. It fails with *FieldOrderError when a field
// without default follows one with a default, with *DuplicateFieldError when two promoted fields
// share a name at the same depth and with *DefaultValueError when a default literal cannot be
// decoded into its field.
func New(t reflect.Type) (*Type, error) {
	visible, err := VisibleFields(t)
	if err != nil {
		return nil, err
	}

	var (
		fields      []Field
		lastDefault string
	)
	for _, sf := range visible {
		field := Field{
			Name:  sf.Name,
			Index: sf.Index,
			Type:  sf.Type,
		}
		field.DefaultLiteral, field.HasDefault = sf.Tag.Lookup(DefaultTag)

		if field.HasDefault {
			if _, err := decodeDefault(&field); err != nil {
				return nil, &DefaultValueError{RecordType: t, FieldName: sf.Name, Err: err}
			}
			lastDefault = sf.Name
		} else if len(lastDefault) > 0 {
			return nil, &FieldOrderError{
				RecordType:       t,
				FieldName:        sf.Name,
				DefaultFieldName: lastDefault,
			}
		}

		fields = append(fields, field)
	}

	return &Type{
		goType: t,
		fields: fields,
	}, nil
}

// VisibleFields lists the exported fields of the struct type t that a positional initializer
// assigns, in declaration order. Exported embedded structs are expanded in place and a field
// shadows promoted fields of the same name at greater depth. Two fields of the same name at the
// same depth are reported with *DuplicateFieldError.
func VisibleFields(t reflect.Type) ([]reflect.StructField, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record: %s is not a struct type", t)
	}

	candidates := collectFields(t, nil, nil)

	// For each name, the shallowest candidate wins; two at that depth are ambiguous.
	shallowest := make(map[string]int, len(candidates))
	for _, sf := range candidates {
		if depth, ok := shallowest[sf.Name]; !ok || len(sf.Index) < depth {
			shallowest[sf.Name] = len(sf.Index)
		}
	}

	var (
		fields = make([]reflect.StructField, 0, len(candidates))
		seen   = make(map[string]bool, len(candidates))
	)
	for _, sf := range candidates {
		if len(sf.Index) != shallowest[sf.Name] {
			continue
		}
		if seen[sf.Name] {
			return nil, &DuplicateFieldError{RecordType: t, FieldName: sf.Name}
		}
		seen[sf.Name] = true
		fields = append(fields, sf)
	}
	return fields, nil
}

// collectFields lists the exported fields of t in declaration order, expanding exported embedded
// structs in place. Index of each returned field is the full path from the outermost struct.
// Embedded types already on the path are not expanded again.
func collectFields(t reflect.Type, prefix []int, path []reflect.Type) []reflect.StructField {
	path = append(path, t)

	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		index := make([]int, len(prefix)+1)
		copy(index, prefix)
		index[len(prefix)] = i
		sf.Index = index

		if sf.Anonymous {
			embedded := sf.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if !onPath(path, embedded) {
					fields = append(fields, collectFields(embedded, index, path)...)
				}
				continue
			}
		}

		fields = append(fields, sf)
	}
	return fields
}

func onPath(path []reflect.Type, t reflect.Type) bool {
	for _, p := range path {
		if p == t {
			return true
		}
	}
	return false
}

// decodeDefault decodes a fresh copy of the field's default value.
func decodeDefault(field *Field) (reflect.Value, error) {
	ptr := reflect.New(field.Type)
	if err := yaml.Unmarshal([]byte(field.DefaultLiteral), ptr.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return ptr.Elem(), nil
}

// GoType returns the struct type the record was synthesized from.
func (rt *Type) GoType() reflect.Type {
	return rt.goType
}

// Name returns the name of the struct type.
func (rt *Type) Name() string {
	return rt.goType.Name()
}

// Fields returns the record fields in initializer order.
func (rt *Type) Fields() []Field {
	fields := make([]Field, len(rt.fields))
	copy(fields, rt.fields)
	return fields
}

// NumRequired returns the number of leading fields that have no default.
func (rt *Type) NumRequired() int {
	for i, field := range rt.fields {
		if field.HasDefault {
			return i
		}
	}
	return len(rt.fields)
}

// Construct creates a new record value from positional arguments. Trailing fields that are not
// given take their default values. The returned value has the record's struct type.
func (rt *Type) Construct(args ...interface{}) (reflect.Value, error) {
	if numRequired := rt.NumRequired(); len(args) < numRequired || len(args) > len(rt.fields) {
		return reflect.Value{}, &ArityError{
			RecordType: rt.goType,
			Min:        numRequired,
			Max:        len(rt.fields),
			Given:      len(args),
		}
	}

	v := reflect.New(rt.goType).Elem()
	for i := range rt.fields {
		field := &rt.fields[i]

		var value reflect.Value
		if i < len(args) {
			var err error
			value, err = argumentValue(rt.goType, field, args[i])
			if err != nil {
				return reflect.Value{}, err
			}
		} else {
			var err error
			value, err = decodeDefault(field)
			if err != nil {
				return reflect.Value{}, &DefaultValueError{RecordType: rt.goType, FieldName: field.Name, Err: err}
			}
		}

		fieldByIndexAlloc(v, field.Index).Set(value)
	}

	return v, nil
}

func argumentValue(t reflect.Type, field *Field, arg interface{}) (reflect.Value, error) {
	if arg == nil {
		switch field.Type.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(field.Type), nil
		}
		return reflect.Value{}, &ArgumentTypeError{RecordType: t, FieldName: field.Name, Expected: field.Type}
	}

	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(field.Type) {
		return value, nil
	}
	if isNumeric(value.Kind()) && isNumeric(field.Type.Kind()) && value.Type().ConvertibleTo(field.Type) {
		return value.Convert(field.Type), nil
	}
	return reflect.Value{}, &ArgumentTypeError{
		RecordType: t,
		FieldName:  field.Name,
		Expected:   field.Type,
		Given:      value.Type(),
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// fieldByIndexAlloc is like reflect.Value.FieldByIndex but allocates nil embedded pointers on the
// way.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

// value unwraps v into the record's struct value. ok is false if v is neither the record type nor
// a non-nil pointer to it.
func (rt *Type) value(v interface{}) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.Type().Elem() == rt.goType {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != rt.goType {
		return reflect.Value{}, false
	}
	return rv, true
}

// fieldValue reads a field. Fields behind a nil embedded pointer read as zero values.
func fieldValue(v reflect.Value, field *Field) reflect.Value {
	fv, err := v.FieldByIndexErr(field.Index)
	if err != nil {
		return reflect.Zero(field.Type)
	}
	return fv
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are records of this type with equal fields. Either operand may be
// given as a struct value or as a pointer to one.
func (rt *Type) Equal(a, b interface{}) bool {
	av, ok := rt.value(a)
	if !ok {
		return false
	}
	bv, ok := rt.value(b)
	if !ok {
		return false
	}

	for i := range rt.fields {
		field := &rt.fields[i]
		if !cmp.Equal(fieldValue(av, field).Interface(), fieldValue(bv, field).Interface(), exportAll) {
			return false
		}
	}
	return true
}

// Format returns a representation of v in the form of `Name(Field1=value1, Field2=value2)`.
func (rt *Type) Format(v interface{}) string {
	rv, ok := rt.value(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}

	var buf strings.Builder
	buf.WriteString(rt.Name())
	buf.WriteByte('(')
	for i := range rt.fields {
		field := &rt.fields[i]
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(field.Name)
		buf.WriteByte('=')

		fv := fieldValue(rv, field)
		if fv.Kind() == reflect.String {
			buf.WriteString(strconv.Quote(fv.String()))
		} else {
			fmt.Fprintf(&buf, "%v", fv.Interface())
		}
	}
	buf.WriteByte(')')
	return buf.String()
}
