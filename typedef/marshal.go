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
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// typeDefinitionDocument is the serialized form of a TypeDefinition. Interfaces are referred to by
// name.
type typeDefinitionDocument struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	IsInput     bool               `json:"isInput" yaml:"isInput"`
	IsInterface bool               `json:"isInterface" yaml:"isInterface"`
	IsGeneric   bool               `json:"isGeneric" yaml:"isGeneric"`
	Interfaces  []string           `json:"interfaces" yaml:"interfaces"`
	Federation  federationDocument `json:"federation" yaml:"federation"`
	Fields      []fieldDocument    `json:"fields" yaml:"fields"`
}

type federationDocument struct {
	Keys      []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Extend    bool     `json:"extend" yaml:"extend"`
	Shareable bool     `json:"shareable" yaml:"shareable"`
}

type fieldDocument struct {
	Name              string  `json:"name" yaml:"name"`
	GoName            string  `json:"goName" yaml:"goName"`
	Type              string  `json:"type" yaml:"type"`
	Description       string  `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultValue      *string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	DeprecationReason string  `json:"deprecationReason,omitempty" yaml:"deprecationReason,omitempty"`
}

func (def *TypeDefinition) document() typeDefinitionDocument {
	doc := typeDefinitionDocument{
		Name:        def.name,
		Description: def.description,
		IsInput:     def.isInput,
		IsInterface: def.isInterface,
		IsGeneric:   def.isGeneric,
		Interfaces:  make([]string, len(def.interfaces)),
		Federation: federationDocument{
			Keys:      def.federation.Keys,
			Extend:    def.federation.Extend,
			Shareable: def.federation.Shareable,
		},
		Fields: make([]fieldDocument, len(def.fields)),
	}

	for i, iface := range def.interfaces {
		doc.Interfaces[i] = iface.name
	}

	for i, field := range def.fields {
		typeName := field.TypeName
		if len(typeName) == 0 {
			typeName = field.Type.String()
		}

		fieldDoc := fieldDocument{
			Name:              field.Name,
			GoName:            field.GoName,
			Type:              typeName,
			Description:       field.Description,
			DeprecationReason: field.DeprecationReason,
		}
		if field.HasDefault {
			defaultValue := field.DefaultValue
			fieldDoc.DefaultValue = &defaultValue
		}
		doc.Fields[i] = fieldDoc
	}

	return doc
}

var (
	_ json.Marshaler = (*TypeDefinition)(nil)
	_ yaml.Marshaler = (*TypeDefinition)(nil)
)

// MarshalJSON implements json.Marshaler.
func (def *TypeDefinition) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(def.document())
}

// MarshalYAML implements yaml.Marshaler.
func (def *TypeDefinition) MarshalYAML() (interface{}, error) {
	return def.document(), nil
}
