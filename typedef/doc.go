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

/*
Package typedef turns plain Go struct declarations into GraphQL type definitions.

A declaration is a struct type. Its exported fields become the fields of the GraphQL type and its
embedded structs play the role of base types: an embedded struct that was itself declared as an
interface is recorded as an interface implemented by the declaring type.

	type Node struct {
		ID string
	}

	type User struct {
		Node
		FirstName string
		Nickname  string `description:"How friends call the user"`
		Extra     any    `graphql:"extra,type=JSON"`
	}

	var (
		NodeType = typedef.MustInterface(typedef.For[Node]())
		UserType = typedef.TypeWith(typedef.Config{
			Description: "A registered user",
		}).Must(typedef.For[User]())
	)

Declaring a type produces a Record: the struct type with synthesized value semantics (positional
construction, equality and representation, see package record) bundled with its TypeDefinition.
The TypeDefinition is also registered in a Registry keyed by the struct type, so it can be looked up
later from a value with typedef.Of or from a type with typedef.OfType.

Three flavors of declaration are provided. Type declares an output object type, Input declares an
input object type and Interface declares an interface type. Each has a bare form that takes the
struct type directly and a configured form (TypeWith, InputWith and InterfaceWith) that takes a
Config and returns a Decorator. Both forms build identical definitions for the same effective
configuration.

A field declared with the empty interface type carries no type information. It must be annotated
with a type tag option, otherwise the declaration fails with a MissingFieldAnnotationError.
*/
package typedef
