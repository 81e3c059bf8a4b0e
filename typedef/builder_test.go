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

package typedef_test

import (
	"errors"
	"reflect"
	"strings"

	"github.com/botobag/graphtype/internal/testutil"
	"github.com/botobag/graphtype/record"
	"github.com/botobag/graphtype/typedef"

	"github.com/jensneuse/abstractlogger"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type UserProfile struct {
	FirstName string
	LastName  string
	Extra     interface{} `graphql:"extra,type=JSON"`
}

type Named struct {
	Name string
}

type Aged struct {
	Age int
}

type Person struct {
	Named
	Aged
	Email string
}

type Timestamped struct {
	CreatedAt int64
}

type Plain struct {
	Note string
}

type Post struct {
	Named
	Timestamped
	Plain
	Title string
}

type PostPointer struct {
	*Named
	Title string
}

type Unannotated struct {
	Title string
	Extra interface{}
}

type Hidden struct {
	Title  string
	Secret interface{} `graphql:"-"`
	cache  interface{}
}

type Loose struct {
	Payload interface{}
}

type LooseChild struct {
	Loose
	Title string
}

type Tagged struct {
	Payload interface{} `graphql:",type=JSON"`
}

type TaggedChild struct {
	Tagged
	Title string
}

type Misordered struct {
	A string `default:"a"`
	B string
}

type Edge[T any] struct {
	Node   T
	Cursor string
}

type Wrapper struct {
	Edge[string]
}

var _ = Describe("Builder", func() {
	var builder *typedef.Builder

	BeforeEach(func() {
		builder = typedef.NewBuilder()
	})

	declare := func(d typedef.Decorator, t reflect.Type) *typedef.TypeDefinition {
		r, err := d(t)
		Expect(err).ShouldNot(HaveOccurred())
		return r.TypeDefinition()
	}

	Describe("name", func() {
		It("derives the name from the Go type in lower camel case", func() {
			def := declare(builder.Type, typedef.For[UserProfile]())
			Expect(def.Name()).Should(Equal("userProfile"))
		})

		It("uses the given name verbatim", func() {
			def := declare(builder.TypeWith(typedef.Config{Name: "Profile"}), typedef.For[UserProfile]())
			Expect(def.Name()).Should(Equal("Profile"))
		})

		It("drops type arguments of generic types", func() {
			def := declare(builder.Type, typedef.For[Edge[int]]())
			Expect(def.Name()).Should(Equal("edge"))
			Expect(def.IsGeneric()).Should(BeTrue())
		})

		It("derives names from non-ASCII identifiers", func() {
			def := declare(builder.Type, typedef.For[testutil.Ω]())
			Expect(def.Name()).Should(Equal("ω"))
			Expect(def.Fields()[0].Name).Should(Equal("δ"))
		})

		It("warns when instantiations of a generic type share a name", func() {
			core, logs := observer.New(zapcore.WarnLevel)
			builder.Logger = abstractlogger.NewZapLogger(zap.New(core), abstractlogger.DebugLevel)

			first := declare(builder.Type, typedef.For[Edge[int]]())
			Expect(logs.Len()).Should(Equal(0))

			second := declare(builder.Type, typedef.For[Edge[string]]())
			Expect(first.Name()).Should(Equal("edge"))
			Expect(second.Name()).Should(Equal("edge"))
			Expect(builder.Registry.ByName("edge")).Should(Equal([]*typedef.TypeDefinition{first, second}))

			entries := logs.All()
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].ContextMap()).Should(HaveKeyWithValue("name", "edge"))
			Expect(entries[0].ContextMap()).Should(HaveKeyWithValue("other", typedef.For[Edge[int]]().String()))

			named := declare(builder.TypeWith(typedef.Config{Name: "FlagEdge"}), typedef.For[Edge[bool]]())
			Expect(named.Name()).Should(Equal("FlagEdge"))
			Expect(logs.Len()).Should(Equal(1))
		})

		It("uses the configured name converter", func() {
			builder.NameConverter = strings.ToUpper
			def := declare(builder.Type, typedef.For[UserProfile]())
			Expect(def.Name()).Should(Equal("USERPROFILE"))
		})

		It("rejects anonymous structs without a name", func() {
			_, err := builder.Type(reflect.TypeOf(struct{ Title string }{}))
			Expect(err).Should(Equal(typedef.ErrEmptyName))

			def := declare(builder.TypeWith(typedef.Config{Name: "Anonymous"}), reflect.TypeOf(struct{ Title string }{}))
			Expect(def.Name()).Should(Equal("Anonymous"))
		})
	})

	Describe("fields", func() {
		It("lists every annotated field in declaration order", func() {
			def := declare(builder.Type, typedef.For[UserProfile]())
			fields := def.Fields()
			Expect(fields).Should(HaveLen(3))
			Expect(fields[0].Name).Should(Equal("firstName"))
			Expect(fields[1].Name).Should(Equal("lastName"))
			Expect(fields[2].Name).Should(Equal("extra"))
			Expect(fields[2].TypeName).Should(Equal("JSON"))
			Expect(def.Field("lastName")).Should(Equal(fields[1]))
			Expect(def.Field("middleName")).Should(BeNil())
		})

		It("includes fields promoted from embedded structs", func() {
			def := declare(builder.Type, typedef.For[Person]())
			var names []string
			for _, field := range def.Fields() {
				names = append(names, field.Name)
			}
			Expect(names).Should(Equal([]string{"name", "age", "email"}))
		})

		It("leaves out hidden and unexported fields", func() {
			def := declare(builder.Type, typedef.For[Hidden]())
			Expect(def.Fields()).Should(HaveLen(1))
			Expect(def.Fields()[0].Name).Should(Equal("title"))
		})

		It("returns errors from the field extractor", func() {
			extractErr := errors.New("cannot extract")
			builder.FieldExtractor = typedef.FieldExtractorFunc(func(reflect.Type) ([]*typedef.Field, error) {
				return nil, extractErr
			})
			_, err := builder.Type(typedef.For[UserProfile]())
			Expect(err).Should(Equal(extractErr))
			Expect(builder.Registry.Len()).Should(Equal(0))
		})
	})

	Describe("field annotations", func() {
		It("fails on a field without type annotation", func() {
			_, err := builder.Type(typedef.For[Unannotated]())
			Expect(err).Should(testutil.MatchMissingFieldAnnotationError(
				testutil.FieldNameIs("Extra"),
				testutil.DeclaringTypeIs(typedef.For[Unannotated]()),
			))
			Expect(err.Error()).Should(HavePrefix(`Unable to determine the type of field "Extra" in Unannotated.`))
		})

		It("does not register anything on failure", func() {
			_, err := builder.Type(typedef.For[Unannotated]())
			Expect(err).Should(HaveOccurred())
			Expect(builder.Registry.Len()).Should(Equal(0))
			_, ok := builder.Registry.Lookup(typedef.For[Unannotated]())
			Expect(ok).Should(BeFalse())
		})

		It("reports placeholders promoted from undeclared embedded structs", func() {
			_, err := builder.Type(typedef.For[LooseChild]())
			Expect(err).Should(testutil.MatchMissingFieldAnnotationError(
				testutil.FieldNameIs("Payload"),
				testutil.DeclaringTypeIs(typedef.For[Loose]()),
			))
			Expect(builder.Registry.Len()).Should(Equal(0))

			_, err = builder.Type(typedef.For[Loose]())
			Expect(err).Should(testutil.MatchMissingFieldAnnotationError(testutil.FieldNameIs("Payload")))
		})

		It("accepts fields promoted from declared embedded structs", func() {
			declare(builder.Type, typedef.For[Tagged]())
			def := declare(builder.Type, typedef.For[TaggedChild]())
			Expect(def.Fields()).Should(HaveLen(2))
			Expect(def.Fields()[0].TypeName).Should(Equal("JSON"))
		})

		It("propagates errors of record synthesis unchanged", func() {
			_, err := builder.Type(typedef.For[Misordered]())
			Expect(err).Should(BeAssignableToTypeOf(&record.FieldOrderError{}))
		})
	})

	Describe("interfaces", func() {
		It("collects interfaces in the order of embedding", func() {
			named := declare(builder.Interface, typedef.For[Named]())
			aged := declare(builder.Interface, typedef.For[Aged]())
			def := declare(builder.Type, typedef.For[Person]())

			interfaces := def.Interfaces()
			Expect(interfaces).Should(HaveLen(2))
			Expect(interfaces[0]).Should(BeIdenticalTo(named))
			Expect(interfaces[1]).Should(BeIdenticalTo(aged))
			Expect(def.Implements(named)).Should(BeTrue())
		})

		It("skips embedded types that are not interfaces", func() {
			named := declare(builder.Interface, typedef.For[Named]())
			declare(builder.Type, typedef.For[Timestamped]())

			def := declare(builder.Type, typedef.For[Post]())
			Expect(def.Interfaces()).Should(Equal([]*typedef.TypeDefinition{named}))
		})

		It("looks through embedded pointers", func() {
			named := declare(builder.Interface, typedef.For[Named]())
			def := declare(builder.Type, typedef.For[PostPointer]())
			Expect(def.Interfaces()).Should(Equal([]*typedef.TypeDefinition{named}))
		})

		It("returns no interfaces for bases declared later", func() {
			def := declare(builder.Type, typedef.For[Person]())
			Expect(def.Interfaces()).Should(BeEmpty())
		})

		It("only consults its own registry", func() {
			declare(typedef.NewBuilder().Interface, typedef.For[Named]())
			def := declare(builder.Type, typedef.For[Person]())
			Expect(def.Interfaces()).Should(BeEmpty())
		})
	})

	Describe("configuration", func() {
		It("defaults to an object type with empty federation parameters", func() {
			def := declare(builder.Type, typedef.For[UserProfile]())
			Expect(def.IsInput()).Should(BeFalse())
			Expect(def.IsInterface()).Should(BeFalse())
			Expect(def.IsGeneric()).Should(BeFalse())
			Expect(def.Description()).Should(BeEmpty())
			Expect(def.Federation()).Should(Equal(&typedef.FederationTypeParams{}))
			Expect(def.Origin()).Should(Equal(typedef.For[UserProfile]()))
		})

		It("passes description and federation parameters through", func() {
			federation := &typedef.FederationTypeParams{
				Keys:   []string{"firstName lastName"},
				Extend: true,
			}
			def := declare(builder.TypeWith(typedef.Config{
				Description: "A user",
				Federation:  federation,
			}), typedef.For[UserProfile]())
			Expect(def.Description()).Should(Equal("A user"))
			Expect(def.Federation()).Should(Equal(&typedef.FederationTypeParams{
				Keys:   []string{"firstName lastName"},
				Extend: true,
			}))
		})

		It("cannot be changed after declaration", func() {
			federation := &typedef.FederationTypeParams{
				Keys: []string{"firstName"},
			}
			def := declare(builder.TypeWith(typedef.Config{Federation: federation}), typedef.For[UserProfile]())

			federation.Keys[0] = "lastName"
			federation.Extend = true

			returned := def.Federation()
			returned.Keys[0] = "extra"
			returned.Shareable = true

			fields := def.Fields()
			fields[0].Name = "renamed"
			fields[0].Index[0] = 2
			def.Field("lastName").Name = "renamed"

			Expect(def.Federation()).Should(Equal(&typedef.FederationTypeParams{
				Keys: []string{"firstName"},
			}))
			Expect(def.Fields()[0].Name).Should(Equal("firstName"))
			Expect(def.Fields()[0].Index).Should(Equal([]int{0}))
			Expect(def.Field("firstName")).ShouldNot(BeNil())
			Expect(def.Field("lastName")).ShouldNot(BeNil())
		})

		It("keeps its own copy of extracted fields", func() {
			extracted := []*typedef.Field{{Name: "title", GoName: "Title", Index: []int{0}}}
			builder.FieldExtractor = typedef.FieldExtractorFunc(func(reflect.Type) ([]*typedef.Field, error) {
				return extracted, nil
			})
			def := declare(builder.Type, typedef.For[UserProfile]())

			extracted[0].Name = "renamed"
			Expect(def.Field("title")).ShouldNot(BeNil())
		})

		It("declares input types", func() {
			def := declare(builder.Input, typedef.For[UserProfile]())
			Expect(def.IsInput()).Should(BeTrue())
			Expect(def.IsInterface()).Should(BeFalse())
		})

		It("declares interface types", func() {
			def := declare(builder.InterfaceWith(typedef.Config{Name: "Node"}), typedef.For[Named]())
			Expect(def.Name()).Should(Equal("Node"))
			Expect(def.IsInterface()).Should(BeTrue())
			Expect(def.IsInput()).Should(BeFalse())
		})

		It("rejects types that are both input and interface", func() {
			_, err := builder.InputWith(typedef.Config{IsInterface: true})(typedef.For[Named]())
			Expect(err).Should(Equal(typedef.ErrInputInterface))
		})

		It("builds the same definition from both call forms", func() {
			other := typedef.NewBuilder()

			bare := declare(builder.Type, typedef.For[UserProfile]())
			configured := declare(other.TypeWith(typedef.Config{}), typedef.For[UserProfile]())
			Expect(bare).Should(Equal(configured))

			bareInput := declare(typedef.NewBuilder().Input, typedef.For[Named]())
			configuredInput := declare(typedef.NewBuilder().TypeWith(typedef.Config{IsInput: true}), typedef.For[Named]())
			Expect(bareInput).Should(Equal(configuredInput))
		})
	})

	Describe("declaration", func() {
		It("declares a type once", func() {
			first := declare(builder.Type, typedef.For[UserProfile]())
			_, err := builder.Input(typedef.For[UserProfile]())
			Expect(err).Should(Equal(&typedef.DuplicateDeclarationError{
				Type:     typedef.For[UserProfile](),
				Existing: first,
			}))
			Expect(err.Error()).Should(Equal(`typedef: UserProfile was already declared as "userProfile"`))
		})

		It("declares pointer types by their element", func() {
			def := declare(builder.Type, reflect.TypeOf(&UserProfile{}))
			Expect(def.Origin()).Should(Equal(typedef.For[UserProfile]()))
			found, ok := builder.Registry.Lookup(reflect.TypeOf(&UserProfile{}))
			Expect(ok).Should(BeTrue())
			Expect(found).Should(BeIdenticalTo(def))
		})

		It("rejects non-struct types", func() {
			_, err := builder.Type(reflect.TypeOf(""))
			Expect(err).Should(BeAssignableToTypeOf(&typedef.NotStructError{}))

			_, err = builder.Type(nil)
			Expect(err).Should(Equal(typedef.ErrNilType))
		})

		It("does not treat embedded generic types as generic", func() {
			def := declare(builder.Type, typedef.For[Wrapper]())
			Expect(def.IsGeneric()).Should(BeFalse())
		})

		It("panics in Must on failure", func() {
			Expect(func() {
				builder.TypeWith(typedef.Config{}).Must(typedef.For[Unannotated]())
			}).Should(Panic())
		})

		It("keeps definitions in registration order", func() {
			named := declare(builder.Interface, typedef.For[Named]())
			person := declare(builder.Type, typedef.For[Person]())
			Expect(builder.Registry.Definitions()).Should(Equal([]*typedef.TypeDefinition{named, person}))
		})
	})

	Describe("Record", func() {
		It("constructs values of the declared type", func() {
			r, err := builder.Type(typedef.For[UserProfile]())
			Expect(err).ShouldNot(HaveOccurred())

			v, err := r.New("Ada", "Lovelace", nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v).Should(Equal(&UserProfile{FirstName: "Ada", LastName: "Lovelace"}))
			Expect(r.Equal(v, UserProfile{FirstName: "Ada", LastName: "Lovelace"})).Should(BeTrue())
			Expect(r.Format(v)).Should(Equal(`UserProfile(FirstName="Ada", LastName="Lovelace", Extra=<nil>)`))

			_, err = r.New("Ada")
			Expect(err).Should(BeAssignableToTypeOf(&record.ArityError{}))
		})

		It("keeps Go members apart from GraphQL fields", func() {
			r, err := builder.Type(typedef.For[UserProfile]())
			Expect(err).ShouldNot(HaveOccurred())

			Expect(r.Name()).Should(Equal("UserProfile"))
			Expect(r.TypeDefinition().Name()).Should(Equal("userProfile"))

			members := r.Fields()
			Expect(members).Should(HaveLen(3))
			Expect(members[2].Name).Should(Equal("Extra"))

			fields := r.TypeDefinition().Fields()
			Expect(fields).Should(HaveLen(3))
			Expect(fields[2].Name).Should(Equal("extra"))
			Expect(fields[2].GoName).Should(Equal(members[2].Name))
			Expect(fields[2].Index).Should(Equal(members[2].Index))
		})
	})
})
