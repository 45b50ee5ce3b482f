/*
Package dsl provides a Go DSL for programmatically constructing message
schema definitions.

It allows developers to define message types using a type-safe, fluent
builder instead of external YAML documents. This is particularly useful for
unit tests, dynamic schema generation, and leveraging IDE autocompletion.

	b := dsl.New()
	b.Define("Payload", dsl.Sequence(
	    dsl.F("nasList", dsl.SequenceOf(dsl.OctetString().Named("dedicatedInfoNAS")).Size(1, 11)),
	))
	b.Message("DL-Message", dsl.Sequence(
	    dsl.F("transactionID", dsl.Integer()),
	    dsl.F("payload", dsl.Ref("Payload")),
	))
	provider, err := b.Build()

Named definitions may reference themselves (directly or mutually); Build
compiles references into shared-identity cycles, the same way YAML schema
documents are compiled.
*/
package dsl
