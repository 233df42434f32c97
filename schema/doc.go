// Package schema provides a fluent API for constructing JSON Schema objects
// and validating decoded JSON values against them.
//
// Builders compose into nested schemas:
//
//	personSchema := schema.Object().
//	    Field("name", schema.String().MinLength(1).Required()).
//	    Field("age", schema.Int().Min(0).Max(150).Required()).
//	    Field("mood", schema.String().Enum("happy", "neutral", "sad")).
//	    Strict()
//
//	raw, err := personSchema.Build()
//
// [Check] validates a decoded JSON value against a schema, reporting one
// decode error per violation with a path locating it. [Decoder] adapts a
// schema into a decoder for the retry loop, so constraint violations are fed
// back to the model as corrective messages:
//
//	req := instructor.NewRequest(model, msgs,
//	    instructor.WithMaxRetries(2),
//	    instructor.WithResponseSchema(instructor.ResponseSchema{
//	        Name: "person", Schema: personSchema.MustBuild(),
//	    }))
//	value, err := instructor.Run(ctx, adapter, req, schema.Decoder(personSchema))
package schema
