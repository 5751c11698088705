/*
Package codec encodes enumerators by their registered name.

Storing names rather than raw values keeps persisted data readable and stable
when the numeric value behind a name changes. The functions work on any
registry; Named[T] is a field wrapper that resolves through enumb.For[T]()
and implements:

  - encoding.TextMarshaler / encoding.TextUnmarshaler
  - json.Marshaler / json.Unmarshaler
  - attributevalue.Marshaler / attributevalue.Unmarshaler (DynamoDB)

Decoding matches names case-insensitively. Encoding a value that is not
registered, or decoding an unknown name, fails with an error matching
errors.ErrNotFound.
*/
package codec
