// Package eval evaluates expressions over documents with
// github.com/expr-lang/expr.
//
// The document is available as the variable doc, converted with
// [ir.ToAny]. Functions:
//
//   - getpath(path) returns the value at a path such as $.a[0]
//   - listpath(path) returns all values matching a path with [*]
//   - keys(object) returns the keys of an object in document order
//   - tojson(value) returns the compact JSON text of a value
//
// Results are converted back with [ir.FromAny]; maps come back with
// sorted keys.
package eval
