// Package ir provides the in-memory representation of JSON documents.
//
// A document is a tree of [*Node]. Each node has a [Type]; objects keep
// their keys in [Node.Fields] and values in [Node.Values] in source
// order, arrays keep their elements in [Node.Values].
//
// Containers built by the parser are allocated once at their final size
// with [NewObject] and [NewArray]; [Node.Put] and [Node.Append] grow
// containers built programmatically.
//
// [Equal] compares trees ignoring object key order, with a tolerance for
// numbers. Paths such as $.a[0].b locate nodes, see [ParsePath] and
// [Node.GetPath].
package ir
