// Package libdiff reports the differences between two documents.
//
// [Diff] walks two [ir.Node] trees with the same rules as [ir.Equal] and
// lists each [Difference] with its path. Arrays of different lengths are
// aligned with github.com/sergi/go-diff before their elements are
// compared.
//
// [LineDiff] is a plain line diff of two texts, used to show differences
// between formatted documents.
package libdiff
