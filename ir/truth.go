package ir

// Truth reports whether node is non-empty: a non-zero number, a
// non-empty string or container, or true.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		return node.Float64 != 0
	case BoolType:
		return node.Bool
	default:
		return false
	}
}
