package ast

// Inspect traverses the tree rooted at root in depth-first order, calling f
// for each node. Fields are visited in the order they were set. If f returns
// false the children of that node are skipped.
func Inspect(root any, f func(*Node) bool) {
	walkValue(root, f)
}

func walkValue(v any, f func(*Node) bool) {
	switch v := v.(type) {
	case *Node:
		if v == nil || !f(v) {
			return
		}
		for _, key := range v.keys {
			walkValue(v.fields[key], f)
		}
	case []any:
		for _, elem := range v {
			if elem != nil {
				walkValue(elem, f)
			}
		}
	}
}

// Contains reports whether any node in the tree rooted at root satisfies
// pred. The root itself is tested too.
func Contains(root any, pred func(*Node) bool) bool {
	found := false
	Inspect(root, func(n *Node) bool {
		if found {
			return false
		}
		if pred(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root any) int {
	var count int
	Inspect(root, func(*Node) bool {
		count++
		return true
	})
	return count
}
