// Package focus keeps the ordered set of widgets that registered for
// keyboard focus and tracks which one holds it.
//
// The registry is owned by the host; there is no global focus manager.
// Widgets register once, when they are added to the tree, and learn about
// focus changes through their node's OnFocusChange callback.
package focus

// Node is one focusable entry.
type Node struct {
	// DebugLabel names the node in logs.
	DebugLabel string
	// OnFocusChange is called with the new focus state whenever it changes.
	OnFocusChange func(focused bool)

	scope   *Scope
	focused bool
}

// HasFocus reports whether the node holds focus.
func (n *Node) HasFocus() bool {
	return n.focused
}

// RequestFocus focuses the node within its scope. Unregistered nodes are
// ignored.
func (n *Node) RequestFocus() {
	if n.scope != nil {
		n.scope.Focus(n)
	}
}

// Scope is an ordered focus registry in traversal order.
type Scope struct {
	nodes   []*Node
	primary *Node
}

// Register appends n to the traversal order. It returns false when n is
// already registered, here or in another scope.
func (s *Scope) Register(n *Node) bool {
	if n == nil || n.scope != nil {
		return false
	}
	n.scope = s
	s.nodes = append(s.nodes, n)
	return true
}

// Unregister removes n, dropping focus first if it held it.
func (s *Scope) Unregister(n *Node) {
	if n == nil || n.scope != s {
		return
	}
	if s.primary == n {
		s.setPrimary(nil)
	}
	for i, c := range s.nodes {
		if c == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	n.scope = nil
}

// Len returns the number of registered nodes.
func (s *Scope) Len() int {
	return len(s.nodes)
}

// Focused returns the node holding focus, or nil.
func (s *Scope) Focused() *Node {
	return s.primary
}

// Focus moves focus to n. It reports false when n is not registered here.
func (s *Scope) Focus(n *Node) bool {
	if n == nil || n.scope != s {
		return false
	}
	s.setPrimary(n)
	return true
}

// Unfocus clears focus.
func (s *Scope) Unfocus() {
	s.setPrimary(nil)
}

// Next moves focus forward, wrapping at the end.
func (s *Scope) Next() bool {
	return s.move(1)
}

// Previous moves focus backward, wrapping at the start.
func (s *Scope) Previous() bool {
	return s.move(-1)
}

func (s *Scope) move(delta int) bool {
	count := len(s.nodes)
	if count == 0 {
		return false
	}
	current := s.indexOf(s.primary)
	if current < 0 && delta < 0 {
		current = 0
	}
	s.setPrimary(s.nodes[wrapIndex(current+delta, count)])
	return true
}

func (s *Scope) indexOf(n *Node) int {
	for i, c := range s.nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimary notifies the old holder before the new one.
func (s *Scope) setPrimary(n *Node) {
	if s.primary == n {
		return
	}
	if old := s.primary; old != nil {
		s.primary = nil
		old.setFocused(false)
	}
	s.primary = n
	if n != nil {
		n.setFocused(true)
	}
}

func (n *Node) setFocused(focused bool) {
	n.focused = focused
	if n.OnFocusChange != nil {
		n.OnFocusChange(focused)
	}
}
