package entry

import "strings"

// Tree owns the root node and creates directories on demand.
type Tree struct {
	root      *Node
	directory RenderFunc
}

// NewTree builds a tree whose root draws with root. Directories created by
// ResolveDirectory draw with directory.
func NewTree(rootName string, root, directory RenderFunc) *Tree {
	return &Tree{
		root:      newNode(rootName, nil, root),
		directory: directory,
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// ResolveDirectory walks path one slash-separated segment at a time, using
// the first child with a matching name and creating a directory node when
// none exists. An empty path resolves to the root.
func (t *Tree) ResolveDirectory(path string) *Node {
	if t == nil {
		return nil
	}
	node := t.root
	if path == "" {
		return node
	}
	for _, segment := range strings.Split(path, "/") {
		child, ok := node.Child(segment)
		if !ok {
			child = node.Add(segment, t.directory)
		}
		node = child
	}
	return node
}

// RegisterLeaf appends a new leaf at path. The part before the last slash
// names the directory, which is created when missing; without a slash the
// leaf is attached to the root. An existing sibling with the same name is
// left in place.
func (t *Tree) RegisterLeaf(path string, render RenderFunc) *Node {
	if t == nil {
		return nil
	}
	dir, name := splitPath(path)
	return t.ResolveDirectory(dir).Add(name, render)
}

// Len counts every node in the tree, root included.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return countNodes(t.root)
}

func countNodes(n *Node) int {
	total := 1
	for _, child := range n.children {
		total += countNodes(child)
	}
	return total
}

func splitPath(path string) (string, string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}
