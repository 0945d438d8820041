// Package lcxml reads and writes the labeled-node XML documents exchanged
// with the WS-API.
package lcxml

import (
	"errors"
	"strings"

	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/utils"
)

var ErrEmptyDocument = errors.New("lcxml: document has no root element")

// Node is a read-only view over an element. A nil *Node stands for a node
// that is not present, and every accessor on it returns the zero value, so
// lookups can be chained without checks.
type Node struct {
	element *etree.Element
}

func Parse(text string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return &Node{element: root}, nil
}

// Wrap returns nil for a nil element.
func Wrap(element *etree.Element) *Node {
	if element == nil {
		return nil
	}
	return &Node{element: element}
}

func (n *Node) Exists() bool {
	return n != nil && n.element != nil
}

func (n *Node) Name() string {
	if !n.Exists() {
		return ""
	}
	return n.element.Tag
}

func (n *Node) Element() *etree.Element {
	if !n.Exists() {
		return nil
	}
	return n.element
}

// Child follows a path of element names. Segments may also be joined with
// "/". The first matching element is taken at each step.
func (n *Node) Child(path ...string) *Node {
	current := n
	for _, segment := range path {
		for _, name := range strings.Split(segment, "/") {
			if name == "" {
				continue
			}
			if !current.Exists() {
				return nil
			}
			current = Wrap(current.element.SelectElement(name))
		}
	}
	return current
}

// Children lists the direct child elements called name.
func (n *Node) Children(name string) []*Node {
	if !n.Exists() {
		return nil
	}
	elements := n.element.SelectElements(name)
	nodes := make([]*Node, 0, len(elements))
	for _, element := range elements {
		nodes = append(nodes, &Node{element: element})
	}
	return nodes
}

// Elements lists every direct child element.
func (n *Node) Elements() []*Node {
	if !n.Exists() {
		return nil
	}
	elements := n.element.ChildElements()
	nodes := make([]*Node, 0, len(elements))
	for _, element := range elements {
		nodes = append(nodes, &Node{element: element})
	}
	return nodes
}

// Text is the character data of the node found at path, or "" when any
// segment is missing.
func (n *Node) Text(path ...string) string {
	node := n.Child(path...)
	if !node.Exists() {
		return ""
	}
	return node.element.Text()
}

func (n *Node) Int(path ...string) *int {
	return utils.NullableInt(n.Text(path...))
}

func (n *Node) Bool(path ...string) bool {
	return utils.TextToBool(n.Text(path...))
}

// FirstText returns the first non-empty text among the given paths.
func (n *Node) FirstText(paths ...string) string {
	for _, path := range paths {
		if text := n.Text(path); text != "" {
			return text
		}
	}
	return ""
}

// String serializes the node and its subtree.
func (n *Node) String() string {
	if !n.Exists() {
		return ""
	}
	doc := etree.NewDocument()
	doc.SetRoot(n.element.Copy())
	text, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return text
}
