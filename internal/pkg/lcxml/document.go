package lcxml

import (
	"github.com/beevik/etree"
)

// Document builds an outbound XML document under a single named root.
type Document struct {
	doc  *etree.Document
	root *etree.Element
}

func NewDocument(rootName string) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootName)
	return &Document{doc: doc, root: root}
}

func (d *Document) Root() *etree.Element {
	return d.root
}

// CreateChildNode appends a child called name under parent, or under the
// root when parent is nil. The optional value becomes its text.
func (d *Document) CreateChildNode(parent *etree.Element, name string, value ...string) *etree.Element {
	if parent == nil {
		parent = d.root
	}
	child := parent.CreateElement(name)
	if len(value) > 0 {
		child.SetText(value[0])
	}
	return child
}

// CreateOptionalNode only appends the child when value is not empty.
func (d *Document) CreateOptionalNode(parent *etree.Element, name, value string) *etree.Element {
	if value == "" {
		return nil
	}
	return d.CreateChildNode(parent, name, value)
}

func (d *Document) String() string {
	text, err := d.doc.WriteToString()
	if err != nil {
		return ""
	}
	return text
}
