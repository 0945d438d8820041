package wsapi_dto

import (
	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/lcxml"
)

type Identifier struct {
	ID          string
	Description string
	Value       string
}

func NewIdentifier(id, value string) *Identifier {
	return &Identifier{ID: id, Value: value}
}

func ParseIdentifier(node *lcxml.Node) *Identifier {
	if !node.Exists() {
		return nil
	}
	return &Identifier{
		ID:          node.Text("label"),
		Description: node.Text("description"),
		Value:       node.Text("value"),
	}
}

func (i *Identifier) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	if parent == nil {
		parent = doc.Root()
	}
	doc.CreateChildNode(parent, "label", i.ID)
	doc.CreateChildNode(parent, "value", i.Value)
	return parent
}
