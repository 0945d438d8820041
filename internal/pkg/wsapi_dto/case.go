package wsapi_dto

import "linkcare-service/internal/pkg/lcxml"

type Case struct {
	ID      string
	Contact *Contact
}

// ParseCase reads the contact from a "contact" child when present, or from
// the case node itself otherwise.
func ParseCase(node *lcxml.Node) *Case {
	if !node.Exists() {
		return nil
	}
	contactNode := node
	if child := node.Child("contact"); child.Exists() {
		contactNode = child
	}
	return &Case{
		ID:      node.Text("ref"),
		Contact: ParseContact(contactNode),
	}
}
