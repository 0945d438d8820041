package wsapi_dto

import (
	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/lcxml"
)

type ContactAddress struct {
	Kind     string
	Address  string
	PostCode string
	City     string
	State    string
	Country  string
}

func ParseContactAddress(node *lcxml.Node) *ContactAddress {
	if !node.Exists() {
		return nil
	}
	return &ContactAddress{
		Kind:     node.Text("kind"),
		Address:  node.Text("address"),
		PostCode: node.Text("postcode"),
		City:     node.Text("city"),
		State:    node.Text("state"),
		Country:  node.Text("country"),
	}
}

func (a *ContactAddress) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	doc.CreateOptionalNode(parent, "kind", a.Kind)
	doc.CreateOptionalNode(parent, "address", a.Address)
	doc.CreateOptionalNode(parent, "postcode", a.PostCode)
	doc.CreateOptionalNode(parent, "city", a.City)
	doc.CreateOptionalNode(parent, "state", a.State)
	doc.CreateOptionalNode(parent, "country", a.Country)
	return parent
}

// ContactChannel is a phone, email or device of a contact.
type ContactChannel struct {
	Kind  string
	Value string
}

func ParseContactChannel(node *lcxml.Node) *ContactChannel {
	if !node.Exists() {
		return nil
	}
	return &ContactChannel{
		Kind:  node.Text("kind"),
		Value: node.Text("value"),
	}
}

func (c *ContactChannel) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	doc.CreateOptionalNode(parent, "kind", c.Kind)
	doc.CreateChildNode(parent, "value", c.Value)
	return parent
}

type Contact struct {
	ID          string
	Username    string
	Editable    bool
	Birthdate   string
	Age         string
	Gender      string
	FullName    string
	Name        string
	MiddleName  string
	FamilyName  string
	FamilyName2 string
	Identifiers []*Identifier
	Addresses   []*ContactAddress
	Phones      []*ContactChannel
	Emails      []*ContactChannel
	Devices     []*ContactChannel
}

func ParseContact(node *lcxml.Node) *Contact {
	if !node.Exists() {
		return nil
	}
	contact := &Contact{
		ID:          node.Text("ref"),
		Username:    node.Text("username"),
		Editable:    node.Bool("editable"),
		Birthdate:   node.Text("data/bdate"),
		Age:         node.Text("data/age"),
		Gender:      node.Text("data/gender"),
		FullName:    node.Text("full_name"),
		Name:        node.Text("name/given_name"),
		MiddleName:  node.Text("name/middleName"),
		FamilyName:  node.Text("name/family_name"),
		FamilyName2: node.Text("name/family_name2"),
	}

	for _, identifierNode := range node.Child("identifiers").Children("identifier") {
		contact.Identifiers = append(contact.Identifiers, ParseIdentifier(identifierNode))
	}
	for _, addressNode := range node.Child("addresses").Children("address") {
		contact.Addresses = append(contact.Addresses, ParseContactAddress(addressNode))
	}

	channels := node.Child("channels")
	for _, phoneNode := range channels.Child("phones").Children("phone") {
		contact.Phones = append(contact.Phones, ParseContactChannel(phoneNode))
	}
	for _, emailNode := range channels.Child("emails").Children("email") {
		contact.Emails = append(contact.Emails, ParseContactChannel(emailNode))
	}
	for _, deviceNode := range channels.Child("devices").Children("device") {
		contact.Devices = append(contact.Devices, ParseContactChannel(deviceNode))
	}
	return contact
}

func (c *Contact) AddIdentifier(identifier *Identifier) {
	if identifier == nil {
		return
	}
	c.Identifiers = append(c.Identifiers, identifier)
}

func (c *Contact) FindIdentifier(id string) *Identifier {
	for _, identifier := range c.Identifiers {
		if identifier.ID == id {
			return identifier
		}
	}
	return nil
}

// ToXML writes the contact in the layout accepted by case_insert and
// case_set_contact.
func (c *Contact) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	if parent == nil {
		parent = doc.Root()
	}

	doc.CreateChildNode(parent, "ref", c.ID)
	dataNode := doc.CreateChildNode(parent, "data")
	doc.CreateOptionalNode(dataNode, "age", c.Age)
	doc.CreateOptionalNode(dataNode, "bdate", c.Birthdate)
	doc.CreateOptionalNode(dataNode, "gender", c.Gender)

	if c.Name != "" || c.FamilyName != "" || c.FamilyName2 != "" {
		nameNode := doc.CreateChildNode(parent, "name")
		doc.CreateOptionalNode(nameNode, "given_name", c.Name)
		doc.CreateOptionalNode(nameNode, "family_name", c.FamilyName)
		doc.CreateOptionalNode(nameNode, "family_name2", c.FamilyName2)
	}

	if len(c.Identifiers) > 0 {
		identifiersNode := doc.CreateChildNode(parent, "identifiers")
		for _, identifier := range c.Identifiers {
			identifier.ToXML(doc, doc.CreateChildNode(identifiersNode, "identifier"))
		}
	}

	if len(c.Addresses) > 0 {
		addressesNode := doc.CreateChildNode(parent, "addresses")
		for _, address := range c.Addresses {
			address.ToXML(doc, doc.CreateChildNode(addressesNode, "address"))
		}
	}

	channelsNode := doc.CreateChildNode(parent, "channels")
	writeChannels(doc, channelsNode, "phones", "phone", c.Phones)
	writeChannels(doc, channelsNode, "emails", "email", c.Emails)
	writeChannels(doc, channelsNode, "devices", "device", c.Devices)
	return parent
}

func writeChannels(doc *lcxml.Document, parent *etree.Element, groupName, itemName string, channels []*ContactChannel) {
	if len(channels) == 0 {
		return
	}
	groupNode := doc.CreateChildNode(parent, groupName)
	for _, channel := range channels {
		channel.ToXML(doc, doc.CreateChildNode(groupNode, itemName))
	}
}
