// Package soap encodes and decodes the RPC-style SOAP 1.1 envelopes spoken
// by the WS-API and by the outward training endpoint.
package soap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const (
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	xsdNamespace      = "http://www.w3.org/2001/XMLSchema"
	mapNamespace      = "http://xml.apache.org/xml-soap"
)

var (
	ErrNoBody     = errors.New("soap: envelope has no body")
	ErrNoFunction = errors.New("soap: body has no function element")
)

// Param is a named argument of a call. Null params are sent as nil values.
type Param struct {
	Name  string
	Value string
	Null  bool
}

// Field is one key of a response map.
type Field struct {
	Key   string
	Value string
}

type Fault struct {
	Code   string
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault (faultcode: %s, faultstring: %s)", f.Code, f.String)
}

func newEnvelope(namespace string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	envelope := doc.CreateElement("SOAP-ENV:Envelope")
	envelope.CreateAttr("xmlns:SOAP-ENV", EnvelopeNamespace)
	if namespace != "" {
		envelope.CreateAttr("xmlns:ns1", namespace)
	}
	envelope.CreateAttr("xmlns:xsd", xsdNamespace)
	envelope.CreateAttr("xmlns:xsi", xsiNamespace)
	envelope.CreateAttr("xmlns:ns2", mapNamespace)
	body := envelope.CreateElement("SOAP-ENV:Body")
	return doc, body
}

func write(doc *etree.Document) string {
	text, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return text
}

// BuildRequest encodes a call of function with params in order.
func BuildRequest(namespace, function string, params []Param) string {
	doc, body := newEnvelope(namespace)
	call := body.CreateElement("ns1:" + function)
	for _, param := range params {
		element := call.CreateElement(param.Name)
		if param.Null {
			element.CreateAttr("xsi:nil", "true")
			continue
		}
		element.CreateAttr("xsi:type", "xsd:string")
		element.SetText(param.Value)
	}
	return write(doc)
}

// BuildResponse encodes the map answered by function.
func BuildResponse(namespace, function string, fields []Field) string {
	doc, body := newEnvelope(namespace)
	response := body.CreateElement("ns1:" + function + "Response")
	result := response.CreateElement("return")
	result.CreateAttr("xsi:type", "ns2:Map")
	for _, field := range fields {
		item := result.CreateElement("item")
		key := item.CreateElement("key")
		key.CreateAttr("xsi:type", "xsd:string")
		key.SetText(field.Key)
		value := item.CreateElement("value")
		value.CreateAttr("xsi:type", "xsd:string")
		value.SetText(field.Value)
	}
	return write(doc)
}

func BuildFault(code, message string) string {
	doc, body := newEnvelope("")
	fault := body.CreateElement("SOAP-ENV:Fault")
	fault.CreateElement("faultcode").SetText(code)
	fault.CreateElement("faultstring").SetText(message)
	return write(doc)
}

func bodyFunction(text []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(text); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoBody
	}
	body := root.SelectElement("Body")
	if body == nil {
		return nil, ErrNoBody
	}
	elements := body.ChildElements()
	if len(elements) == 0 {
		return nil, ErrNoFunction
	}
	return elements[0], nil
}

// ParseRequest decodes the function name and the params of a call.
func ParseRequest(text []byte) (string, []Param, error) {
	call, err := bodyFunction(text)
	if err != nil {
		return "", nil, err
	}
	var params []Param
	for _, element := range call.ChildElements() {
		param := Param{Name: element.Tag, Value: content(element)}
		if nilAttr := element.SelectAttrValue("xsi:nil", ""); nilAttr == "true" || nilAttr == "1" {
			param.Null = true
		}
		params = append(params, param)
	}
	return call.Tag, params, nil
}

// ParseResponse decodes the response map of a call. A SOAP fault is
// returned as a *Fault error.
func ParseResponse(text []byte) (map[string]string, error) {
	response, err := bodyFunction(text)
	if err != nil {
		return nil, err
	}
	if response.Tag == "Fault" {
		return nil, &Fault{
			Code:   strings.TrimSpace(childText(response, "faultcode")),
			String: strings.TrimSpace(childText(response, "faultstring")),
		}
	}

	fields := map[string]string{}
	source := response
	if parts := response.ChildElements(); len(parts) == 1 && !isResponseKey(parts[0].Tag) {
		source = parts[0]
	}

	children := source.ChildElements()
	if len(children) == 0 {
		fields["result"] = source.Text()
		return fields, nil
	}
	for _, child := range children {
		if child.Tag == "item" && child.SelectElement("key") != nil {
			fields[child.SelectElement("key").Text()] = content(child.SelectElement("value"))
			continue
		}
		fields[child.Tag] = content(child)
	}
	return fields, nil
}

func isResponseKey(tag string) bool {
	return tag == "result" || tag == "ErrorCode" || tag == "ErrorMsg"
}

func childText(element *etree.Element, tag string) string {
	child := element.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}

// content is the text of element, or its serialized children when the
// value was sent as unescaped XML.
func content(element *etree.Element) string {
	if element == nil {
		return ""
	}
	children := element.ChildElements()
	if len(children) == 0 {
		return element.Text()
	}
	var builder strings.Builder
	for _, child := range children {
		doc := etree.NewDocument()
		doc.SetRoot(child.Copy())
		text, err := doc.WriteToString()
		if err == nil {
			builder.WriteString(text)
		}
	}
	return builder.String()
}
