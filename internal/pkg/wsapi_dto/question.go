package wsapi_dto

import (
	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/utils"
)

const (
	QuestionTypeNumerical          = "NUMERICAL"
	QuestionTypeBoolean            = "BOOLEAN"
	QuestionTypeText               = "TEXT"
	QuestionTypeTextArea           = "TEXT_AREA"
	QuestionTypeStaticText         = "STATIC_TEXT"
	QuestionTypeSelect             = "SELECT"
	QuestionTypeDate               = "DATE"
	QuestionTypeTime               = "TIME"
	QuestionTypeHorizontalCheck    = "HORIZONTAL_CHECK"
	QuestionTypeVerticalCheck      = "VERTICAL_CHECK"
	QuestionTypeVerticalRadio      = "VERTICAL_RADIO"
	QuestionTypeHorizontalRadio    = "HORIZONTAL_RADIO"
	QuestionTypeForm               = "FORM"
	QuestionTypeCode               = "CODE"
	QuestionTypeGraph              = "GRAPH"
	QuestionTypeFile               = "FILE"
	QuestionTypeAction             = "ACTION"
	QuestionTypeLink               = "LINK"
	QuestionTypeEditableStaticText = "TEXT_AREA"
	QuestionTypeHTML               = "HTML"
	QuestionTypeJSON               = "JSON"
	QuestionTypeDevice             = "DEVICE"
	QuestionTypeAge                = "AGE"
	QuestionTypeSlider             = "VAS"
	QuestionTypeMultimedia         = "MULTIMEDIA"
	QuestionTypeGeolocation        = "GEOLOCATION"
	QuestionTypeCaseData           = "CASE_DATA"
)

// Answers of these types are sent as an option id instead of a value.
var optionQuestionTypes = map[string]bool{
	QuestionTypeBoolean:         true,
	QuestionTypeSelect:          true,
	QuestionTypeHorizontalCheck: true,
	QuestionTypeVerticalCheck:   true,
	QuestionTypeVerticalRadio:   true,
	QuestionTypeHorizontalRadio: true,
}

func IsOptionQuestionType(questionType string) bool {
	return optionQuestionTypes[questionType]
}

type QuestionOption struct {
	ID          string
	Value       string
	Description string
}

func ParseQuestionOption(node *lcxml.Node) *QuestionOption {
	if !node.Exists() {
		return nil
	}
	return &QuestionOption{
		ID:          node.Text("option_id"),
		Value:       node.Text("value"),
		Description: node.Text("description"),
	}
}

type Question struct {
	ID                 string
	ItemCode           string
	QuestionTemplateID string
	Name               string
	Unit               string
	Order              int
	Row                *int
	Column             *int
	Decimals           *int
	Mandatory          bool
	Description        string
	DescriptionOnEdit  string
	Constraint         string
	DataCode           string
	Type               string
	Value              string
	ValueDescription   string
	Options            []*QuestionOption
}

func ParseQuestion(node *lcxml.Node) *Question {
	if !node.Exists() {
		return nil
	}
	question := &Question{
		ID:                 node.Text("question_id"),
		ItemCode:           node.Text("item_code"),
		QuestionTemplateID: node.Text("question_template_id"),
		Order:              utils.IntValue(node.Text("order")),
		Row:                node.Int("row"),
		Column:             node.Int("column"),
		Decimals:           node.Int("num_dec"),
		Mandatory:          node.Bool("mandatory"),
		Description:        node.Text("description"),
		DescriptionOnEdit:  node.Text("description_onedit"),
		Constraint:         node.Text("constraint"),
		DataCode:           node.Text("data_code"),
		Type:               node.Text("type"),
		Value:              node.Text("value"),
		ValueDescription:   node.Text("value_description"),
	}
	for _, optionNode := range node.Child("options").Children("option") {
		question.Options = append(question.Options, ParseQuestionOption(optionNode))
	}
	return question
}

// InArray reports whether the question is a cell of an array, i.e. it has a
// non-zero row.
func (q *Question) InArray() bool {
	return q.Row != nil && *q.Row != 0
}

// ArrayRef is the order of the array holding the question, or nil when the
// question is not part of an array.
func (q *Question) ArrayRef() *int {
	if !q.InArray() {
		return nil
	}
	ref := q.Order
	return &ref
}

func (q *Question) SetArrayRef(ref int) {
	q.Order = ref
}

func (q *Question) SetRow(row int) {
	q.Row = utils.IntPtr(row)
}

// Matches compares questionID against the template id and the item code.
func (q *Question) Matches(questionID string) bool {
	if questionID == "" {
		return false
	}
	return q.QuestionTemplateID == questionID || q.ItemCode == questionID
}

// Clone copies the question without its id and answer.
func (q *Question) Clone() *Question {
	clone := *q
	clone.ID = ""
	clone.Value = ""
	clone.ValueDescription = ""
	if q.Row != nil {
		clone.Row = utils.IntPtr(*q.Row)
	}
	if q.Column != nil {
		clone.Column = utils.IntPtr(*q.Column)
	}
	if q.Decimals != nil {
		clone.Decimals = utils.IntPtr(*q.Decimals)
	}
	if q.Options != nil {
		clone.Options = make([]*QuestionOption, 0, len(q.Options))
		for _, option := range q.Options {
			copied := *option
			clone.Options = append(clone.Options, &copied)
		}
	}
	return &clone
}

// ToXML writes the answer of the question. Array cells are identified by
// item code (or template id) plus column, plain questions by their id.
func (q *Question) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	if parent == nil {
		parent = doc.Root()
	}

	if q.InArray() {
		id := q.ItemCode
		if id == "" {
			id = q.QuestionTemplateID
		}
		doc.CreateChildNode(parent, "question_id", id)
		doc.CreateChildNode(parent, "column", utils.IntToText(q.Column))
	} else {
		doc.CreateChildNode(parent, "question_id", q.ID)
	}

	if IsOptionQuestionType(q.Type) {
		doc.CreateChildNode(parent, "value", "")
		doc.CreateChildNode(parent, "option_id", q.Value)
	} else {
		doc.CreateChildNode(parent, "value", q.Value)
		doc.CreateChildNode(parent, "option_id", "")
	}
	return parent
}
