package wsapi

import (
	"context"
	"strconv"

	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func (c *Client) FormGetSummary(ctx context.Context, formID string, withQuestions, asClosed bool) (*wsapi_dto.Form, error) {
	response, err := c.Invoke(ctx, constvars.WSAPIFnFormGetSummary,
		param("form", formID),
		param("with_questions", utils.BoolToFlag(withQuestions)),
		param("as_closed", utils.BoolToFlag(asClosed)),
	)
	if err != nil {
		return nil, err
	}
	return wsapi_dto.ParseForm(c.parseResult(ctx, constvars.WSAPIFnFormGetSummary, response)), nil
}

func (c *Client) FormSetAnswer(ctx context.Context, formID, questionID, value, optionID, eventID string, closeForm bool) error {
	_, err := c.Invoke(ctx, constvars.WSAPIFnFormSetAnswer,
		param("form_id", formID),
		param("question_id", questionID),
		param("value", value),
		optionalParam("option_id", optionID),
		optionalParam("event_id", eventID),
		param("close_form", utils.BoolToFlag(closeForm)),
	)
	return err
}

// FormSetAllAnswers saves several answers in one call.
func (c *Client) FormSetAllAnswers(ctx context.Context, formID string, questions []*wsapi_dto.Question, closeForm bool) error {
	_, err := c.Invoke(ctx, constvars.WSAPIFnFormSetAllAnswers,
		param("form", formID),
		param("xml_answers", answersXML(questions)),
		param("close_form", utils.BoolToFlag(closeForm)),
	)
	return err
}

type answerRow struct {
	questions []*wsapi_dto.Question
}

type answerArray struct {
	ref     int
	rows    []*answerRow
	rowByID map[int]*answerRow
}

// answersXML writes the plain questions first and then one "array" node per
// array, keeping the order in which arrays and rows first appear.
func answersXML(questions []*wsapi_dto.Question) string {
	doc := lcxml.NewDocument("questions")

	var arrays []*answerArray
	arrayByRef := map[int]*answerArray{}
	var simple []*wsapi_dto.Question

	for _, question := range questions {
		if !question.InArray() {
			simple = append(simple, question)
			continue
		}
		array, ok := arrayByRef[question.Order]
		if !ok {
			array = &answerArray{ref: question.Order, rowByID: map[int]*answerRow{}}
			arrayByRef[question.Order] = array
			arrays = append(arrays, array)
		}
		row, ok := array.rowByID[*question.Row]
		if !ok {
			row = &answerRow{}
			array.rowByID[*question.Row] = row
			array.rows = append(array.rows, row)
		}
		row.questions = append(row.questions, question)
	}

	for _, question := range simple {
		question.ToXML(doc, doc.CreateChildNode(nil, "question"))
	}

	for _, array := range arrays {
		arrayNode := doc.CreateChildNode(nil, "array")
		doc.CreateChildNode(arrayNode, "ref", strconv.Itoa(array.ref))
		for _, row := range array.rows {
			rowNode := doc.CreateChildNode(arrayNode, "row")
			for _, question := range row.questions {
				question.ToXML(doc, doc.CreateChildNode(rowNode, "question"))
			}
		}
	}

	return doc.String()
}
