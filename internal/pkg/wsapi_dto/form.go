package wsapi_dto

import (
	"context"

	"linkcare-service/internal/pkg/lcxml"
)

type Form struct {
	ID          string
	FormCode    string
	Name        string
	Description string
	ParentID    *int
	Date        string
	Status      string

	questions      []*Question
	questionsState LoadState
}

// ParseForm understands both the form_get_summary layout, where the form
// information hangs from a "data" node, and the flat layout of activity
// and task lists.
func ParseForm(node *lcxml.Node) *Form {
	if !node.Exists() {
		return nil
	}
	form := &Form{
		ID:       node.Text("ref"),
		FormCode: node.FirstText("code", "form_code"),
	}

	info := node
	if data := node.Child("data"); data.Exists() {
		info = data
	}
	form.Name = info.FirstText("short_name", "name")
	form.Description = info.Text("description")
	form.ParentID = info.Int("parent_id")
	form.Date = info.Text("date")
	form.Status = info.Text("status")

	if questionsNode := info.Child("questions"); questionsNode.Exists() {
		questions := []*Question{}
		for _, questionNode := range questionsNode.Children("question") {
			questions = append(questions, ParseQuestion(questionNode))
		}
		form.SetQuestions(questions)
	}
	return form
}

func (f *Form) QuestionsState() LoadState {
	return f.questionsState
}

func (f *Form) SetQuestions(questions []*Question) {
	f.questions = questions
	f.questionsState = Loaded
}

func (f *Form) AddQuestion(question *Question) {
	f.questions = append(f.questions, question)
}

// LoadedQuestions returns the questions known so far without fetching.
func (f *Form) LoadedQuestions() []*Question {
	return f.questions
}

// Questions returns the questions of the form, fetching them once through
// loader when they were not part of the parsed document.
func (f *Form) Questions(ctx context.Context, loader FormLoader) ([]*Question, error) {
	if f.questionsState == Loaded {
		return f.questions, nil
	}

	full, err := loader.FormGetSummary(ctx, f.ID, true, false)
	if err != nil {
		return nil, err
	}
	var questions []*Question
	if full != nil {
		questions = full.LoadedQuestions()
	}
	f.SetQuestions(questions)
	return f.questions, nil
}

// FindQuestion searches by question template id or item code.
func (f *Form) FindQuestion(ctx context.Context, loader FormLoader, questionID string) (*Question, error) {
	questions, err := f.Questions(ctx, loader)
	if err != nil {
		return nil, err
	}
	for _, question := range questions {
		if question.Matches(questionID) {
			return question, nil
		}
	}
	return nil, nil
}

// HasArrayQuestion reports whether the array arrayRef declares questionID.
func (f *Form) HasArrayQuestion(ctx context.Context, loader FormLoader, arrayRef int, questionID string) (bool, error) {
	questions, err := f.Questions(ctx, loader)
	if err != nil {
		return false, err
	}
	for _, question := range questions {
		ref := question.ArrayRef()
		if ref != nil && *ref == arrayRef && question.Matches(questionID) {
			return true, nil
		}
	}
	return false, nil
}

// FindArrayQuestion returns the cell questionID of row in array arrayRef.
// When the row does not exist yet the cell is cloned from row 1, or built
// from scratch when the array has no such question at all. New cells are
// not added to the form.
func (f *Form) FindArrayQuestion(ctx context.Context, loader FormLoader, arrayRef, row int, questionID string) (*Question, error) {
	questions, err := f.Questions(ctx, loader)
	if err != nil {
		return nil, err
	}

	var reference *Question
	for _, question := range questions {
		ref := question.ArrayRef()
		if ref == nil || *ref != arrayRef || !question.Matches(questionID) {
			continue
		}
		if *question.Row == row {
			return question, nil
		}
		if *question.Row == 1 {
			reference = question
		}
	}

	var cell *Question
	if reference != nil {
		cell = reference.Clone()
	} else {
		cell = &Question{ItemCode: questionID}
		cell.SetArrayRef(arrayRef)
	}
	cell.SetRow(row)
	return cell, nil
}
