package training

import (
	"context"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

type fakeTrainingAPI struct {
	admission  *wsapi_dto.Admission
	forms      map[string]*wsapi_dto.Form
	activities map[string][]*wsapi_dto.Form
	tasks      []*wsapi_dto.Task
	listErr    error

	filters    []*wsapi_dto.TaskFilter
	maxResults []int
	ascending  []bool
	saved      []*wsapi_dto.Question
	savedForm  string
	saveCalls  int
}

func newFakeTrainingAPI() *fakeTrainingAPI {
	return &fakeTrainingAPI{
		admission: &wsapi_dto.Admission{
			ID: "A1",
			Subscription: &wsapi_dto.Subscription{
				Program: &wsapi_dto.Program{Code: "REHAB"},
			},
		},
		forms:      map[string]*wsapi_dto.Form{},
		activities: map[string][]*wsapi_dto.Form{},
	}
}

func (f *fakeTrainingAPI) FormGetSummary(ctx context.Context, formID string, withQuestions, asClosed bool) (*wsapi_dto.Form, error) {
	return f.forms[formID], nil
}

func (f *fakeTrainingAPI) TaskActivityList(ctx context.Context, taskID string) ([]*wsapi_dto.Form, error) {
	return f.activities[taskID], nil
}

func (f *fakeTrainingAPI) AdmissionGet(ctx context.Context, admissionID string) (*wsapi_dto.Admission, error) {
	return f.admission, nil
}

func (f *fakeTrainingAPI) AdmissionGetTaskList(ctx context.Context, admissionID string, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error) {
	f.filters = append(f.filters, filter)
	f.maxResults = append(f.maxResults, maxRes)
	f.ascending = append(f.ascending, ascending)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func (f *fakeTrainingAPI) FormSetAllAnswers(ctx context.Context, formID string, questions []*wsapi_dto.Question, closeForm bool) error {
	f.saveCalls++
	f.savedForm = formID
	f.saved = append(f.saved, questions...)
	return nil
}

func testTrainingCodes() config.AppTraining {
	return config.AppTraining{
		TrainingTaskCode:    "DT_EJERCICIOS",
		SummaryFormCode:     "DT_SUMMARY_FORM",
		ExercisesArrayItem:  "FECHA_EJERCICIOS",
		StretchingArrayItem: "FECHA_ESTIRAMIENTOS",
		StretchingPrefix:    "ESTIRAMIENTO",
		EffortItemCode:      "VAS",
		EffortFormPattern:   "DT_*_CONTENT",
		EffortLow:           4,
		EffortHigh:          7,
		EffortVeryHigh:      9,
	}
}

func loadedForm(id, code string, questions ...*wsapi_dto.Question) *wsapi_dto.Form {
	form := &wsapi_dto.Form{ID: id, FormCode: code}
	form.SetQuestions(questions)
	return form
}

func answer(itemCode, value string) *wsapi_dto.Question {
	return &wsapi_dto.Question{ItemCode: itemCode, Value: value}
}

func arrayCell(itemCode string, arrayRef, row int) *wsapi_dto.Question {
	return &wsapi_dto.Question{ID: itemCode + "-1", ItemCode: itemCode, Order: arrayRef, Row: utils.IntPtr(row)}
}

// task builds a training task whose forms are fetched through the activity
// list of the fake.
func (f *fakeTrainingAPI) task(id, date, hour, status string, forms ...*wsapi_dto.Form) *wsapi_dto.Task {
	f.activities[id] = forms
	return &wsapi_dto.Task{ID: id, TaskCode: "DT_EJERCICIOS", Date: date, Hour: hour, Status: status}
}

func effortForm(id string, vas string) *wsapi_dto.Form {
	return loadedForm(id, "DT_1_CONTENT", answer("VAS", vas))
}
