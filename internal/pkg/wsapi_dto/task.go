package wsapi_dto

import (
	"context"

	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/lcxml"
	"linkcare-service/internal/pkg/utils"
)

type Task struct {
	ID           string
	TaskCode     string
	Name         string
	Description  string
	Date         string
	Hour         string
	Duration     *int
	FollowReport string
	Status       string
	Recursive    string
	Locked       bool
	AdmissionID  string
	CaseID       string
	Assignments  []*TaskAssignment

	forms      []*Form
	formsState LoadState
	classifier StatusClassifier
}

func ParseTask(node *lcxml.Node) *Task {
	if !node.Exists() {
		return nil
	}
	task := &Task{
		ID:           node.Text("ref"),
		Name:         node.Text("name"),
		Description:  node.Text("description"),
		Hour:         node.Text("hour"),
		Duration:     node.Int("duration"),
		FollowReport: node.Text("follow_report"),
		Status:       node.Text("status"),
		Recursive:    node.Text("recursive"),
		Locked:       node.Bool("locked"),
		AdmissionID:  node.Text("admission/ref"),
		CaseID:       node.Text("case/ref"),
	}

	if node.Child("code").Exists() {
		task.TaskCode = node.Text("code")
	} else {
		task.TaskCode = node.Text("refs/task_code")
	}

	date, hour, hasHour := cutDate(node.Text("date"))
	task.Date = date
	if task.Hour == "" && hasHour {
		task.Hour = hour
	}

	for _, assignmentNode := range node.Child("assignments").Children("assignment") {
		task.Assignments = append(task.Assignments, ParseTaskAssignment(assignmentNode))
	}

	if formsNode := node.Child("forms"); formsNode.Exists() {
		forms := []*Form{}
		for _, formNode := range formsNode.Children("form") {
			forms = append(forms, ParseForm(formNode))
		}
		task.SetForms(forms)
	}
	return task
}

func cutDate(dateTime string) (string, string, bool) {
	if dateTime == "" {
		return "", "", false
	}
	date := utils.DatePart(dateTime)
	hour := ""
	if len(dateTime) > len(date)+1 {
		hour = dateTime[len(date)+1:]
	}
	return date, hour, hour != ""
}

// SetDate keeps only the date part of dateTime.
func (t *Task) SetDate(dateTime string) {
	t.Date = utils.DatePart(dateTime)
}

func (t *Task) AddAssignment(assignment *TaskAssignment) {
	if assignment == nil {
		return
	}
	t.Assignments = append(t.Assignments, assignment)
}

func (t *Task) ClearAssignments() {
	t.Assignments = nil
}

func (t *Task) FormsState() LoadState {
	return t.formsState
}

func (t *Task) SetForms(forms []*Form) {
	t.forms = forms
	t.formsState = Loaded
}

// Forms returns the FORMs of the task, fetching the activity list once when
// the parsed document did not include them.
func (t *Task) Forms(ctx context.Context, loader ActivityLoader) ([]*Form, error) {
	if t.formsState == Loaded {
		return t.forms, nil
	}
	forms, err := loader.TaskActivityList(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.SetForms(forms)
	return t.forms, nil
}

// FindForm searches a FORM of the task by id or by form code.
func (t *Task) FindForm(ctx context.Context, loader ActivityLoader, formIDOrCode string) (*Form, error) {
	forms, err := t.Forms(ctx, loader)
	if err != nil {
		return nil, err
	}
	for _, form := range forms {
		if form.ID == formIDOrCode || (form.FormCode != "" && form.FormCode == formIDOrCode) {
			return form, nil
		}
	}
	return nil, nil
}

func (t *Task) SetStatusClassifier(classifier StatusClassifier) {
	t.classifier = classifier
}

func (t *Task) statusClassifier() StatusClassifier {
	if t.classifier == nil {
		return DefaultStatusSets
	}
	return t.classifier
}

func (t *Task) IsOpen() bool      { return t.statusClassifier().IsOpen(t.Status) }
func (t *Task) IsClosed() bool    { return t.statusClassifier().IsClosed(t.Status) }
func (t *Task) IsExpired() bool   { return t.statusClassifier().IsExpired(t.Status) }
func (t *Task) IsCancelled() bool { return t.statusClassifier().IsCancelled(t.Status) }

// ToXML writes the modifiable properties of the task as expected by task_set.
func (t *Task) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	if parent == nil {
		parent = doc.Root()
	}
	doc.CreateChildNode(parent, "ref", t.ID)
	doc.CreateOptionalNode(parent, "date", t.Date)
	doc.CreateOptionalNode(parent, "hour", t.Hour)
	doc.CreateOptionalNode(parent, "duration", utils.IntToText(t.Duration))
	doc.CreateOptionalNode(parent, "follow_report", t.FollowReport)
	doc.CreateOptionalNode(parent, "status", t.Status)
	doc.CreateOptionalNode(parent, "recursive", t.Recursive)
	doc.CreateChildNode(parent, "locked", utils.BoolToText(t.Locked))

	assignmentsNode := doc.CreateChildNode(parent, "assignments")
	for _, assignment := range t.Assignments {
		assignment.ToXML(doc, doc.CreateChildNode(assignmentsNode, "assignment"))
	}
	return parent
}
