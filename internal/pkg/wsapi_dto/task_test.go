package wsapi_dto

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkcare-service/internal/pkg/lcxml"
)

type fakeActivityLoader struct {
	calls int
	forms []*Form
	err   error
}

func (l *fakeActivityLoader) TaskActivityList(ctx context.Context, taskID string) ([]*Form, error) {
	l.calls++
	return l.forms, l.err
}

func parseTask(t *testing.T, text string) *Task {
	node, err := lcxml.Parse(text)
	require.NoError(t, err)
	return ParseTask(node)
}

func TestParseTask(t *testing.T) {
	task := parseTask(t, `<task>
  <ref>3001</ref>
  <refs><task_code>DT_EJERCICIOS</task_code></refs>
  <name>Exercises</name>
  <date>2024-03-05 10:30:00</date>
  <duration>45</duration>
  <status>DONE</status>
  <locked>y</locked>
  <admission><ref>1501</ref></admission>
  <case><ref>88</ref></case>
  <assignments>
    <assignment><team><id>7</id></team><role><id>47</id></role><user><id></id></user></assignment>
  </assignments>
</task>`)

	assert.Equal(t, "3001", task.ID)
	assert.Equal(t, "DT_EJERCICIOS", task.TaskCode)
	assert.Equal(t, "2024-03-05", task.Date)
	assert.Equal(t, "10:30:00", task.Hour)
	require.NotNil(t, task.Duration)
	assert.Equal(t, 45, *task.Duration)
	assert.True(t, task.Locked)
	assert.Equal(t, "1501", task.AdmissionID)
	assert.Equal(t, "88", task.CaseID)
	require.Len(t, task.Assignments, 1)
	assert.Equal(t, RoleService, task.Assignments[0].RoleID)
	assert.Equal(t, NotLoaded, task.FormsState())
	assert.True(t, task.IsClosed())
}

func TestParseTaskPrefersExplicitHourAndCode(t *testing.T) {
	task := parseTask(t, `<task><ref>1</ref><code>A</code><refs><task_code>B</task_code></refs><date>2024-03-05 10:30:00</date><hour>08:00</hour></task>`)

	assert.Equal(t, "A", task.TaskCode)
	assert.Equal(t, "08:00", task.Hour)
	assert.Nil(t, task.Duration)
}

func TestTaskFindForm(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads activities once", func(t *testing.T) {
		task := parseTask(t, `<task><ref>1</ref></task>`)
		loader := &fakeActivityLoader{forms: []*Form{{ID: "10", FormCode: "DT_SUMMARY_FORM"}, {ID: "11", FormCode: "DT_LEGS_CONTENT"}}}

		byCode, err := task.FindForm(ctx, loader, "DT_SUMMARY_FORM")
		require.NoError(t, err)
		assert.Equal(t, "10", byCode.ID)

		byID, err := task.FindForm(ctx, loader, "11")
		require.NoError(t, err)
		assert.Equal(t, "DT_LEGS_CONTENT", byID.FormCode)

		missing, err := task.FindForm(ctx, loader, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, missing)
		assert.Equal(t, 1, loader.calls)
	})

	t.Run("Embedded forms are not fetched", func(t *testing.T) {
		task := parseTask(t, `<task><ref>1</ref><forms><form><ref>10</ref><form_code>X</form_code></form></forms></task>`)
		loader := &fakeActivityLoader{}

		form, err := task.FindForm(ctx, loader, "X")
		require.NoError(t, err)
		assert.Equal(t, "10", form.ID)
		assert.Zero(t, loader.calls)
	})

	t.Run("Loader failure propagates", func(t *testing.T) {
		task := parseTask(t, `<task><ref>1</ref></task>`)
		loader := &fakeActivityLoader{err: errors.New("boom")}

		_, err := task.FindForm(ctx, loader, "X")
		assert.EqualError(t, err, "boom")
		assert.Equal(t, NotLoaded, task.FormsState())
	})
}

func TestTaskToXML(t *testing.T) {
	task := &Task{ID: "3001", Status: TaskStatusDone, Duration: intPtr(30)}
	task.SetDate("2024-03-05 12:00:00")
	task.AddAssignment(NewTaskAssignment(RoleCaseManager, "7", ""))
	task.AddAssignment(nil)

	doc := lcxml.NewDocument("task")
	task.ToXML(doc, nil)
	node, err := lcxml.Parse(doc.String())
	require.NoError(t, err)

	assert.Equal(t, "3001", node.Text("ref"))
	assert.Equal(t, "2024-03-05", node.Text("date"))
	assert.False(t, node.Child("hour").Exists())
	assert.Equal(t, "30", node.Text("duration"))
	assert.Equal(t, "13", node.Text("status"))
	assert.Equal(t, "false", node.Text("locked"))

	assignments := node.Child("assignments").Children("assignment")
	require.Len(t, assignments, 1)
	assert.Equal(t, "7", assignments[0].Text("team/id"))
	assert.Equal(t, "24", assignments[0].Text("role/id"))
	assert.True(t, assignments[0].Child("user/id").Exists())

	reparsed := ParseTask(node)
	assert.Equal(t, task.Date, reparsed.Date)
	assert.Equal(t, *task.Duration, *reparsed.Duration)
	assert.Equal(t, task.Assignments, reparsed.Assignments)
}

func TestTaskStatusClassification(t *testing.T) {
	custom := StatusSets{Open: []string{"todo"}, Closed: []string{"finished"}, Expired: []string{"late"}, Cancelled: []string{"void"}}

	testCases := []struct {
		status    string
		open      bool
		closed    bool
		expired   bool
		cancelled bool
	}{
		{status: "TODO", open: true},
		{status: "finished", closed: true},
		{status: "Late", expired: true},
		{status: "void", cancelled: true},
		{status: ""},
	}

	for _, testCase := range testCases {
		task := &Task{Status: testCase.status}
		task.SetStatusClassifier(custom)
		assert.Equal(t, testCase.open, task.IsOpen(), testCase.status)
		assert.Equal(t, testCase.closed, task.IsClosed(), testCase.status)
		assert.Equal(t, testCase.expired, task.IsExpired(), testCase.status)
		assert.Equal(t, testCase.cancelled, task.IsCancelled(), testCase.status)
	}

	defaulted := &Task{Status: TaskStatusNotDone}
	assert.True(t, defaulted.IsOpen())
}

func TestTaskFilterString(t *testing.T) {
	filter := &TaskFilter{ObjectType: FilterObjectTasks, FromDate: "2024-03-01", ToDate: "2024-03-31"}
	filter.SetTaskCodes("DT_EJERCICIOS", "DT_EXTRA")

	assert.JSONEq(t, `{"object_type":"TASKS","from_date":"2024-03-01","to_date":"2024-03-31","task_codes":"DT_EJERCICIOS,DT_EXTRA"}`, filter.String())

	var empty *TaskFilter
	assert.Equal(t, "", empty.String())
}
