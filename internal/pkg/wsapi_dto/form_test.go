package wsapi_dto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkcare-service/internal/pkg/lcxml"
)

type fakeFormLoader struct {
	calls int
	form  *Form
	err   error
}

func (l *fakeFormLoader) FormGetSummary(ctx context.Context, formID string, withQuestions, asClosed bool) (*Form, error) {
	l.calls++
	return l.form, l.err
}

const summaryFormXML = `<form>
  <ref>700</ref>
  <code>TRAINING_SUMMARY</code>
  <data>
    <short_name>Summary</short_name>
    <name>Training summary</name>
    <parent_id>12</parent_id>
    <status>OPEN</status>
    <questions>
      <question>
        <question_id>9001</question_id>
        <item_code>FECHA_EJERCICIOS</item_code>
        <question_template_id>31</question_template_id>
        <order>4</order>
        <row>1</row>
        <column>1</column>
        <type>DATE</type>
      </question>
      <question>
        <question_id>9002</question_id>
        <item_code>SENTADILLAS</item_code>
        <question_template_id>32</question_template_id>
        <order>4</order>
        <row>1</row>
        <column>2</column>
        <type>TEXT</type>
        <value>old</value>
        <options><option><option_id>1</option_id><description>Yes</description></option></options>
      </question>
      <question>
        <question_id>9003</question_id>
        <item_code>COMMENTS</item_code>
        <order>2</order>
        <type>TEXT_AREA</type>
      </question>
    </questions>
  </data>
</form>`

func parseForm(t *testing.T, text string) *Form {
	node, err := lcxml.Parse(text)
	require.NoError(t, err)
	return ParseForm(node)
}

func TestParseForm(t *testing.T) {
	form := parseForm(t, summaryFormXML)

	assert.Equal(t, "700", form.ID)
	assert.Equal(t, "TRAINING_SUMMARY", form.FormCode)
	assert.Equal(t, "Summary", form.Name)
	require.NotNil(t, form.ParentID)
	assert.Equal(t, 12, *form.ParentID)
	assert.Equal(t, Loaded, form.QuestionsState())
	require.Len(t, form.LoadedQuestions(), 3)

	comments := form.LoadedQuestions()[2]
	assert.False(t, comments.InArray())
	assert.Nil(t, comments.ArrayRef())
}

func TestParseFormWithoutQuestionsIsNotLoaded(t *testing.T) {
	form := parseForm(t, `<form><ref>5</ref><form_code>DT_SUMMARY_FORM</form_code><name>Day</name></form>`)

	assert.Equal(t, "DT_SUMMARY_FORM", form.FormCode)
	assert.Equal(t, "Day", form.Name)
	assert.Equal(t, NotLoaded, form.QuestionsState())
}

func TestFormQuestionsLoadOnce(t *testing.T) {
	form := parseForm(t, `<form><ref>5</ref></form>`)
	loader := &fakeFormLoader{form: parseForm(t, summaryFormXML)}

	questions, err := form.Questions(context.Background(), loader)
	require.NoError(t, err)
	assert.Len(t, questions, 3)

	_, err = form.Questions(context.Background(), loader)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, Loaded, form.QuestionsState())
}

func TestFormFindQuestion(t *testing.T) {
	form := parseForm(t, summaryFormXML)
	loader := &fakeFormLoader{}

	byItem, err := form.FindQuestion(context.Background(), loader, "COMMENTS")
	require.NoError(t, err)
	require.NotNil(t, byItem)
	assert.Equal(t, "9003", byItem.ID)

	byTemplate, err := form.FindQuestion(context.Background(), loader, "32")
	require.NoError(t, err)
	assert.Equal(t, "9002", byTemplate.ID)

	missing, err := form.FindQuestion(context.Background(), loader, "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Zero(t, loader.calls)
}

func TestFormFindArrayQuestion(t *testing.T) {
	ctx := context.Background()
	loader := &fakeFormLoader{}

	t.Run("Existing row", func(t *testing.T) {
		form := parseForm(t, summaryFormXML)
		question, err := form.FindArrayQuestion(ctx, loader, 4, 1, "SENTADILLAS")
		require.NoError(t, err)
		assert.Equal(t, "9002", question.ID)
		assert.Equal(t, "old", question.Value)
	})

	t.Run("New row cloned from first row", func(t *testing.T) {
		form := parseForm(t, summaryFormXML)
		question, err := form.FindArrayQuestion(ctx, loader, 4, 3, "SENTADILLAS")
		require.NoError(t, err)
		assert.Empty(t, question.ID)
		assert.Empty(t, question.Value)
		assert.Equal(t, 3, *question.Row)
		assert.Equal(t, 2, *question.Column)
		assert.Equal(t, "SENTADILLAS", question.ItemCode)
		require.Len(t, question.Options, 1)

		question.Options[0].Description = "changed"
		original := form.LoadedQuestions()[1]
		assert.Equal(t, "Yes", original.Options[0].Description)
		assert.Equal(t, 1, *original.Row)
		assert.Len(t, form.LoadedQuestions(), 3)
	})

	t.Run("Unknown item creates a bare cell", func(t *testing.T) {
		form := parseForm(t, summaryFormXML)
		question, err := form.FindArrayQuestion(ctx, loader, 4, 2, "PLANCHAS")
		require.NoError(t, err)
		assert.Equal(t, "PLANCHAS", question.ItemCode)
		assert.Equal(t, 4, *question.ArrayRef())
		assert.Equal(t, 2, *question.Row)
		assert.Nil(t, question.Column)
	})

	t.Run("Other arrays are ignored", func(t *testing.T) {
		form := parseForm(t, summaryFormXML)
		question, err := form.FindArrayQuestion(ctx, loader, 5, 1, "SENTADILLAS")
		require.NoError(t, err)
		assert.Empty(t, question.ID)
		assert.Equal(t, 5, *question.ArrayRef())
	})
}

func TestQuestionToXML(t *testing.T) {
	t.Run("Array cell uses item code and column", func(t *testing.T) {
		question := &Question{ID: "77", ItemCode: "SENTADILLAS", QuestionTemplateID: "32", Order: 4, Column: intPtr(2), Type: QuestionTypeText, Value: "10"}
		question.SetRow(2)

		doc := lcxml.NewDocument("question")
		question.ToXML(doc, nil)
		node, err := lcxml.Parse(doc.String())
		require.NoError(t, err)

		assert.Equal(t, "SENTADILLAS", node.Text("question_id"))
		assert.Equal(t, "2", node.Text("column"))
		assert.Equal(t, "10", node.Text("value"))
		assert.Equal(t, "", node.Text("option_id"))
	})

	t.Run("Array cell without item code uses template id", func(t *testing.T) {
		question := &Question{QuestionTemplateID: "32", Row: intPtr(1), Column: intPtr(3)}

		doc := lcxml.NewDocument("question")
		question.ToXML(doc, nil)
		node, err := lcxml.Parse(doc.String())
		require.NoError(t, err)

		assert.Equal(t, "32", node.Text("question_id"))
	})

	t.Run("Option types send the value as option id", func(t *testing.T) {
		question := &Question{ID: "55", Type: QuestionTypeSelect, Value: "3"}

		doc := lcxml.NewDocument("question")
		question.ToXML(doc, nil)
		node, err := lcxml.Parse(doc.String())
		require.NoError(t, err)

		assert.Equal(t, "55", node.Text("question_id"))
		assert.False(t, node.Child("column").Exists())
		assert.Equal(t, "", node.Text("value"))
		assert.Equal(t, "3", node.Text("option_id"))
	})
}

func intPtr(value int) *int {
	return &value
}
