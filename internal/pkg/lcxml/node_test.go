package lcxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const admissionXML = `<?xml version="1.0"?>
<admission>
  <ref>1501</ref>
  <data>
    <status>ACTIVE</status>
    <age_to_display>67</age_to_display>
    <case><ref>88</ref></case>
  </data>
  <tasks>
    <task><ref>1</ref></task>
    <task><ref>2</ref></task>
  </tasks>
</admission>`

func TestNodeQueries(t *testing.T) {
	root, err := Parse(admissionXML)
	require.NoError(t, err)

	t.Run("Nested path", func(t *testing.T) {
		assert.Equal(t, "ACTIVE", root.Text("data", "status"))
		assert.Equal(t, "88", root.Text("data/case/ref"))
	})

	t.Run("Missing segments return no value", func(t *testing.T) {
		assert.Equal(t, "", root.Text("data", "missing", "deeper"))
		assert.False(t, root.Child("nothing").Exists())
		assert.Nil(t, root.Child("nothing").Int("x"))
		assert.Empty(t, root.Child("nothing").Children("task"))
	})

	t.Run("Integer coercion", func(t *testing.T) {
		age := root.Int("data/age_to_display")
		require.NotNil(t, age)
		assert.Equal(t, 67, *age)
	})

	t.Run("Repeated children keep order", func(t *testing.T) {
		tasks := root.Child("tasks").Children("task")
		require.Len(t, tasks, 2)
		assert.Equal(t, "1", tasks[0].Text("ref"))
		assert.Equal(t, "2", tasks[1].Text("ref"))
	})

	t.Run("First non-empty alternative", func(t *testing.T) {
		assert.Equal(t, "ACTIVE", root.FirstText("status", "data/status"))
	})
}

func TestParseRejectsMalformedText(t *testing.T) {
	_, err := Parse("<a><b></a>")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestDocumentBuilder(t *testing.T) {
	doc := NewDocument("task")
	doc.CreateChildNode(nil, "ref", "42")
	assignments := doc.CreateChildNode(nil, "assignments")
	assignment := doc.CreateChildNode(assignments, "assignment")
	doc.CreateChildNode(doc.CreateChildNode(assignment, "team"), "id", "LINKCARE & co")
	doc.CreateOptionalNode(nil, "hour", "")

	parsed, err := Parse(doc.String())
	require.NoError(t, err)
	assert.Equal(t, "task", parsed.Name())
	assert.Equal(t, "42", parsed.Text("ref"))
	assert.Equal(t, "LINKCARE & co", parsed.Text("assignments/assignment/team/id"))
	assert.False(t, parsed.Child("hour").Exists())
}
