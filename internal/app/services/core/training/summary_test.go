package training

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func summaryTargetForm() *wsapi_dto.Form {
	return loadedForm("SF1", "DT_SUMMARY",
		arrayCell("FECHA_EJERCICIOS", 1, 1),
		arrayCell("SENTADILLA", 1, 1),
		arrayCell("PLANCHA", 1, 1),
		arrayCell("FECHA_ESTIRAMIENTOS", 2, 1),
		arrayCell("ESTIRAMIENTO_CUELLO", 2, 1),
	)
}

func TestGenerateTrainingSummary_OneRowPerDateInOrder(t *testing.T) {
	api := newFakeTrainingAPI()
	api.forms["SF1"] = summaryTargetForm()
	api.tasks = []*wsapi_dto.Task{
		api.task("T2", "2024-03-02", "10:00", "DONE", loadedForm("F2", "DT_SUMMARY_FORM", answer("SENTADILLA", "12"))),
		api.task("T1", "2024-03-01", "10:00", "DONE", loadedForm("F1", "DT_SUMMARY_FORM", answer("SENTADILLA", "10"))),
	}

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "SF1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	assert.Equal(t, 2, report.ExerciseRows)
	assert.Equal(t, 0, report.StretchingRows)
	assert.Equal(t, 4, report.AnswersWritten)
	require.Len(t, report.Days, 2)
	assert.Equal(t, "2024-03-01", report.Days[0].Date)
	assert.Equal(t, "2024-03-02", report.Days[1].Date)

	require.Equal(t, 1, api.saveCalls)
	assert.Equal(t, "SF1", api.savedForm)
	require.Len(t, api.saved, 4)

	assert.Equal(t, "FECHA_EJERCICIOS", api.saved[0].ItemCode)
	assert.Equal(t, "2024-03-01", api.saved[0].Value)
	assert.Equal(t, 1, *api.saved[0].Row)
	assert.Equal(t, "SENTADILLA", api.saved[1].ItemCode)
	assert.Equal(t, "PROGRAM{REHAB}.FORM{F1}.ITEM{SENTADILLA}.ANSWER{DESC}", api.saved[1].Value)
	assert.Equal(t, 1, *api.saved[1].Row)

	assert.Equal(t, "2024-03-02", api.saved[2].Value)
	assert.Equal(t, 2, *api.saved[2].Row)
	assert.Equal(t, "PROGRAM{REHAB}.FORM{F2}.ITEM{SENTADILLA}.ANSWER{DESC}", api.saved[3].Value)
	assert.Equal(t, 2, *api.saved[3].Row)
	assert.Empty(t, api.saved[3].ID)

	require.Len(t, api.filters, 1)
	assert.Equal(t, wsapi_dto.FilterObjectTasks, api.filters[0].ObjectType)
	assert.Equal(t, "DT_EJERCICIOS", api.filters[0].TaskCodes)
	assert.Equal(t, "2024-03-01", api.filters[0].FromDate)
	assert.Equal(t, 1000, api.maxResults[0])
}

func TestGenerateTrainingSummary_DayWithoutAnswersTakesNoRow(t *testing.T) {
	api := newFakeTrainingAPI()
	api.forms["SF1"] = summaryTargetForm()
	api.tasks = []*wsapi_dto.Task{
		api.task("T1", "2024-03-01", "", "DONE", loadedForm("F1", "DT_SUMMARY_FORM", answer("SENTADILLA", "10"))),
		api.task("T2", "2024-03-02", "", "EXPIRED"),
		api.task("T3", "2024-03-03", "", "DONE", loadedForm("F3", "DT_SUMMARY_FORM", answer("PLANCHA", "1"), answer("estiramiento_cuello", "1"))),
	}

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "SF1", "", "")
	require.NoError(t, err)

	assert.Len(t, report.Days, 3)
	assert.Equal(t, 2, report.ExerciseRows)
	assert.Equal(t, 0, report.StretchingRows, "lower case item is not declared in the stretching array")

	require.Len(t, api.saved, 4)
	assert.Equal(t, "2024-03-03", api.saved[2].Value)
	assert.Equal(t, 2, *api.saved[2].Row)
	assert.Equal(t, "PLANCHA", api.saved[3].ItemCode)
}

func TestGenerateTrainingSummary_SplitsStretchingByPrefix(t *testing.T) {
	api := newFakeTrainingAPI()
	api.forms["SF1"] = summaryTargetForm()
	api.tasks = []*wsapi_dto.Task{
		api.task("T1", "2024-03-01", "", "DONE", loadedForm("F1", "DT_SUMMARY_FORM",
			answer("ESTIRAMIENTO_CUELLO", "1"),
			answer("SENTADILLA", "10"),
			answer("UNKNOWN_ITEM", "3"),
		)),
	}

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "SF1", "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, report.ExerciseRows)
	assert.Equal(t, 1, report.StretchingRows)
	assert.Len(t, report.Days[0].Exercises, 3)

	require.Len(t, api.saved, 4)
	assert.Equal(t, "FECHA_EJERCICIOS", api.saved[0].ItemCode)
	assert.Equal(t, "SENTADILLA", api.saved[1].ItemCode)
	assert.Equal(t, "FECHA_ESTIRAMIENTOS", api.saved[2].ItemCode)
	assert.Equal(t, "ESTIRAMIENTO_CUELLO", api.saved[3].ItemCode)
	assert.Equal(t, 2, api.saved[3].Order)
}

func TestGenerateTrainingSummary_LastTaskOfADayWins(t *testing.T) {
	api := newFakeTrainingAPI()
	api.forms["SF1"] = summaryTargetForm()
	api.tasks = []*wsapi_dto.Task{
		api.task("T1", "2024-03-01", "09:00", "DONE", loadedForm("F1", "DT_SUMMARY_FORM", answer("SENTADILLA", "10"))),
		api.task("T2", "2024-03-01", "18:00", "DONE", loadedForm("F2", "DT_SUMMARY_FORM", answer("PLANCHA", "2"))),
	}

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "SF1", "", "")
	require.NoError(t, err)

	require.Len(t, report.Days, 1)
	assert.Contains(t, report.Days[0].Exercises, "PLANCHA")
	assert.NotContains(t, report.Days[0].Exercises, "SENTADILLA")
	assert.Equal(t, 1, report.ExerciseRows)
}

func TestGenerateTrainingSummary_NoTargetFormSkipsWrite(t *testing.T) {
	api := newFakeTrainingAPI()
	api.tasks = []*wsapi_dto.Task{
		api.task("T1", "2024-03-01", "", "DONE", loadedForm("F1", "DT_SUMMARY_FORM", answer("SENTADILLA", "10"))),
	}

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "MISSING", "", "")
	require.NoError(t, err)

	assert.Len(t, report.Days, 1)
	assert.Zero(t, api.saveCalls)
	assert.Zero(t, report.AnswersWritten)
}

func TestGenerateTrainingSummary_NothingToWrite(t *testing.T) {
	api := newFakeTrainingAPI()
	api.forms["SF1"] = summaryTargetForm()

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A1", "SF1", "", "")
	require.NoError(t, err)

	assert.Empty(t, report.Days)
	assert.Zero(t, api.saveCalls)
}

func TestGenerateTrainingSummary_AdmissionNotFound(t *testing.T) {
	api := newFakeTrainingAPI()
	api.admission = nil

	report, err := GenerateTrainingSummary(context.Background(), api, testTrainingCodes(), "A404", "SF1", "", "")
	assert.Nil(t, report)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
}
