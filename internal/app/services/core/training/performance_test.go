package training

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/wsapi_dto"
)

func TestCalculatePerformance(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []string
		efforts     []string
		performance string
		difficulty  string
	}{
		{name: "no tasks", performance: constvars.PerformanceNoData, difficulty: constvars.DifficultyUnknown},
		{name: "only cancelled", statuses: []string{"CANCELLED"}, performance: constvars.PerformanceNoData, difficulty: constvars.DifficultyUnknown},
		{name: "all closed", statuses: []string{"DONE", "DONE"}, efforts: []string{"2", "3"}, performance: constvars.PerformanceOK, difficulty: constvars.DifficultyNone},
		{name: "closed and pending", statuses: []string{"DONE", "OPEN"}, performance: constvars.PerformanceOK1, difficulty: constvars.DifficultyNone},
		{name: "closed expired and pending", statuses: []string{"DONE", "EXPIRED", "OPEN"}, performance: constvars.PerformanceOK2, difficulty: constvars.DifficultyNone},
		{name: "closed and expired", statuses: []string{"DONE", "EXPIRED", "CANCELLED"}, performance: constvars.PerformanceOK3, difficulty: constvars.DifficultyNone},
		{name: "one pending", statuses: []string{"OPEN"}, performance: constvars.PerformanceOnePending, difficulty: constvars.DifficultyNone},
		{name: "several pending", statuses: []string{"OPEN", "OPEN"}, performance: constvars.PerformanceOnePending, difficulty: constvars.DifficultyNone},
		{name: "closed expired and several pending", statuses: []string{"DONE", "EXPIRED", "OPEN", "OPEN"}, performance: constvars.PerformanceOK2, difficulty: constvars.DifficultyNone},
		{name: "expired and pending", statuses: []string{"EXPIRED", "OPEN"}, performance: constvars.PerformanceKO, difficulty: constvars.DifficultyNone},
		{name: "only expired", statuses: []string{"EXPIRED"}, performance: constvars.PerformanceEmpty, difficulty: constvars.DifficultyNone},
		{name: "high effort reported", statuses: []string{"DONE", "DONE"}, efforts: []string{"2", "7"}, performance: constvars.PerformanceOK, difficulty: constvars.DifficultyReported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeTrainingAPI()
			for i, status := range tt.statuses {
				var forms []*wsapi_dto.Form
				if i < len(tt.efforts) {
					forms = append(forms, effortForm(fmt.Sprintf("C%d", i), tt.efforts[i]))
				}
				api.tasks = append(api.tasks, api.task(fmt.Sprintf("T%d", i), fmt.Sprintf("2024-03-%02d", i+1), "", status, forms...))
			}

			performance, err := CalculatePerformance(context.Background(), api, testTrainingCodes(), "A1", "2024-03-01", "2024-03-31")
			require.NoError(t, err)
			assert.Equal(t, tt.performance, performance.Performance)
			assert.Equal(t, tt.difficulty, performance.Difficulty)
		})
	}
}

func TestCalculatePerformance_StopsReadingEffortOnceHigh(t *testing.T) {
	api := newFakeTrainingAPI()
	api.tasks = []*wsapi_dto.Task{
		api.task("T1", "2024-03-01", "", "DONE", effortForm("C1", "8")),
		api.task("T2", "2024-03-02", "", "DONE"),
	}

	performance, err := CalculatePerformance(context.Background(), api, testTrainingCodes(), "A1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, constvars.DifficultyReported, performance.Difficulty)
	assert.Equal(t, wsapi_dto.NotLoaded, api.tasks[1].FormsState())
}

func TestCalculatePerformance_Filter(t *testing.T) {
	api := newFakeTrainingAPI()

	_, err := CalculatePerformance(context.Background(), api, testTrainingCodes(), "A1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	require.Len(t, api.filters, 1)
	assert.Equal(t, "2024-03-01", api.filters[0].FromDate)
	assert.Equal(t, "2024-03-31", api.filters[0].ToDate)
	assert.Equal(t, 25, api.maxResults[0])
}
