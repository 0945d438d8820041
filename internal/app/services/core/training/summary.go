package training

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

const answerReferenceFormat = "PROGRAM{%s}.FORM{%s}.ITEM{%s}.ANSWER{DESC}"

// exerciseAnswer points at the answer given to one exercise item on a day.
type exerciseAnswer struct {
	ItemCode  string
	Reference string
}

// GenerateTrainingSummary collects, for every day with a training task in
// the range, a reference to each exercise answered that day and writes them
// into the exercise and stretching arrays of the summary form. Days without
// any answer for an array do not take a row in it.
func GenerateTrainingSummary(ctx context.Context, api contracts.TrainingAPI, codes config.AppTraining, admissionID, summaryFormID, fromDate, toDate string) (*responses.TrainingSummaryReport, error) {
	admission, err := api.AdmissionGet(ctx, admissionID)
	if err != nil {
		return nil, err
	}
	if admission == nil {
		return nil, exceptions.ErrWSAPINotFound(constvars.ResourceAdmission, admissionID)
	}
	programCode := admission.Subscription.ProgramCode()

	targetForm, err := api.FormGetSummary(ctx, summaryFormID, true, false)
	if err != nil {
		return nil, err
	}

	filter := &wsapi_dto.TaskFilter{
		ObjectType: wsapi_dto.FilterObjectTasks,
		FromDate:   fromDate,
		ToDate:     toDate,
	}
	filter.SetTaskCodes(codes.TrainingTaskCode)

	tasks, err := api.AdmissionGetTaskList(ctx, admissionID, constvars.SummaryTaskLimit, 0, filter, false)
	if err != nil {
		return nil, err
	}

	days := make(map[string][]exerciseAnswer)
	for _, task := range tasks {
		answers, err := dayTrainingAnswers(ctx, api, codes, programCode, task)
		if err != nil {
			return nil, err
		}
		// the last task listed for a day wins
		days[utils.DatePart(task.Date)] = answers
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	report := &responses.TrainingSummaryReport{
		AdmissionID:   admissionID,
		SummaryFormID: summaryFormID,
		ProgramCode:   programCode,
		FromDate:      fromDate,
		ToDate:        toDate,
		Days:          make([]responses.TrainingDay, 0, len(dates)),
	}
	for _, date := range dates {
		exercises := make(map[string]string, len(days[date]))
		for _, answer := range days[date] {
			exercises[answer.ItemCode] = answer.Reference
		}
		report.Days = append(report.Days, responses.TrainingDay{Date: date, Exercises: exercises})
	}

	if targetForm == nil {
		return report, nil
	}

	isStretching := func(itemCode string) bool {
		return codes.StretchingPrefix != "" &&
			strings.HasPrefix(strings.ToUpper(itemCode), strings.ToUpper(codes.StretchingPrefix))
	}

	exercises, exerciseRows, err := fillSummaryArray(ctx, api, targetForm, codes.ExercisesArrayItem, dates, days,
		func(itemCode string) bool { return !isStretching(itemCode) })
	if err != nil {
		return nil, err
	}
	stretching, stretchingRows, err := fillSummaryArray(ctx, api, targetForm, codes.StretchingArrayItem, dates, days, isStretching)
	if err != nil {
		return nil, err
	}

	answers := append(exercises, stretching...)
	if len(answers) > 0 {
		if err := api.FormSetAllAnswers(ctx, targetForm.ID, answers, false); err != nil {
			return nil, err
		}
	}

	report.ExerciseRows = exerciseRows
	report.StretchingRows = stretchingRows
	report.AnswersWritten = len(answers)
	return report, nil
}

// dayTrainingAnswers reads the summary sub-form of a training task. Each
// answered item keeps its first position even when it is repeated.
func dayTrainingAnswers(ctx context.Context, api contracts.TrainingAPI, codes config.AppTraining, programCode string, task *wsapi_dto.Task) ([]exerciseAnswer, error) {
	form, err := task.FindForm(ctx, api, codes.SummaryFormCode)
	if err != nil || form == nil {
		return nil, err
	}
	questions, err := form.Questions(ctx, api)
	if err != nil {
		return nil, err
	}

	answers := []exerciseAnswer{}
	position := map[string]int{}
	for _, question := range questions {
		if question.ItemCode == "" {
			continue
		}
		reference := fmt.Sprintf(answerReferenceFormat, programCode, form.ID, question.ItemCode)
		if index, seen := position[question.ItemCode]; seen {
			answers[index].Reference = reference
			continue
		}
		position[question.ItemCode] = len(answers)
		answers = append(answers, exerciseAnswer{ItemCode: question.ItemCode, Reference: reference})
	}
	return answers, nil
}

// fillSummaryArray assigns one row of the array holding dateItem to every
// date with at least one accepted answer. The date cell of a row precedes
// its value cells in the returned list.
func fillSummaryArray(ctx context.Context, api contracts.TrainingAPI, form *wsapi_dto.Form, dateItem string, dates []string, days map[string][]exerciseAnswer, accept func(itemCode string) bool) ([]*wsapi_dto.Question, int, error) {
	dateQuestion, err := form.FindQuestion(ctx, api, dateItem)
	if err != nil {
		return nil, 0, err
	}
	if dateQuestion == nil || dateQuestion.ArrayRef() == nil {
		return nil, 0, nil
	}
	arrayRef := *dateQuestion.ArrayRef()

	var cells []*wsapi_dto.Question
	row := 1
	for _, date := range dates {
		var rowCells []*wsapi_dto.Question
		for _, answer := range days[date] {
			if answer.ItemCode == dateItem || !accept(answer.ItemCode) {
				continue
			}
			declared, err := form.HasArrayQuestion(ctx, api, arrayRef, answer.ItemCode)
			if err != nil {
				return nil, 0, err
			}
			if !declared {
				continue
			}
			cell, err := form.FindArrayQuestion(ctx, api, arrayRef, row, answer.ItemCode)
			if err != nil {
				return nil, 0, err
			}
			cell.Value = answer.Reference
			rowCells = append(rowCells, cell)
		}
		if len(rowCells) == 0 {
			continue
		}

		dateCell, err := form.FindArrayQuestion(ctx, api, arrayRef, row, dateItem)
		if err != nil {
			return nil, 0, err
		}
		dateCell.Value = date
		cells = append(cells, dateCell)
		cells = append(cells, rowCells...)
		row++
	}
	return cells, row - 1, nil
}
