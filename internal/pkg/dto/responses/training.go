package responses

type TrainingSummaryReport struct {
	AdmissionID    string        `json:"admission_id"`
	SummaryFormID  string        `json:"summary_form_id"`
	ProgramCode    string        `json:"program_code"`
	FromDate       string        `json:"from_date"`
	ToDate         string        `json:"to_date"`
	Days           []TrainingDay `json:"days"`
	ExerciseRows   int           `json:"exercise_rows"`
	StretchingRows int           `json:"stretching_rows"`
	AnswersWritten int           `json:"answers_written"`
}

type TrainingDay struct {
	Date      string            `json:"date"`
	Exercises map[string]string `json:"exercises"`
}

type Performance struct {
	Performance string `json:"performance"`
	Difficulty  string `json:"difficulty"`
}

type HealthCheck struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	SessionOK bool   `json:"session_ok"`
}
