package requests

type TrainingSummary struct {
	Admission   string `json:"admission" validate:"required"`
	SummaryForm string `json:"summary_form" validate:"required"`
	FromDate    string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate      string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
}

type Compliance struct {
	Admission string `json:"admission" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type Performance struct {
	Admission string `json:"admission" validate:"required"`
	FromDate  string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"required,datetime=2006-01-02"`
}
