package wsapi_dto

import "linkcare-service/internal/pkg/lcxml"

const (
	AdmissionStatusIncomplete = "INCOMPLETE"
	AdmissionStatusActive     = "ACTIVE"
	AdmissionStatusRejected   = "REJECTED"
	AdmissionStatusDischarged = "DISCHARGED"
	AdmissionStatusPaused     = "PAUSED"
	AdmissionStatusEnrolled   = "ENROLLED"
)

// AdmissionPerformance keeps the indicators published by the WS-API for an
// admission, keyed by node name.
type AdmissionPerformance struct {
	Values map[string]string
}

func ParseAdmissionPerformance(node *lcxml.Node) *AdmissionPerformance {
	performance := &AdmissionPerformance{Values: map[string]string{}}
	for _, child := range node.Elements() {
		performance.Values[child.Name()] = child.Text()
	}
	return performance
}

type Admission struct {
	ID                   string
	Status               string
	IsNewAdmission       bool
	CaseID               string
	Case                 *Case
	EnrolDate            string
	AdmissionDate        string
	DischargeRequestDate string
	DischargeDate        string
	SuspendedDate        string
	RejectedDate         string
	DateToDisplay        string
	AgeToDisplay         *int
	Subscription         *Subscription
	Performance          *AdmissionPerformance
}

func ParseAdmission(node *lcxml.Node) *Admission {
	if !node.Exists() {
		return nil
	}
	admission := &Admission{
		ID: node.Text("ref"),
		// admission_create reports the status at the top level
		Status:         node.Text("status"),
		IsNewAdmission: node.Text("type") != "EXIST",
	}

	data := node.Child("data")
	if !data.Exists() {
		return admission
	}
	if caseNode := data.Child("case"); caseNode.Exists() {
		admission.CaseID = caseNode.Text("ref")
		admission.Case = ParseCase(caseNode)
	}
	admission.EnrolDate = data.Text("enrol_date")
	admission.AdmissionDate = data.Text("admission_date")
	admission.DischargeRequestDate = data.Text("discharge_request_date")
	admission.DischargeDate = data.Text("discharge_date")
	admission.SuspendedDate = data.Text("suspended_date")
	admission.RejectedDate = data.Text("rejected_date")
	if admission.Status == "" {
		admission.Status = data.Text("status")
	}
	admission.DateToDisplay = data.Text("date_to_display")
	admission.AgeToDisplay = data.Int("age_to_display")
	admission.Subscription = ParseSubscription(data.Child("subscription"))
	admission.Performance = ParseAdmissionPerformance(node.Child("performance"))
	return admission
}
