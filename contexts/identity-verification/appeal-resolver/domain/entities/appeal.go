package entities

// AppealStatus is the lifecycle state of an appeal record.
type AppealStatus string

const (
	StatusOpen      AppealStatus = "open"
	StatusResolved  AppealStatus = "resolved"
	StatusDismissed AppealStatus = "dismissed"
)

// Appeal is the one-per-subject challenge against a rejected verification.
// The record is permanent: a resolved or dismissed appeal still blocks any
// later filing for the same subject.
type Appeal struct {
	SubjectID       string
	ReasonHash      string
	Status          AppealStatus
	HandlerID       string
	FiledAt         uint64
	ResolutionBlock uint64
}

// Open reports whether the appeal still awaits an administrator decision.
func (a Appeal) Open() bool {
	return a.Status == StatusOpen
}
