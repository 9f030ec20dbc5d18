package domain

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Toast struct {
	ID       string
	Message  string
	Severity Severity
}
