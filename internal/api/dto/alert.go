package dto

// ActionRequest is the body of an alert action call
type ActionRequest struct {
	Action string `json:"action" validate:"required,oneof=block review resolve approve"`
}

// AlertListQuery holds alert list query parameters
type AlertListQuery struct {
	Search   string `json:"search"`
	Risk     string `json:"risk" validate:"omitempty,oneof=all high medium low"`
	Status   string `json:"status" validate:"omitempty,oneof=active under_review resolved"`
	Severity string `json:"severity" validate:"omitempty,oneof=critical high medium low"`
}

// AlertCountQuery selects one severity/status cell
type AlertCountQuery struct {
	Severity string `json:"severity" validate:"required,oneof=critical high medium low"`
	Status   string `json:"status" validate:"required,oneof=active under_review resolved"`
}

// AlertCountResponse is the size of one severity/status cell
type AlertCountResponse struct {
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Count    int    `json:"count"`
}
