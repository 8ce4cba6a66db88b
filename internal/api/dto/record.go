package dto

// RecordListQuery holds the shared search and risk filter parameters
// for transactions and users
type RecordListQuery struct {
	Search string `json:"search"`
	Risk   string `json:"risk" validate:"omitempty,oneof=all high medium low"`
}
