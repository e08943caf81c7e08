package resultsdomain

import "fmt"

// ProcedureName is the stored procedure that aggregates a matchday.
const ProcedureName = "process_matchday_results"

// Outcome is the decoded payload of the aggregation procedure.
type Outcome struct {
	Success             bool   `json:"success"`
	Processed           int    `json:"processed"`
	CompetitionsUpdated int    `json:"competitions_updated"`
	Errors              int    `json:"errors"`
	Error               string `json:"error,omitempty"`
}

// StatusMessage is the line shown to the administrator after a successful run.
func (o Outcome) StatusMessage() string {
	msg := fmt.Sprintf("Processed %d matches, %d competitions updated.", o.Processed, o.CompetitionsUpdated)
	if o.Errors > 0 {
		msg += fmt.Sprintf(" (%d errors)", o.Errors)
	}
	return msg
}
