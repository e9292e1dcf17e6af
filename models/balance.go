package models

// LeaveBalance is the computed leave allowance of one applicant.
type LeaveBalance struct {
	Name      string `json:"name"`
	Allowance int    `json:"allowance"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}
