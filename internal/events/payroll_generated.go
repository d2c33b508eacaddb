package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

type PayrollGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PersonalID  string    `json:"personal_id"`
	Username    string    `json:"username"`
	SalaryYear  int       `json:"salary_year"`
	SalaryMonth int       `json:"salary_month"`
	NetSalary   string    `json:"net_salary"`
	SlipPath    string    `json:"slip_path"`
	OccurredAt  time.Time `json:"occurred_at"`
}
