package domain

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectDelayed   ProjectStatus = "delayed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// Project is a piece of client work.
type Project struct {
	ProjectID      string        `json:"projectID"`
	ClientID       *string       `json:"clientID"` // Nullable
	Name           string        `json:"name"`
	Status         ProjectStatus `json:"status"`
	Progress       int           `json:"progress"`     // 0..100
	DeadlineDate   *time.Time    `json:"deadlineDate"` // Nullable
	Budget         string        `json:"budget"`       // Exact decimal text, "0" when unset
	BudgetCurrency string        `json:"budgetCurrency"`
	AuditFields
}

// IsAtDeadlineRisk reports whether an active project has passed its deadline unfinished.
func (p Project) IsAtDeadlineRisk(now time.Time) bool {
	return p.Status == ProjectActive &&
		p.DeadlineDate != nil &&
		p.DeadlineDate.Before(now) &&
		p.Progress < 100
}

// BudgetRecord returns the budget as a monetary record.
func (p Project) BudgetRecord() MonetaryRecord {
	return MonetaryRecord{Amount: p.Budget, CurrencyTag: CurrencyTagFromCode(p.BudgetCurrency)}
}
