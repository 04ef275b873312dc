package timeentry

import (
	"go-timesheet/internal/summary"

	"github.com/shopspring/decimal"
)

type CreateTimeEntryRequest struct {
	ProjectID  string           `json:"project_id" binding:"required,uuid"`
	TaskID     string           `json:"task_id" binding:"required,uuid"`
	Date       string           `json:"date" binding:"required"`
	Hours      decimal.Decimal  `json:"hours"`
	IsBillable *bool            `json:"is_billable"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Notes      string           `json:"notes" binding:"max=2000"`
}

// UpdateTimeEntryRequest only touches the fields that are present.
type UpdateTimeEntryRequest struct {
	Hours      *decimal.Decimal `json:"hours"`
	IsBillable *bool            `json:"is_billable"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Notes      *string          `json:"notes" binding:"omitempty,max=2000"`
}

type ListTimeEntriesQuery struct {
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
	ProjectID string `form:"project_id" binding:"omitempty,uuid"`
	ClientID  string `form:"client_id" binding:"omitempty,uuid"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

type WeeklySummaryQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type TimeEntryResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	ProjectID   string           `json:"project_id"`
	ProjectName string           `json:"project_name,omitempty"`
	ClientName  string           `json:"client_name,omitempty"`
	TaskID      string           `json:"task_id"`
	TaskName    string           `json:"task_name,omitempty"`
	Date        string           `json:"date"`
	Hours       decimal.Decimal  `json:"hours"`
	IsBillable  bool             `json:"is_billable"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	TimesheetID *string          `json:"timesheet_id,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

type WeeklySummaryResponse struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Summary   summary.Summary     `json:"summary"`
	Entries   []TimeEntryResponse `json:"entries"`
}
