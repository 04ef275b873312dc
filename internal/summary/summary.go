// Package summary computes hour totals and groupings over time entries.
//
// Summarize is pure: callers load and filter entries, this package only adds
// them up. Hours are decimals so that total == billable + non-billable holds
// exactly.
package summary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

type Entry struct {
	ProjectID   uuid.UUID
	ProjectName string
	ClientName  string
	Date        time.Time
	Hours       decimal.Decimal
	IsBillable  bool
}

type ProjectHours struct {
	ProjectID  uuid.UUID       `json:"project_id"`
	Name       string          `json:"name"`
	ClientName string          `json:"client_name"`
	Hours      decimal.Decimal `json:"hours"`
}

type Summary struct {
	TotalHours         decimal.Decimal            `json:"total_hours"`
	BillableHours      decimal.Decimal            `json:"billable_hours"`
	NonBillableHours   decimal.Decimal            `json:"non_billable_hours"`
	BillablePercentage decimal.Decimal            `json:"billable_percentage"`
	ByDay              map[string]decimal.Decimal `json:"by_day"`
	ByProject          []ProjectHours             `json:"by_project"`
}

// Summarize aggregates entries. ByProject keeps first-seen project order and
// takes display names from the first entry of each project.
func Summarize(entries []Entry) Summary {
	s := Summary{
		TotalHours:         decimal.Zero,
		BillableHours:      decimal.Zero,
		NonBillableHours:   decimal.Zero,
		BillablePercentage: decimal.Zero,
		ByDay:              make(map[string]decimal.Decimal),
		ByProject:          []ProjectHours{},
	}

	projectIdx := make(map[uuid.UUID]int)
	for _, e := range entries {
		s.TotalHours = s.TotalHours.Add(e.Hours)
		if e.IsBillable {
			s.BillableHours = s.BillableHours.Add(e.Hours)
		}

		day := e.Date.Format(dayLayout)
		s.ByDay[day] = s.ByDay[day].Add(e.Hours)

		i, ok := projectIdx[e.ProjectID]
		if !ok {
			i = len(s.ByProject)
			projectIdx[e.ProjectID] = i
			s.ByProject = append(s.ByProject, ProjectHours{
				ProjectID:  e.ProjectID,
				Name:       e.ProjectName,
				ClientName: e.ClientName,
				Hours:      decimal.Zero,
			})
		}
		s.ByProject[i].Hours = s.ByProject[i].Hours.Add(e.Hours)
	}

	s.NonBillableHours = s.TotalHours.Sub(s.BillableHours)
	s.BillablePercentage = BillablePercentage(s.BillableHours, s.TotalHours)
	return s
}

// BillablePercentage is billable/total*100 rounded to two places, or zero
// when total is not positive.
func BillablePercentage(billable, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return billable.Mul(hundred).DivRound(total, 2)
}
