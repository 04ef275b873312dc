package activity

type ActivityResponse struct {
	ID          string  `json:"id"`
	TimesheetID string  `json:"timesheet_id"`
	EventType   string  `json:"event_type"`
	ActorID     *string `json:"actor_id,omitempty"`
	Status      string  `json:"status,omitempty"`
	Note        string  `json:"note,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
}
