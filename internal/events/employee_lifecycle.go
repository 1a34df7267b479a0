package events

import "time"

const EmployeeLifecycleTopic = "directory.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee.created"
	EmployeeUpdated = "employee.updated"
	EmployeeDeleted = "employee.deleted"
)

type EmployeeEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID uint      `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEmployeeEvent(eventType string, employeeID uint) EmployeeEvent {
	return EmployeeEvent{
		EventType:  eventType,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
}
