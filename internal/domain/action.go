package domain

import "time"

// ActionStatus is the progress of a quick-action run.
type ActionStatus string

const (
	ActionRunning   ActionStatus = "running"
	ActionCompleted ActionStatus = "completed"
)

// QuickAction is a dashboard shortcut. Delayed actions report StartMessage
// while running and DoneMessage once finished; others complete at once.
type QuickAction struct {
	Name         string
	Description  string
	StartMessage string
	DoneMessage  string
	Delayed      bool
}

var quickActions = map[string]QuickAction{
	"emergency-alert": {Name: "emergency-alert", Description: "Send alert to all personnel", DoneMessage: "Emergency alert sent to all personnel!"},
	"evacuation":      {Name: "evacuation", Description: "Initiate evacuation procedures", DoneMessage: "Evacuation protocol initiated!"},
	"refresh-cameras": {Name: "refresh-cameras", Description: "Restart all camera feeds", StartMessage: "Refreshing all camera feeds...", DoneMessage: "All cameras refreshed successfully!", Delayed: true},
	"screenshots":     {Name: "screenshots", Description: "Capture current feeds", DoneMessage: "Screenshots captured from all active cameras!"},
	"system-status":   {Name: "system-status", Description: "Check system health", DoneMessage: "System Status: All systems operational ✅"},
	"share-link":      {Name: "share-link", Description: "Share current view", DoneMessage: "Dashboard link copied to clipboard!"},
	"optimize":        {Name: "optimize", Description: "Optimize system performance", StartMessage: "Optimizing system performance...", DoneMessage: "Performance optimization complete!", Delayed: true},
}

// LookupAction returns the quick action with the given name.
func LookupAction(name string) (QuickAction, bool) {
	a, ok := quickActions[name]
	return a, ok
}

// ActionRun records one invocation of a quick action.
type ActionRun struct {
	ID          string       `json:"id"`
	Action      string       `json:"action"`
	Status      ActionStatus `json:"status"`
	Message     string       `json:"message"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}
