package task

import "fmt"

// Urgency is the ordinal priority tag on a task. Ordering matters:
// urgent > high > medium > low.
type Urgency string

const (
	Low    Urgency = "low"
	Medium Urgency = "medium"
	High   Urgency = "high"
	Urgent Urgency = "urgent"
)

// Urgencies lists the valid urgencies from lowest to highest.
func Urgencies() []Urgency {
	return []Urgency{Low, Medium, High, Urgent}
}

// Rank maps an urgency onto a sortable weight. Unknown values rank below low.
func (u Urgency) Rank() int {
	switch u {
	case Urgent:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

func (u Urgency) String() string {
	return string(u)
}

// ICSPriority maps urgency to the RFC 5545 PRIORITY scale.
func (u Urgency) ICSPriority() int {
	switch u {
	case Urgent:
		return 1
	case High:
		return 3
	case Medium:
		return 5
	default:
		return 7
	}
}

// ParseUrgency validates a user-supplied urgency value.
func ParseUrgency(s string) (Urgency, error) {
	switch Urgency(s) {
	case Low, Medium, High, Urgent:
		return Urgency(s), nil
	}
	return "", fmt.Errorf("task: unknown urgency %q", s)
}
