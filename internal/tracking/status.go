package tracking

// Status is one point in the fixed order lifecycle.
type Status string

const (
	StatusPlaced     Status = "placed"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// statusOrder fixes the canonical lifecycle; every projection indexes into it.
var statusOrder = []Status{StatusPlaced, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered}

var statusLabels = map[Status]string{
	StatusPlaced:     "Order Placed",
	StatusConfirmed:  "Order Confirmed",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
}

var statusTitles = map[Status]string{
	StatusPlaced:     "Order Placed",
	StatusConfirmed:  "Order Confirmed",
	StatusProcessing: "Processing Your Order",
	StatusShipped:    "Order Shipped",
	StatusDelivered:  "Order Delivered",
}

// ParseStatus maps a wire status onto the lifecycle. Anything unknown renders
// as the initial step, the same way the storefront treats a brand-new order.
func ParseStatus(s string) Status {
	for _, st := range statusOrder {
		if string(st) == s {
			return st
		}
	}
	return StatusPlaced
}

// Index is the position of the status in the canonical order.
func (s Status) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return 0
}

// Title is the headline shown on the tracking view for this status.
func (s Status) Title() string {
	if t, ok := statusTitles[s]; ok {
		return t
	}
	return statusTitles[StatusPlaced]
}

// Terminal reports whether the lifecycle has finished. Display-only: polling
// is not required to stop on a terminal order.
func (s Status) Terminal() bool { return s == StatusDelivered }

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// Step is one row of the tracking timeline.
type Step struct {
	Status Status
	Label  string
	State  StepState
}

// Timeline projects the current status onto the five canonical steps. It is
// a pure function of the current status and carries no history.
func Timeline(current Status) []Step {
	cur := current.Index()
	steps := make([]Step, 0, len(statusOrder))
	for i, st := range statusOrder {
		state := StepPending
		switch {
		case i < cur:
			state = StepCompleted
		case i == cur:
			state = StepCurrent
		}
		steps = append(steps, Step{Status: st, Label: statusLabels[st], State: state})
	}
	return steps
}
