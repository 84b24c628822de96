package tracking

import "testing"

func TestParseStatus(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Status
	}{
		"placed":     {in: "placed", want: StatusPlaced},
		"confirmed":  {in: "confirmed", want: StatusConfirmed},
		"processing": {in: "processing", want: StatusProcessing},
		"shipped":    {in: "shipped", want: StatusShipped},
		"delivered":  {in: "delivered", want: StatusDelivered},
		"unknown":    {in: "on_hold", want: StatusPlaced},
		"empty":      {in: "", want: StatusPlaced},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseStatus(tc.in); got != tc.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStatusIndexIsOrdered(t *testing.T) {
	prev := -1
	for _, s := range []Status{StatusPlaced, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered} {
		if s.Index() <= prev {
			t.Fatalf("index of %q (%d) not greater than previous (%d)", s, s.Index(), prev)
		}
		prev = s.Index()
	}
}

func TestTimeline(t *testing.T) {
	steps := Timeline(StatusConfirmed)

	want := []struct {
		status Status
		state  StepState
	}{
		{StatusPlaced, StepCompleted},
		{StatusConfirmed, StepCurrent},
		{StatusProcessing, StepPending},
		{StatusShipped, StepPending},
		{StatusDelivered, StepPending},
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i, w := range want {
		if steps[i].Status != w.status || steps[i].State != w.state {
			t.Fatalf("step %d = %+v, want %q/%q", i, steps[i], w.status, w.state)
		}
		if steps[i].Label == "" {
			t.Fatalf("step %d has no label", i)
		}
	}
}

func TestTimelineTerminal(t *testing.T) {
	steps := Timeline(StatusDelivered)
	for i, step := range steps[:len(steps)-1] {
		if step.State != StepCompleted {
			t.Fatalf("step %d = %q, want completed", i, step.State)
		}
	}
	if steps[len(steps)-1].State != StepCurrent {
		t.Fatalf("delivered step should be current")
	}
	if !StatusDelivered.Terminal() {
		t.Fatalf("delivered should be terminal")
	}
	if StatusShipped.Terminal() {
		t.Fatalf("shipped should not be terminal")
	}
}

func TestStatusTitle(t *testing.T) {
	if got := StatusProcessing.Title(); got != "Processing Your Order" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := Status("bogus").Title(); got != "Order Placed" {
		t.Fatalf("unknown status should fall back to the initial title, got %q", got)
	}
}
