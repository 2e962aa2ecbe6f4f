package appointment

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{"confirm de pending", CanConfirm, StatusPending, true},
		{"confirm de confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm de cancelled", CanConfirm, StatusCancelled, false},
		{"cancel de pending", CanCancel, StatusPending, true},
		{"cancel de confirmed", CanCancel, StatusConfirmed, true},
		{"cancel de completed", CanCancel, StatusCompleted, false},
		{"cancel de cancelled", CanCancel, StatusCancelled, false},
		{"complete de confirmed", CanComplete, StatusConfirmed, true},
		{"complete de pending", CanComplete, StatusPending, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.check(c.from)
			if c.allowed && err != nil {
				t.Errorf("transição deveria ser permitida, got %v", err)
			}
			if !c.allowed && err == nil {
				t.Error("transição deveria ser rejeitada")
			}
		})
	}
}

func TestStatusBlocking(t *testing.T) {
	if !StatusPending.Blocking() || !StatusConfirmed.Blocking() {
		t.Error("pending e confirmed ocupam o horário")
	}
	if StatusCancelled.Blocking() || StatusCompleted.Blocking() {
		t.Error("cancelled e completed não ocupam o horário")
	}
}
