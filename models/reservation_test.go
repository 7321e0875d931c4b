package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusConfirmed, ReservationStatusCheckedIn, true},
		{ReservationStatusCheckedIn, ReservationStatusCheckedOut, true},

		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusCheckedIn, ReservationStatusCancelled, true},

		// checked_out is terminal, not even cancellable
		{ReservationStatusCheckedOut, ReservationStatusCancelled, false},
		{ReservationStatusCheckedOut, ReservationStatusConfirmed, false},

		// cancelled is terminal
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},

		// no skipping stages
		{ReservationStatusPending, ReservationStatusCheckedIn, false},
		{ReservationStatusPending, ReservationStatusCheckedOut, false},
		{ReservationStatusConfirmed, ReservationStatusCheckedOut, false},

		// unknown statuses never transition
		{"nonsense", ReservationStatusConfirmed, false},
		{ReservationStatusPending, "nonsense", false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReservationKind(t *testing.T) {
	pid := uint(7)

	group := Reservation{PilgrimageID: &pid}
	if group.Kind() != ReservationKindGroup {
		t.Errorf("Kind() = %q, want group", group.Kind())
	}

	individual := Reservation{GuestName: "Maria Silva"}
	if individual.Kind() != ReservationKindIndividual {
		t.Errorf("Kind() = %q, want individual", individual.Kind())
	}
}
