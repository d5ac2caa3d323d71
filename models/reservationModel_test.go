package models

import (
	"errors"
	"testing"
	"time"
)

func openReservation(t *testing.T) *Reservation {
	t.Helper()
	reservation, err := newReservation("R1000", testCustomer(t), 2, at(18, 0), 2*time.Hour, "", at(9, 0))
	if err != nil {
		t.Fatalf("newReservation() error: %v", err)
	}
	return reservation
}

func TestTransitionLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Reservation)
		to      ReservationStatus
		wantErr bool
	}{
		{name: "openToSeated", prepare: func(r *Reservation) {}, to: ReservationSeated},
		{name: "openToCancelled", prepare: func(r *Reservation) {}, to: ReservationCancelled},
		{name: "seatedToCompleted", prepare: func(r *Reservation) { _ = r.MarkSeated(at(18, 0)) }, to: ReservationCompleted},
		{name: "seatedToCancelled", prepare: func(r *Reservation) { _ = r.MarkSeated(at(18, 0)) }, to: ReservationCancelled},
		{name: "openToCompleted", prepare: func(r *Reservation) {}, to: ReservationCompleted, wantErr: true},
		{name: "seatedToOpen", prepare: func(r *Reservation) { _ = r.MarkSeated(at(18, 0)) }, to: ReservationOpen, wantErr: true},
		{
			name:    "completedIsTerminal",
			prepare: func(r *Reservation) { _ = r.MarkSeated(at(18, 0)); _ = r.MarkCompleted(at(20, 0)) },
			to:      ReservationSeated,
			wantErr: true,
		},
		{
			name:    "cancelledIsTerminal",
			prepare: func(r *Reservation) { _ = r.Cancel(at(17, 0)) },
			to:      ReservationSeated,
			wantErr: true,
		},
		{
			name:    "cancelTwice",
			prepare: func(r *Reservation) { _ = r.Cancel(at(17, 0)) },
			to:      ReservationCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := openReservation(t)
			tt.prepare(reservation)
			err := reservation.Transition(tt.to, at(20, 30))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("Transition(%q) error = %v, want ErrInvalidTransition", tt.to, err)
				}
			} else if err != nil {
				t.Errorf("Transition(%q) error = %v", tt.to, err)
			}
		})
	}
}

func TestCancelClearsTableAssignment(t *testing.T) {
	reservation := openReservation(t)
	reservation.assignTable(3, at(9, 30))
	if err := reservation.Cancel(at(10, 0)); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if reservation.TableID != nil {
		t.Errorf("TableID = %d, want nil after cancel", *reservation.TableID)
	}
}

func TestTransitionUpdatesLastModified(t *testing.T) {
	reservation := openReservation(t)
	before := reservation.LastModified
	if err := reservation.MarkSeated(at(18, 5)); err != nil {
		t.Fatalf("MarkSeated() error: %v", err)
	}
	if !reservation.LastModified.After(before) {
		t.Errorf("LastModified = %v, want after %v", reservation.LastModified, before)
	}
}

func TestSameStatusIsNoOp(t *testing.T) {
	reservation := openReservation(t)
	before := reservation.LastModified
	if err := reservation.Transition(ReservationOpen, at(19, 0)); err != nil {
		t.Fatalf("Transition(Open) on Open error: %v", err)
	}
	if !reservation.LastModified.Equal(before) {
		t.Errorf("LastModified changed on no-op transition")
	}
}

func TestEndTime(t *testing.T) {
	reservation := openReservation(t)
	want := at(20, 0)
	if got := reservation.EndTime(); !got.Equal(want) {
		t.Errorf("EndTime() = %v, want %v", got, want)
	}
}

func TestParseReservationStatus(t *testing.T) {
	tests := []struct {
		value string
		want  ReservationStatus
		ok    bool
	}{
		{value: "Open", want: ReservationOpen, ok: true},
		{value: "Seated", want: ReservationSeated, ok: true},
		{value: "Completed", want: ReservationCompleted, ok: true},
		{value: "Cancelled", want: ReservationCancelled, ok: true},
		{value: "seated", ok: false},
		{value: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseReservationStatus(tt.value)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseReservationStatus(%q) = %q, %v, want %q, %v", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}
