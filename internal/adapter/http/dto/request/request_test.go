package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"
)

func TestScheduleRequest_ToAssignment(t *testing.T) {
	var r ScheduleRequest
	if err := json.Unmarshal([]byte(`{"photographer_id":"p1","scheduled_date":"2026-11-02","scheduled_time":" 9:00 AM "}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := r.ToAssignment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PhotographerID == nil || *a.PhotographerID != "p1" {
		t.Fatalf("unexpected photographer %v", a.PhotographerID)
	}
	if a.Date == nil || entities.DateKey(*a.Date) != "2026-11-02" {
		t.Fatalf("unexpected date %v", a.Date)
	}
	if a.Time == nil || *a.Time != "9:00 AM" {
		t.Fatalf("unexpected time %v", a.Time)
	}

	partial := ScheduleRequest{}
	a, err = partial.ToAssignment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PhotographerID != nil || a.Date != nil || a.Time != nil {
		t.Fatalf("expected empty assignment, got %+v", a)
	}

	bad := "02/11/2026"
	_, err = ScheduleRequest{ScheduledDate: &bad}.ToAssignment()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRescheduleRequest_ToReschedule(t *testing.T) {
	r := RescheduleRequest{ScheduledDate: "2026-11-03", ScheduledTime: "11:00 AM", Reason: "rain"}
	got, err := r.ToReschedule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entities.DateKey(got.Date) != "2026-11-03" || got.Reason != "rain" {
		t.Fatalf("unexpected request %+v", got)
	}

	_, err = RescheduleRequest{ScheduledDate: "tomorrow"}.ToReschedule()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCheckoutRequest_ToInput(t *testing.T) {
	in, err := CheckoutRequest{CustomerID: "c1"}.ToInput("prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.DueDate != nil || in.PropertyID != "prop-1" {
		t.Fatalf("unexpected input %+v", in)
	}

	in, err = CheckoutRequest{DueDate: "2026-11-30"}.ToInput("prop-1")
	if err != nil || in.DueDate == nil {
		t.Fatalf("expected due date, got %+v err=%v", in, err)
	}

	if _, err := (CheckoutRequest{DueDate: "30-11-2026"}).ToInput("prop-1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRecordPaymentRequest_DecodesExactAmounts(t *testing.T) {
	var r RecordPaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":"375.10","travel_fee":0.2,"status":" PAID "}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput("o-1")
	if in.Amount.String() != "375.1" || in.TravelFee.String() != "0.2" {
		t.Fatalf("unexpected amounts %s / %s", in.Amount, in.TravelFee)
	}
	if in.Status != entities.PaymentStatusPaid {
		t.Fatalf("expected paid, got %q", in.Status)
	}
}
