package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/repositories/repomanager"
)

func TestLeaveSubmit_CreatesPendingRequest(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	svc := NewLeaveService(m)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "u1", "mess", "going home", "2026-09-01", "2026-09-05")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if req.ID == "" || req.Status != "pending" {
		t.Fatalf("unexpected request: %+v", req)
	}

	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].Reason != "going home" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestLeaveSubmit_Validation(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	svc := NewLeaveService(m)
	ctx := context.Background()

	tests := []struct {
		name       string
		kind       string
		start, end string
	}{
		{"unknown type", "vacation", "2026-09-01", "2026-09-05"},
		{"bad start date", "mess", "01/09/2026", "2026-09-05"},
		{"bad end date", "mess", "2026-09-01", "tomorrow"},
		{"end before start", "hostel", "2026-09-05", "2026-09-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, "u1", tt.kind, "r", tt.start, tt.end)
			if !errors.Is(err, common.ErrorValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLeaveSubmit_SingleDayAllowed(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	svc := NewLeaveService(m)

	if _, err := svc.Submit(context.Background(), "u1", "hostel", "checkup", "2026-09-03", "2026-09-03"); err != nil {
		t.Errorf("single-day leave must be accepted, got %v", err)
	}
}
