package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Yashraj9595/mealmate/internal/client/api"
)

// ApplyLeave prompts for leave details and files an absence request.
// Dates are validated locally as YYYY-MM-DD before anything is sent.
func (a *App) ApplyLeave(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Leave type (mess/hostel)", os.Stdout)
	if err != nil {
		return err
	}
	if kind != "mess" && kind != "hostel" {
		fmt.Println("Leave type must be mess or hostel")
		return nil
	}

	start, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		fmt.Println("Invalid start date")
		return nil
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		fmt.Println("Invalid end date")
		return nil
	}
	if endDate.Before(startDate) {
		fmt.Println("End date must not be before start date")
		return nil
	}

	reason, err := GetMultiline(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.client.SubmitLeaveRequest(ctx, api.LeaveInput{
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Type:      kind,
	})
	if err != nil {
		log.Printf("Leave request unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Printf("Request %s submitted (%s)\n", req.ID, req.Status)
	return nil
}

// Leaves prints the caller's absence requests.
func (a *App) Leaves(ctx context.Context) error {
	requests, err := a.client.GetLeaveRequests(ctx)
	if err != nil {
		log.Printf("Leave requests unavailable: %s", api.UserMessage(err))
		return err
	}

	if len(requests) == 0 {
		fmt.Println("No leave requests yet")
		return nil
	}
	for _, r := range requests {
		fmt.Printf("%s  %s  %s → %s  [%s]\n", r.ID, r.Type, r.StartDate, r.EndDate, r.Status)
	}
	return nil
}
