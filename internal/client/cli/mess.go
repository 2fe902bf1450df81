package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Yashraj9595/mealmate/internal/client/api"
	"github.com/Yashraj9595/mealmate/internal/client/models"
	"github.com/Yashraj9595/mealmate/internal/netx"
)

// Messes prints the mess directory.
func (a *App) Messes(ctx context.Context) error {
	messes, err := a.client.ListMesses(ctx)
	if err != nil {
		log.Printf("Mess list unavailable: %s", api.UserMessage(err))
		return err
	}

	for _, m := range messes {
		fmt.Printf("%s  %s (%s), rating %.1f\n", m.ID, m.Name, m.Location, m.Rating)
	}
	return nil
}

// Subscribe prompts for a mess ID and subscribes the caller to it.
func (a *App) Subscribe(ctx context.Context) error {
	messID, err := getSimpleText(a.reader, "Mess ID", os.Stdout)
	if err != nil {
		return err
	}
	if messID == "" {
		fmt.Println("Mess ID is required")
		return nil
	}

	if err := a.client.Subscribe(ctx, messID); err != nil {
		log.Printf("Subscription unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Println("Subscribed!")
	return nil
}

// Menu prints the weekly menu of a mess, grouped by day.
func (a *App) Menu(ctx context.Context) error {
	messID, err := getSimpleText(a.reader, "Mess ID", os.Stdout)
	if err != nil {
		return err
	}

	menu, err := a.client.GetMenu(ctx, messID)
	if err != nil {
		log.Printf("Menu unavailable: %s", api.UserMessage(err))
		return err
	}

	for _, day := range menu {
		fmt.Printf("%s:\n", day.Day)
		for _, item := range day.Items {
			fmt.Printf("  %-10s %s\n", item.Meal, item.Name)
		}
	}
	return nil
}

// Plans prints the available subscription plans.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.client.GetPlans(ctx)
	if err != nil {
		log.Printf("Plans unavailable: %s", api.UserMessage(err))
		return err
	}

	for _, p := range plans {
		var meals []string
		if p.Meals.Breakfast {
			meals = append(meals, "breakfast")
		}
		if p.Meals.Lunch {
			meals = append(meals, "lunch")
		}
		if p.Meals.Dinner {
			meals = append(meals, "dinner")
		}
		fmt.Printf("%s  %s  %.2f / %s  (%s)\n",
			p.ID, p.Name, p.Price, p.Duration, strings.Join(meals, ", "))
	}
	return nil
}

// Announcements prints notices published by the mess.
func (a *App) Announcements(ctx context.Context) error {
	items, err := a.client.GetAnnouncements(ctx)
	if err != nil {
		log.Printf("Announcements unavailable: %s", api.UserMessage(err))
		return err
	}

	for _, an := range items {
		fmt.Printf("%s [%s] %s — %s\n", an.Date, an.Type, an.Title, an.Content)
	}
	return nil
}

// Feedbacks prints ratings left by subscribers.
func (a *App) Feedbacks(ctx context.Context) error {
	items, err := a.client.GetFeedbacks(ctx)
	if err != nil {
		log.Printf("Feedbacks unavailable: %s", api.UserMessage(err))
		return err
	}

	for _, fb := range items {
		fmt.Printf("%.1f  %s\n", fb.Rating, fb.Content)
	}
	return nil
}

// SendFeedback prompts for a rating and a comment and submits them.
func (a *App) SendFeedback(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Println("Rating must be a number between 1 and 5")
		return nil
	}

	content, err := GetMultiline(a.reader, "Your comment", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.SubmitFeedback(ctx, models.Feedback{Rating: rating, Content: content}); err != nil {
		log.Printf("Feedback unsuccessful: %s", api.UserMessage(err))
		return err
	}

	fmt.Println("Thanks for your feedback!")
	return nil
}

// UploadPhoto requests a presigned upload slot and PUTs a local image
// file to it. Mess owners only; the server rejects other roles.
func (a *App) UploadPhoto(ctx context.Context) error {
	if a.currentRole() != models.RoleMessOwner {
		fmt.Println("Only mess owners can upload photos")
		return nil
	}

	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Cannot read file: %s", err.Error())
		return err
	}

	slot, err := a.client.GetPhotoUploadURL(ctx)
	if err != nil {
		log.Printf("Upload slot unavailable: %s", api.UserMessage(err))
		return err
	}

	contentType := mimeTypeForExt(filepath.Ext(path))
	if err := netx.UploadToPresignedURL(ctx, slot.UploadURL, contentType, data); err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Uploaded as %s\n", slot.Key)
	return nil
}

func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
