package models

import "time"

type Mess struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Location    string
	Contact     string
	Rating      float64
	ImageKey    string
}

type Plan struct {
	ID        string
	MessID    string
	Name      string
	Price     float64
	Duration  string
	Breakfast bool
	Lunch     bool
	Dinner    bool
	Features  []string
}

type MenuItem struct {
	MessID string
	Day    string
	Meal   string
	Name   string
}

type Announcement struct {
	ID      string
	MessID  string
	Title   string
	Content string
	Type    string
	Date    time.Time
}

type Feedback struct {
	ID      string
	MessID  string
	UserID  string
	Rating  float64
	Content string
	Date    time.Time
}

// Subscription links a user to a mess. PlanID may be empty when the mess
// has no published plans yet.
type Subscription struct {
	ID     string
	UserID string
	MessID string
	PlanID string
	Since  time.Time
}
