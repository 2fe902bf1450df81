package models

// Mess is a directory entry from GET /mess/list.
type Mess struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Contact     string  `json:"contact,omitempty"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image,omitempty"`
}

// MealFlags marks which meals a plan covers.
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// Plan is a subscription plan offered by a mess.
type Plan struct {
	ID       string    `json:"id"`
	MessID   string    `json:"messId"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Duration string    `json:"duration"`
	Meals    MealFlags `json:"meals"`
	Features []string  `json:"features,omitempty"`
}

// MenuItem is a single dish on a day's menu.
type MenuItem struct {
	Name string `json:"name"`
	Meal string `json:"meal"` // breakfast, lunch or dinner
}

// DayMenu is one day of a mess menu.
type DayMenu struct {
	Day   string     `json:"day"`
	Items []MenuItem `json:"items"`
}

// Announcement is a notice published by a mess or the platform.
type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Type    string `json:"type"` // info, warning or success
}

// Feedback is a rating+comment left by a subscriber.
type Feedback struct {
	ID      string  `json:"id"`
	MessID  string  `json:"messId,omitempty"`
	UserID  string  `json:"userId,omitempty"`
	Rating  float64 `json:"rating"`
	Content string  `json:"content"`
	Date    string  `json:"date,omitempty"`
}
