package httpapi

import (
	"time"

	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/services"
)

// Wire representations. Field names are the mobile app's JSON contract and
// must not change without a coordinated client release.

const dateLayout = "2006-01-02"

type messDetailsDTO struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
}

type userDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Balance     float64         `json:"balance"`
	Address     string          `json:"address,omitempty"`
	MessDetails *messDetailsDTO `json:"messDetails,omitempty"`
}

func toUserDTO(u *models.User, mess *models.Mess) userDTO {
	dto := userDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Balance: u.Balance,
		Address: u.Address,
	}
	if mess != nil {
		dto.MessDetails = &messDetailsDTO{
			ID:          mess.ID,
			Description: mess.Description,
			Location:    mess.Location,
			Rating:      mess.Rating,
		}
	}
	return dto
}

type messDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Contact     string  `json:"contact,omitempty"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image,omitempty"`
}

func (s *Server) toMessDTO(m models.Mess) messDTO {
	dto := messDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		Contact:     m.Contact,
		Rating:      m.Rating,
	}
	if m.ImageKey != "" && s.imageBaseURL != "" {
		dto.Image = s.imageBaseURL + "/" + m.ImageKey
	}
	return dto
}

type mealFlagsDTO struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

type planDTO struct {
	ID       string       `json:"id"`
	MessID   string       `json:"messId"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Duration string       `json:"duration"`
	Meals    mealFlagsDTO `json:"meals"`
	Features []string     `json:"features,omitempty"`
}

func toPlanDTO(p *models.Plan) planDTO {
	return planDTO{
		ID:       p.ID,
		MessID:   p.MessID,
		Name:     p.Name,
		Price:    p.Price,
		Duration: p.Duration,
		Meals:    mealFlagsDTO{Breakfast: p.Breakfast, Lunch: p.Lunch, Dinner: p.Dinner},
		Features: p.Features,
	}
}

func toPlanDTOs(plans []models.Plan) []planDTO {
	out := make([]planDTO, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanDTO(&plans[i]))
	}
	return out
}

type menuItemDTO struct {
	Name string `json:"name"`
	Meal string `json:"meal"`
}

type dayMenuDTO struct {
	Day   string        `json:"day"`
	Items []menuItemDTO `json:"items"`
}

var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// groupMenuByDay shapes flat menu rows into the per-day structure the app
// renders. Days without items are omitted.
func groupMenuByDay(items []models.MenuItem) []dayMenuDTO {
	byDay := make(map[string][]menuItemDTO)
	for _, it := range items {
		byDay[it.Day] = append(byDay[it.Day], menuItemDTO{Name: it.Name, Meal: it.Meal})
	}

	out := make([]dayMenuDTO, 0, len(byDay))
	for _, day := range weekDays {
		if items, ok := byDay[day]; ok {
			out = append(out, dayMenuDTO{Day: day, Items: items})
		}
	}
	return out
}

type announcementDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Type    string `json:"type"`
}

func toAnnouncementDTOs(list []models.Announcement) []announcementDTO {
	out := make([]announcementDTO, 0, len(list))
	for _, a := range list {
		out = append(out, announcementDTO{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
			Date:    a.Date.Format(dateLayout),
			Type:    a.Type,
		})
	}
	return out
}

type feedbackDTO struct {
	ID      string  `json:"id"`
	MessID  string  `json:"messId,omitempty"`
	UserID  string  `json:"userId,omitempty"`
	Rating  float64 `json:"rating"`
	Content string  `json:"content"`
	Date    string  `json:"date,omitempty"`
}

func toFeedbackDTO(fb *models.Feedback) feedbackDTO {
	dto := feedbackDTO{
		ID:      fb.ID,
		MessID:  fb.MessID,
		UserID:  fb.UserID,
		Rating:  fb.Rating,
		Content: fb.Content,
	}
	if !fb.Date.IsZero() {
		dto.Date = fb.Date.Format(dateLayout)
	}
	return dto
}

type transactionDTO struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"type"`
	Note   string  `json:"note,omitempty"`
}

func toTransactionDTOs(list []models.Transaction) []transactionDTO {
	out := make([]transactionDTO, 0, len(list))
	for _, tx := range list {
		out = append(out, transactionDTO{
			ID:     tx.ID,
			Date:   tx.Date.Format(dateLayout),
			Amount: tx.Amount,
			Kind:   tx.Kind,
			Note:   tx.Note,
		})
	}
	return out
}

type leaveDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt,omitempty"`
}

func toLeaveDTO(lr *models.LeaveRequest) leaveDTO {
	dto := leaveDTO{
		ID:        lr.ID,
		Type:      lr.Type,
		Reason:    lr.Reason,
		StartDate: lr.StartDate,
		EndDate:   lr.EndDate,
		Status:    lr.Status,
	}
	if !lr.SubmittedAt.IsZero() {
		dto.SubmittedAt = lr.SubmittedAt.Format(time.RFC3339)
	}
	return dto
}

type dashboardDTO struct {
	Balance          float64           `json:"balance"`
	ActivePlan       *planDTO          `json:"activePlan,omitempty"`
	PendingBills     int               `json:"pendingBills"`
	UpcomingLeaves   int               `json:"upcomingLeaves"`
	Announcements    []announcementDTO `json:"announcements,omitempty"`
	TotalSubscribers int               `json:"totalSubscribers,omitempty"`
	TotalUsers       int               `json:"totalUsers,omitempty"`
	TotalMesses      int               `json:"totalMesses,omitempty"`
}

func toDashboardDTO(d *services.Dashboard) dashboardDTO {
	dto := dashboardDTO{
		Balance:          d.Balance,
		PendingBills:     d.PendingBills,
		UpcomingLeaves:   d.UpcomingLeaves,
		TotalSubscribers: d.TotalSubscribers,
		TotalUsers:       d.TotalUsers,
		TotalMesses:      d.TotalMesses,
	}
	if len(d.Announcements) > 0 {
		dto.Announcements = toAnnouncementDTOs(d.Announcements)
	}
	if d.ActivePlan != nil {
		p := toPlanDTO(d.ActivePlan)
		dto.ActivePlan = &p
	}
	return dto
}
