package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listMesses(w http.ResponseWriter, r *http.Request) {
	list, err := s.messes.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]messDTO, 0, len(list))
	for _, m := range list {
		out = append(out, s.toMessDTO(m))
	}
	respondData(w, map[string]any{"messes": out})
}

type subscribeRequest struct {
	MessID string `json:"messId"`
	PlanID string `json:"planId"`
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var in subscribeRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	if _, err := s.messes.Subscribe(r.Context(), claims.UserID, in.MessID, in.PlanID); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, "subscribed")
}

func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.messes.Menu(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"menu": groupMenuByDay(items)})
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	plans, err := s.messes.Plans(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"plans": toPlanDTOs(plans)})
}

func (s *Server) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	list, err := s.messes.Announcements(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"announcements": toAnnouncementDTOs(list)})
}

func (s *Server) listFeedbacks(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	list, err := s.messes.Feedbacks(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]feedbackDTO, 0, len(list))
	for i := range list {
		out = append(out, toFeedbackDTO(&list[i]))
	}
	respondData(w, map[string]any{"feedbacks": out})
}

type feedbackRequest struct {
	Rating  float64 `json:"rating"`
	Content string  `json:"content"`
}

func (s *Server) submitFeedback(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var in feedbackRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	fb, err := s.messes.SubmitFeedback(r.Context(), claims.UserID, in.Rating, in.Content)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"feedback": toFeedbackDTO(fb)})
}

// photoUpload reserves a presigned upload slot and records the key against
// the caller's mess. The app then PUTs the image bytes straight to storage.
func (s *Server) photoUpload(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	key, url, err := s.photos.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "presign failed", "error", err)
		respondError(w, err)
		return
	}

	if err := s.messes.SetPhoto(r.Context(), claims.UserID, key); err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"key": key, "uploadUrl": url})
}
