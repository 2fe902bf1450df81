package httpapi

import "net/http"

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	user, err := s.users.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	d, err := s.dashboard.Get(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, toDashboardDTO(d))
}
