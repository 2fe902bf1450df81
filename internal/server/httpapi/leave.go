package httpapi

import "net/http"

type leaveRequestBody struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (s *Server) submitLeave(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var in leaveRequestBody
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	req, err := s.leaves.Submit(r.Context(), claims.UserID, in.Type, in.Reason, in.StartDate, in.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, toLeaveDTO(req))
}

func (s *Server) listLeaves(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	list, err := s.leaves.List(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]leaveDTO, 0, len(list))
	for i := range list {
		out = append(out, toLeaveDTO(&list[i]))
	}
	respondData(w, map[string]any{"requests": out})
}
