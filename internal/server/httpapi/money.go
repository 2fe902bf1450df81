package httpapi

import "net/http"

type addMoneyRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) addMoney(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var in addMoneyRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	balance, err := s.money.AddMoney(r.Context(), claims.UserID, in.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"balance": balance})
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	txs, err := s.money.Transactions(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"transactions": toTransactionDTOs(txs)})
}
