package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// GetCredits returns the caller's balance and transaction history, most
// recent first. The first access seeds the signup balance.
func (h *ApiHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	balance, err := h.Credits.Balance(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	history, err := h.Credits.History(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	transactions := make([]api.CreditTransaction, len(history))
	for i := range history {
		transactions[i] = mapping.ToApiCreditTransaction(&history[i])
	}
	writeJSON(w, http.StatusOK, api.CreditsResponse{
		Balance:      balance,
		Transactions: transactions,
	})
}

// AwardCredits posts the fixed delta for an action tag to the caller.
func (h *ApiHandler) AwardCredits(w http.ResponseWriter, r *http.Request) {
	var req api.AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Credits.AwardForAction(r.Context(), middleware.UserID(r.Context()), models.CreditAction(req.Action), req.RelatedId)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	verb := "Earned"
	amount := tx.Amount
	if amount < 0 {
		verb = "Spent"
		amount = -amount
	}
	writeJSON(w, http.StatusOK, api.CreditMutationResponse{
		Message:     fmt.Sprintf("%s %d credits", verb, amount),
		Transaction: mapping.ToApiCreditTransaction(tx),
		NewBalance:  tx.BalanceAfter,
	})
}

// RedeemCredits spends credits at the caller's request.
func (h *ApiHandler) RedeemCredits(w http.ResponseWriter, r *http.Request) {
	var req api.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Credits.Redeem(r.Context(), middleware.UserID(r.Context()), req.Amount, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.CreditMutationResponse{
		Message:     fmt.Sprintf("Redeemed %d credits", req.Amount),
		Transaction: mapping.ToApiCreditTransaction(tx),
		NewBalance:  tx.BalanceAfter,
	})
}
