package handler

import "net/http"

//	@Summary		Spending summary
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.DashboardSummary
//	@Router			/dashboard/summary [get]
func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	sum, err := h.services.Dashboard.Summary(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

//	@Summary		Cancellation candidates
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	domain.CancelRecommendation
//	@Router			/dashboard/recommendations [get]
func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	recs, err := h.services.Dashboard.Recommendations(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

//	@Summary		Payments due soon
//	@Description	Active subscriptions billed between today and today+days. days defaults to 30, max 90.
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Param			days	query		int	false	"window in days"
//	@Success		200		{array}		domain.UpcomingPayment
//	@Failure		400		{object}	ErrorResponse
//	@Router			/dashboard/upcoming [get]
func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	days, err := queryInt(r.URL.Query(), "days")
	if err != nil {
		badRequest(w, "days", err.Error())
		return
	}

	payments, err := h.services.Dashboard.Upcoming(r.Context(), userID, days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
