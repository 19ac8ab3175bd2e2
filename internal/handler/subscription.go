package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/service"
)

//	@Summary		Create a subscription
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		service.SubscriptionInput	true	"Subscription data"
//	@Success		201		{object}	IDResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/subscriptions [post]
func (h *Handler) createSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input service.SubscriptionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	id, err := h.services.Subscriptions.Create(r.Context(), userID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, IDResponse{ID: id})
}

//	@Summary		Get subscription by ID
//	@Tags			subscriptions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{object}	domain.SubscriptionView
//	@Failure		404	{object}	ErrorResponse
//	@Router			/subscriptions/{id} [get]
func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sub, err := h.services.Subscriptions.GetByID(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

//	@Summary		Update a subscription
//	@Tags			subscriptions
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Subscription ID"
//	@Param			request	body	service.SubscriptionInput	true	"Subscription data"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/subscriptions/{id} [put]
func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input service.SubscriptionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.services.Subscriptions.Update(r.Context(), userID, id, input); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

//	@Summary		Delete a subscription
//	@Tags			subscriptions
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Subscription ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/subscriptions/{id} [delete]
func (h *Handler) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.Subscriptions.Delete(r.Context(), userID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

//	@Summary		List subscriptions
//	@Tags			subscriptions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status		query		string	false	"active, paused or cancelled"
//	@Param			categoryId	query		string	false	"Category ID"
//	@Param			sortBy		query		string	false	"amount, satisfaction, next_billing_date or created_at"
//	@Param			sortOrder	query		string	false	"asc or desc"
//	@Param			page		query		int		false	"Page, from 1"
//	@Param			perPage		query		int		false	"Items per page, max 100"
//	@Success		200			{object}	domain.SubscriptionPage
//	@Failure		400			{object}	ErrorResponse
//	@Router			/subscriptions [get]
func (h *Handler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := domain.SubscriptionFilter{
		Status:    domain.SubscriptionStatus(query.Get("status")),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	switch filter.Status {
	case "", domain.StatusActive, domain.StatusPaused, domain.StatusCancelled:
	default:
		badRequest(w, "status", "must be one of active, paused, cancelled")
		return
	}

	if raw := query.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(w, "categoryId", "must be a valid uuid")
			return
		}
		filter.CategoryID = &id
	}

	var err error
	if filter.Page, err = queryInt(query, "page"); err != nil {
		badRequest(w, "page", err.Error())
		return
	}
	if filter.PerPage, err = queryInt(query, "perPage"); err != nil {
		badRequest(w, "perPage", err.Error())
		return
	}

	page, err := h.services.Subscriptions.List(r.Context(), userID, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

//	@Summary		Change subscription status
//	@Tags			subscriptions
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Subscription ID"
//	@Param			request	body	service.ChangeStatusRequest	true	"Target status"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"invalid_transition"
//	@Router			/subscriptions/{id}/status [patch]
func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.ChangeStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.Subscriptions.ChangeStatus(r.Context(), userID, id, req); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
