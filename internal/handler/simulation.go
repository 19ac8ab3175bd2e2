package handler

import (
	"net/http"

	"github.com/mmoldabe-dev/subkeep/internal/service"
)

// simulateCancel projects totals with the given subscriptions removed.
//
//	@Summary		Simulate cancelling subscriptions
//	@Tags			simulation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Request-Id	header		string							false	"Echoed back for stale-response detection"
//	@Param			request			body		service.CancelSimulationRequest	true	"Subscriptions to cancel"
//	@Success		200				{object}	domain.SimulationResult
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/simulation/cancel [post]
func (h *Handler) simulateCancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.CancelSimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.Simulation.SimulateCancel(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// simulateAdd projects totals with one hypothetical subscription added.
//
//	@Summary		Simulate adding a subscription
//	@Tags			simulation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		service.AddSimulationRequest	true	"Virtual subscription"
//	@Success		200		{object}	domain.SimulationResult
//	@Failure		400		{object}	ErrorResponse
//	@Router			/simulation/add [post]
func (h *Handler) simulateAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.AddSimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.Simulation.SimulateAdd(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

//	@Summary		Simulate cancellations and additions together
//	@Tags			simulation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		service.CombinedSimulationRequest	true	"Scenario"
//	@Success		200		{object}	domain.SimulationResult
//	@Failure		400		{object}	ErrorResponse
//	@Router			/simulation/combined [post]
func (h *Handler) simulateCombined(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.CombinedSimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.Simulation.SimulateCombined(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// applySimulation commits a cancel scenario and opens the undo window.
//
//	@Summary		Apply a cancel simulation
//	@Tags			simulation
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	service.ApplySimulationRequest	true	"Action and subscriptions"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/simulation/apply [post]
func (h *Handler) applySimulation(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.ApplySimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.Simulation.Apply(r.Context(), userID, req); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// undoSimulation reverts the last apply if its window is still open.
//
//	@Summary		Undo the last applied simulation
//	@Tags			simulation
//	@Security		BearerAuth
//	@Success		204
//	@Failure		409	{object}	ErrorResponse	"undo_unavailable"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/simulation/undo [post]
func (h *Handler) undoSimulation(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.Simulation.Undo(r.Context(), userID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
