package handler

import (
	"net/http"

	"github.com/mmoldabe-dev/subkeep/internal/service"
)

//	@Summary		List categories
//	@Description	System categories plus the caller's own
//	@Tags			categories
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	domain.Category
//	@Router			/categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	cats, err := h.services.Categories.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

//	@Summary		Create a category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		service.CreateCategoryRequest	true	"Category"
//	@Success		201		{object}	IDResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/categories [post]
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req service.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.services.Categories.Create(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, IDResponse{ID: id})
}

//	@Summary		Delete a category
//	@Tags			categories
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Category ID"
//	@Success		204
//	@Failure		403	{object}	ErrorResponse	"system category"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.Categories.Delete(r.Context(), userID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
