package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	recipes "recipes_api"
	"recipes_api/internal/metrics"
	"recipes_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RecipeRequest is an exported model for Swagger docs of recipe payloads.
type RecipeRequest struct {
	// Required on create
	Name string `json:"name" example:"Chicken nuggets"`
	// Must be a JSON number
	Difficulty float64 `json:"difficulty" example:"2"`
	// Must be a JSON boolean
	Vegetarian bool `json:"vegetarian" example:"false"`
}

// readRecipeBody decodes the request into a generic object so the validator
// can see the JSON type of every field. Form values are always strings.
func readRecipeBody(c *gin.Context) (map[string]any, error) {
	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		body := make(map[string]any, len(c.Request.PostForm))
		for k, v := range c.Request.PostForm {
			if len(v) > 0 {
				body[k] = v[0]
			}
		}
		return body, nil
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// @Summary      Create recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      RecipeRequest  true  "Recipe"
// @Success      201   {object}  recipes_api.Response
// @Failure      400   {object}  recipes_api.Response
// @Failure      403   {object}  recipes_api.Response
// @Failure      500   {object}  recipes_api.Response
// @Router       /recipes [post]
// @Security     BearerAuth
func (h *Handler) saveRecipe(c *gin.Context) {
	body, err := readRecipeBody(c)
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, msgInvalidBody, "recipe_bad_request_body", err)
		return
	}
	in, err := h.validator.ValidateCreate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, recipes.Fail(err.Error()))
		return
	}

	rec, err := h.services.SaveRecipe(c.Request.Context(), in)
	metrics.ObserveRecipeOp("create", err)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgSaveFailed, "recipe_save_failed", err,
			"user_id", authenticatedUserID(c))
		return
	}
	c.JSON(http.StatusCreated, recipes.OK(rec))
}

// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  recipes_api.Response
// @Failure      500  {object}  recipes_api.Response
// @Router       /recipes [get]
func (h *Handler) allRecipes(c *gin.Context) {
	list, err := h.services.AllRecipes(c.Request.Context())
	metrics.ObserveRecipeOp("list", err)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgListFailed, "recipe_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, recipes.OK(list))
}

// @Summary      Get recipe
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  recipes_api.Response
// @Failure      400  {object}  recipes_api.Response
// @Failure      500  {object}  recipes_api.Response
// @Router       /recipes/{id} [get]
func (h *Handler) fetchRecipe(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.services.FetchByID(c.Request.Context(), id)
	metrics.ObserveRecipeOp("fetch", ignoreNotFound(err))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, recipes.OK(rec))
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusBadRequest, recipes.Fail(recipeNotFoundMessage(id)))
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgFetchFailed, "recipe_fetch_failed", err, "id", id)
	}
}

// @Summary      Update recipe
// @Description  Partial update; at least one of name, difficulty, vegetarian is required.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Recipe id"
// @Param        body  body      RecipeRequest  true  "Fields to change"
// @Success      200   {object}  recipes_api.Response
// @Failure      400   {object}  recipes_api.Response
// @Failure      403   {object}  recipes_api.Response
// @Failure      500   {object}  recipes_api.Response
// @Router       /recipes/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateRecipe(c *gin.Context) {
	id := c.Param("id")
	body, err := readRecipeBody(c)
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, msgInvalidBody, "recipe_bad_request_body", err)
		return
	}
	patch, err := h.validator.ValidateUpdate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, recipes.Fail(err.Error()))
		return
	}

	rec, err := h.services.FetchByIDAndUpdate(c.Request.Context(), id, patch)
	metrics.ObserveRecipeOp("update", ignoreNotFound(err))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, recipes.OK(rec))
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusBadRequest, recipes.Fail(recipeNotFoundMessage(id)))
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgUpdateFailed, "recipe_update_failed", err,
			"id", id, "user_id", authenticatedUserID(c))
	}
}

// @Summary      Delete recipe
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  recipes_api.Response
// @Failure      403  {object}  recipes_api.Response
// @Failure      500  {object}  recipes_api.Response
// @Router       /recipes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteRecipe(c *gin.Context) {
	id := c.Param("id")
	err := h.services.FetchByIDAndDelete(c.Request.Context(), id)
	metrics.ObserveRecipeOp("delete", err)
	if err != nil {
		// unknown ids are reported like store failures on delete
		h.logAndJSONError(c, http.StatusInternalServerError, msgDeleteFailed, "recipe_delete_failed", err,
			"id", id, "user_id", authenticatedUserID(c))
		return
	}
	c.JSON(http.StatusOK, recipes.Response{Success: true, Message: msgDeleted})
}

func ignoreNotFound(err error) error {
	if errors.Is(err, service.ErrRecipeNotFound) {
		return nil
	}
	return err
}
