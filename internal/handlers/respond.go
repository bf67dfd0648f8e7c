package handlers

import (
	"fmt"
	"net/http"

	recipes "recipes_api"

	"github.com/gin-gonic/gin"
)

// Client-facing messages. Store and token errors are logged, never echoed.
const (
	statusOK = "ok"

	msgEmptyCredentials     = "username or password can not be empty"
	msgIncorrectCredentials = "Incorrect username or password"
	msgLoginFailed          = "login failed."
	msgUnauthorized         = "Unauthorized"

	msgInvalidBody   = "invalid request body"
	msgSaveFailed    = "Failed to save recipes!"
	msgListFailed    = "Some error occurred while retrieving recipes."
	msgFetchFailed   = "Some error occurred while retrieving recipe details."
	msgUpdateFailed  = "An error occured while updating recipe"
	msgDeleteFailed  = "An error occured while deleting recipe"
	msgDeleted       = "Recipe successfully deleted"
	msgRouteNotFound = "Not found"
	msgInternal      = "Internal server error"
)

func recipeNotFoundMessage(id string) string {
	return fmt.Sprintf("Recipe with id %s does not exist", id)
}

// logAndJSONError logs err (when set) under logKey and writes the envelope.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, recipes.Fail(userMsg))
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	if h.log != nil {
		h.log.Errorw("http_panic_recovered", "panic", recovered, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, recipes.Fail(msgInternal))
}
