package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"soundthread/internal/confirm"
	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/validation"
)

type authorizeFunc func(ctx context.Context, callerID int64, target validation.Target, id int64) (services.Outcome[services.Done], error)

// confirmDeletion answers the first authorized delete request with 202 and
// runs del when the same caller repeats it before the gate expires.
func confirmDeletion(c *gin.Context, gate *confirm.Gate, target validation.Target, id int64, authorize authorizeFunc, del func() (services.Outcome[services.Done], error)) {
	callerID := middleware.CallerID(c)

	out, err := authorize(c.Request.Context(), callerID, target, id)
	if err != nil || !out.OK() {
		respond(c, http.StatusNoContent, out, err, "authorizing deletion failed")
		return
	}

	key := confirm.Key{CallerID: callerID, Kind: string(target), TargetID: id}
	if !gate.Check(key) {
		c.JSON(http.StatusAccepted, gin.H{"confirm": true})
		return
	}
	defer gate.Disarm(key)

	out, err = del()
	respond(c, http.StatusNoContent, out, err, "deletion failed")
}
