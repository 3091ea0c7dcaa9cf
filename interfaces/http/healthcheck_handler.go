package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/apperror"
)

type IHealthcheckHandler interface {
	Healthcheck(c *gin.Context)
}

type HealthcheckHandler struct {
	client *mongo.Client
}

func NewHealthcheckHandler(client *mongo.Client) IHealthcheckHandler {
	return &HealthcheckHandler{client: client}
}

// Healthcheck pings the store so load balancers see backend health, not
// just process liveness.
func (healthcheckHandler *HealthcheckHandler) Healthcheck(c *gin.Context) {
	if err := healthcheckHandler.client.Ping(c.Request.Context(), nil); err != nil {
		respondError(c, apperror.Wrap(err, apperror.KindUpstream, "store unreachable"))
		return
	}
	respond(c, http.StatusOK, "OK", nil)
}
