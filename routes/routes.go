package routes

import (
	"ClinicDesk/controllers"
	"ClinicDesk/middleware"
	"ClinicDesk/observability"
	"ClinicDesk/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Dependencies struct {
	Log     *zap.Logger
	Metrics *observability.Metrics
	Origins []string

	Auth         *controllers.AuthController
	Appointments *controllers.AppointmentController
	Records      *controllers.RecordController
	Billings     *controllers.BillingController
}

/*
* Middleware runs in this order for every request, matched or not
* Observability routes are public and sit outside /api
 */
func Routes(r *gin.Engine, deps Dependencies) {
	r.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestID(),
		middleware.CountRequests(deps.Metrics),
		middleware.RequestLogger(deps.Log),
		middleware.CORS(deps.Origins),
	)

	controllers.NewHealthController(deps.Metrics).Routes(r)

	api := r.Group("/api")
	deps.Auth.Routes(api)
	deps.Appointments.Routes(api)
	deps.Records.Routes(api)
	deps.Billings.Routes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, util.MessageResponse(util.NOT_FOUND))
	})
}
