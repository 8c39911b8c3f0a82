package controllers

import (
	"ClinicDesk/models"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}

type AppointmentController struct {
	appointments AppointmentService
}

func NewAppointmentController(appointments AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

func (a *AppointmentController) Routes(router gin.IRouter) {
	appointment := router.Group("/appointments")
	{
		appointment.GET("", a.FetchAllAppointments)
		appointment.POST("", a.CreateAppointment)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func (a *AppointmentController) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if !bindJSON(c, &appointment) {
		return
	}
	created, err := a.appointments.CreateAppointment(c.Request.Context(), &appointment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a *AppointmentController) FetchAllAppointments(c *gin.Context) {
	appointments, err := a.appointments.ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
