package services

import (
	"ClinicDesk/models"
	"ClinicDesk/util"
	"ClinicDesk/validation"
	"context"
	"strings"

	"go.uber.org/zap"
)

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
}

type AppointmentService struct {
	store AppointmentStore
	log   *zap.Logger
}

func NewAppointmentService(store AppointmentStore, log *zap.Logger) *AppointmentService {
	return &AppointmentService{store: store, log: log}
}

/*
* Validate patientName and date
* Default the status when the client left it blank
* Every failure on this path is reported as a bad request
 */
func (s *AppointmentService) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if fieldErrors := validation.Validate(appointment); fieldErrors != nil {
		return nil, rejected(s.log, util.APPOINTMENT_FIELDS_REQUIRED, fieldErrors)
	}
	if strings.TrimSpace(appointment.Status) == "" {
		appointment.Status = util.APPOINTMENT_DEFAULT
	}

	if err := s.store.Create(ctx, appointment); err != nil {
		s.log.Error("Error creating appointment", zap.Error(err))
		return nil, util.NewValidationError(util.ERROR_CREATING_APPOINTMENT, nil)
	}
	return appointment, nil
}

func (s *AppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("Error fetching appointments", zap.Error(err))
		return nil, util.NewDependencyError(util.ERROR_FETCHING_APPOINTMENTS, err)
	}
	return appointments, nil
}
