package services

import (
	"ClinicDesk/models"
	"ClinicDesk/util"
	"ClinicDesk/validation"
	"context"

	"go.uber.org/zap"
)

type ClinicalRecordStore interface {
	Create(ctx context.Context, record *models.ClinicalRecord) error
}

type RecordService struct {
	store ClinicalRecordStore
	log   *zap.Logger
}

func NewRecordService(store ClinicalRecordStore, log *zap.Logger) *RecordService {
	return &RecordService{store: store, log: log}
}

/*
* Validate patientName and condition
* Persist the record as sent
 */
func (s *RecordService) CreateRecord(ctx context.Context, record *models.ClinicalRecord) (*models.ClinicalRecord, error) {
	if fieldErrors := validation.Validate(record); fieldErrors != nil {
		return nil, rejected(s.log, util.RECORD_FIELDS_REQUIRED, fieldErrors)
	}
	if err := s.store.Create(ctx, record); err != nil {
		s.log.Error("Error creating clinical record", zap.Error(err))
		return nil, util.NewValidationError(util.ERROR_CREATING_RECORD, nil)
	}
	return record, nil
}
