package services

import (
	"ClinicDesk/models"
	"ClinicDesk/util"
	"ClinicDesk/validation"
	"context"

	"go.uber.org/zap"
)

type BillingStore interface {
	Create(ctx context.Context, entry *models.BillingEntry) error
}

type BillingService struct {
	store BillingStore
	log   *zap.Logger
}

func NewBillingService(store BillingStore, log *zap.Logger) *BillingService {
	return &BillingService{store: store, log: log}
}

func (s *BillingService) CreateBilling(ctx context.Context, entry *models.BillingEntry) (*models.BillingEntry, error) {
	if fieldErrors := validation.Validate(entry); fieldErrors != nil {
		return nil, rejected(s.log, util.BILLING_FIELDS_REQUIRED, fieldErrors)
	}
	if err := s.store.Create(ctx, entry); err != nil {
		s.log.Error("Error creating billing entry", zap.Error(err))
		return nil, util.NewValidationError(util.ERROR_CREATING_BILLING, nil)
	}
	return entry, nil
}
