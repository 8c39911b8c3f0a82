package services

import (
	"ClinicDesk/models"
	"ClinicDesk/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAppointment(t *testing.T) {
	store := &memoryAppointments{}
	svc := NewAppointmentService(store, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateAppointment(ctx, &models.Appointment{PatientName: "Jane Doe", Date: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, util.APPOINTMENT_DEFAULT, created.Status)
	assert.False(t, created.ID.IsZero())

	created, err = svc.CreateAppointment(ctx, &models.Appointment{PatientName: "Jane Doe", Date: "2025-03-02", Status: "  "})
	require.NoError(t, err)
	assert.Equal(t, util.APPOINTMENT_DEFAULT, created.Status)

	created, err = svc.CreateAppointment(ctx, &models.Appointment{PatientName: "Jane Doe", Date: "2025-03-03", Status: "Confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", created.Status)

	_, err = svc.CreateAppointment(ctx, &models.Appointment{PatientName: "Jane Doe"})
	assertAppError(t, err, util.KindValidation, util.APPOINTMENT_FIELDS_REQUIRED)

	store.err = errStoreDown
	_, err = svc.CreateAppointment(ctx, &models.Appointment{PatientName: "Jane Doe", Date: "2025-03-04"})
	assertAppError(t, err, util.KindValidation, util.ERROR_CREATING_APPOINTMENT)
}

func TestListAppointments(t *testing.T) {
	store := &memoryAppointments{}
	svc := NewAppointmentService(store, zap.NewNop())

	appointments, err := svc.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)

	_, err = svc.CreateAppointment(context.Background(), &models.Appointment{PatientName: "Jane Doe", Date: "2025-03-01"})
	require.NoError(t, err)
	appointments, err = svc.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Len(t, appointments, 1)

	store.err = errStoreDown
	_, err = svc.ListAppointments(context.Background())
	assertAppError(t, err, util.KindDependency, util.ERROR_FETCHING_APPOINTMENTS)
}

func TestCreateRecord(t *testing.T) {
	store := &memoryRecords{}
	svc := NewRecordService(store, zap.NewNop())

	created, err := svc.CreateRecord(context.Background(), &models.ClinicalRecord{PatientName: "Jane Doe", Condition: "Asthma", Medications: "Albuterol"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Len(t, store.records, 1)

	_, err = svc.CreateRecord(context.Background(), &models.ClinicalRecord{Condition: "Asthma"})
	assertAppError(t, err, util.KindValidation, util.RECORD_FIELDS_REQUIRED)

	store.err = errStoreDown
	_, err = svc.CreateRecord(context.Background(), &models.ClinicalRecord{PatientName: "Jane Doe", Condition: "Asthma"})
	assertAppError(t, err, util.KindValidation, util.ERROR_CREATING_RECORD)
}

func TestCreateBilling(t *testing.T) {
	store := &memoryBillings{}
	svc := NewBillingService(store, zap.NewNop())

	created, err := svc.CreateBilling(context.Background(), &models.BillingEntry{PatientName: "Jane Doe", Amount: models.Amount(120.5), PaymentMethod: "card"})
	require.NoError(t, err)
	require.NotNil(t, created.Amount)
	assert.Equal(t, 120.5, *created.Amount)

	insured, err := svc.CreateBilling(context.Background(), &models.BillingEntry{PatientName: "Jane Doe", Amount: models.Amount(0), PaymentMethod: "insurance"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *insured.Amount)
	assert.Len(t, store.entries, 2)

	_, err = svc.CreateBilling(context.Background(), &models.BillingEntry{PatientName: "Jane Doe", PaymentMethod: "card"})
	assertAppError(t, err, util.KindValidation, util.BILLING_FIELDS_REQUIRED)
	appErr, _ := util.AsAppError(err)
	assert.Equal(t, []string{"amount"}, fieldNames(appErr))

	store.err = errStoreDown
	_, err = svc.CreateBilling(context.Background(), &models.BillingEntry{PatientName: "Jane Doe", Amount: models.Amount(10), PaymentMethod: "cash"})
	assertAppError(t, err, util.KindValidation, util.ERROR_CREATING_BILLING)
}
