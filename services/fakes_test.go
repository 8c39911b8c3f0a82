package services

import (
	"ClinicDesk/models"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

// memoryAccounts enforces the same unique keys as the users indexes and
// reports violations the way the driver does.
type memoryAccounts struct {
	mu       sync.Mutex
	accounts []models.Account

	findErr   error
	createErr error
	listErr   error
}

func (m *memoryAccounts) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return m.find(func(a models.Account) bool { return a.Email == email })
}

func (m *memoryAccounts) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return m.find(func(a models.Account) bool { return a.Username == username })
}

func (m *memoryAccounts) find(match func(models.Account) bool) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, a := range m.accounts {
		if match(a) {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryAccounts) Create(ctx context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, a := range m.accounts {
		if a.Email == account.Email {
			return duplicateKey("email", account.Email)
		}
		if a.Username == account.Username {
			return duplicateKey("username", account.Username)
		}
	}
	account.ID = primitive.NewObjectID()
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *memoryAccounts) ListPublic(ctx context.Context) ([]models.PublicAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	accounts := make([]models.PublicAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, models.PublicAccount{Username: a.Username, Email: a.Email})
	}
	return accounts, nil
}

func (m *memoryAccounts) insert(account models.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = primitive.NewObjectID()
	m.accounts = append(m.accounts, account)
}

func duplicateKey(field, value string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: fmt.Sprintf(`E11000 duplicate key error collection: clinicdesk.users index: %s_1 dup key: { %s: %q }`, field, field, value),
	}}}
}

// plainHasher keeps tests fast where the bcrypt cost is irrelevant.
type plainHasher struct{ err error }

func (h plainHasher) Hash(plaintext string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plaintext, nil
}

func (h plainHasher) Verify(plaintext, hashed string) bool {
	return hashed == "hashed:"+plaintext
}

// countingHasher records how many comparisons a login performed.
type countingHasher struct {
	plainHasher
	mu       sync.Mutex
	verified []string
}

func (h *countingHasher) Verify(plaintext, hashed string) bool {
	h.mu.Lock()
	h.verified = append(h.verified, hashed)
	h.mu.Unlock()
	return h.plainHasher.Verify(plaintext, hashed)
}

type memoryAppointments struct {
	mu           sync.Mutex
	appointments []models.Appointment
	err          error
}

func (m *memoryAppointments) Create(ctx context.Context, appointment *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	appointment.ID = primitive.NewObjectID()
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *memoryAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append(make([]models.Appointment, 0, len(m.appointments)), m.appointments...), nil
}

type memoryRecords struct {
	records []models.ClinicalRecord
	err     error
}

func (m *memoryRecords) Create(ctx context.Context, record *models.ClinicalRecord) error {
	if m.err != nil {
		return m.err
	}
	record.ID = primitive.NewObjectID()
	m.records = append(m.records, *record)
	return nil
}

type memoryBillings struct {
	entries []models.BillingEntry
	err     error
}

func (m *memoryBillings) Create(ctx context.Context, entry *models.BillingEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = primitive.NewObjectID()
	m.entries = append(m.entries, *entry)
	return nil
}
