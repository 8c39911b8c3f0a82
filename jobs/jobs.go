package jobs

import (
	"ClinicDesk/config"
	"ClinicDesk/hasher"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/observability"
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrSeedNotConfigured = errors.New("admin seed credentials are not configured")

type AccountSeeder interface {
	EnsureByEmail(ctx context.Context, account *models.Account) (previous *models.Account, err error)
}

/*
* Hash the configured password
* Upsert the privileged account by email
* An existing account keeps its password and is promoted to admin
* Promoting a non-admin account is logged as a warning
 */
func SeedAdminAccount(ctx context.Context, seeder AccountSeeder, h hasher.Hasher, admin config.Admin, log *zap.Logger) error {
	if admin.SeedUsername == "" || admin.SeedEmail == "" || admin.SeedPassword == "" {
		return ErrSeedNotConfigured
	}

	hash, err := h.Hash(admin.SeedPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	previous, err := seeder.EnsureByEmail(ctx, &models.Account{
		Username:     admin.SeedUsername,
		Email:        admin.SeedEmail,
		PasswordHash: hash,
		Role:         role.Admin,
	})
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	switch {
	case previous == nil:
		log.Info("Seeded admin account", zap.String("username", admin.SeedUsername))
	case previous.Role != role.Admin:
		log.Warn("Promoted existing account to admin",
			zap.String("username", previous.Username),
			zap.String("email", previous.Email),
			zap.String("previousRole", previous.Role),
			zap.Bool("knownRole", role.Valid(previous.Role)),
		)
	default:
		log.Info("Admin account already present", zap.String("username", previous.Username))
	}
	return nil
}

type SnapshotSource interface {
	Snapshot() observability.Snapshot
}

/*
* Log a metrics snapshot on the given cron schedule
* An empty schedule disables the reporter and returns a nil scheduler
 */
func StartMetricsReporter(schedule string, metrics SnapshotSource, log *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ReportMetrics(metrics, log)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule metrics reporter %q: %w", schedule, err)
	}

	c.Start()
	log.Info("Metrics reporter scheduled", zap.String("schedule", schedule))
	return c, nil
}

func ReportMetrics(metrics SnapshotSource, log *zap.Logger) {
	snapshot := metrics.Snapshot()
	log.Info("Metrics snapshot",
		zap.Float64("uptime", snapshot.Uptime),
		zap.Uint64("requests", snapshot.Requests),
		zap.String("database", snapshot.Database),
		zap.Uint64("rss", snapshot.Memory.RSS),
		zap.Uint64("heapUsed", snapshot.Memory.HeapUsed),
	)
}
