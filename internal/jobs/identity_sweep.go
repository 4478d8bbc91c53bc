// File: internal/jobs/identity_sweep.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"gitmeet_backend/internal/config"
	"gitmeet_backend/internal/user"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdentityLister is the slice of the user repository the sweep consumes.
type IdentityLister interface {
	ListIdentities(ctx context.Context) ([]user.Identity, error)
}

// IdentitySweepJob periodically scans for GitHub usernames that resolve to
// more than one user record. Such rows come from the documented race between
// the login lookup and the conditional create; the sweep reports them so an
// operator can merge the accounts. It never resolves duplicates itself.
type IdentitySweepJob struct {
	identities    IdentityLister
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewIdentitySweepJob creates a new IdentitySweepJob.
func NewIdentitySweepJob(
	identities IdentityLister,
	cfg *config.Config,
	logger *zap.Logger,
) *IdentitySweepJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &IdentitySweepJob{
		identities:    identities,
		logger:        logger.Named("IdentitySweepJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *IdentitySweepJob) SetupAndStart() error {
	jobSpec := j.cfg.IdentitySweepSchedule
	if jobSpec == "" {
		j.logger.Warn("Identity sweep schedule not defined (IDENTITY_SWEEP_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule identity sweep job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Identity sweep job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *IdentitySweepJob) runJob() {
	j.logger.Info("Starting identity sweep run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	duplicates, err := j.Sweep(ctx)
	if err != nil {
		j.logger.Error("Identity sweep run failed", zap.Error(err))
		return
	}
	j.logger.Info("Identity sweep run completed", zap.Int("duplicate_usernames", duplicates))
}

// Sweep scans all identities and logs every username held by more than one
// user record. Returns the number of duplicated usernames.
func (j *IdentitySweepJob) Sweep(ctx context.Context) (int, error) {
	identities, err := j.identities.ListIdentities(ctx)
	if err != nil {
		return 0, err
	}

	byUsername := make(map[string][]string)
	for _, id := range identities {
		byUsername[id.Username] = append(byUsername[id.Username], id.ID)
	}

	duplicates := 0
	for username, ids := range byUsername {
		if len(ids) > 1 {
			duplicates++
			j.logger.Error("Duplicate identity detected",
				zap.String("username", username),
				zap.Strings("userIDs", ids))
		}
	}
	return duplicates, nil
}

// Stop gracefully stops the cron scheduler.
func (j *IdentitySweepJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping identity sweep scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Identity sweep scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Identity sweep scheduler stop timed out.")
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
