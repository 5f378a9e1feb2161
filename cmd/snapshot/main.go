package main

import (
	"context"
	"flag"
	"log"

	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/pkg/logger"
	"tenderdesk-be/internal/repository/implementation"
	"tenderdesk-be/internal/service"
	"tenderdesk-be/pkg/database"
	"tenderdesk-be/pkg/lock"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
)

// Operator tool: run a snapshot pass or a dedup sweep by hand, without
// waiting for the scheduler. Shares the Redis lock with running instances
// so a manual run cannot race the nightly one.
func main() {
	force := flag.Bool("force", false, "bypass the one-per-day duplicate guard")
	dedup := flag.Bool("dedup", false, "only run the duplicate sweep, no capture")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		color.Yellow("Redis unreachable (%v), continuing without the cross-instance lock", err)
		rdb = nil
	}

	svc := service.NewSnapshotService(
		implementation.NewSnapshotRepository(db),
		implementation.NewLiveSessionRepository(db),
		implementation.NewEmployeeRepository(db),
		implementation.NewActivityLogRepository(db),
		implementation.NewSettingsRepository(db),
		lock.NewRedisLocker(rdb),
		nil, // no settings subscription for a one-shot run
		"",
		nil, // no summary mail from the CLI
		nil, // no event bus
		cfg.Snapshot,
		logger.NewZapLogger(cfg.App.LogFilePath, false),
	)

	ctx := context.Background()

	if *dedup {
		removed := svc.RemoveDuplicateSnapshots(ctx)
		color.Green("Dedup sweep finished: %d duplicate snapshot(s) removed", removed)
		return
	}

	res, err := svc.RunNow(ctx, *force)
	if err != nil {
		color.Red("Snapshot run failed: %v", err)
		return
	}

	color.Cyan("Snapshot run for %s", res.Date)
	color.Green("  created:   %d", res.SnapshotsCreated)
	color.Green("  absences:  %d", res.AbsencesRecorded)
	color.Yellow("  skipped:   %d", res.SkippedExisting)
	if res.Failures > 0 {
		color.Red("  failures:  %d", res.Failures)
	}
}
