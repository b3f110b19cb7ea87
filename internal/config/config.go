package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Import
		Jobs
		Tasks
		Audit
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Import struct {
		MaxFileSizeBytes int64         // Uploads larger than this are rejected
		BatchSize        int           // Entries created between rate-limit pauses
		BatchDelay       time.Duration // Pause between batches
	}
	Jobs struct {
		Retention     time.Duration // How long terminal jobs stay pollable
		SweepSchedule string        // Cron format: "*/10 * * * *" = every 10 minutes
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Audit struct {
		RetentionDays int // Days to keep audit events (default: 30)
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Import pipeline defaults
	v.SetDefault("import_max_file_size_bytes", 20*1024*1024)
	v.SetDefault("import_batch_size", 10)
	v.SetDefault("import_batch_delay", "250ms")

	// Import job store defaults
	v.SetDefault("job_retention", "1h")
	v.SetDefault("job_sweep_schedule", "*/10 * * * *") // Every 10 minutes

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Audit defaults
	v.SetDefault("audit_retention_days", 30)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Import: Import{
			MaxFileSizeBytes: v.GetInt64("IMPORT_MAX_FILE_SIZE_BYTES"),
			BatchSize:        v.GetInt("IMPORT_BATCH_SIZE"),
			BatchDelay:       v.GetDuration("IMPORT_BATCH_DELAY"),
		},
		Jobs: Jobs{
			Retention:     v.GetDuration("JOB_RETENTION"),
			SweepSchedule: v.GetString("JOB_SWEEP_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Audit: Audit{
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
	}
}
