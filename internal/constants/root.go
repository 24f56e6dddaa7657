package constants

import "time"

// ConflictType represents the type of validation conflict
type ConflictType string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName               = "routinely"
	DefaultKeyringUser    = "database-connection"
	DefaultKeyringAPIUser = "text-provider-api-key"
	DefaultConfigPath     = "~/.config/routinely/routinely.db"
	Version               = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateLabelLayout renders day records as e.g. "March 5, Tuesday"
	DateLabelLayout = "January 2, Monday"

	// Allocator constants, all in minutes from midnight
	AllocatorStartMin = 9 * 60
	RestGapMin        = 30
	MinutesPerDay     = 24 * 60

	// Routine item defaults applied during normalization
	DefaultDailyHours = 2.0
	MinDailyHours     = 0.5
	MaxDailyHours     = 12.0
	HoursIncrement    = 0.5
	DefaultSubject    = "Untitled"

	// Upper bound on the requested day count
	MaxDurationDays = 366

	// Summary closing note threshold in days
	LongPlanThresholdDays = 5

	// Backup constants
	BackupDirName    = "backups"
	BackupFilePrefix = "routinely-"
	BackupFileSuffix = ".db"
	MaxBackups       = 14

	// Server constants
	DefaultServerAddr    = "127.0.0.1:8080"
	ServerLockfileName   = "routinely-server.lock"
	ServerShutdownPeriod = 5 * time.Second

	// Text provider constants
	TextProviderNone      = "none"
	TextProviderOpenAI    = "openai"
	DefaultTextModel      = "gpt-4o-mini"
	DefaultOpenAIBaseURL  = "https://api.openai.com"
	TextProviderTimeout   = 20 * time.Second
	TextProviderRetries   = 2
	TextProviderRetryWait = 500 * time.Millisecond

	// Conflict Types
	ConflictDuplicateSubject    ConflictType = "duplicate_subject"
	ConflictInvalidHours        ConflictType = "invalid_hours"
	ConflictInvalidFocusTime    ConflictType = "invalid_focus_time"
	ConflictInvalidWindow       ConflictType = "invalid_window"
	ConflictOverlappingBlocks   ConflictType = "overlapping_blocks"
	ConflictExceedsWakingWindow ConflictType = "exceeds_waking_window"
	ConflictExceedsDay          ConflictType = "exceeds_day"

	// Session States
	StateDays SessionState = iota
	StateSummary
)
