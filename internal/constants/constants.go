package constants

import "time"

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 10 * time.Second
)

const (
	UploadFormField     = "file"
	MaxRemoteLogBytes   = 32 << 20
	MaxConcurrentParses = 4
)

// AllowedLogExtensions are matched case-insensitively.
var AllowedLogExtensions = []string{".log", ".txt"}
