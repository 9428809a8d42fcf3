package repository

import "time"

// FindLogsOptions holds filter parameters for FindLogs.
type FindLogsOptions struct {
	Between []time.Time
}

// FindTemplatesOptions holds filter parameters for FindTemplates.
type FindTemplatesOptions struct {
	Shop string
}
