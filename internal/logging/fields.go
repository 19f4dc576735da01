package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldDate       = "date"
	FieldGameID     = "game_id"
	FieldKey        = "key"
	FieldBucket     = "bucket"
	FieldCount      = "count"
	FieldBytes      = "bytes"
	FieldStatusCode = "status_code"
	FieldAttempt    = "attempt"
	FieldDurationMS = "duration_ms"
)
