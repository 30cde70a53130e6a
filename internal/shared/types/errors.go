package types

import "errors"

var (
	ErrEmptySKU          = errors.New("SKU cannot be empty")
	ErrEmptyBusinessName = errors.New("business name cannot be empty")
	ErrEmptyCostName     = errors.New("cost name cannot be empty")
	ErrPeriodArchived    = errors.New("period is archived")
	ErrInvalidPeriod     = errors.New("invalid period: month must be between 1 and 12")
	ErrInvalidChannel    = errors.New("invalid channel: use ebay or woo")
	ErrSKUNotFound       = errors.New("SKU not found for this period")
	ErrNoBackupBucket    = errors.New("no backup bucket configured. Use --bucket or set backup.bucket in the config file")
)
