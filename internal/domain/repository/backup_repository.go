package repository

//go:generate mockgen -source=backup_repository.go -destination=mocks/mock_backup_repository.go -package=mocks

import "context"

// BackupRepository uploads collection files to object storage.
type BackupRepository interface {
	GetCallerIdentity(ctx context.Context, profile, region string) (string, error)
	UploadFile(ctx context.Context, profile, region, bucket, key, path string) error
}
