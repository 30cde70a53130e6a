package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/profit-tracker-go/internal/domain/repository"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

// BackupUseCase copies every collection file to an S3 bucket.
type BackupUseCase struct {
	backupRepo repository.BackupRepository
	ledgerRepo repository.LedgerRepository
	console    types.ConsoleInterface
	log        logger.Logger
	now        func() time.Time
}

// NewBackupUseCase creates a new backup use case.
func NewBackupUseCase(
	backupRepo repository.BackupRepository,
	ledgerRepo repository.LedgerRepository,
	console types.ConsoleInterface,
	log logger.Logger,
) *BackupUseCase {
	return &BackupUseCase{
		backupRepo: backupRepo,
		ledgerRepo: ledgerRepo,
		console:    console,
		log:        log,
		now:        time.Now,
	}
}

// BackupKey builds the object key of one file: prefix/YYYYMMDD_HHMMSS/name.
func BackupKey(prefix string, at time.Time, file string) string {
	stamp := at.Format("20060102_150405")
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return path.Join(stamp, filepath.Base(file))
	}
	return path.Join(prefix, stamp, filepath.Base(file))
}

// RunBackup checks the caller identity and uploads each file, returning the written keys.
func (uc *BackupUseCase) RunBackup(ctx context.Context, opts types.BackupOptions) ([]string, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, types.ErrNoBackupBucket
	}

	status := uc.console.Status("Checking AWS credentials...")
	account, err := uc.backupRepo.GetCallerIdentity(ctx, opts.Profile, opts.Region)
	status.Stop()
	if err != nil {
		return nil, fmt.Errorf("failed to verify AWS credentials: %w", err)
	}
	uc.console.LogInfo("Backing up to s3://%s as account %s", opts.Bucket, account)

	files := uc.ledgerRepo.Files()
	at := uc.now()

	progress := uc.console.ProgressWithTotal(len(files))
	defer progress.Stop()

	keys := make([]string, 0, len(files))
	for _, file := range files {
		key := BackupKey(opts.Prefix, at, file)
		if err := uc.backupRepo.UploadFile(ctx, opts.Profile, opts.Region, opts.Bucket, key, file); err != nil {
			uc.log.WithError(err).WithField("file", file).Errorf("upload failed")
			return keys, fmt.Errorf("failed to upload %s: %w", filepath.Base(file), err)
		}
		uc.log.WithFields(logger.Fields{"bucket": opts.Bucket, "key": key}).Infof("uploaded")
		keys = append(keys, key)
		progress.Increment()
	}

	if len(keys) > 0 {
		uc.console.LogSuccess("Backed up %d files to s3://%s/%s", len(keys), opts.Bucket, path.Dir(keys[0]))
	}
	return keys, nil
}
