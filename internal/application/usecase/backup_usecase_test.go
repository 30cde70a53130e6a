package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diillson/profit-tracker-go/internal/adapter/driven/csvstore"
	"github.com/diillson/profit-tracker-go/internal/domain/repository/mocks"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
	"github.com/diillson/profit-tracker-go/pkg/logger"
)

func newBackupFixture(t *testing.T) (*BackupUseCase, *mocks.MockBackupRepository, *csvstore.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBackupRepository(ctrl)
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)

	uc := NewBackupUseCase(repo, store, &fakeConsole{}, logger.Discard())
	uc.now = func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC) }
	return uc, repo, store
}

func TestBackupKey(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	assert.Equal(t, "ledger/20250203_040506/ebay_sku.csv", BackupKey("/ledger/", at, "/data/ebay_sku.csv"))
	assert.Equal(t, "20250203_040506/costs_data.csv", BackupKey("", at, "costs_data.csv"))
}

func TestRunBackupUploadsEveryFile(t *testing.T) {
	uc, repo, store := newBackupFixture(t)
	ctx := context.Background()
	opts := types.BackupOptions{Bucket: "books", Prefix: "ledger", Profile: "shop", Region: "eu-west-2"}

	repo.EXPECT().GetCallerIdentity(ctx, "shop", "eu-west-2").Return("123456789012", nil)
	for _, f := range store.Files() {
		repo.EXPECT().
			UploadFile(ctx, "shop", "eu-west-2", "books", BackupKey("ledger", uc.now(), f), f).
			Return(nil)
	}

	keys, err := uc.RunBackup(ctx, opts)
	require.NoError(t, err)
	assert.Len(t, keys, 7)
	assert.Equal(t, "ledger/20250203_040506/ebay_sku.csv", keys[0])
	assert.Equal(t, "ledger/20250203_040506/month_status.csv", keys[6])
}

func TestRunBackupRequiresBucket(t *testing.T) {
	uc, _, _ := newBackupFixture(t)
	_, err := uc.RunBackup(context.Background(), types.BackupOptions{})
	assert.ErrorIs(t, err, types.ErrNoBackupBucket)
}

func TestRunBackupStopsOnIdentityFailure(t *testing.T) {
	uc, repo, _ := newBackupFixture(t)
	repo.EXPECT().GetCallerIdentity(gomock.Any(), "", "").Return("", errors.New("expired token"))

	_, err := uc.RunBackup(context.Background(), types.BackupOptions{Bucket: "books"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired token")
}

func TestRunBackupStopsOnUploadFailure(t *testing.T) {
	uc, repo, _ := newBackupFixture(t)
	repo.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Return("1", nil)
	first := repo.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), "books", gomock.Any(), gomock.Any()).
		Return(nil)
	repo.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), "books", gomock.Any(), gomock.Any()).
		Return(errors.New("access denied")).
		After(first)

	keys, err := uc.RunBackup(context.Background(), types.BackupOptions{Bucket: "books"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ebay_sales.csv")
	assert.Len(t, keys, 1)
}
