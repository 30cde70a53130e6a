package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	assert.Empty(t, configOptions("", ""))
	assert.Len(t, configOptions("shop", ""), 1)

	var lo config.LoadOptions
	for _, opt := range configOptions("shop", "eu-west-2") {
		require.NoError(t, opt(&lo))
	}
	assert.Equal(t, "shop", lo.SharedConfigProfile)
	assert.Equal(t, "eu-west-2", lo.Region)
}

func TestGetServiceClientCachesClients(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	repo := NewBackupRepository().(*BackupRepositoryImpl)
	ctx := context.Background()

	first, err := repo.getServiceClient(ctx, "", "eu-west-2", "s3")
	require.NoError(t, err)
	second, err := repo.getServiceClient(ctx, "", "eu-west-2", "s3")
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = repo.getServiceClient(ctx, "", "eu-west-2", "ec2")
	assert.ErrorContains(t, err, "unsupported service")
}
