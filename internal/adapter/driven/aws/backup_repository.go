package aws

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/profit-tracker-go/internal/domain/repository"
)

// BackupRepositoryImpl implementa o BackupRepository com cache de configs e clientes.
type BackupRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewBackupRepository cria uma nova implementação do BackupRepository.
func NewBackupRepository() repository.BackupRepository {
	return &BackupRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func configOptions(profile, region string) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return opts
}

func (r *BackupRepositoryImpl) getAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	key := profile + "|" + region

	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[key]; ok {
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOptions(profile, region)...)
	if err != nil {
		if profile == "" {
			return aws.Config{}, fmt.Errorf("failed to load default AWS config: %w", err)
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[key] = cfg
	return cfg, nil
}

func (r *BackupRepositoryImpl) getServiceClient(ctx context.Context, profile, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s-%s", profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(cfg)
	case "s3":
		client = s3.NewFromConfig(cfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetCallerIdentity retorna o ID da conta das credenciais resolvidas.
func (r *BackupRepositoryImpl) GetCallerIdentity(ctx context.Context, profile, region string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, region, "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting caller identity: %w", err)
	}
	return aws.ToString(result.Account), nil
}

// UploadFile envia um arquivo local para s3://bucket/key.
func (r *BackupRepositoryImpl) UploadFile(ctx context.Context, profile, region, bucket, key, path string) error {
	client, err := r.getServiceClient(ctx, profile, region, "s3")
	if err != nil {
		return err
	}
	s3Client := client.(*s3.Client)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("error uploading to s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
