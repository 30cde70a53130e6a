package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/diillson/profit-tracker-go/internal/domain/repository"
	"github.com/diillson/profit-tracker-go/internal/shared/types"
)

// Variáveis de ambiente reconhecidas.
const (
	EnvConfigFile = "PROFIT_TRACKER_CONFIG"
	EnvDataDir    = "PROFIT_TRACKER_DATA_DIR"
	EnvLogLevel   = "PROFIT_TRACKER_LOG_LEVEL"
	EnvCurrency   = "PROFIT_TRACKER_CURRENCY"
)

// Valores padrão quando nada é informado.
const (
	DefaultCurrency = "£"
	DefaultLogLevel = "warn"
	DefaultDataDir  = "."
)

// LoadDotEnv carrega um arquivo .env para o ambiente do processo. Arquivo ausente não é erro.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ResolveArgs mescla flags, ambiente, arquivo de configuração e padrões, nessa ordem de precedência.
// Campos vazios em args são tratados como flags não informadas.
func ResolveArgs(repo repository.ConfigRepository, args types.CLIArgs, getenv func(string) string) (types.CLIArgs, error) {
	resolved := args
	resolved.ConfigFile = firstNonEmpty(args.ConfigFile, getenv(EnvConfigFile))

	file := &types.Config{}
	if resolved.ConfigFile != "" {
		loaded, err := repo.LoadConfigFile(resolved.ConfigFile)
		if err != nil {
			return resolved, err
		}
		file = loaded
	}

	resolved.DataDir = firstNonEmpty(args.DataDir, getenv(EnvDataDir), file.DataDir, DefaultDataDir)
	resolved.LogLevel = firstNonEmpty(args.LogLevel, getenv(EnvLogLevel), file.LogLevel, DefaultLogLevel)
	resolved.Currency = firstNonEmpty(args.Currency, getenv(EnvCurrency), file.Currency, DefaultCurrency)

	resolved.ReportName = firstNonEmpty(args.ReportName, file.ReportName)
	if len(args.ReportType) == 0 {
		resolved.ReportType = file.ReportType
	}
	if len(resolved.ReportType) == 0 {
		resolved.ReportType = []string{"csv"}
	}
	resolved.Dir = firstNonEmpty(args.Dir, file.Dir)

	resolved.Backup = types.BackupConfig{
		Bucket:  firstNonEmpty(args.Backup.Bucket, file.Backup.Bucket),
		Prefix:  firstNonEmpty(args.Backup.Prefix, file.Backup.Prefix),
		Profile: firstNonEmpty(args.Backup.Profile, file.Backup.Profile),
		Region:  firstNonEmpty(args.Backup.Region, file.Backup.Region),
	}

	dataDir, err := filepath.Abs(resolved.DataDir)
	if err != nil {
		return resolved, err
	}
	resolved.DataDir = dataDir

	if resolved.Dir != "" {
		dir, err := filepath.Abs(resolved.Dir)
		if err != nil {
			return resolved, err
		}
		resolved.Dir = dir
	}

	return resolved, nil
}
