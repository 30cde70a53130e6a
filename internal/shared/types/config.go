package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DataDir    string       `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	Currency   string       `json:"currency" yaml:"currency" toml:"currency"`
	LogLevel   string       `json:"log_level" yaml:"log_level" toml:"log_level"`
	ReportName string       `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string     `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string       `json:"dir" yaml:"dir" toml:"dir"`
	Backup     BackupConfig `json:"backup" yaml:"backup" toml:"backup"`
}

// BackupConfig holds the S3 destination for data backups.
type BackupConfig struct {
	Bucket  string `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix  string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
	Region  string `json:"region" yaml:"region" toml:"region"`
}
