package types

// CLIArgs represents the global command-line arguments after merging with
// environment and configuration file values.
type CLIArgs struct {
	ConfigFile string
	DataDir    string
	Currency   string
	LogLevel   string
	ReportName string
	ReportType []string
	Dir        string
	Backup     BackupConfig
}

// SKUInput is one SKU form submission, every numeric field still as typed by the user.
type SKUInput struct {
	SKU           string
	Category      string
	PriceAfterVAT string
	CostOfItem    string
	Packaging     string
	FeePercent    string
	FeeFlat       string
	Delivery      string
}

// SKUEdit overrides fields of a stored SKU entry. Nil fields keep the stored value.
type SKUEdit struct {
	Category      *string
	PriceAfterVAT *string
	CostOfItem    *string
	Packaging     *string
	FeePercent    *string
	FeeFlat       *string
	Delivery      *string
}

// BackupOptions selects where a backup is written.
type BackupOptions struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}
