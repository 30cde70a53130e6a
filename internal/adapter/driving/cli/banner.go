package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/profit-tracker-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   ____             __ _ _     _____                _
  |  _ \ _ __ ___  / _(_) |_  |_   _| __ __ _  ___| | _____ _ __
  | |_) | '__/ _ \| |_| | __|   | || '__/ _' |/ __| |/ / _ \ '__|
  |  __/| | | (_) |  _| | |_    | || | | (_| | (__|   <  __/ |
  |_|   |_|  \___/|_| |_|\__|   |_||_|  \__,_|\___|_|\_\___|_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(blue(fmt.Sprintf("Profit Tracker CLI (v%s)", formattedVersion)))
}
