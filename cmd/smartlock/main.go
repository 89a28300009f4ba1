package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/smartlock-inc/smartlock/internal/interfaces/cli/migrate"
	"github.com/smartlock-inc/smartlock/internal/interfaces/cli/scan"
	"github.com/smartlock-inc/smartlock/internal/interfaces/cli/server"
)

//	@title						Smartlock API
//	@version					0.1.0
//	@description				Lockers, inventory, role permissions and NFC badge enrolment.
//	@host						localhost:8000
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and a Keycloak access token.
func main() {
	rootCmd := &cobra.Command{
		Use:          "smartlock",
		Short:        "Smartlock - locker and badge management API",
		Long:         `Smartlock serves the locker, inventory, permission and NFC badge API and ships the tools to migrate its database and simulate the badge reader.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		scan.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
