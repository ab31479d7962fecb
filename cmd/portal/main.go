// Command portal runs the grievance portal gateway.
//
//	@title						Grievance Portal Gateway
//	@version					1.0
//	@description				Session, role and complaint workflow gateway in front of the grievance API.
//	@BasePath					/
//	@securityDefinitions.apikey	SessionCookie
//	@in							header
//	@name						Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Grievance portal gateway",
	Long: `portal fronts the grievance API for the browser application.

It holds user sessions, guards routes by role, drives the complaint
review chain (CM, JE, SDO, GM) and records an audit trail.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
