package main

import (
	"fmt"
	"os"

	_ "gestao_cortinas/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Gestão de Cortinas API
// @version         1.0
// @description     Workflow of ambientes (curtain and rail orders) per obra, with measurements, mounting catalog and notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gestao-cortinas",
		Short:         "Gestão de Cortinas API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := serveCommand()
	root.AddCommand(serve, createTablesCommand(), tokenCommand())

	// Running the binary without a subcommand starts the server.
	root.RunE = serve.RunE
	return root
}
