package main

import (
	"fmt"
	"strings"

	"gestao_cortinas/internal/adapter/persistence/repository"
	"gestao_cortinas/internal/infrastructure/config"
	"gestao_cortinas/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func createTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables",
		Short: "Create the DynamoDB tables and indexes (existing tables are left untouched)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			created, err := repository.CreateTables(cmd.Context(), ddb, repository.TableNames{
				Ambientes:    cfg.AmbientesTable,
				Obras:        cfg.ObrasTable,
				Usuarios:     cfg.UsuariosTable,
				Notificacoes: cfg.NotificacoesTable,
				Montagens:    cfg.MontagensTable,
			})
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all tables already exist")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created: %s\n", strings.Join(created, ", "))
			return nil
		},
	}
}
