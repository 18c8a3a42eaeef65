package main

import (
	"fmt"
	"time"

	"gestao_cortinas/internal/adapter/http/middleware"
	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func tokenCommand() *cobra.Command {
	var (
		userID string
		nome   string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			actor := entities.Actor{ID: userID, Nome: nome, Role: entities.Role(role)}
			if !actor.Role.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}
			token, err := middleware.IssueToken(cfg.JWTSecret, actor, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (sub claim)")
	cmd.Flags().StringVar(&nome, "nome", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(entities.RoleGerente), "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
