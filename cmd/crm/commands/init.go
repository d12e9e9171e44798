package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/service"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the schema and sample rows",
		Long: `Create all tables and, unless --no-seed is given, insert the sample
entity, the Admin/User/Guest access levels and their definitions.

A database that already has the schema is left unchanged.`,
		Example: `  # Initialize a file database
  crm init --db crm.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.CountEntities(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "database ready, %d entities\n", n)
				return nil
			})
		},
	}
}
