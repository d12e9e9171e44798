package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/service"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interaction walkthrough",
		Long: `Initialize the database, list entities, then create, read, update and
delete one interaction for entity 1, printing the table after each step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				return runDemo(ctx, cmd, svc)
			})
		},
	}
}

func runDemo(ctx context.Context, cmd *cobra.Command, svc *service.CRMService) error {
	w := cmd.OutOrStdout()

	entities, err := svc.ReadEntities(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Entities:")
	if err := printRows(cmd, entities, entityColumns...); err != nil {
		return err
	}

	date, err := service.ParseDate("2024-07-11")
	if err != nil {
		return err
	}
	id, err := svc.CreateInteraction(ctx, 1, "Phone Call", date, "Discussed project details")
	if err != nil {
		return err
	}
	printCreated(cmd, "interaction", id)

	if err := showInteractions(ctx, cmd, svc); err != nil {
		return err
	}

	n, err := svc.UpdateInteractionNotes(ctx, id, "Discussed project details and budget")
	if err != nil {
		return err
	}
	printAffected(cmd, n)
	if err := showInteractions(ctx, cmd, svc); err != nil {
		return err
	}

	n, err = svc.DeleteInteraction(ctx, id)
	if err != nil {
		return err
	}
	printAffected(cmd, n)
	return showInteractions(ctx, cmd, svc)
}

func showInteractions(ctx context.Context, cmd *cobra.Command, svc *service.CRMService) error {
	rows, err := svc.ReadInteractions(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Interactions:")
	return printRows(cmd, rows, interactionColumns...)
}
