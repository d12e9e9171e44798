package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var interactionColumns = []column[model.Interaction]{
	col("ID", func(i model.Interaction) string { return fmtID(i.ID) }),
	col("ENTITY", func(i model.Interaction) string { return fmtID(i.EntityID) }),
	col("TYPE", func(i model.Interaction) string { return i.InteractionType }),
	col("DATE", func(i model.Interaction) string { return fmtDate(i.InteractionDate) }),
	col("NOTES", func(i model.Interaction) string { return i.Notes }),
}

func newInteractionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interaction",
		Aliases: []string{"interactions"},
		Short:   "Log and manage interactions with entities",
	}

	cmd.AddCommand(newInteractionListCommand())
	cmd.AddCommand(newInteractionGetCommand())
	cmd.AddCommand(newInteractionCreateCommand())
	cmd.AddCommand(newInteractionUpdateNotesCommand())
	cmd.AddCommand(newInteractionDeleteCommand())

	return cmd
}

func newInteractionListCommand() *cobra.Command {
	var entityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.Interaction
					err  error
				)
				if entityID > 0 {
					rows, err = svc.ReadEntityInteractions(ctx, entityID)
				} else {
					rows, err = svc.ReadInteractions(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, interactionColumns...)
			})
		},
	}

	cmd.Flags().Int64Var(&entityID, "entity", 0, "only interactions of this entity")
	return cmd
}

func newInteractionGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				row, err := svc.ReadInteraction(ctx, id)
				if err != nil {
					return err
				}
				return printRow(cmd, row, interactionColumns...)
			})
		},
	}
}

func newInteractionCreateCommand() *cobra.Command {
	var (
		entityID int64
		kind     string
		date     string
		notes    string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Log an interaction",
		Example: `  crm interaction create --entity 1 --type "Phone Call" --date 2024-07-11 --notes "Discussed project details"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := service.ParseDate(date)
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateInteraction(ctx, entityID, kind, d, notes)
				if err != nil {
					return err
				}
				printCreated(cmd, "interaction", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&entityID, "entity", 0, "entity id")
	f.StringVar(&kind, "type", "", "interaction type, e.g. Phone Call")
	f.StringVar(&date, "date", "", "date as YYYY-MM-DD")
	f.StringVar(&notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newInteractionUpdateNotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-notes <id> <notes>",
		Short: "Replace the notes of an interaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateInteractionNotes(ctx, id, args[1])
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newInteractionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteInteraction)
		},
	}
}
