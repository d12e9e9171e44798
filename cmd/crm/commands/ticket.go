package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var ticketColumns = []column[model.SupportTicket]{
	col("ID", func(t model.SupportTicket) string { return fmtID(t.ID) }),
	col("ENTITY", func(t model.SupportTicket) string { return fmtID(t.EntityID) }),
	col("SUBJECT", func(t model.SupportTicket) string { return t.Subject }),
	col("STATUS", func(t model.SupportTicket) string { return string(t.Status) }),
	col("OPENED", func(t model.SupportTicket) string { return fmtTime(t.CreatedAt) }),
	col("CLOSED", func(t model.SupportTicket) string {
		if t.ClosedAt == nil {
			return "-"
		}
		return fmtTime(*t.ClosedAt)
	}),
}

func newTicketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ticket",
		Aliases: []string{"tickets", "support"},
		Short:   "Manage support tickets",
	}

	cmd.AddCommand(newTicketListCommand())
	cmd.AddCommand(newTicketOpenCommand())
	cmd.AddCommand(newTicketSetStatusCommand())
	cmd.AddCommand(newTicketCloseCommand())
	cmd.AddCommand(newTicketDeleteCommand())

	return cmd
}

func newTicketListCommand() *cobra.Command {
	var entityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List support tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.SupportTicket
					err  error
				)
				if entityID > 0 {
					rows, err = svc.ReadEntityTickets(ctx, entityID)
				} else {
					rows, err = svc.ReadTickets(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, ticketColumns...)
			})
		},
	}

	cmd.Flags().Int64Var(&entityID, "entity", 0, "only tickets of this entity")
	return cmd
}

func newTicketOpenCommand() *cobra.Command {
	var in service.NewTicket

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a support ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.OpenTicket(ctx, in)
				if err != nil {
					return err
				}
				printCreated(cmd, "ticket", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&in.EntityID, "entity", 0, "entity id")
	f.StringVar(&in.Subject, "subject", "", "subject")
	f.StringVar(&in.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newTicketSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Set the status of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateTicketStatus(ctx, id, model.SupportStatus(args[1]))
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newTicketCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).CloseTicket)
		},
	}
}

func newTicketDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteTicket)
		},
	}
}
