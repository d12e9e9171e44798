package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var dealColumns = []column[model.Deal]{
	col("ID", func(d model.Deal) string { return fmtID(d.ID) }),
	col("ENTITY", func(d model.Deal) string { return fmtID(d.EntityID) }),
	col("TYPE", func(d model.Deal) string { return d.DealType }),
	col("DATE", func(d model.Deal) string { return fmtDatePtr(d.DealDate) }),
	col("AMOUNT", func(d model.Deal) string { return fmtMoney(d.Amount) }),
	col("UPDATED", func(d model.Deal) string { return fmtTime(d.UpdatedAt) }),
}

func newDealCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deal",
		Aliases: []string{"deals"},
		Short:   "Manage deals",
	}

	cmd.AddCommand(newDealListCommand())
	cmd.AddCommand(newDealCreateCommand())
	cmd.AddCommand(newDealUpdateAmountCommand())
	cmd.AddCommand(newDealDeleteCommand())

	return cmd
}

func newDealListCommand() *cobra.Command {
	var entityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.Deal
					err  error
				)
				if entityID > 0 {
					rows, err = svc.ReadEntityDeals(ctx, entityID)
				} else {
					rows, err = svc.ReadDeals(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, dealColumns...)
			})
		},
	}

	cmd.Flags().Int64Var(&entityID, "entity", 0, "only deals of this entity")
	return cmd
}

func newDealCreateCommand() *cobra.Command {
	var (
		in   service.NewDeal
		date string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := optionalDate(date)
			if err != nil {
				return err
			}
			in.Date = d
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateDeal(ctx, in)
				if err != nil {
					return err
				}
				printCreated(cmd, "deal", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&in.EntityID, "entity", 0, "entity id")
	f.StringVar(&in.Type, "type", "", "deal type")
	f.StringVar(&date, "date", "", "date as YYYY-MM-DD")
	f.Float64Var(&in.Amount, "amount", 0, "amount")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newDealUpdateAmountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-amount <id> <amount>",
		Short: "Change the amount of a deal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateDealAmount(ctx, id, amount)
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newDealDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteDeal)
		},
	}
}
