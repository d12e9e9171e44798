package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var orderColumns = []column[model.Order]{
	col("ID", func(o model.Order) string { return fmtID(o.ID) }),
	col("ENTITY", func(o model.Order) string { return fmtID(o.EntityID) }),
	col("QTY", func(o model.Order) string { return strconv.Itoa(o.Quantity) }),
	col("TOTAL", func(o model.Order) string { return fmtMoney(o.TotalAmount) }),
	col("DATE", func(o model.Order) string { return fmtDatePtr(o.OrderDate) }),
	col("STATUS", func(o model.Order) string { return string(o.Status) }),
}

func newOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Aliases: []string{"orders"},
		Short:   "Manage orders",
	}

	cmd.AddCommand(newOrderListCommand())
	cmd.AddCommand(newOrderCreateCommand())
	cmd.AddCommand(newOrderSetStatusCommand())
	cmd.AddCommand(newOrderDeleteCommand())

	return cmd
}

func newOrderListCommand() *cobra.Command {
	var entityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.Order
					err  error
				)
				if entityID > 0 {
					rows, err = svc.ReadEntityOrders(ctx, entityID)
				} else {
					rows, err = svc.ReadOrders(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, orderColumns...)
			})
		},
	}

	cmd.Flags().Int64Var(&entityID, "entity", 0, "only orders of this entity")
	return cmd
}

func newOrderCreateCommand() *cobra.Command {
	var (
		in     service.NewOrder
		date   string
		status string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := optionalDate(date)
			if err != nil {
				return err
			}
			in.Date = d
			in.Status = model.OrderStatus(status)
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateOrder(ctx, in)
				if err != nil {
					return err
				}
				printCreated(cmd, "order", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&in.EntityID, "entity", 0, "entity id")
	f.IntVar(&in.Quantity, "quantity", 1, "quantity")
	f.Float64Var(&in.TotalAmount, "total", 0, "total amount")
	f.StringVar(&date, "date", "", "date as YYYY-MM-DD")
	f.StringVar(&status, "status", string(model.OrderStatusPending), "status")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func newOrderSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Set the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateOrderStatus(ctx, id, model.OrderStatus(args[1]))
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newOrderDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteOrder)
		},
	}
}
