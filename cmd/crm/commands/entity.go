package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var entityColumns = []column[model.Entity]{
	col("ID", func(e model.Entity) string { return fmtID(e.ID) }),
	col("NAME", model.Entity.FullName),
	col("EMAIL", func(e model.Entity) string { return e.Email }),
	col("PHONE", func(e model.Entity) string { return e.Phone }),
	col("CITY", func(e model.Entity) string { return e.Address.City }),
	col("ROLE", func(e model.Entity) string { return string(e.Role) }),
	col("CREATED", func(e model.Entity) string { return fmtTime(e.CreatedAt) }),
}

func newEntityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entity",
		Aliases: []string{"entities"},
		Short:   "Manage customer and staff records",
	}

	cmd.AddCommand(newEntityListCommand())
	cmd.AddCommand(newEntityGetCommand())
	cmd.AddCommand(newEntityCreateCommand())
	cmd.AddCommand(newEntitySetContactCommand())
	cmd.AddCommand(newEntitySetPasswordCommand())
	cmd.AddCommand(newEntityDeleteCommand())

	return cmd
}

func newEntityListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				rows, err := svc.ReadEntities(ctx)
				if err != nil {
					return err
				}
				return printRows(cmd, rows, entityColumns...)
			})
		},
	}
}

func newEntityGetCommand() *cobra.Command {
	var byEmail bool

	cmd := &cobra.Command{
		Use:   "get <id|email>",
		Short: "Show one entity with its access levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					e   *model.Entity
					err error
				)
				if byEmail {
					e, err = svc.ReadEntityByEmail(ctx, args[0])
				} else {
					id, perr := parseID(args[0])
					if perr != nil {
						return perr
					}
					e, err = svc.ReadEntity(ctx, id)
				}
				if err != nil {
					return err
				}

				levels, err := svc.EntityAccessLevels(ctx, e.ID)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(levels))
				for _, l := range levels {
					names = append(names, l.LevelName)
				}

				cols := append(append([]column[model.Entity]{}, entityColumns...),
					col("USERNAME", func(e model.Entity) string { return e.Credentials.Username }),
					col("ACCESS", func(model.Entity) string { return joinOrDash(names) }),
				)
				return printRow(cmd, e, cols...)
			})
		},
	}

	cmd.Flags().BoolVar(&byEmail, "email", false, "look the entity up by email")
	return cmd
}

func newEntityCreateCommand() *cobra.Command {
	var in service.NewEntity
	var role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an entity",
		Example: `  crm entity create --first-name Jane --last-name Roe --email jane@example.com
  crm entity create --first-name Sam --last-name Lee --email sam@example.com \
    --role staff --username slee --password 's3cret-pass'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Role = model.EntityRole(role)
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateEntity(ctx, in)
				if err != nil {
					return err
				}
				printCreated(cmd, "entity", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.FirstName, "first-name", "", "first name")
	f.StringVar(&in.LastName, "last-name", "", "last name")
	f.StringVar(&in.Email, "email", "", "email, unique")
	f.StringVar(&in.Phone, "phone", "", "phone")
	addAddressFlags(cmd, &in.Address)
	f.StringVar(&role, "role", string(model.EntityRoleCustomer), "customer or staff")
	f.StringVar(&in.Username, "username", "", "login name")
	f.StringVar(&in.Password, "password", "", "password, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newEntitySetContactCommand() *cobra.Command {
	var (
		phone string
		addr  model.PostalAddress
	)

	cmd := &cobra.Command{
		Use:   "set-contact <id>",
		Short: "Replace phone and address of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateEntityContact(ctx, id, phone, addr)
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone")
	addAddressFlags(cmd, &addr)
	return cmd
}

func newEntitySetPasswordCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password <id>",
		Short: "Replace the password hash of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.SetEntityPassword(ctx, id, password)
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "new password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newEntityDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entity without dependent rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteEntity)
		},
	}
}

func addAddressFlags(cmd *cobra.Command, addr *model.PostalAddress) {
	f := cmd.Flags()
	f.StringVar(&addr.Street, "address", "", "street address")
	f.StringVar(&addr.City, "city", "", "city")
	f.StringVar(&addr.State, "state", "", "state")
	f.StringVar(&addr.ZipCode, "zip", "", "zip code")
	f.StringVar(&addr.Country, "country", "", "country")
}

// byID - общий RunE для команд, меняющих одну строку по ключу.
func byID(cmd *cobra.Command, arg string, op func(*service.CRMService, context.Context, int64) (int64, error)) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
		n, err := op(svc, ctx, id)
		if err != nil {
			return err
		}
		printAffected(cmd, n)
		return nil
	})
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
