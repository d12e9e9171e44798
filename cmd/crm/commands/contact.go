package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var contactColumns = []column[model.Contact]{
	col("ID", func(c model.Contact) string { return fmtID(c.ID) }),
	col("ENTITY", func(c model.Contact) string {
		if !c.Associated() {
			return "-"
		}
		return fmtID(*c.EntityID)
	}),
	col("TYPE", func(c model.Contact) string { return c.ContactType }),
	col("DATE", func(c model.Contact) string { return fmtDatePtr(c.ContactDate) }),
	col("NOTES", func(c model.Contact) string { return c.Notes }),
}

func newContactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contact",
		Aliases: []string{"contacts"},
		Short:   "Manage contact touchpoints",
	}

	cmd.AddCommand(newContactListCommand())
	cmd.AddCommand(newContactCreateCommand())
	cmd.AddCommand(newContactAssociateCommand())
	cmd.AddCommand(newContactUpdateNotesCommand())
	cmd.AddCommand(newContactDeleteCommand())

	return cmd
}

func newContactListCommand() *cobra.Command {
	var entityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.Contact
					err  error
				)
				if entityID > 0 {
					rows, err = svc.ReadEntityContacts(ctx, entityID)
				} else {
					rows, err = svc.ReadContacts(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, contactColumns...)
			})
		},
	}

	cmd.Flags().Int64Var(&entityID, "entity", 0, "only contacts of this entity")
	return cmd
}

func newContactCreateCommand() *cobra.Command {
	var (
		entityID int64
		in       service.NewContact
		date     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact, optionally linked to an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := optionalDate(date)
			if err != nil {
				return err
			}
			in.Date = d
			if entityID > 0 {
				in.EntityID = &entityID
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateContact(ctx, in)
				if err != nil {
					return err
				}
				printCreated(cmd, "contact", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.Int64Var(&entityID, "entity", 0, "entity id, can be set later with associate")
	f.StringVar(&in.Type, "type", "", "contact type")
	f.StringVar(&date, "date", "", "date as YYYY-MM-DD")
	f.StringVar(&in.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newContactAssociateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "associate <contact-id> <entity-id>",
		Short: "Link a contact to an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			contactID, err := parseID(args[0])
			if err != nil {
				return err
			}
			entityID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.AssociateContact(ctx, contactID, entityID)
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newContactUpdateNotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-notes <id> <notes>",
		Short: "Replace the notes of a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				n, err := svc.UpdateContactNotes(ctx, id, args[1])
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newContactDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byID(cmd, args[0], (*service.CRMService).DeleteContact)
		},
	}
}
