package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

var levelColumns = []column[model.AccessLevel]{
	col("ID", func(l model.AccessLevel) string { return fmtID(l.ID) }),
	col("NAME", func(l model.AccessLevel) string { return l.LevelName }),
}

var definitionColumns = []column[model.AccessDefinition]{
	col("ID", func(d model.AccessDefinition) string { return fmtID(d.ID) }),
	col("LEVEL", func(d model.AccessDefinition) string { return fmtID(d.LevelID) }),
	col("TYPE", func(d model.AccessDefinition) string { return d.EntityType }),
	col("READ", func(d model.AccessDefinition) string { return strconv.FormatBool(d.CanRead) }),
	col("WRITE", func(d model.AccessDefinition) string { return strconv.FormatBool(d.CanWrite) }),
	col("DELETE", func(d model.AccessDefinition) string { return strconv.FormatBool(d.CanDelete) }),
}

func newAccessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Manage access levels, definitions and grants",
		Long: `Access levels and their per-type capabilities are stored as data only;
nothing in the store enforces them.`,
	}

	cmd.AddCommand(newAccessLevelsCommand())
	cmd.AddCommand(newAccessAddLevelCommand())
	cmd.AddCommand(newAccessDefinitionsCommand())
	cmd.AddCommand(newAccessDefineCommand())
	cmd.AddCommand(newAccessGrantCommand())
	cmd.AddCommand(newAccessRevokeCommand())
	cmd.AddCommand(newAccessShowCommand())

	return cmd
}

func newAccessLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List access levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				rows, err := svc.ReadAccessLevels(ctx)
				if err != nil {
					return err
				}
				return printRows(cmd, rows, levelColumns...)
			})
		},
	}
}

func newAccessAddLevelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-level <name>",
		Short: "Create an access level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				id, err := svc.CreateAccessLevel(ctx, args[0])
				if err != nil {
					return err
				}
				printCreated(cmd, "access level", id)
				return nil
			})
		},
	}
}

func newAccessDefinitionsCommand() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "List access definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				var (
					rows []model.AccessDefinition
					err  error
				)
				if level != "" {
					l, lerr := svc.ReadAccessLevel(ctx, level)
					if lerr != nil {
						return lerr
					}
					rows, err = svc.ReadLevelDefinitions(ctx, l.ID)
				} else {
					rows, err = svc.ReadAccessDefinitions(ctx)
				}
				if err != nil {
					return err
				}
				return printRows(cmd, rows, definitionColumns...)
			})
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "only definitions of this level name")
	return cmd
}

func newAccessDefineCommand() *cobra.Command {
	var (
		entityType string
		caps       model.Capabilities
	)

	cmd := &cobra.Command{
		Use:     "define <level>",
		Short:   "Add a capability rule to a level",
		Args:    cobra.ExactArgs(1),
		Example: `  crm access define User --type Deal --read --write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				l, err := svc.ReadAccessLevel(ctx, args[0])
				if err != nil {
					return err
				}
				id, err := svc.DefineAccess(ctx, l.ID, entityType, caps)
				if err != nil {
					return err
				}
				printCreated(cmd, "access definition", id)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&entityType, "type", model.EntityTypeEntity, "governed entity type")
	f.BoolVar(&caps.Read, "read", false, "allow read")
	f.BoolVar(&caps.Write, "write", false, "allow write")
	f.BoolVar(&caps.Delete, "delete", false, "allow delete")

	return cmd
}

func newAccessGrantCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <entity-id> <level>",
		Short: "Assign a level to an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				l, err := svc.ReadAccessLevel(ctx, args[1])
				if err != nil {
					return err
				}
				id, err := svc.GrantAccess(ctx, entityID, l.ID)
				if err != nil {
					return err
				}
				printCreated(cmd, "grant", id)
				return nil
			})
		},
	}
}

func newAccessRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <entity-id> <level>",
		Short: "Remove a level from an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				l, err := svc.ReadAccessLevel(ctx, args[1])
				if err != nil {
					return err
				}
				n, err := svc.RevokeAccess(ctx, entityID, l.ID)
				if err != nil {
					return err
				}
				printAffected(cmd, n)
				return nil
			})
		},
	}
}

func newAccessShowCommand() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "show <entity-id>",
		Short: "Show the combined capabilities of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(ctx context.Context, svc *service.CRMService) error {
				caps, err := svc.EntityCapabilities(ctx, entityID, entityType)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: read=%t write=%t delete=%t\n",
					entityType, caps.Read, caps.Write, caps.Delete)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&entityType, "type", model.EntityTypeEntity, "governed entity type")
	return cmd
}
