package cli

import (
	"context"
	"strconv"

	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	"github.com/spf13/cobra"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Manage delivery areas",
}

var areasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc areadomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			areas, err := svc.List(ctx)
			if err != nil {
				return err
			}
			return printJSON(areas)
		})
	},
}

var areasGetCmd = &cobra.Command{
	Use:   "get <area-id>",
	Short: "Show one area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc areadomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			area, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(area)
		})
	},
}

var areaName string

var areasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an area",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc areadomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			area, err := svc.Create(ctx, areadomain.CreateAreaRequest{Name: areaName})
			if err != nil {
				return err
			}
			return printJSON(area)
		})
	},
}

var areasDeleteCmd = &cobra.Command{
	Use:   "delete <area-id>",
	Short: "Delete an area and everything routed through it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc areadomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("area %d deleted", id)
			return nil
		})
	},
}

func init() {
	areasCreateCmd.Flags().StringVar(&areaName, "name", "", "area name")
	_ = areasCreateCmd.MarkFlagRequired("name")

	areasCmd.AddCommand(areasListCmd, areasGetCmd, areasCreateCmd, areasDeleteCmd)
	rootCmd.AddCommand(areasCmd)
}
