package cli

import (
	"context"
	"strconv"

	publicationdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/domain"
	"github.com/spf13/cobra"
)

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "Manage publications",
}

var publicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List publications",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc publicationdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			publications, err := svc.List(ctx)
			if err != nil {
				return err
			}
			return printJSON(publications)
		})
	},
}

var publicationsGetCmd = &cobra.Command{
	Use:   "get <newspaper-id>",
	Short: "Show one publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc publicationdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			publication, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(publication)
		})
	},
}

var (
	publicationName  string
	publicationType  string
	publicationPrice float64
)

var publicationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a publication",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc publicationdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			publication, err := svc.Create(ctx, publicationdomain.CreatePublicationRequest{
				Name:  publicationName,
				Type:  publicationdomain.Type(publicationType),
				Price: publicationPrice,
			})
			if err != nil {
				return err
			}
			return printJSON(publication)
		})
	},
}

var publicationsDeleteCmd = &cobra.Command{
	Use:   "delete <newspaper-id>",
	Short: "Delete a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc publicationdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("publication %d deleted", id)
			return nil
		})
	},
}

func init() {
	publicationsCreateCmd.Flags().StringVar(&publicationName, "name", "", "publication name")
	publicationsCreateCmd.Flags().StringVar(&publicationType, "type", "daily", "daily, weekly or monthly")
	publicationsCreateCmd.Flags().Float64Var(&publicationPrice, "price", 0, "unit price")
	_ = publicationsCreateCmd.MarkFlagRequired("name")
	_ = publicationsCreateCmd.MarkFlagRequired("price")

	publicationsCmd.AddCommand(publicationsListCmd, publicationsGetCmd, publicationsCreateCmd, publicationsDeleteCmd)
	rootCmd.AddCommand(publicationsCmd)
}
