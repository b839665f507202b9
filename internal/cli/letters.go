package cli

import (
	"context"
	"strconv"

	warningdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/domain"
	"github.com/spf13/cobra"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Manage warning letters",
}

var letterCustomerFilter int64

var lettersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List warning letters",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc warningdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			letters, err := svc.List(ctx, letterCustomerFilter)
			if err != nil {
				return err
			}
			return printJSON(letters)
		})
	},
}

var lettersGetCmd = &cobra.Command{
	Use:   "get <letter-id>",
	Short: "Show one warning letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc warningdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			letter, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(letter)
		})
	},
}

var lettersIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue letters to customers past the overdue thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc warningdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			issued, err := svc.IssueOverdue(ctx)
			if err != nil {
				return err
			}
			if len(issued) == 0 {
				printf("no customers past the overdue thresholds")
				return nil
			}
			return printJSON(issued)
		})
	},
}

var lettersDeleteCmd = &cobra.Command{
	Use:   "delete <letter-id>",
	Short: "Delete a warning letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc warningdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("warning letter %d deleted", id)
			return nil
		})
	},
}

func init() {
	lettersListCmd.Flags().Int64Var(&letterCustomerFilter, "customer", 0, "filter by customer id")

	lettersCmd.AddCommand(lettersListCmd, lettersGetCmd, lettersIssueCmd, lettersDeleteCmd)
	rootCmd.AddCommand(lettersCmd)
}
