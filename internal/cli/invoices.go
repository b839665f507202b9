package cli

import (
	"context"
	"io"
	"os"
	"strconv"

	invoicedomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/domain"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
}

var (
	invoiceStartDate string
	invoiceEndDate   string
)

var invoicesGenerateCmd = &cobra.Command{
	Use:   "generate <customer-id>",
	Short: "Generate an invoice from delivered orders in a date window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc invoicedomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			invoice, err := svc.Generate(ctx, customerID, invoiceStartDate, invoiceEndDate)
			if err != nil {
				return err
			}
			if invoice == nil {
				printf("no delivered orders for customer %d between %s and %s", customerID, invoiceStartDate, invoiceEndDate)
				return nil
			}
			return printJSON(invoice)
		})
	},
}

var (
	invoiceCustomerFilter int64
	invoiceIssuedFrom     string
	invoiceIssuedTo       string
)

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc invoicedomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			invoices, err := svc.List(ctx, invoicedomain.ListInvoiceFilter{
				CustomerID: invoiceCustomerFilter,
				IssuedFrom: invoiceIssuedFrom,
				IssuedTo:   invoiceIssuedTo,
			})
			if err != nil {
				return err
			}
			return printJSON(invoices)
		})
	},
}

var invoicesGetCmd = &cobra.Command{
	Use:   "get <invoice-id>",
	Short: "Show one invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc invoicedomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			invoice, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(invoice)
		})
	},
}

var invoicePDFOut string

var invoicesRenderCmd = &cobra.Command{
	Use:   "render <invoice-id>",
	Short: "Render an invoice as a PDF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc invoicedomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			doc, err := svc.RenderPDF(ctx, id)
			if err != nil {
				return err
			}
			out, err := os.Create(invoicePDFOut)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := io.Copy(out, doc); err != nil {
				return err
			}
			printf("invoice %d rendered to %s", id, invoicePDFOut)
			return nil
		})
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete <invoice-id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc invoicedomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("invoice %d deleted", id)
			return nil
		})
	},
}

func init() {
	invoicesGenerateCmd.Flags().StringVar(&invoiceStartDate, "from", "", "window start date (YYYY-MM-DD)")
	invoicesGenerateCmd.Flags().StringVar(&invoiceEndDate, "to", "", "window end date (YYYY-MM-DD)")
	_ = invoicesGenerateCmd.MarkFlagRequired("from")
	_ = invoicesGenerateCmd.MarkFlagRequired("to")

	invoicesListCmd.Flags().Int64Var(&invoiceCustomerFilter, "customer", 0, "filter by customer id")
	invoicesListCmd.Flags().StringVar(&invoiceIssuedFrom, "issued-from", "", "earliest invoice date (YYYY-MM-DD)")
	invoicesListCmd.Flags().StringVar(&invoiceIssuedTo, "issued-to", "", "latest invoice date (YYYY-MM-DD)")

	invoicesRenderCmd.Flags().StringVar(&invoicePDFOut, "out", "invoice.pdf", "output file")

	invoicesCmd.AddCommand(invoicesGenerateCmd, invoicesListCmd, invoicesGetCmd, invoicesRenderCmd, invoicesDeleteCmd)
	rootCmd.AddCommand(invoicesCmd)
}
