package cli

import (
	"context"
	"strconv"
	"time"

	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	"github.com/spf13/cobra"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customerAreaFilter int64

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc customerdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			customers, err := svc.List(ctx, customerdomain.ListCustomerFilter{AreaID: customerAreaFilter})
			if err != nil {
				return err
			}
			return printJSON(customers)
		})
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get <customer-id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc customerdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			customer, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(customer)
		})
	},
}

var (
	customerName        string
	customerAddress     string
	customerPhone       string
	customerAreaID      int64
	customerEmail       string
	customerLastPayment string
	customerStatus      string
)

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		var lastPayment *time.Time
		if customerLastPayment != "" {
			parsed, err := time.Parse("2006-01-02", customerLastPayment)
			if err != nil {
				return err
			}
			lastPayment = &parsed
		}
		var svc customerdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			customer, err := svc.Create(ctx, customerdomain.CreateCustomerRequest{
				Name:            customerName,
				Address:         customerAddress,
				Phone:           customerPhone,
				AreaID:          customerAreaID,
				Email:           customerEmail,
				LastPaymentDate: lastPayment,
				Status:          customerdomain.Status(customerStatus),
			})
			if err != nil {
				return err
			}
			return printJSON(customer)
		})
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete <customer-id>",
	Short: "Delete a customer and their dependent records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc customerdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("customer %d deleted", id)
			return nil
		})
	},
}

func init() {
	customersListCmd.Flags().Int64Var(&customerAreaFilter, "area", 0, "filter by area id")

	customersCreateCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	customersCreateCmd.Flags().StringVar(&customerAddress, "address", "", "street address")
	customersCreateCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")
	customersCreateCmd.Flags().Int64Var(&customerAreaID, "area", 0, "delivery area id")
	customersCreateCmd.Flags().StringVar(&customerEmail, "email", "", "email address")
	customersCreateCmd.Flags().StringVar(&customerLastPayment, "last-payment", "", "last payment date (YYYY-MM-DD)")
	customersCreateCmd.Flags().StringVar(&customerStatus, "status", "active", "account status")
	_ = customersCreateCmd.MarkFlagRequired("name")
	_ = customersCreateCmd.MarkFlagRequired("address")
	_ = customersCreateCmd.MarkFlagRequired("phone")
	_ = customersCreateCmd.MarkFlagRequired("area")

	customersCmd.AddCommand(customersListCmd, customersGetCmd, customersCreateCmd, customersDeleteCmd)
	rootCmd.AddCommand(customersCmd)
}
