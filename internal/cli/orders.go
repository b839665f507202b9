package cli

import (
	"context"
	"strconv"

	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage subscription orders",
}

var orderCustomerFilter int64

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc orderdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			orders, err := svc.List(ctx, orderdomain.ListOrderFilter{CustomerID: orderCustomerFilter})
			if err != nil {
				return err
			}
			return printJSON(orders)
		})
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc orderdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			order, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(order)
		})
	},
}

var (
	orderCustomerID   int64
	orderAreaID       int64
	orderNewspaperID  int64
	orderDeliveryDate string
	orderStatus       string
)

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc orderdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			order, err := svc.Create(ctx, orderdomain.CreateOrderRequest{
				CustomerID:   orderCustomerID,
				AreaID:       orderAreaID,
				NewspaperID:  orderNewspaperID,
				DeliveryDate: orderDeliveryDate,
				Status:       orderdomain.Status(orderStatus),
			})
			if err != nil {
				return err
			}
			return printJSON(order)
		})
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc orderdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("order %d deleted", id)
			return nil
		})
	},
}

func init() {
	ordersListCmd.Flags().Int64Var(&orderCustomerFilter, "customer", 0, "filter by customer id")

	ordersCreateCmd.Flags().Int64Var(&orderCustomerID, "customer", 0, "customer id")
	ordersCreateCmd.Flags().Int64Var(&orderAreaID, "area", 0, "delivery area id")
	ordersCreateCmd.Flags().Int64Var(&orderNewspaperID, "newspaper", 0, "publication id")
	ordersCreateCmd.Flags().StringVar(&orderDeliveryDate, "date", "", "delivery date (YYYY-MM-DD)")
	ordersCreateCmd.Flags().StringVar(&orderStatus, "status", "pending", "order status")
	_ = ordersCreateCmd.MarkFlagRequired("customer")
	_ = ordersCreateCmd.MarkFlagRequired("area")
	_ = ordersCreateCmd.MarkFlagRequired("newspaper")
	_ = ordersCreateCmd.MarkFlagRequired("date")

	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersCreateCmd, ordersDeleteCmd)
	rootCmd.AddCommand(ordersCmd)
}
