package cli

import (
	"context"
	"strconv"

	docketdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/docket/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	"github.com/spf13/cobra"
)

var docketsCmd = &cobra.Command{
	Use:   "dockets",
	Short: "Manage delivery dockets",
}

var docketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all dockets",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc docketdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			dockets, err := svc.List(ctx)
			if err != nil {
				return err
			}
			return printJSON(docketsForDisplay(dockets))
		})
	},
}

var docketsGetCmd = &cobra.Command{
	Use:   "get <docket-id>",
	Short: "Show one docket with its order manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc docketdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			docket, err := svc.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(docketForDisplay(docket))
		})
	},
}

var (
	docketAreaID   int64
	docketPerson   string
	docketOrderIDs []int64
)

var docketsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a docket from existing orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		var svc docketdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			docket, err := svc.Create(ctx, docketdomain.CreateDocketRequest{
				AreaID:         docketAreaID,
				DeliveryPerson: docketPerson,
				OrderIDs:       docketOrderIDs,
			})
			if err != nil {
				return err
			}
			return printJSON(docketForDisplay(docket))
		})
	},
}

var docketsDeleteCmd = &cobra.Command{
	Use:   "delete <docket-id>",
	Short: "Delete a docket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		var svc docketdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			printf("docket %d deleted", id)
			return nil
		})
	},
}

var deliverStatus string

var docketsDeliverCmd = &cobra.Command{
	Use:   "deliver <docket-id> <order-id>",
	Short: "Mark an order's delivery status on a docket",
	Long: `Updates the authoritative order row and reconciles the new status
into the docket's embedded order snapshot.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docketID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		var svc docketdomain.Service
		return withApp(cmd.Context(), []any{&svc}, func(ctx context.Context) error {
			if err := svc.MarkOrderDelivered(ctx, docketID, orderID, orderdomain.Status(deliverStatus)); err != nil {
				return err
			}
			printf("order %d on docket %d marked %s", orderID, docketID, deliverStatus)
			return nil
		})
	},
}

// docketDisplay carries a docket with its manifest decoded for output.
type docketDisplay struct {
	DocketID       int64                        `json:"docket_id"`
	AreaID         int64                        `json:"area_id"`
	DeliveryPerson string                       `json:"delivery_person"`
	Date           string                       `json:"date"`
	Orders         []docketdomain.OrderSnapshot `json:"orders"`
}

func docketForDisplay(d docketdomain.Docket) docketDisplay {
	snapshots, err := docketdomain.DecodeSnapshots(d.Orders)
	if err != nil {
		snapshots = nil
	}
	return docketDisplay{
		DocketID:       d.DocketID,
		AreaID:         d.AreaID,
		DeliveryPerson: d.DeliveryPerson,
		Date:           d.Date.Format("2006-01-02"),
		Orders:         snapshots,
	}
}

func docketsForDisplay(dockets []docketdomain.Docket) []docketDisplay {
	out := make([]docketDisplay, 0, len(dockets))
	for _, d := range dockets {
		out = append(out, docketForDisplay(d))
	}
	return out
}

func init() {
	docketsCreateCmd.Flags().Int64Var(&docketAreaID, "area", 0, "delivery area id")
	docketsCreateCmd.Flags().StringVar(&docketPerson, "person", "", "delivery person name")
	docketsCreateCmd.Flags().Int64SliceVar(&docketOrderIDs, "orders", nil, "order ids on the route")
	_ = docketsCreateCmd.MarkFlagRequired("area")
	_ = docketsCreateCmd.MarkFlagRequired("person")
	_ = docketsCreateCmd.MarkFlagRequired("orders")

	docketsDeliverCmd.Flags().StringVar(&deliverStatus, "status", "delivered", "new order status")

	docketsCmd.AddCommand(docketsListCmd, docketsGetCmd, docketsCreateCmd, docketsDeleteCmd, docketsDeliverCmd)
	rootCmd.AddCommand(docketsCmd)
}
