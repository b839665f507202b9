package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	areaservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/service"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/clock"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/config"
	customerservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/service"
	docketservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/docket/service"
	invoiceservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/service"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/migration"
	orderservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/service"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/providers/pdf"
	publicationservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/service"
	warningservice "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/service"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/db"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/log"
	"go.uber.org/fx"
)

const lifecycleTimeout = 15 * time.Second

// withApp wires the full application graph, starts it, runs one operation,
// and tears everything down. One command, one in-flight operation.
func withApp(ctx context.Context, targets []any, run func(ctx context.Context) error) error {
	app := fx.New(
		fx.NopLogger,

		config.Module,
		config.BillingModule,
		log.Module,
		db.Module,
		clock.Module,
		migration.Module,
		pdf.Module,

		areaservice.Module,
		customerservice.Module,
		publicationservice.Module,
		orderservice.Module,
		docketservice.Module,
		invoiceservice.Module,
		warningservice.Module,

		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := run(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
