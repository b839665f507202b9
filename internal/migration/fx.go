package migration

import (
	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/config"
	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	docketdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/docket/domain"
	invoicedomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/invoice/domain"
	orderdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/order/domain"
	publicationdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/seed"
	warningdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "mysql" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and postgres dev setups let gorm shape the schema.
			if err := conn.AutoMigrate(
				&areadomain.Area{},
				&publicationdomain.Publication{},
				&customerdomain.Customer{},
				&orderdomain.Order{},
				&docketdomain.Docket{},
				&invoicedomain.Invoice{},
				&warningdomain.WarningLetter{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedOnStart {
			return seed.EnsureDefaults(conn)
		}
		return nil
	}),
)
