// Package seed bootstraps reference rows so a fresh install is usable.
package seed

import (
	"context"
	"errors"

	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	publicationdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/domain"
	"github.com/SergeiLitvinov03/NewsCorpProject/pkg/repository"
	"gorm.io/gorm"
)

const defaultAreaName = "Central"

var defaultPublications = []publicationdomain.Publication{
	{Name: "The Morning Herald", Type: publicationdomain.TypeDaily, Price: 2.50},
	{Name: "Weekend Review", Type: publicationdomain.TypeWeekly, Price: 4.00},
	{Name: "City Monthly", Type: publicationdomain.TypeMonthly, Price: 6.50},
}

// EnsureDefaults seeds one delivery area and the standard publications when
// the tables are empty. Existing data is never touched.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	areas := repository.ProvideStore[areadomain.Area](db, "area_id")
	publications := repository.ProvideStore[publicationdomain.Publication](db, "newspaper_id")

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txAreas := areas.WithTrx(tx)
		txPublications := publications.WithTrx(tx)

		count, err := txAreas.Count(ctx, &areadomain.Area{})
		if err != nil {
			return err
		}
		if count == 0 {
			if err := txAreas.Create(ctx, &areadomain.Area{Name: defaultAreaName}); err != nil {
				return err
			}
		}

		count, err = txPublications.Count(ctx, &publicationdomain.Publication{})
		if err != nil {
			return err
		}
		if count == 0 {
			for i := range defaultPublications {
				publication := defaultPublications[i]
				if err := txPublications.Create(ctx, &publication); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
