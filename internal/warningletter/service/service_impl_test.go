package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SergeiLitvinov03/NewsCorpProject/internal/clock"
	"github.com/SergeiLitvinov03/NewsCorpProject/internal/config"
	customerdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/customer/domain"
	warningdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/warningletter/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var issueNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func setupWarningService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}, &warningdomain.WarningLetter{}))

	svc := NewService(ServiceParam{
		DB:      db,
		Log:     zap.NewNop(),
		Clock:   clock.NewFakeClock(issueNow),
		Billing: config.NewStaticBillingConfigHolder(config.DefaultBillingConfig()),
	})
	return svc.(*Service), db
}

func seedCustomer(t *testing.T, db *gorm.DB, id int64, lastPaymentDaysAgo int) {
	t.Helper()
	paid := issueNow.AddDate(0, 0, -lastPaymentDaysAgo)
	customer := customerdomain.Customer{
		CustomerID:      id,
		Name:            "Margaret Hale",
		Address:         "14 Crampton Road",
		Phone:           "5550137",
		AreaID:          1,
		LastPaymentDate: &paid,
		Status:          customerdomain.StatusActive,
	}
	require.NoError(t, db.Create(&customer).Error)
}

func TestIssueOverduePicksMostSevereRule(t *testing.T) {
	svc, db := setupWarningService(t)
	ctx := context.Background()

	seedCustomer(t, db, 1, 90) // past the suspension threshold
	seedCustomer(t, db, 2, 40) // past the warning threshold only
	seedCustomer(t, db, 3, 5)  // paid recently

	issued, err := svc.IssueOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, issued, 2)

	byCustomer := make(map[int64]warningdomain.Status, len(issued))
	for _, letter := range issued {
		byCustomer[letter.CustomerID] = letter.Status
	}
	assert.Equal(t, warningdomain.StatusSuspension, byCustomer[1])
	assert.Equal(t, warningdomain.StatusWarning, byCustomer[2])
}

func TestIssueOverdueSkipsExistingLetters(t *testing.T) {
	svc, db := setupWarningService(t)
	ctx := context.Background()

	seedCustomer(t, db, 1, 90)

	first, err := svc.IssueOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.IssueOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, second)

	var count int64
	require.NoError(t, db.Model(&warningdomain.WarningLetter{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssueOverdueIgnoresCustomersWithoutPayments(t *testing.T) {
	svc, db := setupWarningService(t)
	ctx := context.Background()

	customer := customerdomain.Customer{
		CustomerID: 1,
		Name:       "Margaret Hale",
		Address:    "14 Crampton Road",
		Phone:      "5550137",
		AreaID:     1,
		Status:     customerdomain.StatusActive,
	}
	require.NoError(t, db.Create(&customer).Error)

	issued, err := svc.IssueOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, issued)
}
