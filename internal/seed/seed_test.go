package seed

import (
	"fmt"
	"strings"
	"testing"

	areadomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/area/domain"
	publicationdomain "github.com/SergeiLitvinov03/NewsCorpProject/internal/publication/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&areadomain.Area{}, &publicationdomain.Publication{}))
	return db
}

func TestEnsureDefaultsSeedsEmptyDatabase(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureDefaults(db))

	var areas, publications int64
	require.NoError(t, db.Model(&areadomain.Area{}).Count(&areas).Error)
	require.NoError(t, db.Model(&publicationdomain.Publication{}).Count(&publications).Error)
	assert.Equal(t, int64(1), areas)
	assert.Equal(t, int64(3), publications)

	// A second run changes nothing.
	require.NoError(t, EnsureDefaults(db))
	require.NoError(t, db.Model(&publicationdomain.Publication{}).Count(&publications).Error)
	assert.Equal(t, int64(3), publications)
}

func TestEnsureDefaultsLeavesExistingDataAlone(t *testing.T) {
	db := setupDB(t)

	area := areadomain.Area{Name: "Harbour"}
	require.NoError(t, db.Create(&area).Error)

	require.NoError(t, EnsureDefaults(db))

	var areas []areadomain.Area
	require.NoError(t, db.Find(&areas).Error)
	require.Len(t, areas, 1)
	assert.Equal(t, "Harbour", areas[0].Name)
}

func TestEnsureDefaultsRequiresDatabase(t *testing.T) {
	assert.Error(t, EnsureDefaults(nil))
}
