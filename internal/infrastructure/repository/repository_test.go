package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	badgevo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/database"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
	"github.com/smartlock-inc/smartlock/internal/shared/config"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(gdb, logger.NewNop()) })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func createLocker(t *testing.T, repo inventory.LockerRepository, lockerType string) *inventory.Locker {
	t.Helper()
	l, err := inventory.NewLocker(lockerType, true, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), l))
	return l
}

func errorType(err error) errors.ErrorType {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Type
	}
	return ""
}

func TestPermissionRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	locker := createLocker(t, NewLockerRepository(gdb), "small")
	repo := NewPermissionRepository(gdb)

	validUntil := "2030-01-01"
	p, err := permission.NewLockerPermission("tech", locker.ID(), permission.Access{CanView: true, CanOpen: true}, &validUntil, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID())

	got, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tech", got.RoleName())
	assert.Equal(t, locker.ID(), got.LockerID())
	assert.Equal(t, permission.Access{CanView: true, CanOpen: true}, got.Access())
	assert.Equal(t, "2030-01-01", *got.ValidUntil())

	missing, err := repo.GetByID(ctx, p.ID()+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPermissionRepository_DuplicateRoleAndLocker(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	lockers := NewLockerRepository(gdb)
	first := createLocker(t, lockers, "small")
	second := createLocker(t, lockers, "large")
	repo := NewPermissionRepository(gdb)

	p1, _ := permission.NewLockerPermission("tech", first.ID(), permission.DefaultAccess(), nil, testNow)
	require.NoError(t, repo.Create(ctx, p1))

	p2, _ := permission.NewLockerPermission("tech", first.ID(), permission.DefaultAccess(), nil, testNow)
	err := repo.Create(ctx, p2)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(err))

	p3, _ := permission.NewLockerPermission("tech", second.ID(), permission.DefaultAccess(), nil, testNow)
	assert.NoError(t, repo.Create(ctx, p3))

	p4, _ := permission.NewLockerPermission("ops", first.ID(), permission.DefaultAccess(), nil, testNow)
	assert.NoError(t, repo.Create(ctx, p4))
}

func TestPermissionRepository_UnknownLocker(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPermissionRepository(gdb)

	p, _ := permission.NewLockerPermission("tech", 42, permission.DefaultAccess(), nil, testNow)
	err := repo.Create(context.Background(), p)
	assert.Equal(t, errors.ErrorTypeValidation, errorType(err))
}

func TestPermissionRepository_ListPagesConcatenate(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	locker := createLocker(t, NewLockerRepository(gdb), "small")
	repo := NewPermissionRepository(gdb)

	var want []uint
	for i := 0; i < 5; i++ {
		p, _ := permission.NewLockerPermission(fmt.Sprintf("role-%d", i), locker.ID(), permission.DefaultAccess(), nil, testNow)
		require.NoError(t, repo.Create(ctx, p))
		want = append(want, p.ID())
	}

	var got []uint
	for skip := 0; skip < 6; skip += 2 {
		page, err := repo.List(ctx, skip, 2)
		require.NoError(t, err)
		for _, p := range page {
			got = append(got, p.ID())
		}
	}
	assert.Equal(t, want, got)

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPermissionRepository_LockerQueries(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	lockers := NewLockerRepository(gdb)
	first := createLocker(t, lockers, "small")
	second := createLocker(t, lockers, "large")
	repo := NewPermissionRepository(gdb)

	for _, role := range []string{"tech", "ops"} {
		p, _ := permission.NewLockerPermission(role, first.ID(), permission.DefaultAccess(), nil, testNow)
		require.NoError(t, repo.Create(ctx, p))
	}

	byLocker, err := repo.ListByLocker(ctx, first.ID())
	require.NoError(t, err)
	assert.Len(t, byLocker, 2)

	empty, err := repo.ListByLocker(ctx, second.ID())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	found, err := repo.GetByRoleAndLocker(ctx, "ops", first.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ops", found.RoleName())

	absent, err := repo.GetByRoleAndLocker(ctx, "ops", second.ID())
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestPermissionRepository_UpdateWritesFalseAndNull(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	locker := createLocker(t, NewLockerRepository(gdb), "small")
	repo := NewPermissionRepository(gdb)

	validUntil := "2030-01-01"
	p, _ := permission.NewLockerPermission("tech", locker.ID(), permission.Access{CanView: true, CanOpen: true}, &validUntil, testNow)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.ApplyPatch(permission.Patch{
		CanOpen:    optional.Of(false),
		CanManage:  optional.Of(true),
		ValidUntil: optional.Null[string](),
	}))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, permission.Access{CanView: true, CanManage: true}, got.Access())
	assert.Nil(t, got.ValidUntil())
}

func TestPermissionRepository_UpdateIntoExistingPair(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	locker := createLocker(t, NewLockerRepository(gdb), "small")
	repo := NewPermissionRepository(gdb)

	tech, _ := permission.NewLockerPermission("tech", locker.ID(), permission.DefaultAccess(), nil, testNow)
	ops, _ := permission.NewLockerPermission("ops", locker.ID(), permission.DefaultAccess(), nil, testNow)
	require.NoError(t, repo.Create(ctx, tech))
	require.NoError(t, repo.Create(ctx, ops))

	require.NoError(t, ops.ApplyPatch(permission.Patch{RoleName: optional.Of("tech")}))
	err := repo.Update(ctx, ops)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(err))
}

func TestPermissionRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	locker := createLocker(t, NewLockerRepository(gdb), "small")
	repo := NewPermissionRepository(gdb)

	p, _ := permission.NewLockerPermission("tech", locker.ID(), permission.DefaultAccess(), nil, testNow)
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID()))

	got, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPendingCardRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewPendingCardRepository(gdb)

	for i, id := range []string{"AAA", "BBB", "CCC"} {
		card, err := badge.NewPendingCard(id, testNow.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, card))
	}

	dup, _ := badge.NewPendingCard("BBB", testNow)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(repo.Create(ctx, dup)))

	pending, err := repo.ListByStatus(ctx, badgevo.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "CCC", pending[0].CardID())
	assert.Equal(t, "AAA", pending[2].CardID())

	card, err := repo.GetByCardID(ctx, "BBB")
	require.NoError(t, err)
	require.NotNil(t, card)
	require.True(t, card.Assign())
	require.NoError(t, repo.Update(ctx, card))

	pending, err = repo.ListByStatus(ctx, badgevo.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	stored, err := repo.GetByCardID(ctx, "BBB")
	require.NoError(t, err)
	assert.True(t, stored.Status().IsAssigned())

	missing, err := repo.GetByCardID(ctx, "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(gdb)

	c, err := inventory.NewCategory("Tools", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	dup, _ := inventory.NewCategory("Tools", testNow)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(repo.Create(ctx, dup)))

	later := testNow.AddDate(0, 0, 3)
	require.NoError(t, c.ApplyPatch(inventory.CategoryPatch{Name: optional.Of("Hand tools")}, later))
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hand tools", got.Name())
	assert.Equal(t, inventory.DateOf(testNow), got.CreatedAt())
	assert.Equal(t, inventory.DateOf(later), got.UpdatedAt())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepository_References(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(gdb)
	items := NewItemRepository(gdb)

	orphan, _ := inventory.NewItem("Drill", "DR-1", nil, 77, testNow)
	assert.Equal(t, errors.ErrorTypeValidation, errorType(items.Create(ctx, orphan)))

	c, _ := inventory.NewCategory("Tools", testNow)
	require.NoError(t, categories.Create(ctx, c))

	desc := "cordless"
	item, _ := inventory.NewItem("Drill", "DR-1", &desc, c.ID(), testNow)
	require.NoError(t, items.Create(ctx, item))

	same, _ := inventory.NewItem("Other drill", "DR-1", nil, c.ID(), testNow)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(items.Create(ctx, same)))

	assert.Equal(t, errors.ErrorTypeConflict, errorType(categories.Delete(ctx, c.ID())))

	got, err := items.GetByID(ctx, item.ID())
	require.NoError(t, err)
	require.NotNil(t, got.Description())
	assert.Equal(t, "cordless", *got.Description())
}

func TestStockRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	lockers := NewLockerRepository(gdb)
	categories := NewCategoryRepository(gdb)
	items := NewItemRepository(gdb)
	stock := NewStockRepository(gdb)

	c, _ := inventory.NewCategory("Tools", testNow)
	require.NoError(t, categories.Create(ctx, c))
	item, _ := inventory.NewItem("Drill", "DR-1", nil, c.ID(), testNow)
	require.NoError(t, items.Create(ctx, item))
	full := createLocker(t, lockers, "small")
	empty := createLocker(t, lockers, "large")

	s, err := inventory.NewStock(4, item.ID(), full.ID(), inventory.DefaultUnitMeasure, testNow)
	require.NoError(t, err)
	require.NoError(t, stock.Create(ctx, s))

	again, _ := inventory.NewStock(1, item.ID(), full.ID(), "boxes", testNow)
	assert.Equal(t, errors.ErrorTypeConflict, errorType(stock.Create(ctx, again)))

	inLocker, err := stock.ListByLocker(ctx, full.ID())
	require.NoError(t, err)
	require.Len(t, inLocker, 1)
	assert.Equal(t, 4, inLocker[0].Quantity())
	assert.Equal(t, "units", inLocker[0].UnitMeasure())

	none, err := stock.ListByLocker(ctx, empty.ID())
	require.NoError(t, err)
	assert.Empty(t, none)

	err = lockers.Delete(ctx, full.ID())
	require.Equal(t, errors.ErrorTypeConflict, errorType(err))
	assert.Equal(t, "Locker is still referenced by other records", errors.GetAppError(err).Message)
	require.NoError(t, lockers.Delete(ctx, empty.ID()))

	require.NoError(t, s.ApplyPatch(inventory.StockPatch{Quantity: optional.Of(0)}, testNow))
	require.NoError(t, stock.Update(ctx, s))
	got, err := stock.GetByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity())
}
