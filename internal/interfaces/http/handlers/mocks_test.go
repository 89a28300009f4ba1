package handlers

import (
	"context"

	badgedto "github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	badgeuc "github.com/smartlock-inc/smartlock/internal/application/badge/usecases"
	invdto "github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	invuc "github.com/smartlock-inc/smartlock/internal/application/inventory/usecases"
	permdto "github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	permuc "github.com/smartlock-inc/smartlock/internal/application/permission/usecases"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
)

// =====================================================================
// Permission use cases
// =====================================================================

type mockCreatePermissionUC struct {
	result *permdto.PermissionDTO
	err    error
	got    permuc.CreatePermissionCommand
}

func (m *mockCreatePermissionUC) Execute(ctx context.Context, cmd permuc.CreatePermissionCommand) (*permdto.PermissionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetPermissionUC struct {
	result *permdto.PermissionDTO
	err    error
}

func (m *mockGetPermissionUC) Execute(ctx context.Context, permissionID uint) (*permdto.PermissionDTO, error) {
	return m.result, m.err
}

type mockListPermissionsUC struct {
	result []*permdto.PermissionDTO
	err    error
	got    permuc.ListPermissionsQuery
}

func (m *mockListPermissionsUC) Execute(ctx context.Context, query permuc.ListPermissionsQuery) ([]*permdto.PermissionDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockListLockerPermissionsUC struct {
	result []*permdto.PermissionDTO
	err    error
}

func (m *mockListLockerPermissionsUC) Execute(ctx context.Context, lockerID uint) ([]*permdto.PermissionDTO, error) {
	return m.result, m.err
}

type mockGetRolePermissionUC struct {
	result *permdto.PermissionDTO
	err    error
	got    permuc.GetRolePermissionQuery
}

func (m *mockGetRolePermissionUC) Execute(ctx context.Context, query permuc.GetRolePermissionQuery) (*permdto.PermissionDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockUpdatePermissionUC struct {
	result *permdto.PermissionDTO
	err    error
	got    permuc.UpdatePermissionCommand
}

func (m *mockUpdatePermissionUC) Execute(ctx context.Context, cmd permuc.UpdatePermissionCommand) (*permdto.PermissionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeletePermissionUC struct {
	result *permdto.PermissionDTO
	err    error
}

func (m *mockDeletePermissionUC) Execute(ctx context.Context, permissionID uint) (*permdto.PermissionDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Badge use cases
// =====================================================================

type mockScanCardUC struct {
	result *badgedto.ScanResultDTO
	err    error
	got    badgeuc.ScanCardCommand
}

func (m *mockScanCardUC) Execute(ctx context.Context, cmd badgeuc.ScanCardCommand) (*badgedto.ScanResultDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListPendingCardsUC struct {
	result []*badgedto.PendingCardDTO
	err    error
}

func (m *mockListPendingCardsUC) Execute(ctx context.Context) ([]*badgedto.PendingCardDTO, error) {
	return m.result, m.err
}

type mockAssignCardUC struct {
	result *badgedto.PendingCardDTO
	err    error
	got    badgeuc.AssignCardCommand
}

func (m *mockAssignCardUC) Execute(ctx context.Context, cmd badgeuc.AssignCardCommand) (*badgedto.PendingCardDTO, error) {
	m.got = cmd
	return m.result, m.err
}

// =====================================================================
// Inventory services
// =====================================================================

type mockLockerManager struct {
	createResult *invdto.LockerDTO
	getResult    *invdto.LockerDTO
	listResult   []*invdto.LockerDTO
	stockResult  []*invdto.StockDTO
	err          error

	gotCreate invuc.CreateLockerCommand
	gotList   invuc.ListQuery
	gotPatch  inventory.LockerPatch
}

func (m *mockLockerManager) Create(ctx context.Context, cmd invuc.CreateLockerCommand) (*invdto.LockerDTO, error) {
	m.gotCreate = cmd
	return m.createResult, m.err
}

func (m *mockLockerManager) Get(ctx context.Context, id uint) (*invdto.LockerDTO, error) {
	return m.getResult, m.err
}

func (m *mockLockerManager) List(ctx context.Context, query invuc.ListQuery) ([]*invdto.LockerDTO, error) {
	m.gotList = query
	return m.listResult, m.err
}

func (m *mockLockerManager) Update(ctx context.Context, id uint, patch inventory.LockerPatch) (*invdto.LockerDTO, error) {
	m.gotPatch = patch
	return m.getResult, m.err
}

func (m *mockLockerManager) Delete(ctx context.Context, id uint) (*invdto.LockerDTO, error) {
	return m.getResult, m.err
}

func (m *mockLockerManager) ListStock(ctx context.Context, lockerID uint) ([]*invdto.StockDTO, error) {
	return m.stockResult, m.err
}

type mockStockManager struct {
	result *invdto.StockDTO
	err    error

	gotCreate invuc.CreateStockCommand
	gotPatch  inventory.StockPatch
}

func (m *mockStockManager) Create(ctx context.Context, cmd invuc.CreateStockCommand) (*invdto.StockDTO, error) {
	m.gotCreate = cmd
	return m.result, m.err
}

func (m *mockStockManager) Get(ctx context.Context, id uint) (*invdto.StockDTO, error) {
	return m.result, m.err
}

func (m *mockStockManager) List(ctx context.Context, query invuc.ListQuery) ([]*invdto.StockDTO, error) {
	return []*invdto.StockDTO{m.result}, m.err
}

func (m *mockStockManager) Update(ctx context.Context, id uint, patch inventory.StockPatch) (*invdto.StockDTO, error) {
	m.gotPatch = patch
	return m.result, m.err
}

func (m *mockStockManager) Delete(ctx context.Context, id uint) (*invdto.StockDTO, error) {
	return m.result, m.err
}

type mockItemManager struct {
	result *invdto.ItemDTO
	err    error

	gotCreate invuc.CreateItemCommand
	gotPatch  inventory.ItemPatch
}

func (m *mockItemManager) Create(ctx context.Context, cmd invuc.CreateItemCommand) (*invdto.ItemDTO, error) {
	m.gotCreate = cmd
	return m.result, m.err
}

func (m *mockItemManager) Get(ctx context.Context, id uint) (*invdto.ItemDTO, error) {
	return m.result, m.err
}

func (m *mockItemManager) List(ctx context.Context, query invuc.ListQuery) ([]*invdto.ItemDTO, error) {
	return []*invdto.ItemDTO{m.result}, m.err
}

func (m *mockItemManager) Update(ctx context.Context, id uint, patch inventory.ItemPatch) (*invdto.ItemDTO, error) {
	m.gotPatch = patch
	return m.result, m.err
}

func (m *mockItemManager) Delete(ctx context.Context, id uint) (*invdto.ItemDTO, error) {
	return m.result, m.err
}

type mockCategoryManager struct {
	result *invdto.CategoryDTO
	err    error

	gotCreate invuc.CreateCategoryCommand
	gotPatch  inventory.CategoryPatch
}

func (m *mockCategoryManager) Create(ctx context.Context, cmd invuc.CreateCategoryCommand) (*invdto.CategoryDTO, error) {
	m.gotCreate = cmd
	return m.result, m.err
}

func (m *mockCategoryManager) Get(ctx context.Context, id uint) (*invdto.CategoryDTO, error) {
	return m.result, m.err
}

func (m *mockCategoryManager) List(ctx context.Context, query invuc.ListQuery) ([]*invdto.CategoryDTO, error) {
	return []*invdto.CategoryDTO{m.result}, m.err
}

func (m *mockCategoryManager) Update(ctx context.Context, id uint, patch inventory.CategoryPatch) (*invdto.CategoryDTO, error) {
	m.gotPatch = patch
	return m.result, m.err
}

func (m *mockCategoryManager) Delete(ctx context.Context, id uint) (*invdto.CategoryDTO, error) {
	return m.result, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}
