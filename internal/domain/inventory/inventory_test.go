package inventory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

var (
	day1 = time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	day2 = time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	require.Equal(t, errors.ErrorTypeValidation, appErr.Type)

	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := DateOf(time.Date(2026, 5, 2, 1, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestCategory(t *testing.T) {
	c, err := NewCategory("Tools", day1)
	require.NoError(t, err)
	assert.Equal(t, DateOf(day1), c.CreatedAt())
	assert.Equal(t, DateOf(day1), c.UpdatedAt())

	require.NoError(t, c.ApplyPatch(CategoryPatch{Name: optional.Of("Hand tools")}, day2))
	assert.Equal(t, "Hand tools", c.Name())
	assert.Equal(t, DateOf(day1), c.CreatedAt())
	assert.Equal(t, DateOf(day2), c.UpdatedAt())

	_, err = NewCategory("", day1)
	assert.Equal(t, []string{"name"}, fieldNames(t, err))

	_, err = NewCategory(strings.Repeat("x", MaxCategoryNameLength+1), day1)
	assert.Equal(t, []string{"name"}, fieldNames(t, err))
}

func TestCategory_RejectedPatchKeepsState(t *testing.T) {
	c, err := NewCategory("Tools", day1)
	require.NoError(t, err)

	err = c.ApplyPatch(CategoryPatch{Name: optional.Null[string]()}, day2)
	assert.Equal(t, []string{"name"}, fieldNames(t, err))
	assert.Equal(t, "Tools", c.Name())
	assert.Equal(t, DateOf(day1), c.UpdatedAt())
}

func TestItem(t *testing.T) {
	desc := "cordless"
	it, err := NewItem("Drill", "DR-01", &desc, 1, day1)
	require.NoError(t, err)

	require.NoError(t, it.ApplyPatch(ItemPatch{Reference: optional.Of("DR-02")}, day2))
	assert.Equal(t, "Drill", it.Name())
	assert.Equal(t, "DR-02", it.Reference())
	require.NotNil(t, it.Description())
	assert.Equal(t, "cordless", *it.Description())

	require.NoError(t, it.ApplyPatch(ItemPatch{Description: optional.Null[string]()}, day2))
	assert.Nil(t, it.Description())

	_, err = NewItem("", strings.Repeat("r", MaxItemReferenceLength+1), nil, 0, day1)
	assert.Equal(t, []string{"name", "reference", "category_id"}, fieldNames(t, err))
}

func TestItem_PatchNullCategory(t *testing.T) {
	it, err := NewItem("Drill", "DR-01", nil, 1, day1)
	require.NoError(t, err)

	err = it.ApplyPatch(ItemPatch{CategoryID: optional.Null[uint](), Name: optional.Of("Saw")}, day2)
	assert.Equal(t, []string{"category_id"}, fieldNames(t, err))
	assert.Equal(t, "Drill", it.Name())
	assert.Equal(t, uint(1), it.CategoryID())
}

func TestLocker(t *testing.T) {
	l, err := NewLocker("small", true, day1)
	require.NoError(t, err)
	assert.True(t, l.IsActive())

	require.NoError(t, l.ApplyPatch(LockerPatch{IsActive: optional.Of(false)}, day2))
	assert.False(t, l.IsActive())
	assert.Equal(t, "small", l.LockerType())

	_, err = NewLocker(strings.Repeat("t", MaxLockerTypeLength+1), true, day1)
	assert.Equal(t, []string{"locker_type"}, fieldNames(t, err))
}

func TestStock(t *testing.T) {
	s, err := NewStock(0, 1, 2, DefaultUnitMeasure, day1)
	require.NoError(t, err)
	assert.Equal(t, DateOf(day1), s.CreatedAt())

	require.NoError(t, s.ApplyPatch(StockPatch{Quantity: optional.Of(12)}, day2))
	assert.Equal(t, 12, s.Quantity())
	assert.Equal(t, "units", s.UnitMeasure())
	assert.Equal(t, uint(2), s.LockerID())

	err = s.ApplyPatch(StockPatch{Quantity: optional.Of(-1), LockerID: optional.Of(uint(0))}, day2)
	assert.Equal(t, []string{"quantity", "locker_id"}, fieldNames(t, err))
	assert.Equal(t, 12, s.Quantity())

	_, err = NewStock(-3, 0, 1, strings.Repeat("u", MaxUnitMeasureLength+1), day1)
	assert.Equal(t, []string{"quantity", "item_id", "unit_measure"}, fieldNames(t, err))
}

func TestStock_EmptyUnitMeasureAllowed(t *testing.T) {
	s, err := NewStock(1, 1, 1, "", day1)
	require.NoError(t, err)
	assert.Equal(t, "", s.UnitMeasure())
}

func TestSetID_OnlyOnce(t *testing.T) {
	l, err := NewLocker("small", true, day1)
	require.NoError(t, err)

	require.NoError(t, l.SetID(4))
	assert.Error(t, l.SetID(5))
	assert.Equal(t, uint(4), l.ID())
}

func TestReconstruct_RejectsZeroID(t *testing.T) {
	_, err := ReconstructCategory(0, "x", day1, day1)
	assert.Error(t, err)
	_, err = ReconstructItem(0, "x", "r", nil, 1, day1, day1)
	assert.Error(t, err)
	_, err = ReconstructLocker(0, "x", true, day1, day1)
	assert.Error(t, err)
	_, err = ReconstructStock(0, 1, 1, 1, "units", day1)
	assert.Error(t, err)
}
