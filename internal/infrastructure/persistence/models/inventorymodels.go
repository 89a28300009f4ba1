package models

import (
	"gorm.io/datatypes"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
)

// Inventory rows carry calendar dates rather than timestamps. Foreign keys
// restrict deletion of referenced rows; nothing cascades.

type CategoryModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt datatypes.Date `gorm:"not null"`
	UpdatedAt datatypes.Date `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type ItemModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:255;not null;index"`
	Reference   string         `gorm:"size:50;not null;uniqueIndex"`
	Description *string        `gorm:"type:text"`
	CategoryID  uint           `gorm:"not null;index"`
	CreatedAt   datatypes.Date `gorm:"not null"`
	UpdatedAt   datatypes.Date `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (ItemModel) TableName() string {
	return constants.TableItems
}

type LockerModel struct {
	ID         uint           `gorm:"primaryKey"`
	LockerType string         `gorm:"size:50;not null;index"`
	IsActive   bool           `gorm:"not null"`
	CreatedAt  datatypes.Date `gorm:"not null"`
	UpdatedAt  datatypes.Date `gorm:"not null"`
}

func (LockerModel) TableName() string {
	return constants.TableLockers
}

type StockModel struct {
	ID          uint           `gorm:"primaryKey"`
	Quantity    int            `gorm:"not null"`
	ItemID      uint           `gorm:"not null;index;uniqueIndex:unique_item_locker,priority:1"`
	LockerID    uint           `gorm:"not null;index;uniqueIndex:unique_item_locker,priority:2"`
	UnitMeasure string         `gorm:"size:50;not null"`
	CreatedAt   datatypes.Date `gorm:"not null"`

	Item   *ItemModel   `gorm:"foreignKey:ItemID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Locker *LockerModel `gorm:"foreignKey:LockerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (StockModel) TableName() string {
	return constants.TableStock
}

// All returns every persistence model in dependency order.
func All() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&LockerModel{},
		&ItemModel{},
		&StockModel{},
		&LockerPermissionModel{},
		&PendingCardModel{},
	}
}
