package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssetModel keeps TypeName as a copy of asset_types.name for list views.
type AssetModel struct {
	ID              uint   `gorm:"primaryKey"`
	AssetTypeID     uint   `gorm:"not null;index"`
	TypeName        string `gorm:"size:100;not null"`
	Brand           string `gorm:"size:100"`
	Model           string `gorm:"size:100"`
	Hostname        string `gorm:"size:100"`
	InvoiceNumber   string `gorm:"size:100"`
	PatrimonyNumber string `gorm:"size:100"`
	SerialNumber    string `gorm:"uniqueIndex;size:100;not null"`
	Status          string `gorm:"size:50;index"`
	Ownership       string `gorm:"size:50"`
	Location        string `gorm:"size:100"`
	CostCenterID    *uint  `gorm:"index"`
	DeviceUserID    *uint  `gorm:"index"`
	AcquisitionDate *datatypes.Date
	ReturnDate      *datatypes.Date
	Notes           string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AssetModel) TableName() string {
	return "assets"
}

type AssetTypeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (AssetTypeModel) TableName() string {
	return "asset_types"
}

type CostCenterModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;size:50;not null"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
}

func (CostCenterModel) TableName() string {
	return "cost_centers"
}

type DeviceUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100"`
	Email        string `gorm:"size:150;not null"`
	Department   string `gorm:"size:100"`
	CostCenterID *uint  `gorm:"index"`
}

func (DeviceUserModel) TableName() string {
	return "device_users"
}
