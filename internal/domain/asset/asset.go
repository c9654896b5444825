package asset

import (
	"fmt"
	"strings"
	"time"
)

// DefaultStatus applies when an asset is registered without one.
const DefaultStatus = "Em Estoque"

// Details are the descriptive, freely editable fields of an asset.
type Details struct {
	Brand           string
	Model           string
	Hostname        string
	InvoiceNumber   string
	PatrimonyNumber string
	Status          string
	Ownership       string
	Location        string
	Notes           string
	AcquisitionDate *time.Time
	ReturnDate      *time.Time
}

func (d Details) normalized() Details {
	d.Brand = strings.TrimSpace(d.Brand)
	d.Model = strings.TrimSpace(d.Model)
	d.Hostname = strings.TrimSpace(d.Hostname)
	d.InvoiceNumber = strings.TrimSpace(d.InvoiceNumber)
	d.PatrimonyNumber = strings.TrimSpace(d.PatrimonyNumber)
	d.Status = strings.TrimSpace(d.Status)
	if d.Status == "" {
		d.Status = DefaultStatus
	}
	d.Ownership = strings.TrimSpace(d.Ownership)
	d.Location = strings.TrimSpace(d.Location)
	return d
}

// Asset is an inventoried device. typeName mirrors the name of the linked
// AssetType and is only written through SetType.
type Asset struct {
	id           uint
	assetTypeID  uint
	typeName     string
	serialNumber string
	details      Details
	costCenterID *uint
	deviceUserID *uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAsset requires a resolved asset type and a serial number.
func NewAsset(assetType *AssetType, serialNumber string, details Details) (*Asset, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, fmt.Errorf("serial number is required")
	}

	now := time.Now().UTC()
	a := &Asset{
		serialNumber: serialNumber,
		details:      details.normalized(),
		createdAt:    now,
		updatedAt:    now,
	}
	if err := a.SetType(assetType); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructAsset(
	id, assetTypeID uint,
	typeName, serialNumber string,
	details Details,
	costCenterID, deviceUserID *uint,
	createdAt, updatedAt time.Time,
) *Asset {
	return &Asset{
		id:           id,
		assetTypeID:  assetTypeID,
		typeName:     typeName,
		serialNumber: serialNumber,
		details:      details,
		costCenterID: costCenterID,
		deviceUserID: deviceUserID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Asset) ID() uint             { return a.id }
func (a *Asset) AssetTypeID() uint    { return a.assetTypeID }
func (a *Asset) TypeName() string     { return a.typeName }
func (a *Asset) SerialNumber() string { return a.serialNumber }
func (a *Asset) Details() Details     { return a.details }
func (a *Asset) CostCenterID() *uint  { return a.costCenterID }
func (a *Asset) DeviceUserID() *uint  { return a.deviceUserID }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time { return a.updatedAt }

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	a.id = id
	return nil
}

// SetType links the asset to t and copies its name.
func (a *Asset) SetType(t *AssetType) error {
	if t == nil || t.ID() == 0 {
		return fmt.Errorf("asset type is required")
	}
	a.assetTypeID = t.ID()
	a.typeName = t.Name()
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Asset) ChangeSerialNumber(serial string) error {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return fmt.Errorf("serial number is required")
	}
	a.serialNumber = serial
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Asset) UpdateDetails(d Details) {
	a.details = d.normalized()
	a.updatedAt = time.Now().UTC()
}

// Link sets the optional cost center and device user. nil clears a link.
func (a *Asset) Link(costCenterID, deviceUserID *uint) {
	a.costCenterID = costCenterID
	a.deviceUserID = deviceUserID
	a.updatedAt = time.Now().UTC()
}
