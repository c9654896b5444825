package dto

import (
	"time"

	"github.com/synerjet/bendesk/internal/domain/asset"
)

// DateLayout is the wire format of acquisition and return dates.
const DateLayout = "2006-01-02"

type AssetDTO struct {
	ID              uint      `json:"id"`
	AssetTypeID     uint      `json:"asset_type_id"`
	TypeName        string    `json:"type_name"`
	SerialNumber    string    `json:"serial_number"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Hostname        string    `json:"hostname"`
	InvoiceNumber   string    `json:"invoice_number"`
	PatrimonyNumber string    `json:"patrimony_number"`
	Status          string    `json:"status"`
	Ownership       string    `json:"ownership"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
	AcquisitionDate string    `json:"acquisition_date,omitempty"`
	ReturnDate      string    `json:"return_date,omitempty"`
	CostCenterID    *uint     `json:"cost_center_id,omitempty"`
	CostCenterName  string    `json:"cost_center_name,omitempty"`
	DeviceUserID    *uint     `json:"device_user_id,omitempty"`
	DeviceUserName  string    `json:"device_user_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AssetRequest is the body of create and update. Dates use DateLayout;
// link ids that are empty or not positive integers are cleared.
type AssetRequest struct {
	AssetTypeID     uint   `json:"asset_type_id" binding:"required"`
	SerialNumber    string `json:"serial_number" binding:"required,max=100"`
	Brand           string `json:"brand" binding:"max=100"`
	Model           string `json:"model" binding:"max=100"`
	Hostname        string `json:"hostname" binding:"max=100"`
	InvoiceNumber   string `json:"invoice_number" binding:"max=100"`
	PatrimonyNumber string `json:"patrimony_number" binding:"max=100"`
	Status          string `json:"status" binding:"max=50"`
	Ownership       string `json:"ownership" binding:"max=50"`
	Location        string `json:"location" binding:"max=100"`
	Notes           string `json:"notes"`
	AcquisitionDate string `json:"acquisition_date"`
	ReturnDate      string `json:"return_date"`
	CostCenterID    string `json:"cost_center_id"`
	DeviceUserID    string `json:"device_user_id"`
}

type CostCenterDTO struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CostCenterRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=100"`
}

type AssetTypeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AssetTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type DeviceUserDTO struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	CostCenterID *uint  `json:"cost_center_id,omitempty"`
}

type DeviceUserRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=80"`
	LastName     string `json:"last_name" binding:"max=80"`
	Email        string `json:"email" binding:"required,email"`
	Department   string `json:"department" binding:"max=100"`
	CostCenterID string `json:"cost_center_id"`
}

// Names resolves link ids to display names.
type Names struct {
	CostCenters map[uint]string
	DeviceUsers map[uint]string
}

func ToAssetDTO(a *asset.Asset, names Names) AssetDTO {
	d := a.Details()
	out := AssetDTO{
		ID:              a.ID(),
		AssetTypeID:     a.AssetTypeID(),
		TypeName:        a.TypeName(),
		SerialNumber:    a.SerialNumber(),
		Brand:           d.Brand,
		Model:           d.Model,
		Hostname:        d.Hostname,
		InvoiceNumber:   d.InvoiceNumber,
		PatrimonyNumber: d.PatrimonyNumber,
		Status:          d.Status,
		Ownership:       d.Ownership,
		Location:        d.Location,
		Notes:           d.Notes,
		AcquisitionDate: formatDate(d.AcquisitionDate),
		ReturnDate:      formatDate(d.ReturnDate),
		CostCenterID:    a.CostCenterID(),
		DeviceUserID:    a.DeviceUserID(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
	if id := a.CostCenterID(); id != nil {
		out.CostCenterName = names.CostCenters[*id]
	}
	if id := a.DeviceUserID(); id != nil {
		out.DeviceUserName = names.DeviceUsers[*id]
	}
	return out
}

func ToAssetDTOList(assets []*asset.Asset, names Names) []AssetDTO {
	out := make([]AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetDTO(a, names))
	}
	return out
}

func ToCostCenterDTO(c *asset.CostCenter) CostCenterDTO {
	return CostCenterDTO{ID: c.ID(), Code: c.Code(), Name: c.Name(), CreatedAt: c.CreatedAt()}
}

func ToAssetTypeDTO(t *asset.AssetType) AssetTypeDTO {
	return AssetTypeDTO{ID: t.ID(), Name: t.Name()}
}

func ToDeviceUserDTO(u *asset.DeviceUser) DeviceUserDTO {
	return DeviceUserDTO{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		FullName:     u.FullName(),
		Email:        u.Email(),
		Department:   u.Department(),
		CostCenterID: u.CostCenterID(),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
