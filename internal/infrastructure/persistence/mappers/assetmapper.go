package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(m *models.AssetModel) *asset.Asset
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	d := a.Details()
	return &models.AssetModel{
		ID:              a.ID(),
		AssetTypeID:     a.AssetTypeID(),
		TypeName:        a.TypeName(),
		Brand:           d.Brand,
		Model:           d.Model,
		Hostname:        d.Hostname,
		InvoiceNumber:   d.InvoiceNumber,
		PatrimonyNumber: d.PatrimonyNumber,
		SerialNumber:    a.SerialNumber(),
		Status:          d.Status,
		Ownership:       d.Ownership,
		Location:        d.Location,
		CostCenterID:    a.CostCenterID(),
		DeviceUserID:    a.DeviceUserID(),
		AcquisitionDate: toDate(d.AcquisitionDate),
		ReturnDate:      toDate(d.ReturnDate),
		Notes:           d.Notes,
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) *asset.Asset {
	if model == nil {
		return nil
	}
	return asset.ReconstructAsset(
		model.ID,
		model.AssetTypeID,
		model.TypeName,
		model.SerialNumber,
		asset.Details{
			Brand:           model.Brand,
			Model:           model.Model,
			Hostname:        model.Hostname,
			InvoiceNumber:   model.InvoiceNumber,
			PatrimonyNumber: model.PatrimonyNumber,
			Status:          model.Status,
			Ownership:       model.Ownership,
			Location:        model.Location,
			Notes:           model.Notes,
			AcquisitionDate: fromDate(model.AcquisitionDate),
			ReturnDate:      fromDate(model.ReturnDate),
		},
		model.CostCenterID,
		model.DeviceUserID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

func AssetTypeToDomain(m *models.AssetTypeModel) *asset.AssetType {
	return asset.ReconstructAssetType(m.ID, m.Name)
}

func CostCenterToDomain(m *models.CostCenterModel) *asset.CostCenter {
	return asset.ReconstructCostCenter(m.ID, m.Code, m.Name, m.CreatedAt)
}

func DeviceUserToModel(u *asset.DeviceUser) *models.DeviceUserModel {
	return &models.DeviceUserModel{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		Department:   u.Department(),
		CostCenterID: u.CostCenterID(),
	}
}

func DeviceUserToDomain(m *models.DeviceUserModel) *asset.DeviceUser {
	return asset.ReconstructDeviceUser(m.ID, asset.DeviceUserFields{
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Department:   m.Department,
		CostCenterID: m.CostCenterID,
	})
}
