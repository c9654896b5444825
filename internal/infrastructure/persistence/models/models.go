// Package models holds the gorm persistence shapes of the helpdesk tables.
package models

// All returns every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&TicketModel{},
		&TicketHistoryModel{},
		&TicketCommentModel{},
		&TicketAttachmentModel{},
		&AssetTypeModel{},
		&CostCenterModel{},
		&DeviceUserModel{},
		&AssetModel{},
		&StockItemModel{},
		&StockMovementModel{},
	}
}
