// Package export renders asset inventories as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
)

const sheetName = "Ativos"

var assetHeader = []string{
	"ID", "Tipo", "Número de Série", "Marca", "Modelo", "Hostname",
	"Nota Fiscal", "Patrimônio", "Status", "Propriedade", "Localização",
	"Centro de Custo", "Usuário", "Data de Aquisição", "Data de Devolução", "Observações",
}

// XLSXExporter writes one row per asset under a bold header row.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ExportAssets(assets []dto.AssetDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &assetHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(assetHeader))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, a := range assets {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			a.ID, a.TypeName, a.SerialNumber, a.Brand, a.Model, a.Hostname,
			a.InvoiceNumber, a.PatrimonyNumber, a.Status, a.Ownership, a.Location,
			a.CostCenterName, a.DeviceUserName, a.AcquisitionDate, a.ReturnDate, a.Notes,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write asset %d: %w", a.ID, err)
		}
	}

	if err := f.SetColWidth(sheetName, "B", lastCol, 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
