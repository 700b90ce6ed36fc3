package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/xuri/excelize/v2"
)

const movementSheet = "Movements"

var movementHeader = []string{"ID", "Date", "Type", "From", "To", "Items", "User", "Status"}

// ExportMovements writes the filtered history as an XLSX workbook.
func (uc *inventoryUseCase) ExportMovements(ctx context.Context, filters *dto.MovementFilters, w io.Writer) error {
	all := *filters
	all.Page, all.PageSize = 0, 0
	movements, _, err := uc.repo.ListMovements(ctx, &all)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", movementSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(movementSheet, "A1", &movementHeader); err != nil {
		return err
	}

	for i, m := range movements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		to := m.To
		if to == "" {
			to = "-"
		}
		row := []interface{}{
			m.ID,
			m.Date.Format("2006-01-02 15:04"),
			string(m.Type),
			m.From,
			to,
			m.Items,
			m.User,
			string(m.Status),
		}
		if err := f.SetSheetRow(movementSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write movements workbook: %w", err)
	}
	return nil
}
