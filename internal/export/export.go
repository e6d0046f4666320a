package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Колонки выгрузки бронирований
var columns = []string{"Date", "Time", "Customer Name", "Email", "Reason", "Status", "Booked At"}

// BookingsCSV выгружает бронирования в CSV с фиксированным набором колонок
func BookingsCSV(bookings []*domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("export: write csv header: %w", err)
	}

	for _, b := range bookings {
		if err := w.Write(bookingRow(b)); err != nil {
			return nil, fmt.Errorf("export: write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// BookingsXLSX выгружает бронирования в XLSX с жирной строкой заголовков
func BookingsXLSX(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("export: write header cell: %w", err)
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}

	for rowIdx, b := range bookings {
		for colIdx, val := range bookingRow(b) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("export: write data cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

func bookingRow(b *domain.Booking) []string {
	return []string{
		b.Datetime.Format(domain.DateFormat),
		b.Datetime.Format(domain.TimeFormat),
		b.CustomerName,
		b.CustomerEmail,
		b.Reason,
		string(b.Status),
		b.CreatedAt.Format(domain.DateFormat + " " + domain.TimeFormat),
	}
}
