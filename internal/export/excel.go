package export

import (
	"fmt"
	"time"
	"unicode/utf8"

	"go-gin-activities/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	tableStyle   = "TableStyleMedium2"
	minColWidth  = 10
	maxColWidth  = 80
	dateColWidth = 20
)

type sheet struct {
	name   string
	table  string
	header []string
	rows   [][]interface{}
}

func ActivitiesWorkbook(activities []*model.Activity) ([]byte, error) {
	rows := make([][]interface{}, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, activityRow(a))
	}
	return workbook(sheet{name: "Activities", table: "ActivitiesTable", header: ActivityColumns, rows: rows})
}

func EventsWorkbook(events []*model.Event) ([]byte, error) {
	rows := make([][]interface{}, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow(e))
	}
	return workbook(sheet{name: "Events", table: "EventsTable", header: EventColumns, rows: rows})
}

func workbook(sheets ...sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, s); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s sheet) error {
	header := make([]interface{}, len(s.header))
	for i, h := range s.header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return err
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}

	end, err := excelize.CoordinatesToCellName(len(s.header), len(s.rows)+1)
	if err != nil {
		return err
	}
	err = f.AddTable(s.name, &excelize.Table{
		Range:     "A1:" + end,
		Name:      s.table,
		StyleName: tableStyle,
	})
	if err != nil {
		return err
	}
	return autoWidth(f, s)
}

// autoWidth 依欄位內容最長字數調整欄寬
func autoWidth(f *excelize.File, s sheet) error {
	for col := range s.header {
		width := utf8.RuneCountInString(s.header[col])
		for _, row := range s.rows {
			if l := cellWidth(row[col]); l > width {
				width = l
			}
		}
		width = min(max(width+2, minColWidth), maxColWidth)

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

func cellWidth(v interface{}) int {
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x)
	case time.Time:
		return dateColWidth
	default:
		return utf8.RuneCountInString(text(v))
	}
}
