package export

import (
	"bytes"
	"encoding/csv"

	"go-gin-activities/internal/model"
)

func ActivitiesCSV(activities []*model.Activity) ([]byte, error) {
	rows := make([][]interface{}, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, activityRow(a))
	}
	return writeCSV(ActivityColumns, rows)
}

func EventsCSV(events []*model.Event) ([]byte, error) {
	rows := make([][]interface{}, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow(e))
	}
	return writeCSV(EventColumns, rows)
}

// writeCSV 含逗號、引號或換行的欄位會加上引號，內部引號加倍
func writeCSV(header []string, rows [][]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, v := range row {
			record[i] = text(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
