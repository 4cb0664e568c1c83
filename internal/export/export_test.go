package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"go-gin-activities/internal/export"
	"go-gin-activities/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func testActivities() []*model.Activity {
	return []*model.Activity{
		{
			ID:          "a1",
			Title:       "Hiking in the Alps",
			Date:        time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
			Description: strPtr("Bring water, snacks"),
			Category:    strPtr("Outdoors"),
			City:        "Interlaken",
			Venue:       "Grindelwald Trailhead",
			Latitude:    46.6242,
			Longitude:   8.0414,
		},
		{
			ID:          "a2",
			Title:       "Board Game Night",
			Date:        time.Date(2026, 6, 2, 19, 0, 0, 0, time.UTC),
			IsCancelled: true,
			City:        "Seattle",
			Venue:       "The Game Room Café",
		},
	}
}

func testEvent(description string) *model.Event {
	return &model.Event{
		Group: model.Group{
			GroupID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			GroupName: "Meetup Group",
		},
		EventID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		EventName:        "Launch",
		EventDescription: strPtr(description),
		Location:         strPtr("Main Hall"),
	}
}

func TestActivitiesWorkbook(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		data, err := export.ActivitiesWorkbook(testActivities())
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Activities"}, f.GetSheetList())

		rows, err := f.GetRows("Activities")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, export.ActivityColumns, rows[0])
		assert.Equal(t, "a1", rows[1][0])
		assert.Equal(t, "Hiking in the Alps", rows[1][1])
		assert.Equal(t, "Seattle", rows[2][6])

		tables, err := f.GetTables("Activities")
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, "ActivitiesTable", tables[0].Name)
		assert.Equal(t, "A1:J3", tables[0].Range)
		assert.Equal(t, "TableStyleMedium2", tables[0].StyleName)
	})

	t.Run("Success - empty list still has header and table", func(t *testing.T) {
		data, err := export.ActivitiesWorkbook(nil)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Activities")
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, export.ActivityColumns, rows[0])
	})
}

func TestEventsWorkbook(t *testing.T) {
	data, err := export.EventsWorkbook([]*model.Event{testEvent("Opening night")})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, export.EventColumns, rows[0])
	assert.Equal(t, []string{
		"22222222-2222-2222-2222-222222222222",
		"Launch",
		"Opening night",
		"Main Hall",
		"11111111-1111-1111-1111-111111111111",
		"Meetup Group",
	}, rows[1])

	tables, err := f.GetTables("Events")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "EventsTable", tables[0].Name)
}

func TestEventsCSV(t *testing.T) {
	t.Run("Success - comma in description is quoted", func(t *testing.T) {
		data, err := export.EventsCSV([]*model.Event{testEvent("Food, drinks and music")})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "EventId,EventName,EventDescription,Location,GroupId,GroupName,GroupDescription", lines[0])
		assert.Contains(t, lines[1], `,"Food, drinks and music",`)
	})

	t.Run("Success - quotes are doubled", func(t *testing.T) {
		data, err := export.EventsCSV([]*model.Event{testEvent(`The "best" night`)})
		require.NoError(t, err)

		assert.Contains(t, string(data), `"The ""best"" night"`)

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, `The "best" night`, records[1][2])
	})

	t.Run("Success - nil text renders empty", func(t *testing.T) {
		event := testEvent("x")
		event.Location = nil

		data, err := export.EventsCSV([]*model.Event{event})
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "", records[1][3])
		assert.Equal(t, "", records[1][6])
	})
}

func TestActivitiesCSV(t *testing.T) {
	data, err := export.ActivitiesCSV(testActivities())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, export.ActivityColumns, records[0])
	assert.Equal(t, []string{
		"a1", "Hiking in the Alps", "2026-06-01T08:00:00Z", "Bring water, snacks", "Outdoors",
		"false", "Interlaken", "Grindelwald Trailhead", "46.6242", "8.0414",
	}, records[1])
	assert.Equal(t, "true", records[2][5])
	assert.Equal(t, "0", records[2][8])
}
