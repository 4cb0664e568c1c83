package export

import (
	"strconv"
	"time"

	"go-gin-activities/internal/model"
)

var (
	ActivityColumns = []string{"Id", "Title", "Date", "Description", "Category", "IsCancelled", "City", "Venue", "Latitude", "Longitude"}
	EventColumns    = []string{"EventId", "EventName", "EventDescription", "Location", "GroupId", "GroupName", "GroupDescription"}
)

func activityRow(a *model.Activity) []interface{} {
	return []interface{}{
		a.ID,
		a.Title,
		a.Date,
		deref(a.Description),
		deref(a.Category),
		a.IsCancelled,
		a.City,
		a.Venue,
		a.Latitude,
		a.Longitude,
	}
}

func eventRow(e *model.Event) []interface{} {
	return []interface{}{
		e.EventID.String(),
		e.EventName,
		deref(e.EventDescription),
		deref(e.Location),
		e.GroupID.String(),
		e.GroupName,
		deref(e.GroupDescription),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// text 將儲存格的值轉為 CSV 文字
func text(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}
