package model

import "time"

type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	IsCancelled bool      `json:"isCancelled"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// UpdateActivityParams 部分更新，nil 表示不更新
type UpdateActivityParams struct {
	Title       *string
	Date        *time.Time
	Description *string
	Category    *string
	IsCancelled *bool
	City        *string
	Venue       *string
	Latitude    *float64
	Longitude   *float64
}

// Sparse 只保留有意義的欄位：空白字串、0、零值或 epoch 時間視為未提供
func (p UpdateActivityParams) Sparse() UpdateActivityParams {
	return UpdateActivityParams{
		Title:       meaningfulString(p.Title),
		Date:        meaningfulTime(p.Date),
		Description: meaningfulString(p.Description),
		Category:    meaningfulString(p.Category),
		IsCancelled: p.IsCancelled,
		City:        meaningfulString(p.City),
		Venue:       meaningfulString(p.Venue),
		Latitude:    meaningfulFloat(p.Latitude),
		Longitude:   meaningfulFloat(p.Longitude),
	}
}

func (p UpdateActivityParams) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Description == nil && p.Category == nil &&
		p.IsCancelled == nil && p.City == nil && p.Venue == nil && p.Latitude == nil && p.Longitude == nil
}
