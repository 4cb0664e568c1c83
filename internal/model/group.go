package model

import "github.com/google/uuid"

type GroupKind string

const (
	GroupKindGroup GroupKind = "Group"
	GroupKindEvent GroupKind = "Event"
)

type Group struct {
	GroupID          uuid.UUID `json:"groupId"`
	GroupName        string    `json:"groupName"`
	GroupDescription *string   `json:"groupDescription"`
	Organizers       []Person  `json:"organizers"`
	GroupTags        []Tag     `json:"groupTags"`
}

// Event 與 Group 共用 groups 資料表（discriminator = 'Event'），主鍵為 GroupID
type Event struct {
	Group
	EventID          uuid.UUID `json:"eventId"`
	EventName        string    `json:"eventName"`
	EventDescription *string   `json:"eventDescription"`
	Location         *string   `json:"location"`
	Tags             []Tag     `json:"tags"`
	Registration     []Person  `json:"registration"`
}

// UpdateEventParams 部分更新；集合欄位非 nil 時整批取代
type UpdateEventParams struct {
	GroupName        *string
	GroupDescription *string
	EventName        *string
	EventDescription *string
	Location         *string
	Organizers       []Person
	GroupTags        []Tag
	Tags             []Tag
	Registration     []Person
}

// Sparse 過濾無意義的純量欄位，集合欄位原樣保留
func (p UpdateEventParams) Sparse() UpdateEventParams {
	return UpdateEventParams{
		GroupName:        meaningfulString(p.GroupName),
		GroupDescription: meaningfulString(p.GroupDescription),
		EventName:        meaningfulString(p.EventName),
		EventDescription: meaningfulString(p.EventDescription),
		Location:         meaningfulString(p.Location),
		Organizers:       p.Organizers,
		GroupTags:        p.GroupTags,
		Tags:             p.Tags,
		Registration:     p.Registration,
	}
}

func (p UpdateEventParams) IsEmpty() bool {
	return !p.HasScalars() && !p.HasRelations()
}

func (p UpdateEventParams) HasScalars() bool {
	return p.GroupName != nil || p.GroupDescription != nil || p.EventName != nil ||
		p.EventDescription != nil || p.Location != nil
}

func (p UpdateEventParams) HasRelations() bool {
	return p.Organizers != nil || p.GroupTags != nil || p.Tags != nil || p.Registration != nil
}
