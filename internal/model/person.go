package model

import (
	"time"

	"github.com/google/uuid"
)

type Person struct {
	PersonID    uuid.UUID  `json:"personId"`
	FirstName   string     `json:"firstName"`
	MiddleName  *string    `json:"middleName"`
	LastName    string     `json:"lastName"`
	Age         int        `json:"age"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address"`
	Interests   *string    `json:"interests"`
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Tag struct {
	TagID   uuid.UUID `json:"tagId"`
	TagName string    `json:"tagName"`
}
