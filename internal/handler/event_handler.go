package handler

import (
	"net/http"
	"time"

	"go-gin-activities/internal/model"
	"go-gin-activities/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/api")
	{
		router.GET("events", h.List)
		router.GET("events/export", h.ExportExcel)
		router.GET("events/export/csv", h.ExportCSV)
		router.GET("events/:eventId", h.GetDetails)
		router.POST("events", h.Create)
		router.PUT("events/:eventId", h.Edit)
		router.DELETE("events/:eventId", h.Delete)
		router.DELETE("events", h.DeleteMany)
	}
}

type PersonRequest struct {
	PersonID    uuid.UUID  `json:"personId"`
	FirstName   string     `json:"firstName" binding:"required,notblank"`
	MiddleName  *string    `json:"middleName"`
	LastName    string     `json:"lastName" binding:"required,notblank"`
	Age         int        `json:"age"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address"`
	Interests   *string    `json:"interests"`
}

type TagRequest struct {
	TagID   uuid.UUID `json:"tagId"`
	TagName string    `json:"tagName" binding:"required,notblank"`
}

// CreateEventRequest 建立 event 請求；eventId 為空時自動產生，groupId 為空時沿用 eventId
type CreateEventRequest struct {
	EventID          uuid.UUID       `json:"eventId"`
	GroupID          uuid.UUID       `json:"groupId"`
	GroupName        string          `json:"groupName" binding:"required,notblank"`
	GroupDescription *string         `json:"groupDescription"`
	Organizers       []PersonRequest `json:"organizers" binding:"required,dive"`
	GroupTags        []TagRequest    `json:"groupTags" binding:"omitempty,dive"`
	EventName        string          `json:"eventName" binding:"required,notblank"`
	EventDescription *string         `json:"eventDescription"`
	Location         *string         `json:"location"`
	Tags             []TagRequest    `json:"tags" binding:"omitempty,dive"`
	Registration     []PersonRequest `json:"registration" binding:"omitempty,dive"`
}

// UpdateEventRequest 更新 event 請求；集合欄位有提供時整批取代
type UpdateEventRequest struct {
	EventID          uuid.UUID       `json:"eventId"`
	GroupName        *string         `json:"groupName"`
	GroupDescription *string         `json:"groupDescription"`
	Organizers       []PersonRequest `json:"organizers" binding:"omitempty,dive"`
	GroupTags        []TagRequest    `json:"groupTags" binding:"omitempty,dive"`
	EventName        *string         `json:"eventName"`
	EventDescription *string         `json:"eventDescription"`
	Location         *string         `json:"location"`
	Tags             []TagRequest    `json:"tags" binding:"omitempty,dive"`
	Registration     []PersonRequest `json:"registration" binding:"omitempty,dive"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetDetails(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	event, err := h.service.GetDetails(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "GetEventDetails")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		Group: model.Group{
			GroupID:          req.GroupID,
			GroupName:        req.GroupName,
			GroupDescription: req.GroupDescription,
			Organizers:       toPeople(req.Organizers),
			GroupTags:        toTags(req.GroupTags),
		},
		EventID:          req.EventID,
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		Location:         req.Location,
		Tags:             toTags(req.Tags),
		Registration:     toPeople(req.Registration),
	}
	created, err := h.service.Create(c.Request.Context(), event)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Edit(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.EventID != eventID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event id in body does not match path"})
		return
	}
	params := model.UpdateEventParams{
		GroupName:        req.GroupName,
		GroupDescription: req.GroupDescription,
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		Location:         req.Location,
		Organizers:       toPeople(req.Organizers),
		GroupTags:        toTags(req.GroupTags),
		Tags:             toTags(req.Tags),
		Registration:     toPeople(req.Registration),
	}
	if _, err := h.service.Edit(c.Request.Context(), eventID, params); err != nil {
		handleError(c, err, "EditEvent")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), eventID); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) DeleteMany(c *gin.Context) {
	var req DeleteManyRequest[uuid.UUID]
	if err := BindJson(c, &req); err != nil {
		return
	}
	deleted, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		handleError(c, err, "DeleteEvents")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *EventHandler) ExportExcel(c *gin.Context) {
	data, err := h.service.ExportExcel(c.Request.Context())
	if err != nil {
		handleError(c, err, "ExportEventsExcel")
		return
	}
	sendAttachment(c, "events.xlsx", contentTypeXLSX, data)
}

func (h *EventHandler) ExportCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		handleError(c, err, "ExportEventsCSV")
		return
	}
	sendAttachment(c, "events.csv", contentTypeCSV, data)
}

func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return uuid.Nil, false
	}
	return eventID, true
}

// toPeople 保留 nil，讓更新時可區分「未提供」與「清空」
func toPeople(reqs []PersonRequest) []model.Person {
	if reqs == nil {
		return nil
	}
	people := make([]model.Person, 0, len(reqs))
	for _, r := range reqs {
		people = append(people, model.Person{
			PersonID:    r.PersonID,
			FirstName:   r.FirstName,
			MiddleName:  r.MiddleName,
			LastName:    r.LastName,
			Age:         r.Age,
			DateOfBirth: r.DateOfBirth,
			Address:     r.Address,
			Interests:   r.Interests,
		})
	}
	return people
}

func toTags(reqs []TagRequest) []model.Tag {
	if reqs == nil {
		return nil
	}
	tags := make([]model.Tag, 0, len(reqs))
	for _, r := range reqs {
		tags = append(tags, model.Tag{TagID: r.TagID, TagName: r.TagName})
	}
	return tags
}
