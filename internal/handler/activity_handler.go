package handler

import (
	"net/http"
	"time"

	"go-gin-activities/internal/model"
	"go-gin-activities/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/api")
	{
		router.GET("activities", h.List)
		router.GET("activities/export", h.ExportExcel)
		router.GET("activities/export/csv", h.ExportCSV)
		router.GET("activities/:id", h.GetDetails)
		router.POST("activities", h.Create)
		router.PUT("activities/:id", h.Edit)
		router.DELETE("activities/:id", h.Delete)
		router.DELETE("activities", h.DeleteMany)
	}
}

// CreateActivityRequest 建立 activity 請求；id 為空時自動產生
type CreateActivityRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" binding:"required,notblank"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	IsCancelled bool      `json:"isCancelled"`
	City        string    `json:"city" binding:"required,notblank"`
	Venue       string    `json:"venue" binding:"required,notblank"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// UpdateActivityRequest 更新 activity 請求；id 必須與路徑一致
type UpdateActivityRequest struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	IsCancelled *bool      `json:"isCancelled"`
	City        *string    `json:"city"`
	Venue       *string    `json:"venue"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
}

func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "ListActivities")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) GetDetails(c *gin.Context) {
	activity, err := h.service.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetActivityDetails")
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	activity := &model.Activity{
		ID:          req.ID,
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		IsCancelled: req.IsCancelled,
		City:        req.City,
		Venue:       req.Venue,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	created, err := h.service.Create(c.Request.Context(), activity)
	if err != nil {
		handleError(c, err, "CreateActivity")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ActivityHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	var req UpdateActivityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity id in body does not match path"})
		return
	}
	params := model.UpdateActivityParams{
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		IsCancelled: req.IsCancelled,
		City:        req.City,
		Venue:       req.Venue,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if _, err := h.service.Edit(c.Request.Context(), id, params); err != nil {
		handleError(c, err, "EditActivity")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteActivity")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) DeleteMany(c *gin.Context) {
	var req DeleteManyRequest[string]
	if err := BindJson(c, &req); err != nil {
		return
	}
	deleted, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		handleError(c, err, "DeleteActivities")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (h *ActivityHandler) ExportExcel(c *gin.Context) {
	data, err := h.service.ExportExcel(c.Request.Context())
	if err != nil {
		handleError(c, err, "ExportActivitiesExcel")
		return
	}
	sendAttachment(c, "activities.xlsx", contentTypeXLSX, data)
}

func (h *ActivityHandler) ExportCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		handleError(c, err, "ExportActivitiesCSV")
		return
	}
	sendAttachment(c, "activities.csv", contentTypeCSV, data)
}
