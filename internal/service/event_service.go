package service

import (
	"context"
	"time"

	"go-gin-activities/internal/export"
	"go-gin-activities/internal/model"
	"go-gin-activities/internal/observability"
	"go-gin-activities/internal/repository"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	GetDetails(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	// Create 同一個 transaction 內寫入 event 及其參照的 people 與 tags
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Edit(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	DeleteMany(ctx context.Context, eventIDs []uuid.UUID) ([]*model.Event, error)
	ExportExcel(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type EventServiceImpl struct {
	repo        repository.EventRepository
	personRepo  repository.PersonRepository
	tagRepo     repository.TagRepository
	tx          repository.Transactor
	settleDelay time.Duration
}

func NewEventService(
	repo repository.EventRepository,
	personRepo repository.PersonRepository,
	tagRepo repository.TagRepository,
	tx repository.Transactor,
	settleDelay time.Duration,
) EventService {
	return &EventServiceImpl{
		repo:        repo,
		personRepo:  personRepo,
		tagRepo:     tagRepo,
		tx:          tx,
		settleDelay: settleDelay,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	log := serviceLogger("ListEvents")
	log.Info("Fetching event list")

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	return events, nil
}

func (s *EventServiceImpl) GetDetails(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	log := serviceLogger("GetEventDetails", zap.String("event_id", eventID.String()))

	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, classify(ctx, log, err, "Event not found")
	}
	log.Info("Event retrieved successfully")
	return event, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	log := serviceLogger("CreateEvent")
	if event == nil {
		log.Warn("Event payload is missing")
		return nil, apperrors.ErrInvalidInput
	}
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.GroupID == uuid.Nil {
		event.GroupID = event.EventID
	}
	log = log.With(zap.String("event_id", event.EventID.String()))

	assignPersonIDs(event.Organizers)
	assignPersonIDs(event.Registration)
	assignTagIDs(event.GroupTags)
	assignTagIDs(event.Tags)

	var created *model.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureReferences(ctx, event.Organizers, event.Registration, event.GroupTags, event.Tags); err != nil {
			return err
		}
		var err error
		created, err = s.repo.Create(ctx, event)
		return err
	})
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	log.Info("Event created successfully")
	return created, nil
}

func (s *EventServiceImpl) Edit(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	log := serviceLogger("EditEvent", zap.String("event_id", eventID.String()))

	existing, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, classify(ctx, log, err, "Event not found for update")
	}

	sparse := params.Sparse()
	if sparse.IsEmpty() {
		log.Info("No meaningful fields to update")
		return existing, nil
	}

	assignPersonIDs(sparse.Organizers)
	assignPersonIDs(sparse.Registration)
	assignTagIDs(sparse.GroupTags)
	assignTagIDs(sparse.Tags)

	var updated *model.Event
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureReferences(ctx, sparse.Organizers, sparse.Registration, sparse.GroupTags, sparse.Tags); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.Update(ctx, eventID, sparse)
		return err
	})
	if err != nil {
		return nil, classify(ctx, log, err, "Event not found for update")
	}
	log.Info("Event updated successfully")
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, eventID uuid.UUID) error {
	log := serviceLogger("DeleteEvent", zap.String("event_id", eventID.String()))

	if _, err := s.repo.FindByEventID(ctx, eventID); err != nil {
		return classify(ctx, log, err, "Event not found for deletion")
	}
	if err := settle(ctx, s.settleDelay); err != nil {
		return classify(ctx, log, err, "")
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return classify(ctx, log, err, "Event not found for deletion")
	}
	log.Info("Event deleted successfully")
	return nil
}

func (s *EventServiceImpl) DeleteMany(ctx context.Context, eventIDs []uuid.UUID) ([]*model.Event, error) {
	log := serviceLogger("DeleteEvents", zap.Int("count", len(eventIDs)))
	eventIDs = distinct(eventIDs)
	if len(eventIDs) == 0 {
		log.Warn("No event ids supplied")
		return nil, apperrors.ErrInvalidInput
	}

	var deleted []*model.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteMany(ctx, eventIDs)
		return err
	})
	if err != nil {
		return nil, classify(ctx, log, err, "One or more events not found for deletion")
	}
	log.Info("Events deleted successfully", zap.Int("deleted", len(deleted)))
	return deleted, nil
}

func (s *EventServiceImpl) ExportExcel(ctx context.Context) ([]byte, error) {
	log := serviceLogger("ExportEventsExcel")
	log.Info("Exporting event list to Excel format")

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	data, err := export.EventsWorkbook(events)
	if err != nil {
		log.Error("An error occurred while exporting events to Excel", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	observability.RecordExportRows("event", "xlsx", len(events))
	return data, nil
}

func (s *EventServiceImpl) ExportCSV(ctx context.Context) ([]byte, error) {
	log := serviceLogger("ExportEventsCSV")
	log.Info("Fetching event list for CSV export")

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	data, err := export.EventsCSV(events)
	if err != nil {
		log.Error("An error occurred while exporting events to CSV", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	observability.RecordExportRows("event", "csv", len(events))
	return data, nil
}

// ensureReferences 確保被關聯的 people 與 tags 已存在
func (s *EventServiceImpl) ensureReferences(ctx context.Context, organizers, registration []model.Person, groupTags, tags []model.Tag) error {
	people := append(append([]model.Person{}, organizers...), registration...)
	if len(people) > 0 {
		if err := s.personRepo.EnsureExists(ctx, people); err != nil {
			return err
		}
	}
	allTags := append(append([]model.Tag{}, groupTags...), tags...)
	if len(allTags) > 0 {
		if err := s.tagRepo.EnsureExists(ctx, allTags); err != nil {
			return err
		}
	}
	return nil
}

func assignPersonIDs(people []model.Person) {
	for i := range people {
		if people[i].PersonID == uuid.Nil {
			people[i].PersonID = uuid.New()
		}
	}
}

func assignTagIDs(tags []model.Tag) {
	for i := range tags {
		if tags[i].TagID == uuid.Nil {
			tags[i].TagID = uuid.New()
		}
	}
}
