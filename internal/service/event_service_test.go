package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-activities/internal/model"
	repoMocks "go-gin-activities/internal/repository/mocks"
	"go-gin-activities/internal/service"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceMocks struct {
	events *repoMocks.MockEventRepository
	people *repoMocks.MockPersonRepository
	tags   *repoMocks.MockTagRepository
}

func setupEventService(t *testing.T, settleDelay time.Duration) (service.EventService, eventServiceMocks) {
	m := eventServiceMocks{
		events: repoMocks.NewMockEventRepository(t),
		people: repoMocks.NewMockPersonRepository(t),
		tags:   repoMocks.NewMockTagRepository(t),
	}
	return service.NewEventService(m.events, m.people, m.tags, passthroughTx(t), settleDelay), m
}

func testEvent() *model.Event {
	id := uuid.MustParse("6f1c2a4e-3b7d-4d8e-9f10-2a3b4c5d6e7f")
	return &model.Event{
		Group:        model.Group{GroupID: id, GroupName: "Builders Circle", Organizers: []model.Person{}, GroupTags: []model.Tag{}},
		EventID:      id,
		EventName:    "Demo Day",
		Tags:         []model.Tag{},
		Registration: []model.Person{},
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - assigns ids and ensures references", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		event := &model.Event{
			Group: model.Group{
				GroupName:  "Neighbourhood Music Collective",
				Organizers: []model.Person{{FirstName: "Carla", LastName: "Nguyen"}},
			},
			EventName: "Summer Open Mic",
			Tags:      []model.Tag{{TagName: "Music"}},
		}

		m.people.EXPECT().EnsureExists(ctx, mock.MatchedBy(func(people []model.Person) bool {
			return len(people) == 1 && people[0].PersonID != uuid.Nil
		})).Return(nil).Once()
		m.tags.EXPECT().EnsureExists(ctx, mock.MatchedBy(func(tags []model.Tag) bool {
			return len(tags) == 1 && tags[0].TagID != uuid.Nil
		})).Return(nil).Once()
		m.events.EXPECT().Create(ctx, event).Return(event, nil).Once()

		created, err := svc.Create(ctx, event)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.EventID)
		assert.Equal(t, created.EventID, created.GroupID)
	})

	t.Run("Success - keeps supplied ids", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		event := testEvent()
		m.events.EXPECT().Create(ctx, event).Return(event, nil).Once()

		created, err := svc.Create(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, uuid.MustParse("6f1c2a4e-3b7d-4d8e-9f10-2a3b4c5d6e7f"), created.EventID)
		m.people.AssertNotCalled(t, "EnsureExists")
		m.tags.AssertNotCalled(t, "EnsureExists")
	})

	t.Run("Failed - nil payload", func(t *testing.T) {
		svc, m := setupEventService(t, 0)

		_, err := svc.Create(ctx, nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.events.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - reference error aborts create", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		event := testEvent()
		event.Registration = []model.Person{{FirstName: "Brian", LastName: "Smith"}}
		m.people.EXPECT().EnsureExists(ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		_, err := svc.Create(ctx, event)

		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
		m.events.AssertNotCalled(t, "Create")
	})
}

func TestEventService_Edit(t *testing.T) {
	ctx := context.Background()
	eventID := testEvent().EventID

	t.Run("Success - relations replaced", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		updated := testEvent()
		updated.Location = ptr("Town Hall")

		m.events.EXPECT().FindByEventID(ctx, eventID).Return(testEvent(), nil).Once()
		m.tags.EXPECT().EnsureExists(ctx, mock.Anything).Return(nil).Once()
		m.events.EXPECT().Update(ctx, eventID, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Location != nil && *p.Location == "Town Hall" && p.EventName == nil &&
				len(p.Tags) == 1 && p.Tags[0].TagID != uuid.Nil && p.Organizers == nil
		})).Return(updated, nil).Once()

		result, err := svc.Edit(ctx, eventID, model.UpdateEventParams{
			Location:  ptr("Town Hall"),
			EventName: ptr(" "),
			Tags:      []model.Tag{{TagName: "Community"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Town Hall", *result.Location)
	})

	t.Run("Success - nothing meaningful returns existing", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		existing := testEvent()
		m.events.EXPECT().FindByEventID(ctx, eventID).Return(existing, nil).Once()

		result, err := svc.Edit(ctx, eventID, model.UpdateEventParams{GroupName: ptr("")})

		require.NoError(t, err)
		assert.Same(t, existing, result)
		m.events.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - not found logs warning", func(t *testing.T) {
		logs := observeLogs(t)
		svc, m := setupEventService(t, 0)
		m.events.EXPECT().FindByEventID(ctx, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Edit(ctx, eventID, model.UpdateEventParams{EventName: ptr("x")})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Equal(t, 1, logs.FilterMessage("Event not found for update").Len())
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	eventID := testEvent().EventID

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventService(t, time.Millisecond)
		m.events.EXPECT().FindByEventID(ctx, eventID).Return(testEvent(), nil).Once()
		m.events.EXPECT().Delete(ctx, eventID).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, eventID))
	})

	t.Run("Failed - deadline while settling", func(t *testing.T) {
		svc, m := setupEventService(t, time.Hour)
		deadline, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		m.events.EXPECT().FindByEventID(deadline, eventID).Return(testEvent(), nil).Once()

		err := svc.Delete(deadline, eventID)

		assert.ErrorIs(t, err, apperrors.ErrTimeout)
		m.events.AssertNotCalled(t, "Delete")
	})
}

func TestEventService_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupEventService(t, 0)
		first, second := uuid.New(), uuid.New()
		m.events.EXPECT().DeleteMany(ctx, []uuid.UUID{first, second}).Return([]*model.Event{testEvent(), testEvent()}, nil).Once()

		deleted, err := svc.DeleteMany(ctx, []uuid.UUID{first, second, first})

		require.NoError(t, err)
		assert.Len(t, deleted, 2)
	})

	t.Run("Failed - empty list", func(t *testing.T) {
		svc, _ := setupEventService(t, 0)

		_, err := svc.DeleteMany(ctx, nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEventService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, m := setupEventService(t, 0)
	m.events.EXPECT().List(ctx).Return([]*model.Event{testEvent()}, nil).Once()

	data, err := svc.ExportCSV(ctx)

	require.NoError(t, err)
	assert.Contains(t, string(data), "EventId,EventName,EventDescription,Location,GroupId,GroupName,GroupDescription\n")
	assert.Contains(t, string(data), "6f1c2a4e-3b7d-4d8e-9f10-2a3b4c5d6e7f,Demo Day,,,6f1c2a4e-3b7d-4d8e-9f10-2a3b4c5d6e7f,Builders Circle,\n")
}
