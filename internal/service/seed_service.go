package service

import (
	"context"
	"time"

	"go-gin-activities/internal/model"
	"go-gin-activities/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeedService interface {
	// Seed 只在資料表為空時寫入種子資料；clear 為 true 時先清空所有資料表
	Seed(ctx context.Context, clear bool) error
	// Clear 依外鍵順序清空：Events、Groups、Activities、People、Tags
	Clear(ctx context.Context) error
}

type SeedServiceImpl struct {
	tx         repository.Transactor
	activities repository.ActivityRepository
	events     repository.EventRepository
	groups     repository.GroupRepository
	people     repository.PersonRepository
	tags       repository.TagRepository
	now        func() time.Time
}

func NewSeedService(
	tx repository.Transactor,
	activities repository.ActivityRepository,
	events repository.EventRepository,
	groups repository.GroupRepository,
	people repository.PersonRepository,
	tags repository.TagRepository,
	now func() time.Time,
) SeedService {
	if now == nil {
		now = time.Now
	}
	return &SeedServiceImpl{
		tx:         tx,
		activities: activities,
		events:     events,
		groups:     groups,
		people:     people,
		tags:       tags,
		now:        now,
	}
}

type seedCounts struct {
	activities, events, groups, people, tags int
}

func (c seedCounts) allPresent() bool {
	return c.activities > 0 && c.events > 0 && c.groups > 0 && c.people > 0 && c.tags > 0
}

func (s *SeedServiceImpl) Clear(ctx context.Context) error {
	log := serviceLogger("ClearData")

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, deleteAll := range []func(context.Context) error{
			s.events.DeleteAll,
			s.groups.DeleteAll,
			s.activities.DeleteAll,
			s.people.DeleteAll,
			s.tags.DeleteAll,
		} {
			if err := deleteAll(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return classify(ctx, log, err, "")
	}
	log.Info("All data cleared")
	return nil
}

func (s *SeedServiceImpl) Seed(ctx context.Context, clear bool) error {
	log := serviceLogger("SeedData", zap.Bool("clear", clear))

	if clear {
		if err := s.Clear(ctx); err != nil {
			return err
		}
	}

	counts, err := s.count(ctx)
	if err != nil {
		return classify(ctx, log, err, "")
	}
	if counts.allPresent() {
		log.Info("Database already seeded, skipping")
		return nil
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.seed(ctx, counts)
	})
	if err != nil {
		return classify(ctx, log, err, "")
	}
	log.Info("Database seeded successfully")
	return nil
}

func (s *SeedServiceImpl) count(ctx context.Context) (seedCounts, error) {
	var c seedCounts
	var err error
	if c.activities, err = s.activities.Count(ctx); err != nil {
		return c, err
	}
	if c.events, err = s.events.Count(ctx); err != nil {
		return c, err
	}
	if c.groups, err = s.groups.Count(ctx); err != nil {
		return c, err
	}
	if c.people, err = s.people.Count(ctx); err != nil {
		return c, err
	}
	if c.tags, err = s.tags.Count(ctx); err != nil {
		return c, err
	}
	return c, nil
}

// seed 依 Tags、People、重新讀取、Groups、Events、Activities 的順序寫入
func (s *SeedServiceImpl) seed(ctx context.Context, counts seedCounts) error {
	if counts.tags == 0 {
		for _, name := range seedTags {
			if _, err := s.tags.Create(ctx, &model.Tag{TagID: uuid.New(), TagName: name}); err != nil {
				return err
			}
		}
	}
	if counts.people == 0 {
		for _, p := range seedPeople {
			interests := p.interests
			person := &model.Person{
				PersonID:  uuid.New(),
				FirstName: p.first,
				LastName:  p.last,
				Age:       p.age,
				Interests: &interests,
			}
			if _, err := s.people.Create(ctx, person); err != nil {
				return err
			}
		}
	}

	// 以資料庫中實際存在的 tags 與 people 作為關聯目標
	storedTags, err := s.tags.List(ctx)
	if err != nil {
		return err
	}
	storedPeople, err := s.people.List(ctx)
	if err != nil {
		return err
	}
	tagsByName := make(map[string]model.Tag, len(storedTags))
	for _, t := range storedTags {
		tagsByName[t.TagName] = t
	}
	peopleByName := make(map[string]model.Person, len(storedPeople))
	for _, p := range storedPeople {
		peopleByName[p.FullName()] = p
	}

	if counts.groups == 0 {
		for _, g := range seedGroups {
			if _, err := s.groups.Create(ctx, buildGroup(g, peopleByName, tagsByName)); err != nil {
				return err
			}
		}
	}
	if counts.events == 0 {
		for _, e := range seedEvents {
			group := buildGroup(e.group, peopleByName, tagsByName)
			description := e.description
			location := e.location
			event := &model.Event{
				Group:            *group,
				EventID:          group.GroupID,
				EventName:        e.name,
				EventDescription: &description,
				Location:         &location,
				Tags:             resolve(e.tags, tagsByName),
				Registration:     resolve(e.registration, peopleByName),
			}
			if _, err := s.events.Create(ctx, event); err != nil {
				return err
			}
		}
	}
	if counts.activities == 0 {
		for _, a := range seedActivityModels(s.now()) {
			a.ID = uuid.New().String()
			if _, err := s.activities.Create(ctx, &a); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildGroup(g groupSeed, people map[string]model.Person, tags map[string]model.Tag) *model.Group {
	group := &model.Group{
		GroupID:    uuid.New(),
		GroupName:  g.name,
		Organizers: resolve(g.organizers, people),
		GroupTags:  resolve(g.tags, tags),
	}
	if g.description != "" {
		description := g.description
		group.GroupDescription = &description
	}
	return group
}

// resolve 依名稱取出已儲存的實體，找不到的名稱略過
func resolve[T any](names []string, stored map[string]T) []T {
	out := make([]T, 0, len(names))
	for _, name := range names {
		if v, ok := stored[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
