package todo

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"slices"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// memoryGateway keeps todos in insertion order and hands out increasing timestamps.
type memoryGateway struct {
	todos  map[string]entity.Todo
	clock  time.Time
	writes int
	err    error
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{
		todos: make(map[string]entity.Todo),
		clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (g *memoryGateway) tick() time.Time {
	g.clock = g.clock.Add(time.Second)
	return g.clock
}

func (g *memoryGateway) FindByStatuses(_ context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error) {
	if g.err != nil {
		return nil, g.err
	}
	result := make([]entity.Todo, 0)
	for _, todo := range g.todos {
		if slices.Contains(statuses, todo.Status) {
			result = append(result, todo)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (g *memoryGateway) FindByID(_ context.Context, id string) (*entity.Todo, error) {
	if g.err != nil {
		return nil, g.err
	}
	todo, ok := g.todos[id]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (g *memoryGateway) CountByStatus(context.Context) (map[entity.TodoStatus]int64, error) {
	if g.err != nil {
		return nil, g.err
	}
	counts := make(map[entity.TodoStatus]int64)
	for _, todo := range g.todos {
		counts[todo.Status]++
	}
	return counts, nil
}

func (g *memoryGateway) Create(_ context.Context, todo entity.Todo) (*entity.Todo, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.writes++
	todo.ID = uuid.NewString()
	todo.CreatedAt = g.tick()
	todo.UpdatedAt = todo.CreatedAt
	g.todos[todo.ID] = todo
	return &todo, nil
}

func (g *memoryGateway) UpdateStatus(_ context.Context, id string, status entity.TodoStatus) (*entity.Todo, error) {
	if g.err != nil {
		return nil, g.err
	}
	todo, ok := g.todos[id]
	if !ok {
		return nil, nil
	}
	g.writes++
	todo.Status = status
	todo.UpdatedAt = g.tick()
	g.todos[id] = todo
	return &todo, nil
}

// fakeCache mirrors the Redis cache: lists are keyed by generation and
// Invalidate moves the generation forward before dropping stored lists.
type fakeCache struct {
	lists         map[string][]entity.Todo
	generation    int64
	invalidations int
	err           error
}

func newFakeCache() *fakeCache {
	return &fakeCache{lists: make(map[string][]entity.Todo)}
}

func cacheKey(generation int64, statuses []entity.TodoStatus) string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	slices.Sort(values)
	return strconv.FormatInt(generation, 10) + ":" + strings.Join(values, ",")
}

func (c *fakeCache) Generation(context.Context) (int64, error) {
	return c.generation, c.err
}

func (c *fakeCache) GetList(_ context.Context, generation int64, statuses []entity.TodoStatus) ([]entity.Todo, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	todos, ok := c.lists[cacheKey(generation, statuses)]
	return todos, ok, nil
}

func (c *fakeCache) SetList(_ context.Context, generation int64, statuses []entity.TodoStatus, todos []entity.Todo) error {
	if c.err != nil {
		return c.err
	}
	c.lists[cacheKey(generation, statuses)] = todos
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	if c.err != nil {
		return c.err
	}
	c.generation++
	clear(c.lists)
	return nil
}

func (c *fakeCache) Health(context.Context) model.ComponentHealthStatus {
	return model.NewComponentHealth(c.err)
}

type fakePublisher struct {
	events []model.TodoEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event model.TodoEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateDefaults(t *testing.T) {
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)

	todo, err := useCase.Create(context.Background(), model.CreateTodoDTO{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if todo.Status != entity.TodoStatusNew {
		t.Errorf("Status = %q, want New", todo.Status)
	}
	if todo.Description != nil {
		t.Errorf("Description = %q, want nil", *todo.Description)
	}
	if _, err := uuid.Parse(todo.ID); err != nil {
		t.Errorf("ID %q is not a uuid", todo.ID)
	}
	if todo.CreatedAt.IsZero() || todo.UpdatedAt.Before(todo.CreatedAt) {
		t.Errorf("timestamps = %v / %v", todo.CreatedAt, todo.UpdatedAt)
	}
}

func TestCreateKeepsProvidedFields(t *testing.T) {
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)

	todo, err := useCase.Create(context.Background(), model.CreateTodoDTO{
		Title:       "Ship release",
		Description: ptr("tag and publish"),
		Status:      ptr(entity.TodoStatusInProgress),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if todo.Status != entity.TodoStatusInProgress {
		t.Errorf("Status = %q, want In Progress", todo.Status)
	}
	if todo.Description == nil || *todo.Description != "tag and publish" {
		t.Errorf("Description = %v", todo.Description)
	}
}

func TestListDefaultFilterHidesCompleted(t *testing.T) {
	ctx := context.Background()
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)

	for _, dto := range []model.CreateTodoDTO{
		{Title: "first"},
		{Title: "second", Status: ptr(entity.TodoStatusCompleted)},
		{Title: "third", Status: ptr(entity.TodoStatusInProgress)},
		{Title: "fourth"},
	} {
		if _, err := useCase.Create(ctx, dto); err != nil {
			t.Fatal(err)
		}
	}

	todos, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var titles []string
	for i, todo := range todos {
		titles = append(titles, todo.Title)
		if todo.Status == entity.TodoStatusCompleted {
			t.Errorf("default list returned completed todo %q", todo.Title)
		}
		if i > 0 && !todos[i-1].CreatedAt.After(todo.CreatedAt) {
			t.Errorf("todos not ordered by createdAt desc at index %d", i)
		}
	}
	if want := []string{"fourth", "third", "first"}; !slices.Equal(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}
}

func TestListExplicitFilter(t *testing.T) {
	ctx := context.Background()
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)

	for _, status := range []entity.TodoStatus{entity.TodoStatusNew, entity.TodoStatusCompleted, entity.TodoStatusInProgress, entity.TodoStatusCompleted} {
		if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: string(status), Status: ptr(status)}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name     string
		statuses []entity.TodoStatus
		want     int
	}{
		{name: "completed only", statuses: []entity.TodoStatus{entity.TodoStatusCompleted}, want: 2},
		{name: "new and completed", statuses: []entity.TodoStatus{entity.TodoStatusNew, entity.TodoStatusCompleted}, want: 3},
		{name: "all", statuses: entity.TodoStatuses, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := useCase.List(ctx, model.FilterTodosDTO{Status: tt.statuses})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(todos) != tt.want {
				t.Errorf("len(todos) = %d, want %d", len(todos), tt.want)
			}
			for _, todo := range todos {
				if !slices.Contains(tt.statuses, todo.Status) {
					t.Errorf("unexpected status %q", todo.Status)
				}
			}
		})
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	todos, err := NewTodoUseCase(newMemoryGateway(), nil, nil).List(context.Background(), model.FilterTodosDTO{})
	if err != nil {
		t.Fatal(err)
	}
	if todos == nil {
		t.Error("List() returned nil slice")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	gateway := newMemoryGateway()
	publisher := &fakePublisher{}
	useCase := NewTodoUseCase(gateway, nil, publisher)
	id := uuid.NewString()

	_, err := useCase.UpdateStatus(context.Background(), id, model.UpdateTodoStatusDTO{Status: entity.TodoStatusNew})

	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("UpdateStatus() error = %v, want NotFoundError", err)
	}
	if notFound.ID != id {
		t.Errorf("NotFoundError.ID = %q, want %q", notFound.ID, id)
	}
	if gateway.writes != 0 || len(gateway.todos) != 0 {
		t.Errorf("store mutated: writes=%d todos=%d", gateway.writes, len(gateway.todos))
	}
	if len(publisher.events) != 0 {
		t.Errorf("published %d events for a missing todo", len(publisher.events))
	}
}

func TestUpdateStatusChangesOnlyStatus(t *testing.T) {
	ctx := context.Background()
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "Buy milk", Description: ptr("2 litres")})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := useCase.UpdateStatus(ctx, created.ID, model.UpdateTodoStatusDTO{Status: entity.TodoStatusCompleted})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if updated.Status != entity.TodoStatusCompleted {
		t.Errorf("Status = %q, want Completed", updated.Status)
	}
	if updated.ID != created.ID || updated.Title != created.Title || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("immutable fields changed: %+v -> %+v", created, updated)
	}
	if updated.Description == nil || *updated.Description != "2 litres" {
		t.Errorf("Description = %v", updated.Description)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestBuyMilkScenario(t *testing.T) {
	ctx := context.Background()
	useCase := NewTodoUseCase(newMemoryGateway(), newFakeCache(), nil)

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "Buy milk"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := useCase.UpdateStatus(ctx, created.ID, model.UpdateTodoStatusDTO{Status: entity.TodoStatusCompleted}); err != nil {
		t.Fatal(err)
	}

	visible, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil {
		t.Fatal(err)
	}
	if containsID(visible, created.ID) {
		t.Error("completed todo returned by the default list")
	}

	completed, err := useCase.List(ctx, model.FilterTodosDTO{Status: []entity.TodoStatus{entity.TodoStatusCompleted}})
	if err != nil {
		t.Fatal(err)
	}
	if !containsID(completed, created.ID) {
		t.Error("completed todo missing from status=Completed list")
	}
}

func TestListUsesCacheAndWritesInvalidate(t *testing.T) {
	ctx := context.Background()
	gateway := newMemoryGateway()
	todoCache := newFakeCache()
	useCase := NewTodoUseCase(gateway, todoCache, nil)

	if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "one"}); err != nil {
		t.Fatal(err)
	}
	first, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil || len(first) != 1 {
		t.Fatalf("List() = %v, %v", first, err)
	}

	gateway.err = errors.New("store unavailable")
	cached, err := useCase.List(ctx, model.FilterTodosDTO{Status: []entity.TodoStatus{entity.TodoStatusInProgress, entity.TodoStatusNew}})
	if err != nil {
		t.Fatalf("List() on warm cache error = %v", err)
	}
	if len(cached) != 1 {
		t.Errorf("cached list len = %d, want 1", len(cached))
	}
	gateway.err = nil

	if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "two"}); err != nil {
		t.Fatal(err)
	}
	if todoCache.invalidations != 2 {
		t.Errorf("invalidations = %d, want 2", todoCache.invalidations)
	}
	fresh, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil || len(fresh) != 2 {
		t.Errorf("List() after write = %d todos, %v; want 2", len(fresh), err)
	}
}

// racingGateway runs onFind after taking its snapshot and before returning it,
// the way a write committing mid query interleaves with a list.
type racingGateway struct {
	*memoryGateway
	onFind func()
}

func (g *racingGateway) FindByStatuses(ctx context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error) {
	snapshot, err := g.memoryGateway.FindByStatuses(ctx, statuses)
	if g.onFind != nil {
		onFind := g.onFind
		g.onFind = nil
		onFind()
	}
	return snapshot, err
}

func TestListDoesNotCacheResultOverlappingAWrite(t *testing.T) {
	ctx := context.Background()
	gateway := &racingGateway{memoryGateway: newMemoryGateway()}
	useCase := NewTodoUseCase(gateway, newFakeCache(), nil)

	gateway.onFind = func() {
		if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "Buy milk"}); err != nil {
			t.Errorf("Create() error = %v", err)
		}
	}

	overlapping, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(overlapping) != 0 {
		t.Fatalf("overlapping List() = %d todos, want the pre-write snapshot", len(overlapping))
	}

	todos, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "Buy milk" {
		t.Errorf("List() after the write returned = %+v, want the created todo", todos)
	}
}

func TestSideEffectFailuresDoNotFailWrites(t *testing.T) {
	ctx := context.Background()
	todoCache := newFakeCache()
	todoCache.err = errors.New("redis down")
	publisher := &fakePublisher{err: errors.New("sqs down")}
	useCase := NewTodoUseCase(newMemoryGateway(), todoCache, publisher)

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "resilient"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := useCase.UpdateStatus(ctx, created.ID, model.UpdateTodoStatusDTO{Status: entity.TodoStatusInProgress}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	todos, err := useCase.List(ctx, model.FilterTodosDTO{})
	if err != nil || len(todos) != 1 {
		t.Errorf("List() = %d todos, %v", len(todos), err)
	}
}

func TestEventsPublished(t *testing.T) {
	ctx := context.Background()
	publisher := &fakePublisher{}
	useCase := NewTodoUseCase(newMemoryGateway(), nil, publisher)

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "evented"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := useCase.UpdateStatus(ctx, created.ID, model.UpdateTodoStatusDTO{Status: entity.TodoStatusInProgress}); err != nil {
		t.Fatal(err)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("published %d events, want 2", len(publisher.events))
	}
	if e := publisher.events[0]; e.Type != model.TodoCreated || e.TodoID != created.ID || e.Status != entity.TodoStatusNew {
		t.Errorf("created event = %+v", e)
	}
	if e := publisher.events[1]; e.Type != model.TodoStatusChanged || e.PreviousStatus != entity.TodoStatusNew || e.Status != entity.TodoStatusInProgress {
		t.Errorf("status event = %+v", e)
	}
}

func TestCountByStatusReportsEveryStatus(t *testing.T) {
	ctx := context.Background()
	useCase := NewTodoUseCase(newMemoryGateway(), nil, nil)
	if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "a"}); err != nil {
		t.Fatal(err)
	}

	counts, err := useCase.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	want := map[entity.TodoStatus]int64{
		entity.TodoStatusNew:        1,
		entity.TodoStatusInProgress: 0,
		entity.TodoStatusCompleted:  0,
	}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for status, n := range want {
		if got, ok := counts[status]; !ok || got != n {
			t.Errorf("counts[%q] = %d (present %v), want %d", status, got, ok, n)
		}
	}
}

func TestGatewayErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	gateway := newMemoryGateway()
	gateway.err = errors.New("connection refused")
	useCase := NewTodoUseCase(gateway, nil, nil)

	if _, err := useCase.List(ctx, model.FilterTodosDTO{}); !errors.Is(err, gateway.err) {
		t.Errorf("List() error = %v", err)
	}
	if _, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "x"}); !errors.Is(err, gateway.err) {
		t.Errorf("Create() error = %v", err)
	}
	if _, err := useCase.UpdateStatus(ctx, uuid.NewString(), model.UpdateTodoStatusDTO{Status: entity.TodoStatusNew}); !errors.Is(err, gateway.err) {
		t.Errorf("UpdateStatus() error = %v", err)
	}
	if _, err := useCase.CountByStatus(ctx); !errors.Is(err, gateway.err) {
		t.Errorf("CountByStatus() error = %v", err)
	}
}

func containsID(todos []entity.Todo, id string) bool {
	return slices.ContainsFunc(todos, func(todo entity.Todo) bool { return todo.ID == id })
}
