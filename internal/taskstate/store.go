package taskstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"taskManager/internal/apiclient"
	"taskManager/internal/logger"
	"taskManager/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrClosed - Store закрыт, ответ сервера отброшен
var ErrClosed = errors.New("taskstate: store closed")

// API - то, что Store нужно от сервера. Реализуется apiclient.Client.
type API interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	CreateTask(ctx context.Context, input task.Input) (task.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (task.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type Store struct {
	api      API
	notifier Notifier
	pageSize int

	mtx     sync.RWMutex
	tasks   []task.Task // новые первыми
	pending int         // активные Load
	filter  Filter
	page    int

	lifetime context.Context
	cancel   context.CancelFunc
}

type Option func(*Store)

func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// New создаёт Store, живущий не дольше ctx. Close или отмена ctx
// прерывает запросы в полёте, их ответы не применяются.
func New(ctx context.Context, api API, notifier Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	lifetime, cancel := context.WithCancel(ctx)
	s := &Store{
		api:      api,
		notifier: notifier,
		pageSize: DefaultPageSize,
		tasks:    []task.Task{},
		filter:   Filter{Status: StatusAll, Priority: PriorityAll},
		page:     1,
		lifetime: lifetime,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() {
	s.cancel()
}

// scope привязывает запрос к времени жизни Store
func (s *Store) scope(ctx context.Context) (context.Context, func(), error) {
	if s.lifetime.Err() != nil {
		return nil, nil, ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}, nil
}

// fail уведомляет об ошибке, если Store ещё жив
func (s *Store) fail(msg string, err error) error {
	if s.lifetime.Err() != nil {
		return ErrClosed
	}
	logger.Warn("Client: "+msg, zap.Error(err))
	s.notifier.Error(msg, err)
	return err
}

func (s *Store) setLoading(on bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if on {
		s.pending++
	} else {
		s.pending--
	}
}

// Load заменяет снимок списком с сервера. При ошибке прежний снимок остаётся.
func (s *Store) Load(ctx context.Context) error {
	ctx, release, err := s.scope(ctx)
	if err != nil {
		return err
	}
	defer release()

	s.setLoading(true)
	defer s.setLoading(false)

	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		return s.fail("Failed to fetch tasks", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.lifetime.Err() != nil {
		return ErrClosed
	}
	s.tasks = cloneAll(tasks)
	return nil
}

// Create отправляет задачу и ставит ответ сервера в начало снимка.
// Невалидный ввод возвращается как task.ValidationErrors без запроса.
func (s *Store) Create(ctx context.Context, input task.Input) (task.Task, error) {
	if err := input.Validate(); err != nil {
		return task.Task{}, err
	}

	ctx, release, err := s.scope(ctx)
	if err != nil {
		return task.Task{}, err
	}
	defer release()

	created, err := s.api.CreateTask(ctx, input)
	if err != nil {
		return task.Task{}, s.fail("Failed to add task", err)
	}

	s.mtx.Lock()
	if s.lifetime.Err() != nil {
		s.mtx.Unlock()
		return task.Task{}, ErrClosed
	}
	s.tasks = append([]task.Task{*created.Clone()}, s.tasks...)
	s.mtx.Unlock()

	s.notifier.Success("Task created")
	return created, nil
}

// Update заменяет задачу с тем же id ответом сервера
func (s *Store) Update(ctx context.Context, id uuid.UUID, patch task.Patch) (task.Task, error) {
	if err := patch.Validate(); err != nil {
		return task.Task{}, err
	}

	ctx, release, err := s.scope(ctx)
	if err != nil {
		return task.Task{}, err
	}
	defer release()

	updated, err := s.api.UpdateTask(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return task.Task{}, s.fail("Task no longer exists", err)
		}
		return task.Task{}, s.fail("Failed to update task", err)
	}
	if updated.ID != id {
		return task.Task{}, s.fail("Failed to update task",
			fmt.Errorf("сервер вернул задачу %s вместо %s", updated.ID, id))
	}

	s.mtx.Lock()
	if s.lifetime.Err() != nil {
		s.mtx.Unlock()
		return task.Task{}, ErrClosed
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = *updated.Clone()
			break
		}
	}
	s.mtx.Unlock()

	s.notifier.Success("Task updated")
	return updated, nil
}

// Delete убирает задачу из снимка только после подтверждения сервером
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, release, err := s.scope(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.DeleteTask(ctx, id); err != nil {
		return s.fail("Failed to delete task", err)
	}

	s.mtx.Lock()
	if s.lifetime.Err() != nil {
		s.mtx.Unlock()
		return ErrClosed
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mtx.Unlock()

	s.notifier.Success("Task deleted successfully")
	return nil
}

func (s *Store) Loading() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.pending > 0
}

// Tasks - копия всего снимка
func (s *Store) Tasks() []task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return cloneAll(s.tasks)
}

// SetFilter меняет фильтр и возвращает на первую страницу
func (s *Store) SetFilter(f Filter) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.filter = f
	s.page = 1
}

func (s *Store) Filter() Filter {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.filter
}

// SetPage не ограничивает страницу сверху: за последней страницей - пустой список
func (s *Store) SetPage(page int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.page = max(page, 1)
}

func (s *Store) View() Snapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	filtered := Apply(s.tasks, s.filter)
	return Snapshot{
		Tasks:      cloneAll(Paginate(filtered, s.page, s.pageSize)),
		Total:      len(s.tasks),
		Filtered:   len(filtered),
		Page:       s.page,
		PageSize:   s.pageSize,
		TotalPages: TotalPages(len(filtered), s.pageSize),
		Loading:    s.pending > 0,
		Filter:     s.filter,
	}
}

func cloneAll(tasks []task.Task) []task.Task {
	res := make([]task.Task, len(tasks))
	for i := range tasks {
		res[i] = *tasks[i].Clone()
	}
	return res
}
