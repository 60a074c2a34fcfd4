package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"taskManager/internal/handlers"
	"taskManager/internal/models/task"
	"taskManager/internal/repository/task/inmemory"
	"taskManager/internal/service"
	"taskManager/internal/worker"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	svc *service.TaskService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	svc := service.NewTaskService(inmemory.NewTaskStorage())
	r := chi.NewRouter()
	handlers.NewTaskHandler(svc).Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, svc: svc}
}

func (s *testServer) seed(t *testing.T, title string, status task.Status, priority task.Priority) *task.Task {
	t.Helper()
	created, err := s.svc.CreateTask(context.Background(), task.Input{Title: title, Status: status, Priority: priority})
	require.NoError(t, err)
	return created
}

// executeCommand запускает taskctl с аргументами и возвращает stdout и stderr
func executeCommand(ctx context.Context, serverURL string, args ...string) (string, string, error) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--server", serverURL}, args...))
	err := root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"list", "add", "edit", "rm", "watch"} {
		assert.True(t, names[want], "нет подкоманды %s", want)
	}
}

func TestAddThenList(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, stderr, err := executeCommand(ctx, srv.URL, "add", "Buy", "milk", "-d", "2 liters", "--priority", "Low")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Task created")

	stdout, _, err := executeCommand(ctx, srv.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Buy milk")
	assert.Contains(t, stdout, "2 liters")
	assert.Contains(t, stdout, "Todo")
	assert.Contains(t, stdout, "Low")
	assert.Contains(t, stdout, "Page 1 of 1 (1 of 1 tasks)")
}

func TestAdd_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := executeCommand(context.Background(), srv.URL, "add", "ab")
	var verr task.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title must be at least 3 characters", verr[task.FieldTitle])

	tasks, err := srv.svc.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestList_FilterAndPage(t *testing.T) {
	srv := newTestServer(t)
	for i := 0; i < 12; i++ {
		srv.seed(t, "task "+string(rune('a'+i)), task.StatusTodo, task.PriorityMedium)
	}
	srv.seed(t, "Buy milk", task.StatusDone, task.PriorityHigh)

	stdout, _, err := executeCommand(context.Background(), srv.URL, "list", "--search", "milk")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Buy milk")
	assert.NotContains(t, stdout, "task a")

	stdout, _, err = executeCommand(context.Background(), srv.URL, "list", "--status", "Todo", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Page 3 of 3 (12 of 13 tasks)")
	assert.Equal(t, 2, strings.Count(stdout, "task "))

	_, _, err = executeCommand(context.Background(), srv.URL, "list", "--status", "Archived")
	assert.Error(t, err)
}

func TestEdit(t *testing.T) {
	srv := newTestServer(t)
	seeded := srv.seed(t, "Buy milk", task.StatusTodo, task.PriorityLow)

	stdout, _, err := executeCommand(context.Background(), srv.URL, "edit", seeded.ID.String(), "--status", "Done")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Done")

	got, err := srv.svc.GetTask(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, got.Status)
	assert.Equal(t, "Buy milk", got.Title)
	assert.True(t, seeded.CreatedAt.Equal(got.CreatedAt))
}

func TestEdit_Errors(t *testing.T) {
	srv := newTestServer(t)
	seeded := srv.seed(t, "Buy milk", task.StatusTodo, task.PriorityLow)

	_, _, err := executeCommand(context.Background(), srv.URL, "edit", seeded.ID.String())
	assert.ErrorIs(t, err, errNothingToUpdate)

	_, _, err = executeCommand(context.Background(), srv.URL, "edit", "not-a-uuid", "--title", "abc")
	assert.Error(t, err)

	_, stderr, err := executeCommand(context.Background(), srv.URL, "edit", uuid.NewString(), "--title", "abc")
	assert.Error(t, err)
	assert.Contains(t, stderr, "Task no longer exists")
}

func TestRm(t *testing.T) {
	srv := newTestServer(t)
	a := srv.seed(t, "first", task.StatusTodo, task.PriorityLow)
	b := srv.seed(t, "second", task.StatusTodo, task.PriorityLow)
	c := srv.seed(t, "third", task.StatusTodo, task.PriorityLow)

	_, stderr, err := executeCommand(context.Background(), srv.URL, "rm", a.ID.String(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stderr, "Task deleted successfully"))

	tasks, err := srv.svc.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)
}

func TestList_ServerDown(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	_, stderr, err := executeCommand(context.Background(), url, "list")
	assert.Error(t, err)
	assert.Contains(t, stderr, "Failed to fetch tasks")
}

func TestWatch_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, "Buy milk", task.StatusTodo, task.PriorityLow)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	stdout, _, err := executeCommand(ctx, srv.URL, "watch", "--interval", "20ms", "--no-clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Buy milk")
	assert.GreaterOrEqual(t, strings.Count(stdout, "Refreshed at"), 2)
}

func TestHealthyServerAnswers(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// при нулевом интервале печатается тот, с которым работает обновление
func TestWatch_ReportsEffectiveInterval(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stdout, _, err := executeCommand(ctx, srv.URL, "watch", "--interval", "0s", "--no-clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "every "+worker.DefaultInterval.String())
	assert.NotContains(t, stdout, "every 0s")
}
