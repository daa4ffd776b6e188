package store

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"quicklist/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addTask(t *testing.T, store *SQLiteStore, text string) *models.Task {
	t.Helper()
	task := &models.Task{Text: text}
	if err := store.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("CreateTask(%q) failed: %v", text, err)
	}
	return task
}

func TestCreateTask(t *testing.T) {
	store := setupTestDB(t)

	task := addTask(t, store, "Buy milk")

	if task.ID == 0 {
		t.Error("expected task ID to be set")
	}
	if task.Completed {
		t.Error("expected new task to not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateTask_AssignsUniqueIncreasingIDs(t *testing.T) {
	store := setupTestDB(t)

	var prev int64
	for _, text := range []string{"A", "B", "C", "D"} {
		task := addTask(t, store, text)
		if task.ID <= prev {
			t.Fatalf("expected ID > %d, got %d", prev, task.ID)
		}
		prev = task.ID
	}
}

func TestCreateTask_IDsNotReusedAfterDelete(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first := addTask(t, store, "A")
	if err := store.DeleteTask(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	second := addTask(t, store, "B")
	if second.ID <= first.ID {
		t.Errorf("expected fresh ID after delete, got %d (was %d)", second.ID, first.ID)
	}
}

func TestListTasks_PreservesInsertionOrder(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		addTask(t, store, text)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	if len(tasks) != len(texts) {
		t.Fatalf("expected %d tasks, got %d", len(texts), len(tasks))
	}
	for i, text := range texts {
		if tasks[i].Text != text {
			t.Errorf("position %d: expected %q, got %q", i, text, tasks[i].Text)
		}
	}
}

func TestListTasks_Empty(t *testing.T) {
	store := setupTestDB(t)

	tasks, err := store.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestDeleteTask_RemovesOnlyTarget(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	addTask(t, store, "A")
	middle := addTask(t, store, "B")
	addTask(t, store, "C")

	if err := store.DeleteTask(ctx, middle.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Text != "A" || tasks[1].Text != "C" {
		t.Errorf("expected [A C], got [%s %s]", tasks[0].Text, tasks[1].Text)
	}
}

func TestDeleteTask_MissingIDIsNoOp(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	addTask(t, store, "A")
	addTask(t, store, "B")

	if err := store.DeleteTask(ctx, 999); err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Text != "A" || tasks[1].Text != "B" {
		t.Errorf("expected order unchanged, got [%s %s]", tasks[0].Text, tasks[1].Text)
	}
}

func TestCountTasks(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	count, err := store.CountTasks(ctx)
	if err != nil {
		t.Fatalf("CountTasks failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}

	addTask(t, store, "A")
	task := addTask(t, store, "B")

	count, err = store.CountTasks(ctx)
	if err != nil {
		t.Fatalf("CountTasks failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}

	store.DeleteTask(ctx, task.ID)

	count, err = store.CountTasks(ctx)
	if err != nil {
		t.Fatalf("CountTasks failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1, got %d", count)
	}
}
