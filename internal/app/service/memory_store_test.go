package service_test

import (
	"context"
	"sort"
	"sync"
	"tasktracker/internal/core/domain"
	"time"
)

// memoryDB is an in-process stand-in for the MySQL schema: unique
// (task, user) memberships, cascading subtask deletion and all-or-nothing
// transactions.
type memoryDB struct {
	mu          sync.Mutex
	nextID      uint64
	tasks       map[uint64]domain.Task
	memberships map[[2]uint64]domain.Membership
	subtasks    map[uint64]domain.Subtask
	clock       time.Time
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		tasks:       map[uint64]domain.Task{},
		memberships: map[[2]uint64]domain.Membership{},
		subtasks:    map[uint64]domain.Subtask{},
		clock:       time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC),
	}
}

func (db *memoryDB) id() uint64 {
	db.nextID++
	return db.nextID
}

func (db *memoryDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

type memoryTransactor struct{ db *memoryDB }

func (t memoryTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.db.mu.Lock()
	tasks := make(map[uint64]domain.Task, len(t.db.tasks))
	for k, v := range t.db.tasks {
		tasks[k] = v
	}
	memberships := make(map[[2]uint64]domain.Membership, len(t.db.memberships))
	for k, v := range t.db.memberships {
		memberships[k] = v
	}
	t.db.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.db.mu.Lock()
		t.db.tasks = tasks
		t.db.memberships = memberships
		t.db.mu.Unlock()
		return err
	}
	return nil
}

type memoryTasks struct{ db *memoryDB }

func (r memoryTasks) ListForMember(_ context.Context, userID uint64) ([]domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var tasks []domain.Task
	for key, membership := range r.db.memberships {
		if key[1] != userID {
			continue
		}
		task := r.db.tasks[key[0]]
		task.MyRole = membership.Role
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r memoryTasks) Get(_ context.Context, taskID uint64) (domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	task, ok := r.db.tasks[taskID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r memoryTasks) Create(_ context.Context, input domain.CreateTaskInput, assignedBy uint64) (domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.tick()
	task := domain.Task{
		ID:          r.db.id(),
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Priority:    input.Priority,
		Status:      input.Status,
		AssignedBy:  assignedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.db.tasks[task.ID] = task
	return task, nil
}

func (r memoryTasks) Update(_ context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	task, ok := r.db.tasks[taskID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	task.UpdatedAt = r.db.tick()
	r.db.tasks[taskID] = task
	return task, nil
}

func (r memoryTasks) Delete(_ context.Context, taskID uint64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tasks[taskID]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.db.tasks, taskID)
	for key := range r.db.memberships {
		if key[0] == taskID {
			delete(r.db.memberships, key)
		}
	}
	for id, subtask := range r.db.subtasks {
		if subtask.TaskID == taskID {
			delete(r.db.subtasks, id)
		}
	}
	return nil
}

type memoryMemberships struct{ db *memoryDB }

func (r memoryMemberships) Get(_ context.Context, taskID, userID uint64) (domain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	membership, ok := r.db.memberships[[2]uint64{taskID, userID}]
	if !ok {
		return domain.Membership{}, domain.ErrMembershipNotFound
	}
	return membership, nil
}

func (r memoryMemberships) ListByTask(_ context.Context, taskID uint64) ([]domain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	memberships := []domain.Membership{}
	for key, membership := range r.db.memberships {
		if key[0] == taskID {
			memberships = append(memberships, membership)
		}
	}
	sort.Slice(memberships, func(i, j int) bool { return memberships[i].ID < memberships[j].ID })
	return memberships, nil
}

func (r memoryMemberships) Create(_ context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := [2]uint64{taskID, userID}
	if _, exists := r.db.memberships[key]; exists {
		return domain.Membership{}, domain.ErrDuplicateMembership
	}
	membership := domain.Membership{ID: r.db.id(), TaskID: taskID, UserID: userID, Role: role, CreatedAt: r.db.tick()}
	r.db.memberships[key] = membership
	return membership, nil
}

func (r memoryMemberships) GetOrCreate(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	membership, err := r.Create(ctx, taskID, userID, role)
	if err == domain.ErrDuplicateMembership {
		return r.Get(ctx, taskID, userID)
	}
	return membership, err
}

func (r memoryMemberships) UpdateRole(_ context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := [2]uint64{taskID, userID}
	membership, ok := r.db.memberships[key]
	if !ok {
		return domain.Membership{}, domain.ErrMembershipNotFound
	}
	membership.Role = role
	r.db.memberships[key] = membership
	return membership, nil
}

func (r memoryMemberships) Delete(_ context.Context, taskID, userID uint64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := [2]uint64{taskID, userID}
	if _, ok := r.db.memberships[key]; !ok {
		return domain.ErrMembershipNotFound
	}
	delete(r.db.memberships, key)
	return nil
}

type memorySubtasks struct{ db *memoryDB }

func (r memorySubtasks) ListByTask(_ context.Context, taskID uint64) ([]domain.Subtask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	subtasks := []domain.Subtask{}
	for _, subtask := range r.db.subtasks {
		if subtask.TaskID == taskID {
			subtasks = append(subtasks, subtask)
		}
	}
	sort.Slice(subtasks, func(i, j int) bool { return subtasks[i].CreatedAt.After(subtasks[j].CreatedAt) })
	return subtasks, nil
}

func (r memorySubtasks) Get(_ context.Context, subtaskID uint64) (domain.Subtask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	subtask, ok := r.db.subtasks[subtaskID]
	if !ok {
		return domain.Subtask{}, domain.ErrSubtaskNotFound
	}
	return subtask, nil
}

func (r memorySubtasks) Create(_ context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tasks[taskID]; !ok {
		return domain.Subtask{}, domain.ErrTaskNotFound
	}
	now := r.db.tick()
	subtask := domain.Subtask{ID: r.db.id(), TaskID: taskID, Title: input.Title, Description: input.Description, Status: input.Status, CreatedAt: now, UpdatedAt: now}
	r.db.subtasks[subtask.ID] = subtask
	return subtask, nil
}

func (r memorySubtasks) Update(_ context.Context, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	subtask, ok := r.db.subtasks[subtaskID]
	if !ok {
		return domain.Subtask{}, domain.ErrSubtaskNotFound
	}
	if input.Title != nil {
		subtask.Title = *input.Title
	}
	if input.Status != nil {
		subtask.Status = *input.Status
	}
	subtask.UpdatedAt = r.db.tick()
	r.db.subtasks[subtaskID] = subtask
	return subtask, nil
}

func (r memorySubtasks) Delete(_ context.Context, subtaskID uint64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.subtasks[subtaskID]; !ok {
		return domain.ErrSubtaskNotFound
	}
	delete(r.db.subtasks, subtaskID)
	return nil
}
