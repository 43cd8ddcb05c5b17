package task

import (
	"sort"
	"sync"

	"github.com/ReconfigureIO/converge/models"
	uuid "github.com/satori/go.uuid"
)

var _ models.TaskRepo = &MemoryRepo{}

// MemoryRepo is a TaskRepo keeping markers in runtime memory.
type MemoryRepo struct {
	tasks   map[string]models.BackgroundTask
	created int
	deleted int
	sync.Mutex
}

// NewMemoryRepo creates an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tasks: make(map[string]models.BackgroundTask)}
}

func (m *MemoryRepo) Create(task *models.BackgroundTask) error {
	m.Lock()
	defer m.Unlock()
	if task.ID == "" {
		task.ID = uuid.NewV4().String()
	}
	m.tasks[task.ID] = *task
	m.created++
	return nil
}

func (m *MemoryRepo) Delete(id string) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.tasks, id)
	m.deleted++
	return nil
}

func (m *MemoryRepo) List() ([]models.BackgroundTask, error) {
	m.Lock()
	defer m.Unlock()
	tasks := make([]models.BackgroundTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Started.Before(tasks[j].Started) })
	return tasks, nil
}

// Counts returns how many markers were created and deleted.
func (m *MemoryRepo) Counts() (created, deleted int) {
	m.Lock()
	defer m.Unlock()
	return m.created, m.deleted
}
