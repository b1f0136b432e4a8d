package clinic

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Clinic]
}

// NewMemoryRepo returns a Repository kept in process memory.
func NewMemoryRepo() Repository {
	return store.NewMemory(func(c *Clinic) *string { return &c.ID })
}
