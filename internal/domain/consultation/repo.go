package consultation

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Consultation]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(c *Consultation) *string { return &c.ID })
}
