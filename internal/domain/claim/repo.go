package claim

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Claim]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(c *Claim) *string { return &c.ID })
}
