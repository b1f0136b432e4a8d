package specialty

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Specialty]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(s *Specialty) *string { return &s.ID })
}
