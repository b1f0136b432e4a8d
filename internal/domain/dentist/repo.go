package dentist

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Dentist]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(d *Dentist) *string { return &d.ID })
}
