package intakeform

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Form]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(f *Form) *string { return &f.ID })
}
