package feedback

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Feedback]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(f *Feedback) *string { return &f.ID })
}
