package maritalstatus

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[MaritalStatus]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(m *MaritalStatus) *string { return &m.ID })
}
