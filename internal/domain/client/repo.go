package client

import "github.com/patinaomi/sprint-3-devops/internal/platform/store"

type Repository interface {
	store.Repository[Client]
}

func NewMemoryRepo() Repository {
	return store.NewMemory(func(c *Client) *string { return &c.ID })
}
