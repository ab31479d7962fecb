package apiclient

import (
	"context"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// Workers wraps the /worker endpoints.
type Workers struct{ c *Client }

func NewWorkers(c *Client) *Workers { return &Workers{c: c} }

func (a *Workers) List(ctx context.Context) ([]domain.Worker, error) {
	var out []workerDTO
	if err := a.c.Get(ctx, "/worker/", &out); err != nil {
		return nil, err
	}
	ws := make([]domain.Worker, 0, len(out))
	for _, w := range out {
		ws = append(ws, w.toDomain())
	}
	return ws, nil
}

func (a *Workers) Create(ctx context.Context, fullName, role string) (*domain.Worker, error) {
	var out workerDTO
	if err := a.c.PostJSON(ctx, "/worker/", workerCreateDTO{FullName: fullName, Role: role}, &out); err != nil {
		return nil, err
	}
	w := out.toDomain()
	return &w, nil
}
