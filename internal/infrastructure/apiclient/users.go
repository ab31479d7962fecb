package apiclient

import (
	"context"
	"net/url"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// Users wraps the /users endpoints.
type Users struct{ c *Client }

func NewUsers(c *Client) *Users { return &Users{c: c} }

func (a *Users) List(ctx context.Context) ([]domain.UserProfile, error) {
	var out []userDTO
	if err := a.c.Get(ctx, "/users/", &out); err != nil {
		return nil, err
	}
	us := make([]domain.UserProfile, 0, len(out))
	for _, u := range out {
		us = append(us, u.toDomain())
	}
	return us, nil
}

func (a *Users) Create(ctx context.Context, u domain.NewStaffUser) (*domain.UserProfile, error) {
	in := userCreateDTO{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role.Wire(),
		Division: u.Division,
	}
	var out userDTO
	if err := a.c.PostJSON(ctx, "/users/", in, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

func (a *Users) Update(ctx context.Context, id string, p domain.UserPatch) (*domain.UserProfile, error) {
	in := userUpdateDTO{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Division: p.Division,
		Status:   p.Status,
	}
	if p.Role != nil {
		r := p.Role.Wire()
		in.Role = &r
	}
	var out userDTO
	if err := a.c.PutJSON(ctx, "/users/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	prof := out.toDomain()
	if prof.ID == "" {
		prof.ID = id
	}
	return &prof, nil
}

func (a *Users) Delete(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "/users/"+url.PathEscape(id), nil)
}
