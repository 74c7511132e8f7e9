package activity

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	List(ctx context.Context, filter ListFilter) ([]Event, error)
}

type ListFilter struct {
	Types []EventType
	Query string
	Limit int
}
