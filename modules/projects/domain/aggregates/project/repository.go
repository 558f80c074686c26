package project

import "context"

type Repository interface {
	// List returns every project ordered by type, sort order (nulls last)
	// and id descending.
	List(ctx context.Context) ([]Project, error)
}
