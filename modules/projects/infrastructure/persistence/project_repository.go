package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/iota-uz/projects-export/modules/projects/domain/aggregates/project"
	"github.com/iota-uz/projects-export/pkg/database"
)

const selectProjectsQuery = `SELECT id, slug, title, type, summary, tags, source_url, demo_url, preview_image, status, sort_order
FROM %s
ORDER BY type, sort_order NULLS LAST, id DESC`

type ProjectRepository struct {
	db    *sqlx.DB
	query string
}

// NewProjectRepository reads from table ("schema.table" or "table").
func NewProjectRepository(db *sqlx.DB, table string) (*ProjectRepository, error) {
	id, err := database.ParseIdentifier(table)
	if err != nil {
		return nil, err
	}
	return &ProjectRepository{
		db:    db,
		query: SelectProjectsQuery(id.Sanitize()),
	}, nil
}

// SelectProjectsQuery renders the export query for an already quoted table.
func SelectProjectsQuery(quotedTable string) string {
	return fmt.Sprintf(selectProjectsQuery, quotedTable)
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	stmt, err := r.db.PreparexContext(ctx, r.query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare projects query")
	}
	defer func() { _ = stmt.Close() }()

	rows, err := stmt.QueryxContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query projects")
	}
	defer func() { _ = rows.Close() }()

	out := make([]project.Project, 0)
	for rows.Next() {
		var row projectRow
		if err := rows.StructScan(&row); err != nil {
			return nil, errors.Wrapf(err, "failed to scan project #%d", len(out)+1)
		}
		out = append(out, toDomainProject(row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating projects")
	}
	return out, nil
}

var _ project.Repository = (*ProjectRepository)(nil)
