package persistence

import (
	"database/sql"

	"github.com/iota-uz/projects-export/modules/projects/domain/aggregates/project"
)

type projectRow struct {
	ID           int64          `db:"id"`
	Slug         sql.NullString `db:"slug"`
	Title        sql.NullString `db:"title"`
	Type         sql.NullString `db:"type"`
	Summary      sql.NullString `db:"summary"`
	Tags         sql.NullString `db:"tags"`
	SourceURL    sql.NullString `db:"source_url"`
	DemoURL      sql.NullString `db:"demo_url"`
	PreviewImage sql.NullString `db:"preview_image"`
	Status       sql.NullString `db:"status"`
	SortOrder    sql.NullInt32  `db:"sort_order"`
}

func toDomainProject(row projectRow) project.Project {
	opts := []project.Option{
		project.WithSlug(row.Slug.String),
		project.WithTitle(row.Title.String),
		project.WithType(row.Type.String),
		project.WithSummary(row.Summary.String),
		project.WithTags(row.Tags.String),
		project.WithSourceURL(row.SourceURL.String),
		project.WithDemoURL(row.DemoURL.String),
		project.WithPreviewImage(row.PreviewImage.String),
		project.WithStatus(row.Status.String),
	}
	if row.SortOrder.Valid {
		opts = append(opts, project.WithSortOrder(row.SortOrder.Int32))
	}
	return project.New(row.ID, opts...)
}
