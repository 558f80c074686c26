package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/projects-export/pkg/configuration"
)

var projectColumns = []string{
	"id", "slug", "title", "type", "summary", "tags",
	"source_url", "demo_url", "preview_image", "status", "sort_order",
}

const expectedQuery = `SELECT id, slug, title, type, summary, tags, source_url, demo_url, preview_image, status, sort_order
FROM "public"."admin_project"
ORDER BY type, sort_order NULLS LAST, id DESC`

func newMockRepository(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	repo, err := NewProjectRepository(sqlx.NewDb(mockDB, "sqlmock"), configuration.DefaultProjectsTable)
	require.NoError(t, err)
	return repo, mock
}

func TestProjectRepository_List(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(projectColumns).
		AddRow(int64(3), "b", "Two", "app", "short", "go,cli", "https://src", "https://demo", "/b.png", "live", int64(1)).
		AddRow(int64(5), "a", `Title, "One"`, "app", nil, nil, nil, nil, nil, nil, nil).
		AddRow(int64(9), nil, nil, nil, nil, nil, nil, nil, nil, nil, int64(0))
	mock.ExpectPrepare(expectedQuery).
		WillBeClosed().
		ExpectQuery().
		WillReturnRows(rows).
		RowsWillBeClosed()

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, int64(3), projects[0].ID())
	assert.Equal(t, "b", projects[0].Slug())
	assert.Equal(t, "go,cli", projects[0].Tags())
	assert.Equal(t, "/b.png", projects[0].PreviewImage())
	v, ok := projects[0].SortOrder()
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)

	assert.Equal(t, int64(5), projects[1].ID())
	assert.Equal(t, `Title, "One"`, projects[1].Title())
	assert.Empty(t, projects[1].Summary())
	_, ok = projects[1].SortOrder()
	assert.False(t, ok)

	assert.Empty(t, projects[2].Slug())
	v, ok = projects[2].SortOrder()
	assert.True(t, ok)
	assert.Equal(t, int32(0), v)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListEmpty(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	mock.ExpectPrepare(expectedQuery).ExpectQuery().WillReturnRows(sqlmock.NewRows(projectColumns))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_PrepareError(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	mock.ExpectPrepare(expectedQuery).WillReturnError(errors.New(`relation "public.admin_project" does not exist`))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prepare projects query")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_QueryErrorClosesStatement(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	mock.ExpectPrepare(expectedQuery).
		WillBeClosed().
		ExpectQuery().
		WillReturnError(errors.New("canceling statement due to user request"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query projects")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ScanError(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(projectColumns).
		AddRow("not-a-number", "a", nil, nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectPrepare(expectedQuery).
		WillBeClosed().
		ExpectQuery().
		WillReturnRows(rows).
		RowsWillBeClosed()

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan project #1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_IterationError(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(projectColumns).
		AddRow(int64(1), "a", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		AddRow(int64(2), "b", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		RowError(1, errors.New("connection reset by peer"))
	mock.ExpectPrepare(expectedQuery).ExpectQuery().WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error iterating projects")
	assert.Contains(t, err.Error(), "connection reset by peer")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewProjectRepository_CustomTable(t *testing.T) {
	t.Parallel()

	repo, err := NewProjectRepository(nil, "portfolio.projects")
	require.NoError(t, err)
	assert.Contains(t, repo.query, `FROM "portfolio"."projects"`)
	assert.Contains(t, repo.query, "ORDER BY type, sort_order NULLS LAST, id DESC")

	_, err = NewProjectRepository(nil, "a.b.c")
	require.Error(t, err)
}
