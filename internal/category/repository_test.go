package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Defaults", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow("cat-1", "Cameras").
			AddRow("cat-2", "Laptops")

		mock.ExpectQuery(`(?s)SELECT .* FROM categories c\s+ORDER BY c.name ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(int32(20), int32(0)).
			WillReturnRows(rows)

		res, err := repo.GetCategories(ctx, nil, nil, nil)
		assert.NoError(t, err)
		if assert.Len(t, res, 2) {
			assert.Equal(t, "Cameras", res[0].Name)
		}
	})

	t.Run("WithFilterAndPagination", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		filter := "cam"
		limit := int32(5)
		page := int32(2)

		mock.ExpectQuery(`(?s)SELECT .* FROM categories c\s+WHERE c.name ILIKE \$1 ORDER BY c.name ASC LIMIT \$2 OFFSET \$3`).
			WithArgs("%cam%", int32(5), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		res, err := repo.GetCategories(ctx, &filter, &limit, &page)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))

		_, err = repo.GetCategories(ctx, nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestRepository_AddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)INSERT INTO categories \(id, name\)\s+VALUES \(\$1, \$2\)\s+RETURNING id, name`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("cat-1", "Cameras"))

		c, err := repo.AddCategory(ctx, "Cameras")
		assert.NoError(t, err)
		assert.Equal(t, "cat-1", c.ID)
	})

	t.Run("EmptyName", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		_, err = repo.AddCategory(ctx, "")
		assert.Error(t, err)
	})
}
