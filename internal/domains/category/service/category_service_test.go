package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/domains/category/repository"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/testutil"
)

func strPtr(s string) *string { return &s }

func newService(t *testing.T, rejectUnchanged bool) category.Service {
	t.Helper()
	repo := repository.NewSQLiteRepository(testutil.NewSQLiteDB(t))
	return NewCategoryService(repo, Options{RejectUnchangedName: rejectUnchanged})
}

func TestCreate(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, true)

	c, err := svc.Create(ctx, category.CreateCategoryRequest{Name: " History ", Description: strPtr("Past")})
	require.NoError(t, err)
	assert.Equal(t, "History", c.Name)

	_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "History"})
	assert.ErrorIs(t, err, category.ErrDuplicateName)

	_, err = svc.Create(ctx, category.CreateCategoryRequest{})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestUpdateUnchangedName(t *testing.T) {
	tests := []struct {
		name            string
		rejectUnchanged bool
		wantKind        apperr.Kind
	}{
		{name: "rejected when enabled", rejectUnchanged: true, wantKind: apperr.KindNoOpName},
		{name: "accepted when disabled", rejectUnchanged: false, wantKind: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			svc := newService(t, tt.rejectUnchanged)

			c, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Drama"})
			require.NoError(t, err)

			_, err = svc.Update(ctx, c.ID, category.UpdateCategoryRequest{Name: strPtr("Drama"), Description: strPtr("Stage")})
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))

			got, err := svc.Get(ctx, c.ID)
			require.NoError(t, err)
			if tt.rejectUnchanged {
				assert.Nil(t, got.Description, "rejected update must not persist")
			} else {
				assert.Equal(t, "Stage", *got.Description)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := t.Context()
	svc := newService(t, true)

	a, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Art"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "Music"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, category.UpdateCategoryRequest{Name: strPtr("Music")})
	assert.ErrorIs(t, err, category.ErrDuplicateName)

	got, err := svc.Update(ctx, a.ID, category.UpdateCategoryRequest{Description: strPtr("Visual")})
	require.NoError(t, err)
	assert.Equal(t, "Art", got.Name)
	assert.Equal(t, "Visual", *got.Description)

	got, err = svc.Update(ctx, a.ID, category.UpdateCategoryRequest{Name: strPtr("Fine Art")})
	require.NoError(t, err)
	assert.Equal(t, "Fine Art", got.Name)

	_, err = svc.Update(ctx, uuid.New(), category.UpdateCategoryRequest{})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
