package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/adapter/postgres/settings"
	"github.com/daybook-app/daybook/internal/adapter/postgres/testhelper"
	"github.com/daybook-app/daybook/internal/domain"
)

func TestRepo_Get_DefaultsWhenUnset(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := settings.NewRepo(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)

	want := domain.DefaultUserSettings(user.ID)
	assert.Equal(t, want.FontFamily, got.FontFamily)
	assert.Equal(t, want.FontSize, got.FontSize)
	assert.Equal(t, want.TextColor, got.TextColor)
}

func TestRepo_Upsert_CreatesThenUpdates(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := settings.NewRepo(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	first, err := repo.Upsert(ctx, domain.UserSettings{
		UserID:     user.ID,
		FontFamily: "Lato",
		FontSize:   "large",
		TextColor:  "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lato", first.FontFamily)

	second, err := repo.Upsert(ctx, domain.UserSettings{
		UserID:     user.ID,
		FontFamily: "Lato",
		FontSize:   "small",
		TextColor:  "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "small", second.FontSize)

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "small", got.FontSize)
	assert.Equal(t, "Lato", got.FontFamily)
}
