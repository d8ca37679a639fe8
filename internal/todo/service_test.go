package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tuilab/internal/database"
	"tuilab/internal/session"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return &Service{Store: session.NewStore(db)}
}

func TestAddTrimsText(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Add(ctx, "  Buy milk  ")
	require.NoError(t, err)
	require.True(t, res.Added)
	require.Equal(t, "Buy milk", res.Todo.Text)
	require.Empty(t, res.Warning)
}

func TestAddBlankIsNoOp(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "\t \n"} {
		res, err := svc.Add(ctx, input)
		require.NoError(t, err)
		require.False(t, res.Added)
	}

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestAddWarnsOnNearDuplicate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Buy milk")
	require.NoError(t, err)

	res, err := svc.Add(ctx, "buy milk!")
	require.NoError(t, err)
	require.True(t, res.Added, "near-duplicates still append")
	require.Contains(t, res.Warning, "Buy milk")

	res, err = svc.Add(ctx, "Renew car insurance")
	require.NoError(t, err)
	require.True(t, res.Added)
	require.Empty(t, res.Warning)
}

func TestNearDuplicateRatioCountsRunes(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "दूध")
	require.NoError(t, err)

	// Entirely different text: every rune differs, so the distance ratio
	// is 1.0. Byte-length normalization would shrink it below the
	// threshold and raise a bogus warning.
	res, err := svc.Add(ctx, "फल")
	require.NoError(t, err)
	require.True(t, res.Added)
	require.Empty(t, res.Warning)

	res, err = svc.Add(ctx, "दूध!")
	require.NoError(t, err)
	require.True(t, res.Added)
	require.Contains(t, res.Warning, "दूध")
}

func TestToggleByIndex(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "a")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, 1, true))

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	require.False(t, todos[0].Done)
	require.True(t, todos[1].Done)

	// flipping back
	require.NoError(t, svc.Toggle(ctx, 1, false))
	todos, err = svc.List(ctx)
	require.NoError(t, err)
	require.False(t, todos[1].Done)

	// out of range toggles are ignored
	require.NoError(t, svc.Toggle(ctx, 99, true))
	require.NoError(t, svc.Toggle(ctx, -1, true))
}

func TestClearCompleted(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "keep")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "drop one")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "keep two")
	require.NoError(t, err)
	require.NoError(t, svc.Toggle(ctx, 1, true))

	removed, err := svc.ClearCompleted(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	require.Equal(t, "keep", todos[0].Text)
	require.Equal(t, "keep two", todos[1].Text)
}
