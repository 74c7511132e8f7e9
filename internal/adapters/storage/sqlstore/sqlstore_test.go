package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"livestock-tracker/internal/adapters/storage/memory"
	"livestock-tracker/internal/domain/activity"
	"livestock-tracker/internal/domain/alerts"
	"livestock-tracker/internal/domain/livestock"
	"livestock-tracker/internal/domain/profile"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db, DriverSQLite))
	return db
}

var created = time.Date(2026, 3, 1, 14, 32, 0, 0, time.UTC)

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, DriverSQLite))

	empty, err := IsEmpty(context.Background(), db)
	require.NoError(t, err)
	require.True(t, empty)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "x")
	require.Error(t, err)
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Error(t, Migrate(context.Background(), db, "mysql"))
}

func TestSchema_SeqAssignedByDatabase(t *testing.T) {
	for _, driver := range []string{DriverPostgres, DriverSQLite} {
		stmts, err := schema(driver)
		require.NoError(t, err)
		require.Contains(t, stmts[0], seqColumns[driver])
		require.Contains(t, stmts[0], "id         TEXT NOT NULL UNIQUE")
		require.NotContains(t, stmts[0], "%[1]s")
	}
}

func TestLivestockRepo_RoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewLivestockRepo(db)

	// ids no ordenables: el orden sale de seq
	for i, id := range []string{"z", "a", "m"} {
		a := livestock.Animal{
			ID:        id,
			Name:      fmt.Sprintf("animal-%d", i),
			Type:      livestock.TypeSheep,
			Age:       "2 years",
			TagID:     fmt.Sprintf("T-%d", i),
			Status:    livestock.StatusNormal,
			LastSeen:  livestock.LastSeenJustNow,
			CreatedAt: created,
		}
		if id == "a" {
			a.Position = &livestock.Position{Latitude: -32.9, Longitude: 27.8}
		}
		require.NoError(t, repo.Append(ctx, a))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "z", items[0].ID)
	require.Equal(t, "a", items[1].ID)
	require.Equal(t, "m", items[2].ID)
	require.Nil(t, items[0].Position)
	require.NotNil(t, items[1].Position)
	require.Equal(t, -32.9, items[1].Position.Latitude)
	require.True(t, items[1].CreatedAt.Equal(created))
	require.Equal(t, livestock.TypeSheep, items[2].Type)

	empty, err := IsEmpty(ctx, db)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestLivestockRepo_UpdateStatusAndNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewLivestockRepo(openTestDB(t))

	require.NoError(t, repo.Append(ctx, livestock.Animal{ID: "1", Name: "Bessie", Type: livestock.TypeCow, TagID: "T1", Status: livestock.StatusNormal, LastSeen: "now", CreatedAt: created}))

	a, err := repo.UpdateStatus(ctx, "1", livestock.StatusAlert, "5 minutes ago")
	require.NoError(t, err)
	require.Equal(t, livestock.StatusAlert, a.Status)
	require.Equal(t, "5 minutes ago", a.LastSeen)

	_, err = repo.UpdateStatus(ctx, "404", livestock.StatusAlert, "")
	require.ErrorIs(t, err, livestock.ErrNotFound)
	_, err = repo.GetByID(ctx, "404")
	require.ErrorIs(t, err, livestock.ErrNotFound)
	_, err = repo.GetByID(ctx, " ")
	require.ErrorIs(t, err, livestock.ErrNotFound)

	// id duplicado
	require.Error(t, repo.Append(ctx, livestock.Animal{ID: "1", CreatedAt: created}))
}

func TestAlertsRepo_MarkReadAndAll(t *testing.T) {
	ctx := context.Background()
	repo := NewAlertsRepo(openTestDB(t))

	require.NoError(t, repo.Append(ctx, alerts.Alert{ID: "a1", AnimalID: "3", AnimalName: "Fluffy", Type: alerts.TypeBoundary, Message: "left", Timestamp: "10 minutes ago", CreatedAt: created}))
	require.NoError(t, repo.Append(ctx, alerts.Alert{ID: "a3", AnimalID: "1", AnimalName: "Bessie", Type: alerts.TypeMovement, Message: "moved", Timestamp: "1 hour ago", Read: true, CreatedAt: created}))

	found, err := repo.MarkRead(ctx, "zz")
	require.NoError(t, err)
	require.False(t, found)

	n, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "a1", items[0].ID)
	require.True(t, items[0].Read)
	require.True(t, items[1].Read)
	require.Equal(t, "10 minutes ago", items[0].Timestamp)
	require.Equal(t, alerts.TypeBoundary, items[0].Type)

	found, err = repo.MarkRead(ctx, "a1")
	require.NoError(t, err)
	require.True(t, found)
}

func TestProfileRepo_UpsertSingleRow(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepo(openTestDB(t))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, profile.ErrNotFound)
	_, err = repo.GetPreferences(ctx)
	require.ErrorIs(t, err, profile.ErrNotFound)

	require.NoError(t, repo.Save(ctx, profile.DefaultProfile()))
	next := profile.DefaultProfile()
	next.FarmName = "Blue Ridge"
	require.NoError(t, repo.Save(ctx, next))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, next, got)

	prefs := profile.DefaultPreferences()
	require.NoError(t, repo.SavePreferences(ctx, prefs))
	require.NoError(t, repo.SavePreferences(ctx, prefs.Toggle(profile.SettingBoundaryAlerts)))

	gotPrefs, err := repo.GetPreferences(ctx)
	require.NoError(t, err)
	require.False(t, gotPrefs.BoundaryAlerts)
	require.True(t, gotPrefs.BatteryAlerts)
	require.False(t, gotPrefs.DailySummary)
}

func TestActivityRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepo(openTestDB(t))

	events := []activity.Event{
		{ID: "e1", Type: activity.EventTypeLivestockAdded, SubjectID: "4", Summary: "Daisy (Cow) registered with tag T9", OccurredAt: created},
		{ID: "e2", Type: activity.EventTypeAlertRead, SubjectID: "a1", Summary: "alert marked as read", OccurredAt: created.Add(time.Minute)},
		{ID: "e3", Type: activity.EventTypeAlertsAllRead, Summary: "2 alerts marked as read", OccurredAt: created.Add(2 * time.Minute)},
	}
	for _, e := range events {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.List(ctx, activity.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "e3", all[0].ID)
	require.True(t, all[2].OccurredAt.Equal(created))

	reads, err := repo.List(ctx, activity.ListFilter{Types: []activity.EventType{activity.EventTypeAlertRead, activity.EventTypeAlertsAllRead}, Query: "MARKED", Limit: 1})
	require.NoError(t, err)
	require.Len(t, reads, 1)
	require.Equal(t, "e3", reads[0].ID)

	daisy, err := repo.List(ctx, activity.ListFilter{Query: "daisy"})
	require.NoError(t, err)
	require.Len(t, daisy, 1)
	require.Equal(t, "4", daisy[0].SubjectID)
}

func TestLivestockRepo_ConcurrentAppendsGetDistinctSeq(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewLivestockRepo(db)

	const n = 20
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			errs <- repo.Append(ctx, livestock.Animal{
				ID:        fmt.Sprintf("c-%02d", i),
				Name:      fmt.Sprintf("animal-%d", i),
				Type:      livestock.TypeCow,
				Age:       "1 year",
				TagID:     fmt.Sprintf("C-%d", i),
				Status:    livestock.StatusNormal,
				LastSeen:  livestock.LastSeenJustNow,
				CreatedAt: created,
			})
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}

	var total, distinct int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT seq) FROM livestock`).Scan(&total, &distinct))
	require.Equal(t, n, total)
	require.Equal(t, n, distinct)

	// id duplicado sigue fallando
	dup := livestock.Animal{ID: "c-00", Name: "x", Type: livestock.TypeCow, Status: livestock.StatusNormal, CreatedAt: created}
	require.Error(t, repo.Append(ctx, dup))
}

func TestActivityRepo_QueryMatchesMemoryRepo(t *testing.T) {
	ctx := context.Background()
	sqlRepo := NewActivityRepo(openTestDB(t))
	memRepo := memory.NewActivityRepo()

	events := []activity.Event{
		{ID: "e1", Type: activity.EventTypeLivestockAdded, SubjectID: "1", Summary: "Bella (Cow) registered with tag TAG_001", OccurredAt: created},
		{ID: "e2", Type: activity.EventTypeLivestockAdded, SubjectID: "2", Summary: "Woolly (Sheep) registered with tag TAG-002", OccurredAt: created},
		{ID: "e3", Type: activity.EventTypeAlertsAllRead, Summary: "100% of alerts marked as read", OccurredAt: created},
		{ID: "e4", Type: activity.EventTypeProfileSaved, Summary: `path C:\farm updated`, OccurredAt: created},
	}
	for _, e := range events {
		require.NoError(t, sqlRepo.Create(ctx, e))
		require.NoError(t, memRepo.Create(ctx, e))
	}

	cases := map[string][]string{
		"_":          {"e1"},
		"%":          {"e3"},
		"tag_0":      {"e1"},
		"tag-0":      {"e2"},
		`\`:          {"e4"},
		`c:\farm`:    {"e4"},
		"registered": {"e2", "e1"},
		"nothing%":   {},
	}
	for q, want := range cases {
		fromSQL, err := sqlRepo.List(ctx, activity.ListFilter{Query: q})
		require.NoError(t, err)
		fromMem, err := memRepo.List(ctx, activity.ListFilter{Query: q})
		require.NoError(t, err)

		require.Equal(t, want, eventIDs(fromSQL), "sql q=%q", q)
		require.Equal(t, want, eventIDs(fromMem), "memory q=%q", q)
	}
}

func eventIDs(events []activity.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
