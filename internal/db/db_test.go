package db

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketops/missionctl/internal/config"
	"github.com/marketops/missionctl/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestAutoMigrate(t *testing.T) {
	db := testDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	for _, model := range AllModels() {
		if !db.Migrator().HasTable(model) {
			t.Errorf("missing table for %T", model)
		}
	}
}

func TestSeedRoutines(t *testing.T) {
	db := testDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	routines := []config.RoutineConfig{
		{
			Name:         "Morning Briefing",
			ScheduleType: "cron",
			Cron:         "0 7 * * *",
			CronHuman:    "every day at 7am",
			DaysOfWeek:   []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			TimeOfDay:    "07:00",
			Color:        "blue",
		},
		{
			Name:         "Market Watcher",
			ScheduleType: "always",
			Color:        "green",
		},
	}
	if err := SeedRoutines(db, routines, now); err != nil {
		t.Fatalf("SeedRoutines: %v", err)
	}

	var rows []models.ScheduledTask
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	watcher := rows[0]
	if watcher.Name != "Market Watcher" || watcher.NextRun != nil {
		t.Errorf("always routine = %+v, want no next_run", watcher)
	}
	if watcher.DaysOfWeek != "" {
		t.Errorf("days_of_week = %q, want empty for a routine with no days", watcher.DaysOfWeek)
	}

	briefing := rows[1]
	if briefing.NextRun == nil {
		t.Fatal("cron routine has no next_run")
	}
	want := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
	if !briefing.NextRun.Equal(want) {
		t.Errorf("next_run = %v, want %v", briefing.NextRun, want)
	}
	if briefing.DaysOfWeek == "" || !strings.Contains(briefing.DaysOfWeek, "Mon") {
		t.Errorf("days_of_week = %q, want JSON list", briefing.DaysOfWeek)
	}
}

func TestSeedRoutines_UpsertByName(t *testing.T) {
	db := testDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	first := []config.RoutineConfig{{Name: "Nightly Sync", ScheduleType: "cron", Cron: "0 2 * * *", Color: "purple"}}
	if err := SeedRoutines(db, first, now); err != nil {
		t.Fatal(err)
	}
	second := []config.RoutineConfig{{Name: "Nightly Sync", ScheduleType: "cron", Cron: "0 3 * * *", Color: "red"}}
	if err := SeedRoutines(db, second, now); err != nil {
		t.Fatal(err)
	}

	var rows []models.ScheduledTask
	if err := db.Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 after re-seed", len(rows))
	}
	if rows[0].Color == nil || *rows[0].Color != "red" {
		t.Errorf("color = %v, want updated to red", rows[0].Color)
	}
	want := time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC)
	if rows[0].NextRun == nil || !rows[0].NextRun.Equal(want) {
		t.Errorf("next_run = %v, want recomputed %v", rows[0].NextRun, want)
	}
}

func TestSeedRoutines_BadCron(t *testing.T) {
	db := testDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	err := SeedRoutines(db, []config.RoutineConfig{{Name: "x", ScheduleType: "cron", Cron: "bad"}}, time.Now())
	if err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestConnect_Sqlite(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: "sqlite", Path: t.TempDir() + "/test.db"}
	db, err := Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(config.DatabaseConfig{Driver: "postgres"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDSN(t *testing.T) {
	got := DSN("10.0.0.5", 3307, "missionctl")
	want := "root@tcp(10.0.0.5:3307)/missionctl?parseTime=true"
	if got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
