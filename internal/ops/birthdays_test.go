package ops

import (
	"testing"
	"time"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/store"
)

func TestUpcomingBirthdays_Window(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("store.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()

	if _, err := AddContact(database, AddContactInput{Name: "Ann"}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	if _, err := SetBirthday(database, SetFieldInput{Name: "Ann", Value: "12.06.1990"}); err != nil {
		t.Fatalf("SetBirthday failed: %v", err)
	}

	today := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	// Two days out, inside a 7-day window
	output, err := upcomingBirthdaysAt(database, cfg, UpcomingBirthdaysInput{Days: 7}, today)
	if err != nil {
		t.Fatalf("upcomingBirthdaysAt failed: %v", err)
	}
	if len(output.Names) != 1 || output.Names[0] != "Ann" {
		t.Errorf("Names = %v, want [Ann]", output.Names)
	}

	// Outside a 1-day window
	output, err = upcomingBirthdaysAt(database, cfg, UpcomingBirthdaysInput{Days: 1}, today)
	if err != nil {
		t.Fatalf("upcomingBirthdaysAt failed: %v", err)
	}
	if len(output.Names) != 0 {
		t.Errorf("Names = %v, want empty for 1-day window", output.Names)
	}
}

func TestUpcomingBirthdays_WindowEdgesInclusive(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("store.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()

	if _, err := AddContact(database, AddContactInput{Name: "Today"}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	if _, err := SetBirthday(database, SetFieldInput{Name: "Today", Value: "10.06.1985"}); err != nil {
		t.Fatalf("SetBirthday failed: %v", err)
	}
	if _, err := AddContact(database, AddContactInput{Name: "Edge"}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	if _, err := SetBirthday(database, SetFieldInput{Name: "Edge", Value: "17.06.1985"}); err != nil {
		t.Fatalf("SetBirthday failed: %v", err)
	}

	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	output, err := upcomingBirthdaysAt(database, cfg, UpcomingBirthdaysInput{Days: 7}, today)
	if err != nil {
		t.Fatalf("upcomingBirthdaysAt failed: %v", err)
	}

	if len(output.Names) != 2 {
		t.Fatalf("Names = %v, want both edge contacts", output.Names)
	}
}

func TestUpcomingBirthdays_DefaultsFromConfig(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("store.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	cfg.BirthdayWindowDays = 3

	output, err := UpcomingBirthdays(database, cfg, UpcomingBirthdaysInput{Days: 0})
	if err != nil {
		t.Fatalf("UpcomingBirthdays failed: %v", err)
	}
	if output.Days != 3 {
		t.Errorf("Days = %d, want 3 (from config)", output.Days)
	}
}

func TestUpcomingBirthdays_SkipsContactsWithoutBirthday(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := store.Init(tmpDir)
	if err != nil {
		t.Fatalf("store.Init failed: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()

	if _, err := AddContact(database, AddContactInput{Name: "NoBirthday"}); err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}

	output, err := UpcomingBirthdays(database, cfg, UpcomingBirthdaysInput{Days: 365})
	if err != nil {
		t.Fatalf("UpcomingBirthdays failed: %v", err)
	}
	if len(output.Names) != 0 {
		t.Errorf("Names = %v, want empty", output.Names)
	}
}
