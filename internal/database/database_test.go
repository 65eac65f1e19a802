package database

import "testing"

func TestGetLanguageUnknownUser(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	_, ok, err := GetLanguage(db, 42)
	if err != nil {
		t.Fatalf("GetLanguage: %v", err)
	}
	if ok {
		t.Fatal("expected no record for unknown user")
	}
}

func TestSetLanguageIdempotent(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := SetLanguage(db, 42, "ar"); err != nil {
			t.Fatalf("SetLanguage: %v", err)
		}
		lang, ok, err := GetLanguage(db, 42)
		if err != nil || !ok || lang != "ar" {
			t.Fatalf("GetLanguage = (%q, %v, %v), want (ar, true, nil)", lang, ok, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM prefs WHERE user_id = 42").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestSetLanguageLastWriteWins(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	if err := SetLanguage(db, 7, "en"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := SetLanguage(db, 7, "ru"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	lang, ok, err := GetLanguage(db, 7)
	if err != nil || !ok || lang != "ru" {
		t.Fatalf("GetLanguage = (%q, %v, %v), want (ru, true, nil)", lang, ok, err)
	}
}

func TestLanguagesAreDisjointPerUser(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	if err := SetLanguage(db, 1, "en"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := SetLanguage(db, 2, "ar"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	if lang, _, _ := GetLanguage(db, 1); lang != "en" {
		t.Errorf("user 1 lang = %q, want en", lang)
	}
	if lang, _, _ := GetLanguage(db, 2); lang != "ar" {
		t.Errorf("user 2 lang = %q, want ar", lang)
	}
}
