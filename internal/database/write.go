package database

import (
	"database/sql"
	"fmt"
)

// SetLanguage stores the user's language choice. Last write wins.
func SetLanguage(db *sql.DB, userID int64, lang string) error {
	_, err := db.Exec(`
		INSERT INTO prefs (user_id, lang) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET lang = excluded.lang`,
		userID, lang,
	)
	if err != nil {
		return fmt.Errorf("write language pref: %w", err)
	}
	return nil
}
