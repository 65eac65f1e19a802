package database

import (
	"database/sql"
	"fmt"
)

// GetLanguage returns the stored language code for a user. The second return
// is false when the user has no record yet.
func GetLanguage(db *sql.DB, userID int64) (string, bool, error) {
	var lang string
	err := db.QueryRow("SELECT lang FROM prefs WHERE user_id = ?", userID).Scan(&lang)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read language pref: %w", err)
	}
	return lang, true, nil
}
