package service

import "fmt"

// Storage key builders. The version suffixes allow schema evolution
// without migrating old values; a bumped key simply reads as absent.
func prefsKey(userID string) string        { return fmt.Sprintf("user_prefs_v1:%s", userID) }
func usageLogKey(userID string) string     { return fmt.Sprintf("usage_log_v1:%s", userID) }
func recentKey(userID string) string       { return fmt.Sprintf("recent_searches_v1:%s", userID) }
func favoritesKey(userID string) string    { return fmt.Sprintf("favorites_v1:%s", userID) }
func historyKey(userID string) string      { return fmt.Sprintf("history_v1:%s", userID) }
func shoppingKey(userID string) string     { return fmt.Sprintf("shopping_list_v1:%s", userID) }
func areaSetsKey(userID string) string     { return fmt.Sprintf("achievement_area_sets_v2:%s", userID) }
func achievementsKey(userID string) string { return fmt.Sprintf("achievements_v2:%s", userID) }

func stepStateKey(userID, recipeID string) string {
	return fmt.Sprintf("steps:%s:%s", userID, recipeID)
}
