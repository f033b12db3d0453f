package redis

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wtgame"

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchIndexKey returns the Redis key for the SET of known match keys
func matchIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}

// dictionaryKey returns the Redis key for a locale's dictionary word set
func dictionaryKey(locale string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, locale)
}
