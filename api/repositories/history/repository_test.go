package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo, err := NewRepository(db)
	require.NoError(t, err)

	return repo
}

func TestRecordSearchDeduplicates(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.RecordSearch("Faker#KR1", "kr"))
	require.NoError(t, repo.RecordSearch("Caps#EUW", "euw1"))
	require.NoError(t, repo.RecordSearch("Faker#KR1", "kr"))

	entries, err := repo.RecentSearches()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Faker#KR1", entries[0].RiotId)
	assert.Equal(t, "Caps#EUW", entries[1].RiotId)
}

func TestRecordSearchSameNameDifferentRegion(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.RecordSearch("Faker#KR1", "kr"))
	require.NoError(t, repo.RecordSearch("Faker#KR1", "na1"))

	entries, err := repo.RecentSearches()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecordSearchCapsHistory(t *testing.T) {
	repo := newTestRepository(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.RecordSearch(fmt.Sprintf("Player%d#BR1", i), "br1"))
	}

	entries, err := repo.RecentSearches()
	require.NoError(t, err)
	require.Len(t, entries, maxSearchEntries)

	// The oldest entries fell off, the newest is at the head.
	assert.Equal(t, "Player14#BR1", entries[0].RiotId)
	assert.Equal(t, "Player5#BR1", entries[len(entries)-1].RiotId)
}

func TestToggleFavorite(t *testing.T) {
	repo := newTestRepository(t)

	favorited, err := repo.ToggleFavorite("Faker#KR1", "kr")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorites, err := repo.Favorites()
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Faker#KR1", favorites[0].RiotId)

	favorited, err = repo.ToggleFavorite("Faker#KR1", "kr")
	require.NoError(t, err)
	assert.False(t, favorited)

	favorites, err = repo.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
