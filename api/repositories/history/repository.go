package history

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Maximum amount of search entries kept per install.
const maxSearchEntries = 10

// SearchEntry is one recorded profile search.
type SearchEntry struct {
	ID        uint   `gorm:"primaryKey"`
	RiotId    string `gorm:"index:idx_search_identity,unique"`
	Region    string `gorm:"index:idx_search_identity,unique"`
	Timestamp time.Time
}

// Favorite is one bookmarked player.
type Favorite struct {
	ID        uint   `gorm:"primaryKey"`
	RiotId    string `gorm:"index:idx_favorite_identity,unique"`
	Region    string `gorm:"index:idx_favorite_identity,unique"`
	Timestamp time.Time
}

// Repository is the public interface for accessing the search history.
type Repository interface {
	RecordSearch(riotId string, region string) error
	RecentSearches() ([]SearchEntry, error)
	ToggleFavorite(riotId string, region string) (bool, error)
	Favorites() ([]Favorite, error)
}

// repository structure.
type repository struct {
	db *gorm.DB
}

// NewRepository creates a history repository on top of an open connection.
func NewRepository(db *gorm.DB) (Repository, error) {
	if err := db.AutoMigrate(&SearchEntry{}, &Favorite{}); err != nil {
		return nil, fmt.Errorf("couldn't migrate history schema: %w", err)
	}
	return &repository{db: db}, nil
}

// Open opens the sqlite file backing the history and favorites.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't open history database: %w", err)
	}
	return db, nil
}

// RecordSearch inserts a search at the head of the history.
// Repeated searches for the same player on the same region collapse into a
// single entry, and the history is trimmed to the newest entries.
func (r *repository) RecordSearch(riotId string, region string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		entry := SearchEntry{RiotId: riotId, Region: region, Timestamp: time.Now()}

		err := tx.Where("riot_id = ? AND region = ?", riotId, region).
			Delete(&SearchEntry{}).Error
		if err != nil {
			return err
		}

		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		var overflow []SearchEntry
		err = tx.Order("timestamp DESC, id DESC").
			Offset(maxSearchEntries).
			Find(&overflow).Error
		if err != nil {
			return err
		}

		for _, old := range overflow {
			if err := tx.Delete(&SearchEntry{}, old.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// RecentSearches returns the history, most recent first.
func (r *repository) RecentSearches() ([]SearchEntry, error) {
	var entries []SearchEntry
	err := r.db.Order("timestamp DESC, id DESC").
		Limit(maxSearchEntries).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ToggleFavorite adds the player to the favorites, or removes it when already
// present. Returns true when the player ended up favorited.
func (r *repository) ToggleFavorite(riotId string, region string) (bool, error) {
	favorited := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("riot_id = ? AND region = ?", riotId, region).
			Delete(&Favorite{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			return nil
		}

		favorited = true
		return tx.Create(&Favorite{
			RiotId:    riotId,
			Region:    region,
			Timestamp: time.Now(),
		}).Error
	})
	if err != nil {
		return false, err
	}

	return favorited, nil
}

// Favorites returns every bookmarked player, most recent first.
func (r *repository) Favorites() ([]Favorite, error) {
	var favorites []Favorite
	err := r.db.Order("timestamp DESC, id DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
