package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/importers"
	"github.com/mrlokans/bookmarks/internal/jobs"
)

// CreateBookmark persists one parsed bookmark for a user, creating any tags
// that do not exist yet. A failure caused by the database connection being
// gone is wrapped with jobs.ErrStoreUnavailable so the import runner can
// tell an outage from a bad record.
func (d *Database) CreateBookmark(ctx context.Context, userID uint, parsed importers.ParsedBookmark) error {
	base, ok := importers.BaseURL(parsed.URL)
	if !ok {
		return fmt.Errorf("invalid bookmark URL: %s", parsed.URL)
	}

	bookmarkedAt := time.Now()
	if t, err := time.Parse(time.RFC3339, parsed.CreatedAt); err == nil {
		bookmarkedAt = t
	}

	bookmark := entities.Bookmark{
		UserID:       userID,
		URL:          parsed.URL,
		BaseURL:      base,
		Title:        parsed.Title,
		Description:  parsed.Description,
		BookmarkedAt: bookmarkedAt,
	}

	tags, err := d.findOrCreateTags(ctx, userID, parsed.Tags)
	if err != nil {
		return d.wrapUnavailable(fmt.Errorf("failed to resolve tags: %w", err))
	}
	bookmark.Tags = tags

	if err := d.DB.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return d.wrapUnavailable(fmt.Errorf("failed to create bookmark: %w", err))
	}

	return nil
}

// ListBookmarkBaseURLs returns the dedup keys of every bookmark the user
// already has. The import pipeline partitions parsed entries against it.
func (d *Database) ListBookmarkBaseURLs(userID uint) ([]string, error) {
	var urls []string
	err := d.DB.Model(&entities.Bookmark{}).
		Where("user_id = ?", userID).
		Pluck("base_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// ListBookmarks retrieves paginated bookmarks for a user, newest first.
func (d *Database) ListBookmarks(userID uint, limit, offset int) ([]entities.Bookmark, int64, error) {
	var bookmarks []entities.Bookmark
	var total int64

	query := d.DB.Model(&entities.Bookmark{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Preload("Tags").
		Order("bookmarked_at DESC").
		Limit(limit).Offset(offset).
		Find(&bookmarks).Error
	return bookmarks, total, err
}

// DeleteBookmark soft-deletes a bookmark owned by the user.
func (d *Database) DeleteBookmark(userID, id uint) error {
	result := d.DB.Where("user_id = ?", userID).Delete(&entities.Bookmark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("bookmark %d not found", id)
	}
	return nil
}

// GetAllTags returns every tag the user has, ordered by name.
func (d *Database) GetAllTags(userID uint) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := d.DB.Where("user_id = ?", userID).Order("name").Find(&tags).Error
	return tags, err
}

// DeleteOrphanTags removes tags with no remaining bookmark associations.
// Runs as a maintenance task after imports and deletions.
func (d *Database) DeleteOrphanTags() (int64, error) {
	result := d.DB.Exec(
		"DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM bookmark_tags)",
	)
	return result.RowsAffected, result.Error
}

func (d *Database) findOrCreateTags(ctx context.Context, userID uint, names []string) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0, len(names))
	for _, name := range names {
		var tag entities.Tag
		err := d.DB.WithContext(ctx).
			Where(entities.Tag{UserID: userID, Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// wrapUnavailable tags an error with jobs.ErrStoreUnavailable when the
// underlying connection no longer responds to a ping.
func (d *Database) wrapUnavailable(err error) error {
	sqlDB, dbErr := d.DB.DB()
	if dbErr != nil {
		return fmt.Errorf("%w: %v", jobs.ErrStoreUnavailable, err)
	}
	if pingErr := sqlDB.Ping(); pingErr != nil {
		return fmt.Errorf("%w: %v", jobs.ErrStoreUnavailable, err)
	}
	return err
}
