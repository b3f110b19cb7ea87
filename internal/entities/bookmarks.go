package entities

import (
	"time"

	"gorm.io/gorm"
)

type Bookmark struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	URL         string `gorm:"size:2048" json:"url"`
	BaseURL     string `gorm:"index;size:2048" json:"-"` // scheme+host+path, the dedup key
	Title       string `gorm:"size:512" json:"title,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// BookmarkedAt is when the user originally saved the bookmark in the
	// source service, not when it was imported here.
	BookmarkedAt time.Time `json:"bookmarked_at,omitempty"`

	Tags []Tag `gorm:"many2many:bookmark_tags;" json:"tags,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Tag struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index" json:"user_id"`
	Name      string     `gorm:"index;size:100" json:"name"`
	Bookmarks []Bookmark `gorm:"many2many:bookmark_tags;" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (Tag) TableName() string {
	return "tags"
}
