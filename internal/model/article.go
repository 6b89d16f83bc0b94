package model

import "time"

// Article is a published piece of content. AuthorID is a foreign key to
// users.id; the tag list is stored serialized in a single column so its
// order is preserved exactly as submitted.
type Article struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text"`
	PublishedAt time.Time `json:"published_at"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
}
