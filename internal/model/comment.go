package model

import "time"

// Comment belongs to exactly one article. AuthorName is free text, not a
// reference to User or Author.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ArticleID  uint      `json:"article_id" gorm:"not null;index"`
	AuthorName string    `json:"author_name" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Article Article `json:"-" gorm:"foreignKey:ArticleID"`
}
