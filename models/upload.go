package models

import "time"

// SlipUpload records one uploaded slip screenshot and the outcome of its
// scan. Failed uploads are kept (not deleted) so they can be reviewed or
// retried.
type SlipUpload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint   `gorm:"index;not null"`
	FileName    string `gorm:"size:255;not null"`
	StorePath   string `gorm:"column:store_path;size:512"`
	ContentType string `gorm:"size:128"`
	LineupID    *uint  `gorm:"index"` // draft lineup produced from this slip (nullable)
	// Scan failure bookkeeping; record kept so admin/front-end can review.
	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
