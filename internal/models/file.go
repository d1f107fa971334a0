package models

import "time"

// File is the metadata record for one uploaded study file. The bytes live
// on disk under the configured upload directory; FilePath is the public
// path they are served from.
type File struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Subject    string    `gorm:"size:20;not null;index" json:"subject"`
	Semester   string    `gorm:"size:10;not null;index" json:"semester"`
	FileName   string    `gorm:"size:255;not null" json:"fileName"`
	FilePath   string    `gorm:"size:500;not null" json:"filePath"`
	UploadedAt time.Time `json:"uploadedAt"`
}
