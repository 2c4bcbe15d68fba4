package db_models

// ChangeEvent records one edit applied to the feed while serving a request.
type ChangeEvent struct {
	BaseModel
	Sequence int64  `gorm:"type:bigint;not null;index"` // request number since start
	Step     int    `gorm:"type:int;not null"`          // edit number within the request
	TraceID  string `gorm:"type:varchar(64)"`
	Action   string `gorm:"type:varchar(16);not null"`
	ReviewID int64  `gorm:"type:bigint"`
	Field    string `gorm:"type:varchar(16)"`
	Position int    `gorm:"type:int"`
	Skipped  bool   `gorm:"not null;default:false"`
}
