package models

type Revenue struct {
	Month   string `gorm:"primaryKey;size:4" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`

	// Seq keeps the document order of months in the database.
	Seq int `gorm:"not null;default:0" json:"-"`
}

// TableName overrides the table name
func (Revenue) TableName() string {
	return "revenue"
}
