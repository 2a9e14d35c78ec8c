package entity

import "time"

const DefaultSpecialty = "General"

// Doctor is a registered clinic doctor. Rows are immutable once inserted.
type Doctor struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	FullName      string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone         string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Specialty     string    `gorm:"type:varchar(100)" json:"specialty"`
	City          string    `gorm:"type:varchar(50);default:Saida" json:"city"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
