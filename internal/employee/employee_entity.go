package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"size:255;not null"`
	Department string          `gorm:"size:255;not null"`
	Salary     decimal.Decimal `gorm:"type:decimal(12,2)"`
	StartDate  string          `gorm:"size:10"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
