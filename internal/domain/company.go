package domain

import (
	"time"
)

type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "ACTIVE"
	CompanyStatusSuspended CompanyStatus = "SUSPENDED"
)

type Company struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Code      string        `json:"code" gorm:"uniqueIndex;column:company_code"`
	Name      string        `json:"name" gorm:"column:company_name"`
	Status    CompanyStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
