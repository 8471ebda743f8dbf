package model

import "time"

type Clinic struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Address           string    `db:"address" json:"address"`
	Phone             string    `db:"phone" json:"phone"`
	CityID            *int64    `db:"city_id" json:"city_id,omitempty"`
	EmergencyServices bool      `db:"emergency_services" json:"emergency_services"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type CreateClinicRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Address           string `json:"address" binding:"required,max=255"`
	Phone             string `json:"phone" binding:"required,max=20"`
	CityID            *int64 `json:"city_id"`
	EmergencyServices bool   `json:"emergency_services"`
}

type UpdateClinicRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Address           string `json:"address" binding:"required,max=255"`
	Phone             string `json:"phone" binding:"required,max=20"`
	CityID            *int64 `json:"city_id"`
	EmergencyServices bool   `json:"emergency_services"`
}

type City struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	PostalCode int    `db:"postal_code" json:"postal_code"`
}
