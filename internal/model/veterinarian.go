package model

import "time"

type Veterinarian struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty string    `db:"specialty" json:"specialty"`
	Available bool      `db:"available" json:"available"`
	ClinicID  int64     `db:"clinic_id" json:"clinic_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateVeterinarianRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Specialty string `json:"specialty" binding:"required,max=50"`
	Available bool   `json:"available"`
	ClinicID  int64  `json:"clinic_id" binding:"required,gt=0"`
}

type UpdateVeterinarianRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Specialty string `json:"specialty" binding:"required,max=50"`
	Available bool   `json:"available"`
	ClinicID  int64  `json:"clinic_id" binding:"required,gt=0"`
}
