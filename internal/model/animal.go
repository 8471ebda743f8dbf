package model

import "time"

type Animal struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Species        string    `db:"species" json:"species"`
	Breed          string    `db:"breed" json:"breed"`
	Age            int       `db:"age" json:"age"`
	MedicalHistory string    `db:"medical_history" json:"medical_history,omitempty"`
	OwnerID        int64     `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAnimalRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Species        string `json:"species" binding:"required,max=50"`
	Breed          string `json:"breed" binding:"max=100"`
	Age            int    `json:"age" binding:"gte=0"`
	MedicalHistory string `json:"medical_history"`
	OwnerID        int64  `json:"owner_id" binding:"required,gt=0"`
}

type UpdateAnimalRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Species        string `json:"species" binding:"required,max=50"`
	Breed          string `json:"breed" binding:"max=100"`
	Age            int    `json:"age" binding:"gte=0"`
	MedicalHistory string `json:"medical_history"`
	OwnerID        int64  `json:"owner_id" binding:"required,gt=0"`
}
