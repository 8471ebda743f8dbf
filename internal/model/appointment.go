package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "REQUESTED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusRequested, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment links an animal, a veterinarian and a clinic. All three
// references must resolve to existing rows; the repository enforces that
// inside the same transaction as the write. Names are denormalized on
// read for display.
type Appointment struct {
	ID               int64             `db:"id" json:"id"`
	Date             string            `db:"date" json:"date"`
	Time             string            `db:"time" json:"time"`
	Reason           string            `db:"reason" json:"reason"`
	Status           AppointmentStatus `db:"status" json:"status"`
	AnimalID         int64             `db:"animal_id" json:"animal_id"`
	AnimalName       string            `db:"animal_name" json:"animal_name,omitempty"`
	VeterinarianID   int64             `db:"veterinarian_id" json:"veterinarian_id"`
	VeterinarianName string            `db:"veterinarian_name" json:"veterinarian_name,omitempty"`
	ClinicID         int64             `db:"clinic_id" json:"clinic_id"`
	ClinicName       string            `db:"clinic_name" json:"clinic_name,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

type CreateAppointmentRequest struct {
	Date           string `json:"date" binding:"required,dateonly"`
	Time           string `json:"time" binding:"required,hhmm"`
	Reason         string `json:"reason" binding:"required,max=255"`
	AnimalID       int64  `json:"animal_id" binding:"required,gt=0"`
	VeterinarianID int64  `json:"veterinarian_id" binding:"required,gt=0"`
	ClinicID       int64  `json:"clinic_id" binding:"required,gt=0"`
}

type UpdateAppointmentRequest struct {
	Date           string            `json:"date" binding:"required,dateonly"`
	Time           string            `json:"time" binding:"required,hhmm"`
	Reason         string            `json:"reason" binding:"required,max=255"`
	Status         AppointmentStatus `json:"status" binding:"required"`
	AnimalID       int64             `json:"animal_id" binding:"required,gt=0"`
	VeterinarianID int64             `json:"veterinarian_id" binding:"required,gt=0"`
	ClinicID       int64             `json:"clinic_id" binding:"required,gt=0"`
}
