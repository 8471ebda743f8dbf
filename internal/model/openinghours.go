package model

import "time"

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// OpeningHours is one weekday shift of a clinic. Times are HH:MM strings
// backed by TIME columns.
type OpeningHours struct {
	ID        int64     `db:"id" json:"id"`
	Weekday   Weekday   `db:"weekday" json:"weekday"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	ClinicID  int64     `db:"clinic_id" json:"clinic_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateOpeningHoursRequest struct {
	Weekday   Weekday `json:"weekday" binding:"required,weekday"`
	StartTime string  `json:"start_time" binding:"required,hhmm"`
	EndTime   string  `json:"end_time" binding:"required,hhmm"`
	ClinicID  int64   `json:"clinic_id" binding:"required,gt=0"`
}

type UpdateOpeningHoursRequest struct {
	Weekday   Weekday `json:"weekday" binding:"required,weekday"`
	StartTime string  `json:"start_time" binding:"required,hhmm"`
	EndTime   string  `json:"end_time" binding:"required,hhmm"`
	ClinicID  int64   `json:"clinic_id" binding:"required,gt=0"`
}
