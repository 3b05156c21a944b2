package model

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ClinicTimeSlots are the bookable consultation times.
var ClinicTimeSlots = []string{"10:00 AM", "11:00 AM", "02:00 PM", "04:00 PM", "06:00 PM"}

type Appointment struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId,omitempty"`
	DoctorID    string            `json:"doctorId,omitempty"`
	DoctorName  string            `json:"doctorName"`
	DoctorImage string            `json:"doctorImage"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Transcript  string            `json:"transcript,omitempty"`
}

// Booking is the request to schedule a consultation.
type Booking struct {
	DoctorID string  `json:"doctorId" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required"`
	Payment  Payment `json:"payment"`
}
