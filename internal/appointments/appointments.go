package appointments

import (
	"slices"

	"github.com/google/uuid"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

// Schedule holds booked consultations in booking order.
type Schedule struct {
	items []model.Appointment
}

func New() *Schedule {
	return &Schedule{}
}

func (s *Schedule) Load(items []model.Appointment) {
	s.items = slices.Clone(items)
}

// Book schedules a consultation with doctor for user. The booking must
// already be validated.
func (s *Schedule) Book(user model.User, doctor model.Doctor, b model.Booking) (model.Appointment, error) {
	if !doctor.Available {
		return model.Appointment{}, errx.Validation("doctorId", doctor.Name+" is not taking appointments right now")
	}
	a := model.Appointment{
		ID:          uuid.NewString(),
		UserID:      user.Email,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		DoctorImage: doctor.Image,
		Date:        b.Date,
		Time:        b.Time,
		Status:      model.AppointmentScheduled,
	}
	s.items = append(s.items, a)
	return a, nil
}

// AttachTranscript stores the call transcript and completes the appointment.
func (s *Schedule) AttachTranscript(id, transcript string) (model.Appointment, error) {
	i := s.index(id)
	if i < 0 {
		return model.Appointment{}, errx.NotFound("appointment", id)
	}
	if s.items[i].Status == model.AppointmentCancelled {
		return model.Appointment{}, errx.InvalidTransition("appointment", string(model.AppointmentCancelled), string(model.AppointmentCompleted))
	}
	s.items[i].Transcript = transcript
	s.items[i].Status = model.AppointmentCompleted
	return s.items[i], nil
}

// Cancel cancels a scheduled appointment.
func (s *Schedule) Cancel(id string) (model.Appointment, error) {
	i := s.index(id)
	if i < 0 {
		return model.Appointment{}, errx.NotFound("appointment", id)
	}
	if s.items[i].Status != model.AppointmentScheduled {
		return model.Appointment{}, errx.InvalidTransition("appointment", string(s.items[i].Status), string(model.AppointmentCancelled))
	}
	s.items[i].Status = model.AppointmentCancelled
	return s.items[i], nil
}

func (s *Schedule) Get(id string) (model.Appointment, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return model.Appointment{}, false
}

func (s *Schedule) All() []model.Appointment {
	return slices.Clone(s.items)
}

func (s *Schedule) ForUser(email string) []model.Appointment {
	var out []model.Appointment
	for _, a := range s.items {
		if a.UserID == email {
			out = append(out, a)
		}
	}
	return out
}

func (s *Schedule) index(id string) int {
	return slices.IndexFunc(s.items, func(a model.Appointment) bool { return a.ID == id })
}
