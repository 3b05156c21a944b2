package storefront

import (
	"context"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/dosha"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/validate"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

func (s *Storefront) BookAppointment(ctx context.Context, b model.Booking) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.session.Require("book a consultation")
	if err != nil {
		return model.Appointment{}, err
	}
	if err := validate.Booking(b); err != nil {
		return model.Appointment{}, err
	}
	doctor, ok := s.catalog.Doctor(b.DoctorID)
	if !ok {
		return model.Appointment{}, errx.NotFound("doctor", b.DoctorID)
	}
	a, err := s.schedule.Book(user, doctor, b)
	if err != nil {
		return model.Appointment{}, err
	}
	logx.Info().Str("appointment_id", a.ID).Str("doctor_id", doctor.ID).Str("date", a.Date).Str("time", a.Time).Msg("appointment booked")
	return a, s.save(ctx, storage.KeyAppointments, s.schedule.All())
}

// AttachTranscript stores a consultation transcript and completes the appointment.
func (s *Storefront) AttachTranscript(ctx context.Context, id, transcript string) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.schedule.AttachTranscript(id, transcript)
	if err != nil {
		return model.Appointment{}, err
	}
	return a, s.save(ctx, storage.KeyAppointments, s.schedule.All())
}

func (s *Storefront) CancelAppointment(ctx context.Context, id string) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.schedule.Cancel(id)
	if err != nil {
		return model.Appointment{}, err
	}
	return a, s.save(ctx, storage.KeyAppointments, s.schedule.All())
}

func (s *Storefront) Appointments() []model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.All()
}

func (s *Storefront) MyAppointments() ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.session.Require("view your appointments")
	if err != nil {
		return nil, err
	}
	return s.schedule.ForUser(user.Email), nil
}

func (s *Storefront) AddReview(ctx context.Context, r model.Review) (model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Product(r.ProductID); !ok && r.ProductID != "" {
		return model.Review{}, errx.NotFound("product", r.ProductID)
	}
	added, err := s.reviews.Add(r)
	if err != nil {
		return model.Review{}, err
	}
	return added, s.save(ctx, storage.KeyCustomReviews, s.reviews.Custom())
}

// ProductReviews lists user reviews for the product, newest first, then the seeded ones.
func (s *Storefront) ProductReviews(productID string) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.catalog.Product(productID)
	if !ok {
		return nil, errx.NotFound("product", productID)
	}
	return s.reviews.ForProduct(p), nil
}

func (s *Storefront) EvaluateDosha(answers []dosha.Dosha) (dosha.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dosha.Evaluate(answers, s.catalog.Product)
}
