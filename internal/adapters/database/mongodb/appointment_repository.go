package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	"github.com/CareSetu/health_portal_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appointmentsCollection = "appointments"

// MongoAppointmentRepository persists appointment documents.
type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func newMongoAppointmentRepository(db *mongo.Database) portsrepo.AppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentsCollection)}
}

// Ensure MongoAppointmentRepository implements portsrepo.AppointmentRepository
var _ portsrepo.AppointmentRepository = (*MongoAppointmentRepository)(nil)

func toModelAppointment(d domain.Appointment) models.Appointment {
	return models.Appointment{
		AppointmentID: d.AppointmentID,
		UserID:        d.UserID,
		HospitalID:    d.HospitalID,
		Department:    d.Department,
		ScheduledAt:   d.ScheduledAt,
		Reason:        d.Reason,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func toDomainAppointment(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		AppointmentID: m.AppointmentID,
		UserID:        m.UserID,
		HospitalID:    m.HospitalID,
		Department:    m.Department,
		ScheduledAt:   m.ScheduledAt,
		Reason:        m.Reason,
		Status:        domain.AppointmentStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *MongoAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	_, err := r.coll.InsertOne(ctx, toModelAppointment(appointment))
	if err != nil {
		return fmt.Errorf("failed to save appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	var modelAppointment models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&modelAppointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment by ID %s: %w", appointmentID, err)
	}
	domainAppointment := toDomainAppointment(modelAppointment)
	return &domainAppointment, nil
}

func (r *MongoAppointmentRepository) FindAppointmentsByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error) {
	return r.findMany(ctx, bson.M{"user_id": userID}, limit, offset)
}

func (r *MongoAppointmentRepository) FindAppointmentsByHospitalID(ctx context.Context, hospitalID string, limit, offset int) ([]domain.Appointment, error) {
	return r.findMany(ctx, bson.M{"hospital_id": hospitalID}, limit, offset)
}

func (r *MongoAppointmentRepository) findMany(ctx context.Context, filter bson.M, limit, offset int) ([]domain.Appointment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "scheduled_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var modelAppointments []models.Appointment
	if err := cursor.All(ctx, &modelAppointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	appointments := make([]domain.Appointment, len(modelAppointments))
	for i, m := range modelAppointments {
		appointments[i] = toDomainAppointment(m)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	update := bson.M{"$set": bson.M{
		"status":          string(appointment.Status),
		"scheduled_at":    appointment.ScheduledAt,
		"last_updated_at": appointment.LastUpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": appointment.AppointmentID}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
