package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewRepositoryProvider wires the MongoDB-backed repositories.
func NewRepositoryProvider(db *mongo.Database) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newMongoUserRepository(db),
		HospitalRepo:    newMongoHospitalRepository(db),
		AppointmentRepo: newMongoAppointmentRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. Safe to call on
// every startup; Mongo treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Serves the reminder scan predicate.
			Keys: bson.D{
				{Key: "role", Value: 1},
				{Key: "weekly_reminder_sent", Value: 1},
				{Key: "weekly_log_last_updated", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "auth_provider", Value: 1},
				{Key: "provider_user_id", Value: 1},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.Collection(hospitalsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Serves state/district lookup and name-prefix search.
			Keys: bson.D{
				{Key: "state", Value: 1},
				{Key: "district", Value: 1},
				{Key: "name", Value: 1},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create hospital indexes: %w", err)
	}

	_, err = db.Collection(appointmentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "scheduled_at", Value: -1}}},
		{Keys: bson.D{{Key: "hospital_id", Value: 1}, {Key: "scheduled_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	return nil
}
