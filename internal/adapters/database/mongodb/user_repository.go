package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	"github.com/CareSetu/health_portal_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// MongoUserRepository persists user credential records as documents.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func newMongoUserRepository(db *mongo.Database) portsrepo.UserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

// Ensure MongoUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*MongoUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:               d.UserID,
		Email:                d.Email,
		Name:                 d.Name,
		PasswordHash:         d.PasswordHash,
		AuthProvider:         d.AuthProvider,
		ProviderUserID:       d.ProviderUserID,
		Role:                 string(d.Role),
		Phone:                d.Phone,
		PreferredLanguage:    d.PreferredLanguage,
		HospitalID:           d.HospitalID,
		ResetToken:           d.ResetToken,
		ResetTokenExpiry:     d.ResetTokenExpiry,
		WeeklyLogLastUpdated: d.WeeklyLogLastUpdated,
		WeeklyReminderSent:   d.WeeklyReminderSent,
		CreatedAt:            d.CreatedAt,
		LastUpdatedAt:        d.LastUpdatedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:               m.UserID,
		Email:                m.Email,
		Name:                 m.Name,
		PasswordHash:         m.PasswordHash,
		AuthProvider:         m.AuthProvider,
		ProviderUserID:       m.ProviderUserID,
		Role:                 domain.Role(m.Role),
		Phone:                m.Phone,
		PreferredLanguage:    m.PreferredLanguage,
		HospitalID:           m.HospitalID,
		ResetToken:           m.ResetToken,
		ResetTokenExpiry:     m.ResetTokenExpiry,
		WeeklyLogLastUpdated: m.WeeklyLogLastUpdated,
		WeeklyReminderSent:   m.WeeklyReminderSent,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *MongoUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	_, err := r.coll.InsertOne(ctx, modelUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID}, fmt.Sprintf("ID %s", userID))
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "email")
}

func (r *MongoUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	filter := bson.M{"auth_provider": authProvider, "provider_user_id": providerUserID}
	return r.findOne(ctx, filter, "provider details")
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, what string) (*domain.User, error) {
	var modelUser models.User
	err := r.coll.FindOne(ctx, filter).Decode(&modelUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", what, err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *MongoUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	update := bson.M{"$set": bson.M{
		"name":               user.Name,
		"phone":              user.Phone,
		"preferred_language": user.PreferredLanguage,
		"auth_provider":      user.AuthProvider,
		"provider_user_id":   user.ProviderUserID,
		"last_updated_at":    user.LastUpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": user.UserID}, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) SetResetToken(ctx context.Context, userID string, token string, expiry time.Time) error {
	update := bson.M{"$set": bson.M{
		"reset_token":        token,
		"reset_token_expiry": expiry,
		"last_updated_at":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	// The new hash lands and the reset token clears in one document update, so
	// redemption is single-use even under concurrent requests.
	update := bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "last_updated_at": time.Now()},
		"$unset": bson.M{"reset_token": "", "reset_token_expiry": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) TouchWeeklyLog(ctx context.Context, userID string, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"weekly_log_last_updated": at,
		"weekly_reminder_sent":    false,
		"last_updated_at":         at,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to touch weekly log: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) MarkReminderSent(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{"weekly_reminder_sent": true}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) FindStalePatients(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
	filter := bson.M{
		"role":                    string(domain.RolePatient),
		"weekly_log_last_updated": bson.M{"$lte": cutoff},
		"weekly_reminder_sent":    false,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale patients: %w", err)
	}
	defer cursor.Close(ctx)

	var modelUsers []models.User
	if err := cursor.All(ctx, &modelUsers); err != nil {
		return nil, fmt.Errorf("failed to decode stale patients: %w", err)
	}

	users := make([]domain.User, len(modelUsers))
	for i, m := range modelUsers {
		users[i] = toDomainUser(m)
	}
	return users, nil
}
