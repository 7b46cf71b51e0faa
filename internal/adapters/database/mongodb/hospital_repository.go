package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	"github.com/CareSetu/health_portal_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const hospitalsCollection = "hospitals"

// MongoHospitalRepository persists hospital directory documents.
type MongoHospitalRepository struct {
	coll *mongo.Collection
}

func newMongoHospitalRepository(db *mongo.Database) portsrepo.HospitalRepository {
	return &MongoHospitalRepository{coll: db.Collection(hospitalsCollection)}
}

// Ensure MongoHospitalRepository implements portsrepo.HospitalRepository
var _ portsrepo.HospitalRepository = (*MongoHospitalRepository)(nil)

func toModelHospital(d domain.Hospital) models.Hospital {
	return models.Hospital{
		HospitalID:    d.HospitalID,
		Name:          d.Name,
		State:         d.State,
		District:      d.District,
		Address:       d.Address,
		Phone:         d.Phone,
		Email:         d.Email,
		BedsTotal:     d.BedsTotal,
		BedsAvailable: d.BedsAvailable,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func toDomainHospital(m models.Hospital) domain.Hospital {
	return domain.Hospital{
		HospitalID:    m.HospitalID,
		Name:          m.Name,
		State:         m.State,
		District:      m.District,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		BedsTotal:     m.BedsTotal,
		BedsAvailable: m.BedsAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *MongoHospitalRepository) SaveHospital(ctx context.Context, hospital domain.Hospital) error {
	_, err := r.coll.InsertOne(ctx, toModelHospital(hospital))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("hospital already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save hospital: %w", err)
	}
	return nil
}

func (r *MongoHospitalRepository) FindHospitalByID(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	var modelHospital models.Hospital
	err := r.coll.FindOne(ctx, bson.M{"_id": hospitalID}).Decode(&modelHospital)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find hospital by ID %s: %w", hospitalID, err)
	}
	domainHospital := toDomainHospital(modelHospital)
	return &domainHospital, nil
}

func (r *MongoHospitalRepository) ListStates(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "state", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return toStringSlice(values), nil
}

func (r *MongoHospitalRepository) ListDistricts(ctx context.Context, state string) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "district", bson.M{"state": state})
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return toStringSlice(values), nil
}

func (r *MongoHospitalRepository) SearchHospitals(ctx context.Context, filter portsrepo.HospitalSearchFilter) ([]domain.Hospital, error) {
	query := bson.M{}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.District != "" {
		query["district"] = filter.District
	}
	if filter.NamePrefix != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(filter.NamePrefix),
			Options: "i",
		}}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var modelHospitals []models.Hospital
	if err := cursor.All(ctx, &modelHospitals); err != nil {
		return nil, fmt.Errorf("failed to decode hospitals: %w", err)
	}

	hospitals := make([]domain.Hospital, len(modelHospitals))
	for i, m := range modelHospitals {
		hospitals[i] = toDomainHospital(m)
	}
	return hospitals, nil
}

func (r *MongoHospitalRepository) UpdateBeds(ctx context.Context, hospitalID string, bedsTotal, bedsAvailable int) error {
	update := bson.M{"$set": bson.M{
		"beds_total":      bedsTotal,
		"beds_available":  bedsAvailable,
		"last_updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": hospitalID}, update)
	if err != nil {
		return fmt.Errorf("failed to update beds: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("hospital not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func toStringSlice(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
