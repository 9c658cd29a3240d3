package customerRepo

import (
	"errors"
	"fmt"
	"time"

	"garagat/database"
	"garagat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo uses the "customers" collection of db.
func NewMongoCustomerRepo(db *mongo.Database) (*MongoCustomerRepo, error) {
	repo := &MongoCustomerRepo{coll: db.Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := database.NewContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) GetByID(id string) (*models.Customer, error) {
	return r.findOne(id, nil)
}

func (r *MongoCustomerRepo) GetVehicles(id string) ([]models.Vehicle, error) {
	c, err := r.findOne(id, bson.M{"id": 1, "vehicles": 1})
	if err != nil {
		return nil, err
	}
	return c.Vehicles, nil
}

func (r *MongoCustomerRepo) GetAddresses(id string) ([]models.Address, error) {
	c, err := r.findOne(id, bson.M{"id": 1, "addresses": 1})
	if err != nil {
		return nil, err
	}
	return c.Addresses, nil
}

func (r *MongoCustomerRepo) findOne(id string, projection bson.M) (*models.Customer, error) {
	ctx, cancel := database.NewContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("customer %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}
