// File: database/repository/customer/customer_mongo.go
package customerRepo

import (
	"context"
	"fmt"
	"time"

	"meliyah/database"
	"meliyah/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a customer repository bound to the default DB.
func NewMongoCustomerRepo() *MongoCustomerRepo {
	return &MongoCustomerRepo{coll: database.DB().Collection("customers")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new customer document.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	customer.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID.
func (r *MongoCustomerRepo) GetByID(id string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("customer with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch customer %s: %w", id, err)
	}
	return &customer, nil
}

// List returns all customers.
func (r *MongoCustomerRepo) List() ([]models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cur.Close(ctx)

	var customers []models.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// Update modifies an existing customer document.
func (r *MongoCustomerRepo) Update(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": customer.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": customer})
	if err != nil {
		return fmt.Errorf("failed to update customer with id %s: %w", customer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %s not found", customer.ID)
	}
	return nil
}

// CountCreatedBetween counts customers created inside the date range
// (inclusive, "2006-01-02" bounds).
func (r *MongoCustomerRepo) CountCreatedBetween(start, end string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	startAt, err := time.Parse("2006-01-02", start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endAt, err := time.Parse("2006-01-02", end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	endAt = endAt.AddDate(0, 0, 1)

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": startAt, "$lt": endAt},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return int(count), nil
}
