// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"meliyah/database"
	"meliyah/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a booking repository bound to the default DB.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.DB().Collection("bookings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID fetches a booking by its ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// Update applies the non-nil fields of upd and returns the updated booking.
// Only status, payment status and the appointment slot are mutable; all
// snapshot fields stay as they were at materialization.
func (r *MongoBookingRepo) Update(id string, upd models.BookingUpdate) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.PaymentStatus != nil {
		set["payment_status"] = *upd.PaymentStatus
	}
	if upd.PaymentMethod != nil {
		set["payment_method"] = *upd.PaymentMethod
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Time != nil {
		set["time"] = *upd.Time
	}
	if len(set) == 0 {
		return r.GetByID(id)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &booking, nil
}

// List returns bookings matching the filter, newest first.
func (r *MongoBookingRepo) List(filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	dateRange := bson.M{}
	if filter.StartDate != "" {
		dateRange["$gte"] = filter.StartDate
	}
	if filter.EndDate != "" {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// FindByEmployeeSlot looks up the booking holding the given slot, ignoring
// cancelled bookings so a freed slot becomes bookable again.
func (r *MongoBookingRepo) FindByEmployeeSlot(employeeID, date, timeLabel string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"employee_id": employeeID,
		"date":        date,
		"time":        timeLabel,
		"status":      bson.M{"$ne": models.BookingStatusCancelled},
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, query).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return &booking, nil
}
