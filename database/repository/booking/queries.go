// File: database/repository/booking/queries.go
package bookingRepo

import (
	"fmt"
	"time"

	"meliyah/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CountAndRevenue aggregates the number of non-cancelled bookings and their
// total revenue inside the date range.
func (r *MongoBookingRepo) CountAndRevenue(startDate, endDate string) (int, float64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"date":   bson.M{"$gte": startDate, "$lte": endDate},
			"status": bson.M{"$ne": models.BookingStatusCancelled},
		}},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total_price"},
		}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Count   int     `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode booking aggregation: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Count, results[0].Revenue, nil
}

// RevenueTimeline groups revenue per booking date inside the range,
// ascending by date.
func (r *MongoBookingRepo) RevenueTimeline(startDate, endDate string) ([]models.RevenuePoint, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"date":   bson.M{"$gte": startDate, "$lte": endDate},
			"status": bson.M{"$ne": models.BookingStatusCancelled},
		}},
		{"$group": bson.M{
			"_id":     "$date",
			"revenue": bson.M{"$sum": "$total_price"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue timeline: %w", err)
	}
	defer cur.Close(ctx)

	var points []models.RevenuePoint
	if err := cur.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode revenue timeline: %w", err)
	}
	return points, nil
}
