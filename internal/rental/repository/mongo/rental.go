package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"disc-rental/internal/model"
	repo "disc-rental/internal/rental/repository"
)

// CreateRental inserts a new Rental document and returns the created entity.
func (r *implRepository) CreateRental(ctx context.Context, opt repo.CreateRentalOptions) (model.Rental, error) {
	itemOID, err := primitive.ObjectIDFromHex(opt.ItemID)
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.CreateRental: invalid item id %q", opt.ItemID)
		return model.Rental{}, repo.ErrFailedToInsert
	}

	now := time.Now().UTC()
	rental := model.Rental{
		ID:          primitive.NewObjectID(),
		ItemID:      itemOID,
		RenterName:  opt.RenterName,
		PhoneNumber: opt.PhoneNumber,
		RentedAt:    opt.RentedAt,
		EndDate:     opt.EndDate,
		Status:      opt.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll.InsertOne(ctx, rental); err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.CreateRental: %v", err)
		return model.Rental{}, repo.ErrFailedToInsert
	}
	return rental, nil
}

// GetOneRental retrieves a single Rental by id.
// Returns zero-value Rental (empty ID) when not found — not an error.
func (r *implRepository) GetOneRental(ctx context.Context, opt repo.GetOneRentalOptions) (model.Rental, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.Rental{}, nil
	}

	filter := bson.M{"_id": oid}
	if !opt.IncludeDeleted {
		filter["deleted"] = bson.M{"$ne": true}
	}

	var rental model.Rental
	err = r.coll.FindOne(ctx, filter).Decode(&rental)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Rental{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.GetOneRental: %v", err)
		return model.Rental{}, repo.ErrFailedToGet
	}
	return rental, nil
}

// ListRentals returns non-deleted Rentals newest first, optionally
// narrowed to the given IDs.
func (r *implRepository) ListRentals(ctx context.Context, opt repo.ListRentalsOptions) ([]model.Rental, error) {
	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": toObjectIDs(opt.IDs)}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.ListRentals: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var rentals []model.Rental
	if err := cur.All(ctx, &rentals); err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.ListRentals decode: %v", err)
		return nil, repo.ErrFailedToList
	}
	return rentals, nil
}

// UpdateRental replaces the mutable field set of a Rental and returns
// the updated document. ReturnedAt nil clears the field.
func (r *implRepository) UpdateRental(ctx context.Context, opt repo.UpdateRentalOptions) (model.Rental, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.Rental{}, nil
	}

	set := bson.M{
		"renter_name":  opt.RenterName,
		"phone_number": opt.PhoneNumber,
		"end_date":     opt.EndDate,
		"status":       opt.Status,
		"updated_at":   time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if opt.ReturnedAt != nil {
		set["returned_at"] = *opt.ReturnedAt
	} else {
		update["$unset"] = bson.M{"returned_at": ""}
	}

	var rental model.Rental
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "deleted": bson.M{"$ne": true}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rental)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Rental{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.UpdateRental: %v", err)
		return model.Rental{}, repo.ErrFailedToUpdate
	}
	return rental, nil
}

// SoftDeleteRentals flags the given Rentals deleted in one UpdateMany.
// Already-deleted rentals are excluded so the modified count reflects
// only rentals deleted by this call. Invalid ids are silently dropped
// from the filter.
func (r *implRepository) SoftDeleteRentals(ctx context.Context, ids []string) (int64, int64, error) {
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return 0, 0, nil
	}

	res, err := r.coll.UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": oids}, "deleted": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.SoftDeleteRentals: %v", err)
		return 0, 0, repo.ErrFailedToDelete
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// CountOutstanding aggregates active/overdue non-deleted rentals per
// item id. Items with no outstanding rentals are absent from the map.
func (r *implRepository) CountOutstanding(ctx context.Context, itemIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(itemIDs))
	oids := toObjectIDs(itemIDs)
	if len(oids) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"item_id": bson.M{"$in": oids},
			"deleted": bson.M{"$ne": true},
			"status":  bson.M{"$in": bson.A{model.RentalActive, model.RentalOverdue}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$item_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.CountOutstanding: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var rows []struct {
		ItemID primitive.ObjectID `bson:"_id"`
		Count  int                `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		r.l.Errorf(ctx, "rental/repository/mongo.CountOutstanding decode: %v", err)
		return nil, repo.ErrFailedToList
	}
	for _, row := range rows {
		counts[row.ItemID.Hex()] = row.Count
	}
	return counts, nil
}

// toObjectIDs converts hex ids, dropping invalid ones.
func toObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		out = append(out, oid)
	}
	return out
}
