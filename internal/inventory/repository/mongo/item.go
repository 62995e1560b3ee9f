package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
)

// CreateItem inserts a new Item document and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	now := time.Now().UTC()
	item := model.Item{
		ID:                primitive.NewObjectID(),
		Name:              opt.Name,
		Category:          opt.Category,
		Quantity:          opt.Quantity,
		AvailableQuantity: opt.AvailableQuantity,
		Status:            opt.Status,
		PricePerDay:       opt.PricePerDay,
		Image:             opt.Image,
		Description:       opt.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.CreateItem: %v", err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (empty ID) when not found — not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	filter := bson.M{}
	if opt.ID != "" {
		oid, err := primitive.ObjectIDFromHex(opt.ID)
		if err != nil {
			return model.Item{}, nil
		}
		filter["_id"] = oid
	}
	if opt.Name != "" {
		filter["name"] = opt.Name
	}
	if !opt.IncludeDeleted {
		filter["deleted"] = bson.M{"$ne": true}
	}

	var item model.Item
	err := r.coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.GetOneItem: %v", err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns non-deleted Items, optionally narrowed to the given IDs.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": toObjectIDs(opt.IDs)}
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if opt.OrderBy == "name" {
		sort = bson.D{{Key: "name", Value: 1}}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.ListItems: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var items []model.Item
	if err := cur.All(ctx, &items); err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.ListItems decode: %v", err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem replaces the mutable field set of an Item and returns the
// updated document.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.Item{}, nil
	}

	update := bson.M{"$set": bson.M{
		"name":               opt.Name,
		"category":           opt.Category,
		"quantity":           opt.Quantity,
		"available_quantity": opt.AvailableQuantity,
		"status":             opt.Status,
		"price_per_day":      opt.PricePerDay,
		"image":              opt.Image,
		"description":        opt.Description,
		"updated_at":         time.Now().UTC(),
	}}

	var item model.Item
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "deleted": bson.M{"$ne": true}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.UpdateItem: %v", err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// SoftDeleteItems flags the given Items deleted in one UpdateMany.
// Invalid ids are silently dropped from the filter.
func (r *implRepository) SoftDeleteItems(ctx context.Context, ids []string) (int64, int64, error) {
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return 0, 0, nil
	}

	res, err := r.coll.UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.SoftDeleteItems: %v", err)
		return 0, 0, repo.ErrFailedToDelete
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// GetItem fetches a single Item by id, including soft-deleted ones.
// Returns zero-value Item (empty ID) when not found.
func (r *implRepository) GetItem(ctx context.Context, id string) (model.Item, error) {
	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, IncludeDeleted: true})
}

// ItemNames maps item ids to names, soft-deleted items included, so
// rental rows keep a readable name after their item is removed.
func (r *implRepository) ItemNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return names, nil
	}

	cur, err := r.coll.Find(
		ctx,
		bson.M{"_id": bson.M{"$in": oids}},
		options.Find().SetProjection(bson.M{"name": 1}),
	)
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.ItemNames: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.ItemNames decode: %v", err)
		return nil, repo.ErrFailedToList
	}
	for _, d := range docs {
		names[d.ID.Hex()] = d.Name
	}
	return names, nil
}

// DecrementAvailability takes one unit of the item, but only while a
// unit is free: the availability check and the decrement are a single
// conditional update, so concurrent takers cannot both pass.
func (r *implRepository) DecrementAvailability(ctx context.Context, id string) (model.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Item{}, repo.ErrNoAvailableUnits
	}

	var item model.Item
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "available_quantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"available_quantity": -1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Item{}, repo.ErrNoAvailableUnits
	}
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.DecrementAvailability: %v", err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// IncrementAvailability returns one unit of the item, capped at the
// total quantity so compensations can never overfill the ledger.
func (r *implRepository) IncrementAvailability(ctx context.Context, id string) (model.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Item{}, repo.ErrFailedToUpdate
	}

	var item model.Item
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "$expr": bson.M{"$lt": bson.A{"$available_quantity", "$quantity"}}},
		bson.M{
			"$inc": bson.M{"available_quantity": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Already at capacity (or id unknown): report current state.
		return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id, IncludeDeleted: true})
	}
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.IncrementAvailability: %v", err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// SetItemStatus persists a status derived by the caller.
func (r *implRepository) SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.ErrFailedToUpdate
	}

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		r.l.Errorf(ctx, "inventory/repository/mongo.SetItemStatus: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
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
