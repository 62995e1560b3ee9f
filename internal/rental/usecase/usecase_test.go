package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	invRepo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
	"disc-rental/internal/rental"
	"disc-rental/internal/rental/repository"
	"disc-rental/internal/rental/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRentalRepo struct {
	createFunc func(opt repository.CreateRentalOptions) (model.Rental, error)
	getOneFunc func(opt repository.GetOneRentalOptions) (model.Rental, error)
	listFunc   func(opt repository.ListRentalsOptions) ([]model.Rental, error)
	updateFunc func(opt repository.UpdateRentalOptions) (model.Rental, error)
	deleteFunc func(ids []string) (int64, int64, error)
	lastUpdate *repository.UpdateRentalOptions
	deletedIDs []string
}

func (m *mockRentalRepo) CreateRental(ctx context.Context, opt repository.CreateRentalOptions) (model.Rental, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Rental{
		ID:          primitive.NewObjectID(),
		ItemID:      mustOID(opt.ItemID),
		RenterName:  opt.RenterName,
		PhoneNumber: opt.PhoneNumber,
		RentedAt:    opt.RentedAt,
		EndDate:     opt.EndDate,
		Status:      opt.Status,
	}, nil
}

func (m *mockRentalRepo) GetOneRental(ctx context.Context, opt repository.GetOneRentalOptions) (model.Rental, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Rental{}, nil
}

func (m *mockRentalRepo) ListRentals(ctx context.Context, opt repository.ListRentalsOptions) ([]model.Rental, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRentalRepo) UpdateRental(ctx context.Context, opt repository.UpdateRentalOptions) (model.Rental, error) {
	m.lastUpdate = &opt
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Rental{
		ID:          mustOID(opt.ID),
		ItemID:      primitive.NewObjectID(),
		RenterName:  opt.RenterName,
		PhoneNumber: opt.PhoneNumber,
		EndDate:     opt.EndDate,
		ReturnedAt:  opt.ReturnedAt,
		Status:      opt.Status,
	}, nil
}

func (m *mockRentalRepo) SoftDeleteRentals(ctx context.Context, ids []string) (int64, int64, error) {
	m.deletedIDs = ids
	if m.deleteFunc != nil {
		return m.deleteFunc(ids)
	}
	return int64(len(ids)), int64(len(ids)), nil
}

func (m *mockRentalRepo) CountOutstanding(ctx context.Context, itemIDs []string) (map[string]int, error) {
	return map[string]int{}, nil
}

// mockItemLedger tracks availability in memory so ledger moves can be
// asserted after the fact.
type mockItemLedger struct {
	items      map[string]*model.Item
	decrements int
	increments int
	statusSets []model.ItemStatus
}

func newMockLedger(items ...model.Item) *mockItemLedger {
	m := &mockItemLedger{items: map[string]*model.Item{}}
	for i := range items {
		it := items[i]
		m.items[it.ID.Hex()] = &it
	}
	return m
}

func (m *mockItemLedger) GetItem(ctx context.Context, id string) (model.Item, error) {
	if it, ok := m.items[id]; ok {
		return *it, nil
	}
	return model.Item{}, nil
}

func (m *mockItemLedger) ItemNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			names[id] = it.Name
		}
	}
	return names, nil
}

func (m *mockItemLedger) DecrementAvailability(ctx context.Context, id string) (model.Item, error) {
	it, ok := m.items[id]
	if !ok || it.AvailableQuantity <= 0 {
		return model.Item{}, invRepo.ErrNoAvailableUnits
	}
	it.AvailableQuantity--
	m.decrements++
	return *it, nil
}

func (m *mockItemLedger) IncrementAvailability(ctx context.Context, id string) (model.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return model.Item{}, invRepo.ErrFailedToUpdate
	}
	if it.AvailableQuantity < it.Quantity {
		it.AvailableQuantity++
	}
	m.increments++
	return *it, nil
}

func (m *mockItemLedger) SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error {
	if it, ok := m.items[id]; ok {
		it.Status = status
	}
	m.statusSets = append(m.statusSets, status)
	return nil
}

func mustOID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return oid
}

func testItem(available, total int) model.Item {
	return model.Item{
		ID:                primitive.NewObjectID(),
		Name:              "Elden Ring",
		Category:          model.CategoryPS5,
		Quantity:          total,
		AvailableQuantity: available,
		Status:            model.ItemAvailable,
		PricePerDay:       5,
	}
}

func TestCreateRental(t *testing.T) {
	ctx := context.Background()
	end := time.Now().UTC().Add(72 * time.Hour)

	t.Run("takes one unit and opens an active rental", func(t *testing.T) {
		item := testItem(2, 3)
		ledger := newMockLedger(item)
		repo := &mockRentalRepo{}
		uc := usecase.New(repo, ledger, &mockLogger{})

		out, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID:      item.ID.Hex(),
			RenterName:  "An",
			PhoneNumber: "0901234567",
			EndDate:     end,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RentalActive, out.Status)
		assert.Equal(t, "Elden Ring", out.ItemName)
		assert.Equal(t, 1, ledger.decrements)
		assert.Equal(t, 1, ledger.items[item.ID.Hex()].AvailableQuantity)
	})

	t.Run("last unit flips the item to rented", func(t *testing.T) {
		item := testItem(1, 3)
		ledger := newMockLedger(item)
		uc := usecase.New(&mockRentalRepo{}, ledger, &mockLogger{})

		_, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID: item.ID.Hex(), RenterName: "An", PhoneNumber: "0901234567", EndDate: end,
		})
		require.NoError(t, err)
		assert.Equal(t, model.ItemRented, ledger.items[item.ID.Hex()].Status)
	})

	t.Run("no availability is rejected without a rental", func(t *testing.T) {
		item := testItem(0, 3)
		ledger := newMockLedger(item)
		created := false
		repo := &mockRentalRepo{createFunc: func(opt repository.CreateRentalOptions) (model.Rental, error) {
			created = true
			return model.Rental{}, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		_, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID: item.ID.Hex(), RenterName: "An", PhoneNumber: "0901234567", EndDate: end,
		})
		assert.ErrorIs(t, err, rental.ErrItemUnavailable)
		assert.False(t, created)
		assert.Equal(t, 0, ledger.items[item.ID.Hex()].AvailableQuantity)
	})

	t.Run("unknown item", func(t *testing.T) {
		uc := usecase.New(&mockRentalRepo{}, newMockLedger(), &mockLogger{})
		_, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID: primitive.NewObjectID().Hex(), RenterName: "An", EndDate: end,
		})
		assert.ErrorIs(t, err, rental.ErrItemNotFound)
	})

	t.Run("failed insert hands the unit back", func(t *testing.T) {
		item := testItem(2, 3)
		ledger := newMockLedger(item)
		repo := &mockRentalRepo{createFunc: func(opt repository.CreateRentalOptions) (model.Rental, error) {
			return model.Rental{}, repository.ErrFailedToInsert
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		_, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID: item.ID.Hex(), RenterName: "An", PhoneNumber: "0901234567", EndDate: end,
		})
		assert.ErrorIs(t, err, repository.ErrFailedToInsert)
		assert.Equal(t, 2, ledger.items[item.ID.Hex()].AvailableQuantity)
	})

	t.Run("end date in the past", func(t *testing.T) {
		item := testItem(2, 3)
		uc := usecase.New(&mockRentalRepo{}, newMockLedger(item), &mockLogger{})
		_, err := uc.Create(ctx, rental.CreateRentalInput{
			ItemID: item.ID.Hex(), RenterName: "An", EndDate: time.Now().UTC().Add(-time.Hour),
		})
		assert.ErrorIs(t, err, rental.ErrInvalidEndDate)
	})
}

func TestUpdateRental(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	openRental := func(item model.Item, status model.RentalStatus) model.Rental {
		r := model.Rental{
			ID:          primitive.NewObjectID(),
			ItemID:      item.ID,
			RenterName:  "An",
			PhoneNumber: "0901234567",
			RentedAt:    now.Add(-48 * time.Hour),
			EndDate:     now.Add(48 * time.Hour),
			Status:      status,
		}
		if status == model.RentalReturned {
			ret := now.Add(-time.Hour)
			r.ReturnedAt = &ret
		}
		return r
	}

	t.Run("returning frees the unit and stamps returned_at", func(t *testing.T) {
		item := testItem(0, 1)
		item.Status = model.ItemRented
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalActive)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		status := "returned"
		out, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.RentalReturned, out.Status)
		require.NotNil(t, repo.lastUpdate.ReturnedAt)
		assert.Equal(t, 1, ledger.increments)
		assert.Equal(t, 1, ledger.items[item.ID.Hex()].AvailableQuantity)
		assert.Equal(t, model.ItemAvailable, ledger.items[item.ID.Hex()].Status)
	})

	t.Run("returning again moves nothing", func(t *testing.T) {
		item := testItem(1, 1)
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalReturned)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		status := "returned"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 0, ledger.increments)
		assert.Equal(t, 0, ledger.decrements)
		assert.Equal(t, existing.ReturnedAt, repo.lastUpdate.ReturnedAt)
	})

	t.Run("reopening takes a unit back", func(t *testing.T) {
		item := testItem(1, 1)
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalReturned)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		status := "active"
		out, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.RentalActive, out.Status)
		assert.Nil(t, repo.lastUpdate.ReturnedAt)
		assert.Equal(t, 1, ledger.decrements)
		assert.Equal(t, 0, ledger.items[item.ID.Hex()].AvailableQuantity)
	})

	t.Run("reopening with no availability names the item", func(t *testing.T) {
		item := testItem(0, 1)
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalReturned)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		status := "active"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		var capErr *rental.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "Elden Ring", capErr.ItemName)
	})

	t.Run("overdue to active relabel does not touch the ledger", func(t *testing.T) {
		item := testItem(0, 1)
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalOverdue)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		status := "active"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 0, ledger.decrements)
		assert.Equal(t, 0, ledger.increments)
	})

	t.Run("active past due is persisted as overdue on save", func(t *testing.T) {
		item := testItem(0, 1)
		ledger := newMockLedger(item)
		existing := openRental(item, model.RentalActive)
		existing.EndDate = now.Add(-24 * time.Hour)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		name := "Binh"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), RenterName: &name})
		require.NoError(t, err)
		assert.Equal(t, model.RentalOverdue, repo.lastUpdate.Status)
		assert.Equal(t, "Binh", repo.lastUpdate.RenterName)
		assert.Equal(t, 0, ledger.increments)
	})

	t.Run("unknown rental", func(t *testing.T) {
		uc := usecase.New(&mockRentalRepo{}, newMockLedger(), &mockLogger{})
		name := "Binh"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: primitive.NewObjectID().Hex(), RenterName: &name})
		assert.ErrorIs(t, err, rental.ErrRentalNotFound)
	})

	t.Run("bad status string", func(t *testing.T) {
		item := testItem(1, 1)
		existing := openRental(item, model.RentalActive)
		repo := &mockRentalRepo{getOneFunc: func(opt repository.GetOneRentalOptions) (model.Rental, error) {
			return existing, nil
		}}
		uc := usecase.New(repo, newMockLedger(item), &mockLogger{})

		status := "finished"
		_, err := uc.Update(ctx, rental.UpdateRentalInput{ID: existing.ID.Hex(), Status: &status})
		assert.ErrorIs(t, err, rental.ErrInvalidStatus)
	})
}

func TestListRentals(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	item := testItem(1, 2)

	rentals := []model.Rental{
		{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalActive, EndDate: now.Add(-time.Hour)},
		{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalActive, EndDate: now.Add(time.Hour)},
	}
	repo := &mockRentalRepo{listFunc: func(opt repository.ListRentalsOptions) ([]model.Rental, error) {
		return rentals, nil
	}}
	uc := usecase.New(repo, newMockLedger(item), &mockLogger{})

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, model.RentalOverdue, out[0].Status)
	assert.Equal(t, model.RentalActive, out[1].Status)
	assert.Equal(t, "Elden Ring", out[0].ItemName)
}

func TestBulkDeleteRentals(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("outstanding rentals hand their units back", func(t *testing.T) {
		item := testItem(0, 2)
		item.Status = model.ItemRented
		ledger := newMockLedger(item)
		ret := now.Add(-time.Hour)
		rentals := []model.Rental{
			{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalActive, EndDate: now.Add(time.Hour)},
			{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalOverdue, EndDate: now.Add(-time.Hour)},
			{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalReturned, ReturnedAt: &ret},
		}
		ids := []string{rentals[0].ID.Hex(), rentals[1].ID.Hex(), rentals[2].ID.Hex()}
		repo := &mockRentalRepo{listFunc: func(opt repository.ListRentalsOptions) ([]model.Rental, error) {
			return rentals, nil
		}}
		uc := usecase.New(repo, ledger, &mockLogger{})

		out, err := uc.BulkDelete(ctx, rental.BulkDeleteRentalsInput{IDs: ids})
		require.NoError(t, err)
		assert.Equal(t, 3, out.DeletedCount)
		assert.Equal(t, ids, repo.deletedIDs)
		assert.Equal(t, 2, ledger.increments)
		assert.Equal(t, 2, ledger.items[item.ID.Hex()].AvailableQuantity)
		assert.Equal(t, model.ItemAvailable, ledger.items[item.ID.Hex()].Status)
	})

	t.Run("already deleted rentals count for nothing", func(t *testing.T) {
		item := testItem(1, 2)
		ledger := newMockLedger(item)
		live := model.Rental{ID: primitive.NewObjectID(), ItemID: item.ID, Status: model.RentalActive, EndDate: now.Add(time.Hour)}
		goneID := primitive.NewObjectID().Hex()
		repo := &mockRentalRepo{
			listFunc: func(opt repository.ListRentalsOptions) ([]model.Rental, error) {
				return []model.Rental{live}, nil
			},
			// The store skips rentals already flagged deleted, so only
			// the live one is matched and modified.
			deleteFunc: func(ids []string) (int64, int64, error) {
				return 1, 1, nil
			},
		}
		uc := usecase.New(repo, ledger, &mockLogger{})

		out, err := uc.BulkDelete(ctx, rental.BulkDeleteRentalsInput{IDs: []string{live.ID.Hex(), goneID}})
		require.NoError(t, err)
		assert.Equal(t, 1, out.DeletedCount)
		assert.Equal(t, 1, out.MatchedCount)
		assert.Equal(t, 1, ledger.increments)
	})
}
