package service_test

import (
	"errors"
	"testing"

	"github.com/assetdash/asset-dashboard-backend/internal/api/request"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/model"
	"github.com/assetdash/asset-dashboard-backend/internal/testutil"
)

func TestAssetService_CreateAsset(t *testing.T) {
	t.Run("creates asset with generated ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		created, err := svc.CreateAsset(request.CreateManualAssetRequest{
			Symbol:       "BTC",
			Name:         "Bitcoin",
			AssetType:    "CRYPTO",
			Currency:     "USD",
			Quantity:     0.5,
			BuyPrice:     40000,
			CurrentPrice: 60000,
			Brokerage:    "Cold Wallet",
		})
		if err != nil {
			t.Fatalf("CreateAsset failed: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected a generated ID")
		}
		if created.AssetType != model.AssetTypeCrypto {
			t.Errorf("Expected asset type CRYPTO, got %s", created.AssetType)
		}

		stored, err := svc.GetAsset(created.ID)
		if err != nil {
			t.Fatalf("GetAsset failed: %v", err)
		}
		if stored.Name != "Bitcoin" || stored.Quantity != 0.5 {
			t.Errorf("Stored asset mismatch: %+v", stored)
		}
	})

	t.Run("rejects invalid request", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		_, err := svc.CreateAsset(request.CreateManualAssetRequest{
			Name:      "",
			AssetType: "STOCK",
			Currency:  "KRW",
			Quantity:  -1,
		})
		if err == nil {
			t.Fatal("Expected validation error for empty name and negative quantity")
		}
	})

	t.Run("rejects unknown asset type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		_, err := svc.CreateAsset(request.CreateManualAssetRequest{
			Name:      "Mystery",
			AssetType: "ANTIQUE",
			Currency:  "KRW",
			Quantity:  1,
		})
		if err == nil {
			t.Fatal("Expected error for unknown asset type")
		}
	})
}

func TestAssetService_UpdateAsset(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		asset := testutil.NewManualAsset().WithCurrentPrice(70000).Build(t, db)

		newPrice := 75000.0
		updated, err := svc.UpdateAsset(asset.ID, request.UpdateManualAssetRequest{
			CurrentPrice: &newPrice,
		})
		if err != nil {
			t.Fatalf("UpdateAsset failed: %v", err)
		}
		if updated.CurrentPrice != 75000 {
			t.Errorf("Expected current price 75000, got %v", updated.CurrentPrice)
		}
		// Untouched fields keep their stored values
		if updated.Name != asset.Name || updated.Quantity != asset.Quantity {
			t.Errorf("Unrelated fields changed: %+v", updated)
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		_, err := svc.UpdateAsset(testutil.MakeID(), request.UpdateManualAssetRequest{})
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

func TestAssetService_DeleteAsset(t *testing.T) {
	t.Run("deletes existing asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		asset := testutil.NewManualAsset().Build(t, db)

		if err := svc.DeleteAsset(asset.ID); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}

		_, err := svc.GetAsset(asset.ID)
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound after delete, got %v", err)
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		err := svc.DeleteAsset(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

func TestAssetService_GetAssets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestAssetService(t, db)

	testutil.NewManualAsset().WithID(testutil.MakeID()).WithName("Zeta Fund").Build(t, db)
	testutil.NewManualAsset().WithID(testutil.MakeID()).WithName("Alpha Fund").Build(t, db)

	assets, err := svc.GetAssets()
	if err != nil {
		t.Fatalf("GetAssets failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("Expected 2 assets, got %d", len(assets))
	}
	if assets[0].Name != "Alpha Fund" {
		t.Errorf("Expected assets ordered by name, got %s first", assets[0].Name)
	}
}
