package usecase

import (
	"context"
	"errors"
	"testing"

	"roofquote/internal/domain/entities"
	mock_interfaces "roofquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func connectedConfig() entities.WidgetConfig {
	return entities.WidgetConfig{
		OwnerID:    "owner-1",
		Connection: entities.Connection{ShopDomain: "demo.myshopify.com", AccessToken: "shpat_test"},
		Currency:   "USD",
		Entries: []entities.CatalogEntry{
			{
				Handle: "roof-sealant",
				Role:   entities.RoleSealant,
				Variants: []entities.Variant{
					{Size: 15, Price: 100, Title: "Roof Sealant 15L", PlatformVariantID: "v15", ImageURL: "https://cdn.example.com/15.png"},
					{Size: 5, Price: 40, Title: "Roof Sealant 5L", PlatformVariantID: "v5", ImageURL: "https://cdn.example.com/5.png"},
				},
			},
		},
		Assignments: entities.RoleAssignments{
			entities.RoleSealant: {"roof-sealant"},
		},
	}
}

func TestCheckoutUseCase_AssembleCheckout_Guards(t *testing.T) {
	t.Run("invalid owner id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil)
		_, err := uc.AssembleCheckout(context.Background(), "   ", entities.CheckoutInput{AreaM2: floatPtr(10)})
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("config provider error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(entities.WidgetConfig{}, errors.New("db"))

		_, err := uc.AssembleCheckout(context.Background(), "owner-1", entities.CheckoutInput{AreaM2: floatPtr(10)})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("platform not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		cfg := connectedConfig()
		cfg.Connection = entities.Connection{}
		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(cfg, nil)

		_, err := uc.AssembleCheckout(context.Background(), "owner-1", entities.CheckoutInput{AreaM2: floatPtr(10)})
		if !errors.Is(err, ErrPlatformNotConnected) {
			t.Fatalf("expected ErrPlatformNotConnected, got %v", err)
		}
	})

	t.Run("catalog empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		cfg := connectedConfig()
		cfg.Entries = nil
		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(cfg, nil)

		_, err := uc.AssembleCheckout(context.Background(), "owner-1", entities.CheckoutInput{AreaM2: floatPtr(10)})
		if !errors.Is(err, ErrCatalogEmpty) {
			t.Fatalf("expected ErrCatalogEmpty, got %v", err)
		}
	})

	t.Run("neither area nor counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)

		_, err := uc.AssembleCheckout(context.Background(), "owner-1", entities.CheckoutInput{})
		if !errors.Is(err, ErrNoQuoteInput) {
			t.Fatalf("expected ErrNoQuoteInput, got %v", err)
		}
	})

	t.Run("too many count sizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{
			{Size: 15, Quantity: 1}, {Size: 10, Quantity: 1}, {Size: 5, Quantity: 1}, {Size: 1, Quantity: 1},
		}}
		_, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if !errors.Is(err, ErrTooManyCountSizes) {
			t.Fatalf("expected ErrTooManyCountSizes, got %v", err)
		}
	})

	t.Run("counts match nothing in the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 7, Quantity: 2}}}
		_, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if !errors.Is(err, ErrEmptyLineItems) {
			t.Fatalf("expected ErrEmptyLineItems, got %v", err)
		}
	})
}

func TestCheckoutUseCase_AssembleCheckout_CartLinkPath(t *testing.T) {
	t.Run("counts with discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(configs, platform, quotes)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)
		platform.EXPECT().BuildCartURL("demo.myshopify.com",
			[]entities.CartPair{{VariantID: "v15", Quantity: 2}, {VariantID: "v5", Quantity: 1}},
			entities.CartURLOptions{DiscountPercent: 10, Note: "RoofQuote widget order: manual pack selection"},
		).Return("https://demo.myshopify.com/cart/v15:2,v5:1?discount=ROOFQUOTE10")
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.OwnerID != "owner-1" {
					t.Fatalf("unexpected quote identity: %+v", q)
				}
				if q.SealantLiters != 35 || q.ItemCount != 3 {
					t.Fatalf("unexpected quote contents: %+v", q)
				}
				if q.Subtotal != 240 || q.Total != 216 {
					t.Fatalf("unexpected quote totals: %+v", q)
				}
				if q.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return q, nil
			},
		)

		input := entities.CheckoutInput{
			Counts:          []entities.SizeCount{{Size: 5, Quantity: 1}, {Size: 15, Quantity: 2}},
			DiscountPercent: 10,
		}
		res, err := uc.AssembleCheckout(context.Background(), " owner-1 ", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if res.CheckoutURL != "https://demo.myshopify.com/cart/v15:2,v5:1?discount=ROOFQUOTE10" {
			t.Fatalf("unexpected checkout url: %s", res.CheckoutURL)
		}
		if res.Summary.ItemCount != 3 || res.Summary.Subtotal != 240 || res.Summary.Total != 216 {
			t.Fatalf("unexpected summary: %+v", res.Summary)
		}
		if res.Summary.DiscountPercent != 10 || res.Summary.DiscountAmount != 24 {
			t.Fatalf("unexpected discount: %+v", res.Summary)
		}
		if res.Summary.Currency != "USD" {
			t.Fatalf("unexpected currency: %s", res.Summary.Currency)
		}

		if len(res.LineItems) != 2 {
			t.Fatalf("expected 2 preview lines, got %d", len(res.LineItems))
		}
		first := res.LineItems[0]
		if first.Title != "Roof Sealant 15L" || first.VariantLabel != "15L" || first.Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", first)
		}
		if first.UnitPrice != "100.00" || first.LineTotal != "200.00" {
			t.Fatalf("unexpected first line money: %+v", first)
		}
		if first.ImageURL == nil || *first.ImageURL != "https://cdn.example.com/15.png" {
			t.Fatalf("unexpected first line image: %+v", first.ImageURL)
		}
	})

	t.Run("out of range discount is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)
		platform.EXPECT().BuildCartURL("demo.myshopify.com", gomock.Any(),
			entities.CartURLOptions{DiscountPercent: 0, Note: "RoofQuote widget order: manual pack selection"},
		).Return("https://demo.myshopify.com/cart/v15:1")

		input := entities.CheckoutInput{
			Counts:          []entities.SizeCount{{Size: 15, Quantity: 1}},
			DiscountPercent: 25,
		}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary.Subtotal != 100 || res.Summary.Total != 100 {
			t.Fatalf("expected untouched totals, got %+v", res.Summary)
		}
		if res.Summary.DiscountPercent != 0 || res.Summary.DiscountAmount != 0 {
			t.Fatalf("expected no applied discount, got %+v", res.Summary)
		}
	})

	t.Run("unknown count sizes are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)
		platform.EXPECT().BuildCartURL("demo.myshopify.com",
			[]entities.CartPair{{VariantID: "v15", Quantity: 1}},
			gomock.Any(),
		).Return("https://demo.myshopify.com/cart/v15:1")

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}, {Size: 7, Quantity: 3}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.LineItems) != 1 || res.Summary.ItemCount != 1 {
			t.Fatalf("expected the unknown size to be dropped, got %+v", res.LineItems)
		}
	})

	t.Run("area input drives the coverage breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)
		platform.EXPECT().BuildCartURL("demo.myshopify.com", gomock.Any(),
			entities.CartURLOptions{DiscountPercent: 0, Note: "RoofQuote widget order: 100.00 m2 surface"},
		).Return("https://demo.myshopify.com/cart/x")

		res, err := uc.AssembleCheckout(context.Background(), "owner-1", entities.CheckoutInput{AreaM2: floatPtr(100)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.LineItems) == 0 {
			t.Fatalf("expected sealant lines for 22.5 required liters")
		}
		for i, line := range res.LineItems {
			if line.Quantity <= 0 {
				t.Fatalf("line %d has non-positive quantity", i)
			}
		}
	})
}

func TestCheckoutUseCase_AssembleCheckout_DraftOrderPath(t *testing.T) {
	// A catalog with one variant missing its platform variant ID forces the
	// draft-order path even though the shop domain is known.
	mixedConfig := func() entities.WidgetConfig {
		cfg := connectedConfig()
		cfg.Entries[0].Variants[1].PlatformVariantID = ""
		return cfg
	}

	t.Run("variant rejection retries once without variant ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(mixedConfig(), nil)

		first := platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Connection, req entities.DraftOrderRequest) (entities.DraftOrderResult, error) {
				if len(req.LineItems) != 2 {
					t.Fatalf("expected 2 draft lines, got %d", len(req.LineItems))
				}
				if req.LineItems[0].VariantID != "v15" {
					t.Fatalf("expected first attempt to carry variant ids, got %+v", req.LineItems[0])
				}
				return entities.DraftOrderResult{OK: false, ErrKind: entities.ErrKindVariantUnavailable, Err: "variant not found"}, nil
			},
		)
		platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, _ entities.Connection, req entities.DraftOrderRequest) (entities.DraftOrderResult, error) {
				for i, l := range req.LineItems {
					if l.VariantID != "" {
						t.Fatalf("retry line %d still carries a variant id: %+v", i, l)
					}
					if l.Title == "" || l.Price <= 0 {
						t.Fatalf("retry line %d lost its free-form fields: %+v", i, l)
					}
				}
				return entities.DraftOrderResult{OK: true, CheckoutURL: "https://demo.myshopify.com/invoices/abc"}, nil
			},
		)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}, {Size: 5, Quantity: 2}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CheckoutURL != "https://demo.myshopify.com/invoices/abc" {
			t.Fatalf("unexpected checkout url: %s", res.CheckoutURL)
		}
	})

	t.Run("platform rejection is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(mixedConfig(), nil)
		platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.DraftOrderResult{OK: false, ErrKind: entities.ErrKindPlatform, Err: "rate limited"}, nil,
		)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 5, Quantity: 1}}}
		_, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if !errors.Is(err, ErrDraftOrderFailed) {
			t.Fatalf("expected ErrDraftOrderFailed, got %v", err)
		}
	})

	t.Run("retry failing too fails the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(mixedConfig(), nil)
		gomock.InOrder(
			platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(
				entities.DraftOrderResult{OK: false, ErrKind: entities.ErrKindVariantUnavailable, Err: "variant not found"}, nil,
			),
			platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(
				entities.DraftOrderResult{OK: false, ErrKind: entities.ErrKindPlatform, Err: "still broken"}, nil,
			),
		)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 5, Quantity: 1}}}
		_, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if !errors.Is(err, ErrDraftOrderFailed) {
			t.Fatalf("expected ErrDraftOrderFailed, got %v", err)
		}
	})

	t.Run("transport error wraps ErrDraftOrderFailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(mixedConfig(), nil)
		platform.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.DraftOrderResult{}, errors.New("connection reset"),
		)

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 5, Quantity: 1}}}
		_, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if !errors.Is(err, ErrDraftOrderFailed) {
			t.Fatalf("expected ErrDraftOrderFailed, got %v", err)
		}
	})
}

func TestCheckoutUseCase_AssembleCheckout_Images(t *testing.T) {
	t.Run("environment default fills missing image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		t.Setenv("CHECKOUT_IMAGE_15", "https://static.example.com/bucket-15.png")

		cfg := connectedConfig()
		cfg.Entries[0].Variants[0].ImageURL = ""
		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(cfg, nil)
		platform.EXPECT().BuildCartURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://demo.myshopify.com/cart/v15:1")

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LineItems[0].ImageURL == nil || *res.LineItems[0].ImageURL != "https://static.example.com/bucket-15.png" {
			t.Fatalf("expected env image, got %+v", res.LineItems[0].ImageURL)
		}
	})

	t.Run("platform lookup fills the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		cfg := connectedConfig()
		cfg.Entries[0].Variants[0].ImageURL = ""
		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(cfg, nil)
		platform.EXPECT().FetchProductImages(gomock.Any(), cfg.Connection,
			[]entities.ImageLookupLine{{Size: 15, Price: 100, Title: "Roof Sealant 15L"}},
		).Return(map[string]string{"15": "https://cdn.example.com/lookup-15.png"}, nil)
		platform.EXPECT().BuildCartURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://demo.myshopify.com/cart/v15:1")

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LineItems[0].ImageURL == nil || *res.LineItems[0].ImageURL != "https://cdn.example.com/lookup-15.png" {
			t.Fatalf("expected looked-up image, got %+v", res.LineItems[0].ImageURL)
		}
	})

	t.Run("lookup failure leaves images null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		uc := NewCheckoutUseCase(configs, platform, nil)

		cfg := connectedConfig()
		cfg.Entries[0].Variants[0].ImageURL = ""
		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(cfg, nil)
		platform.EXPECT().FetchProductImages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		platform.EXPECT().BuildCartURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://demo.myshopify.com/cart/v15:1")

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LineItems[0].ImageURL != nil {
			t.Fatalf("expected null image, got %v", *res.LineItems[0].ImageURL)
		}
	})
}

func TestCheckoutUseCase_AssembleCheckout_QuotePersistence(t *testing.T) {
	t.Run("persist failure does not fail the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		platform := mock_interfaces.NewMockICommercePlatform(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(configs, platform, quotes)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)
		platform.EXPECT().BuildCartURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://demo.myshopify.com/cart/v15:1")
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))

		input := entities.CheckoutInput{Counts: []entities.SizeCount{{Size: 15, Quantity: 1}}}
		res, err := uc.AssembleCheckout(context.Background(), "owner-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CheckoutURL == "" {
			t.Fatalf("expected checkout url despite persist failure")
		}
	})
}

func TestCheckoutUseCase_BreakdownForArea(t *testing.T) {
	t.Run("invalid owner id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil)
		_, err := uc.BreakdownForArea(context.Background(), "", 100)
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("invalid area", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil)
		_, err := uc.BreakdownForArea(context.Background(), "owner-1", 0)
		if !errors.Is(err, ErrInvalidArea) {
			t.Fatalf("expected ErrInvalidArea, got %v", err)
		}
	})

	t.Run("catalog empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		uc := NewCheckoutUseCase(configs, nil, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(entities.WidgetConfig{}, nil)

		_, err := uc.BreakdownForArea(context.Background(), "owner-1", 100)
		if !errors.Is(err, ErrCatalogEmpty) {
			t.Fatalf("expected ErrCatalogEmpty, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configs := mock_interfaces.NewMockIWidgetConfigProvider(ctrl)
		uc := NewCheckoutUseCase(configs, nil, nil)

		configs.EXPECT().GetByOwnerID(gomock.Any(), "owner-1").Return(connectedConfig(), nil)

		b, err := uc.BreakdownForArea(context.Background(), " owner-1 ", 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.SealantLiters != 22.5 {
			t.Fatalf("expected 22.5 sealant liters, got %v", b.SealantLiters)
		}
		if len(b.LineItems) == 0 {
			t.Fatalf("expected line items")
		}
	})
}
