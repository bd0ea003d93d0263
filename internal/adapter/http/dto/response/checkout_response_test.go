package response

import (
	"testing"

	"roofquote/internal/domain/entities"
)

func TestFromCheckoutResult(t *testing.T) {
	img := "https://cdn.example.com/15.png"
	r := entities.CheckoutResult{
		CheckoutURL: "https://demo.myshopify.com/cart/v15:2",
		LineItems: []entities.PreviewLine{
			{ImageURL: &img, Title: "Roof Sealant 15L", VariantLabel: "15L", Quantity: 2, UnitPrice: "100.00", LineTotal: "200.00"},
			{Title: "Brush Kit", VariantLabel: "1", Quantity: 1, UnitPrice: "9.99", LineTotal: "9.99"},
		},
		Summary: entities.CheckoutSummary{
			ItemCount: 3, Subtotal: 209.99, Total: 188.99, Currency: "USD",
			DiscountPercent: 10, DiscountAmount: 21,
		},
	}

	res := FromCheckoutResult(r)
	if !res.OK {
		t.Fatalf("expected ok=true")
	}
	if res.CheckoutURL != "https://demo.myshopify.com/cart/v15:2" {
		t.Fatalf("unexpected url: %s", res.CheckoutURL)
	}
	if len(res.LineItems) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.LineItems))
	}
	if res.LineItems[0].ImageURL == nil || *res.LineItems[0].ImageURL != img {
		t.Fatalf("unexpected image: %+v", res.LineItems[0].ImageURL)
	}
	if res.LineItems[1].ImageURL != nil {
		t.Fatalf("expected null image on second line")
	}
	if res.Summary.ItemCount != 3 || res.Summary.Total != 188.99 || res.Summary.DiscountPercent != 10 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}

func TestFromBreakdown(t *testing.T) {
	b := entities.Breakdown{
		LineItems: []entities.LineItem{
			{Role: entities.RoleSealant, Size: 15, Label: "Roof Sealant 15L", Quantity: 1},
			{Role: entities.RoleApplicator, Size: 1, Label: "Brush Kit", Quantity: 1},
		},
		SealantLiters:  22.5,
		TotalItemCount: 2,
	}

	res := FromBreakdown(b)
	if len(res.LineItems) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.LineItems))
	}
	if res.LineItems[0].Role != "sealant" || res.LineItems[1].Role != "applicator" {
		t.Fatalf("unexpected roles: %+v", res.LineItems)
	}
	if res.SealantLiters != 22.5 || res.TotalItemCount != 2 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}
