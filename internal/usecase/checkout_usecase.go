package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"roofquote/internal/domain/entities"
	"roofquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidOwnerID       = errors.New("invalid owner id")
	ErrInvalidArea          = errors.New("invalid area")
	ErrPlatformNotConnected = errors.New("commerce platform not connected")
	ErrCatalogEmpty         = errors.New("widget catalog is empty")
	ErrNoQuoteInput         = errors.New("neither area nor pack counts supplied")
	ErrTooManyCountSizes    = errors.New("explicit counts accept at most 3 sizes")
	ErrEmptyLineItems       = errors.New("no purchasable line items resolved")
	ErrDraftOrderFailed     = errors.New("draft order failed")
)

const (
	maxExplicitCountSizes = 3
	minDiscountPercent    = 1
	maxDiscountPercent    = 20
	defaultCurrency       = "USD"
)

// ICheckoutUseCase exposes the quote-to-checkout pipeline.
//
//   - AssembleCheckout: area or explicit counts -> priced line items ->
//     cart link or draft order -> normalized preview.
//   - BreakdownForArea: bill-of-materials preview only, no pricing summary,
//     no network.

type ICheckoutUseCase interface {
	AssembleCheckout(ctx context.Context, ownerID string, input entities.CheckoutInput) (entities.CheckoutResult, error)
	BreakdownForArea(ctx context.Context, ownerID string, areaM2 float64) (entities.Breakdown, error)
}

type CheckoutUseCase struct {
	configs  interfaces.IWidgetConfigProvider
	platform interfaces.ICommercePlatform
	quotes   interfaces.IQuoteRepository
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(configs interfaces.IWidgetConfigProvider, platform interfaces.ICommercePlatform, quotes interfaces.IQuoteRepository) *CheckoutUseCase {
	return &CheckoutUseCase{configs: configs, platform: platform, quotes: quotes}
}

// checkoutLine is one priced, resolvable line while the checkout is being
// assembled.
type checkoutLine struct {
	Role      entities.Role
	Size      float64
	Quantity  int
	Title     string
	UnitPrice float64
	VariantID string
	ImageURL  string
}

func (u *CheckoutUseCase) AssembleCheckout(ctx context.Context, ownerID string, input entities.CheckoutInput) (entities.CheckoutResult, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.CheckoutResult{}, ErrInvalidOwnerID
	}
	if u.configs == nil {
		return entities.CheckoutResult{}, errors.New("widget config provider not configured")
	}
	if u.platform == nil {
		return entities.CheckoutResult{}, errors.New("commerce platform not configured")
	}
	log.Printf("[checkout][usecase] assemble start owner_id=%s", ownerID)

	cfg, err := u.configs.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.CheckoutResult{}, err
	}
	if !cfg.Connection.Connected() {
		log.Printf("[checkout][usecase] platform not connected owner_id=%s", ownerID)
		return entities.CheckoutResult{}, ErrPlatformNotConnected
	}
	if len(cfg.Entries) == 0 {
		log.Printf("[checkout][usecase] catalog empty owner_id=%s", ownerID)
		return entities.CheckoutResult{}, ErrCatalogEmpty
	}

	hasArea := input.AreaM2 != nil && *input.AreaM2 > 0
	hasCounts := len(input.Counts) > 0
	if !hasArea && !hasCounts {
		return entities.CheckoutResult{}, ErrNoQuoteInput
	}
	if len(input.Counts) > maxExplicitCountSizes {
		return entities.CheckoutResult{}, ErrTooManyCountSizes
	}

	var (
		lines          []checkoutLine
		headlineLiters float64
		areaM2         float64
		note           string
	)
	if hasCounts {
		lines, headlineLiters = u.linesFromCounts(cfg, input.Counts)
		note = "RoofQuote widget order: manual pack selection"
	} else {
		areaM2 = *input.AreaM2
		tables, overrides := ResolveRoleVariants(cfg, areaM2)
		breakdown := ComputeBreakdown(areaM2, tables, overrides)
		headlineLiters = breakdown.SealantLiters
		lines = linesFromBreakdown(breakdown, tables)
		note = fmt.Sprintf("RoofQuote widget order: %.2f m2 surface", areaM2)
	}
	if len(lines) == 0 {
		log.Printf("[checkout][usecase] no purchasable lines owner_id=%s", ownerID)
		return entities.CheckoutResult{}, ErrEmptyLineItems
	}
	log.Printf("[checkout][usecase] lines resolved owner_id=%s lines=%d sealant_liters=%.2f", ownerID, len(lines), headlineLiters)

	subtotal := decimal.Zero
	itemCount := 0
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
		itemCount += l.Quantity
	}
	subtotal = subtotal.Round(2)

	// Out-of-range discounts are ignored on purpose: a caller mistake must
	// never block the checkout.
	appliedPct := 0
	discountAmount := decimal.Zero
	if input.DiscountPercent >= minDiscountPercent && input.DiscountPercent <= maxDiscountPercent {
		appliedPct = input.DiscountPercent
		discountAmount = subtotal.Mul(decimal.NewFromInt(int64(appliedPct))).Div(decimal.NewFromInt(100)).Round(2)
	} else if input.DiscountPercent != 0 {
		log.Printf("[checkout][usecase] discount %d%% outside [%d,%d]; ignored owner_id=%s", input.DiscountPercent, minDiscountPercent, maxDiscountPercent, ownerID)
	}
	total := subtotal.Sub(discountAmount).Round(2)

	currency := cfg.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	u.resolveImages(ctx, cfg.Connection, lines)

	checkoutURL, err := u.buildCheckoutURL(ctx, cfg.Connection, lines, note, currency, appliedPct, discountAmount, input.Email)
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	result := entities.CheckoutResult{
		CheckoutURL: checkoutURL,
		LineItems:   previewLines(lines),
		Summary: entities.CheckoutSummary{
			ItemCount:       itemCount,
			Subtotal:        subtotal.InexactFloat64(),
			Total:           total.InexactFloat64(),
			Currency:        currency,
			DiscountPercent: appliedPct,
			DiscountAmount:  discountAmount.InexactFloat64(),
		},
	}

	u.persistQuote(ctx, ownerID, areaM2, headlineLiters, result)
	log.Printf("[checkout][usecase] assemble success owner_id=%s items=%d total=%s %s", ownerID, itemCount, total.StringFixed(2), currency)
	return result, nil
}

// BreakdownForArea computes the bill of materials for a widget owner without
// touching the commerce platform.
func (u *CheckoutUseCase) BreakdownForArea(ctx context.Context, ownerID string, areaM2 float64) (entities.Breakdown, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Breakdown{}, ErrInvalidOwnerID
	}
	if areaM2 <= 0 {
		return entities.Breakdown{}, ErrInvalidArea
	}
	if u.configs == nil {
		return entities.Breakdown{}, errors.New("widget config provider not configured")
	}

	cfg, err := u.configs.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.Breakdown{}, err
	}
	if len(cfg.Entries) == 0 {
		return entities.Breakdown{}, ErrCatalogEmpty
	}

	tables, overrides := ResolveRoleVariants(cfg, areaM2)
	return ComputeBreakdown(areaM2, tables, overrides), nil
}

// linesFromCounts maps explicit pack counts onto the sealant role's variant
// table. Counts for sizes the catalog does not carry are skipped; zero
// counts are omitted.
func (u *CheckoutUseCase) linesFromCounts(cfg entities.WidgetConfig, counts []entities.SizeCount) ([]checkoutLine, float64) {
	tables, _ := ResolveRoleVariants(cfg, 0)
	variants := tables[entities.RoleSealant]

	sorted := append([]entities.SizeCount{}, counts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	lines := make([]checkoutLine, 0, len(sorted))
	liters := 0.0
	for _, sc := range sorted {
		if sc.Quantity <= 0 {
			continue
		}
		var match *entities.Variant
		for i := range variants {
			if variants[i].Size == sc.Size {
				match = &variants[i]
				break
			}
		}
		if match == nil {
			log.Printf("[checkout][usecase] no sealant variant for size %s; count skipped", strconv.FormatFloat(sc.Size, 'f', -1, 64))
			continue
		}
		lines = append(lines, checkoutLine{
			Role:      entities.RoleSealant,
			Size:      sc.Size,
			Quantity:  sc.Quantity,
			Title:     variantLabel(entities.RoleSealant, *match),
			UnitPrice: match.Price,
			VariantID: match.PlatformVariantID,
			ImageURL:  match.ImageURL,
		})
		liters += sc.Size * float64(sc.Quantity)
	}
	return lines, liters
}

func linesFromBreakdown(b entities.Breakdown, tables entities.RoleVariantTable) []checkoutLine {
	lines := make([]checkoutLine, 0, len(b.LineItems))
	for _, item := range b.LineItems {
		var match *entities.Variant
		for i, v := range tables[item.Role] {
			if v.Size == item.Size {
				match = &tables[item.Role][i]
				break
			}
		}
		if match == nil {
			continue
		}
		lines = append(lines, checkoutLine{
			Role:      item.Role,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Title:     item.Label,
			UnitPrice: match.Price,
			VariantID: match.PlatformVariantID,
			ImageURL:  match.ImageURL,
		})
	}
	return lines
}

// resolveImages fills missing line images: catalog image first, then the
// CHECKOUT_IMAGE_<size> environment default, then one best-effort platform
// lookup for whatever is still blank.
func (u *CheckoutUseCase) resolveImages(ctx context.Context, conn entities.Connection, lines []checkoutLine) {
	missing := make([]entities.ImageLookupLine, 0, len(lines))
	for i := range lines {
		if lines[i].ImageURL != "" {
			continue
		}
		if env := os.Getenv("CHECKOUT_IMAGE_" + entities.SizeKey(lines[i].Size)); env != "" {
			lines[i].ImageURL = env
			continue
		}
		missing = append(missing, entities.ImageLookupLine{Size: lines[i].Size, Price: lines[i].UnitPrice, Title: lines[i].Title})
	}
	if len(missing) == 0 {
		return
	}

	images, err := u.platform.FetchProductImages(ctx, conn, missing)
	if err != nil {
		log.Printf("[checkout][usecase] image lookup failed; previews keep null images err=%v", err)
		return
	}
	for i := range lines {
		if lines[i].ImageURL == "" {
			lines[i].ImageURL = images[entities.SizeKey(lines[i].Size)]
		}
	}
}

// buildCheckoutURL picks the checkout path: a deterministic cart permalink
// when every line carries a platform variant ID and the shop domain is
// known, otherwise a draft order with the single variant-omission retry.
func (u *CheckoutUseCase) buildCheckoutURL(ctx context.Context, conn entities.Connection, lines []checkoutLine, note, currency string, discountPct int, discountAmount decimal.Decimal, email string) (string, error) {
	allVariants := true
	for _, l := range lines {
		if l.VariantID == "" {
			allVariants = false
			break
		}
	}

	if allVariants && conn.ShopDomain != "" {
		pairs := make([]entities.CartPair, 0, len(lines))
		for _, l := range lines {
			pairs = append(pairs, entities.CartPair{VariantID: l.VariantID, Quantity: l.Quantity})
		}
		log.Printf("[checkout][usecase] cart-link path lines=%d", len(lines))
		return u.platform.BuildCartURL(conn.ShopDomain, pairs, entities.CartURLOptions{DiscountPercent: discountPct, Note: note}), nil
	}

	req := entities.DraftOrderRequest{
		LineItems:       draftLines(lines, false),
		Note:            note,
		Tags:            []string{"roofquote", "widget"},
		Currency:        currency,
		DiscountPercent: discountPct,
		DiscountAmount:  discountAmount.InexactFloat64(),
		Email:           email,
	}
	log.Printf("[checkout][usecase] draft-order path lines=%d", len(lines))

	res, err := u.platform.CreateDraftOrder(ctx, conn, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDraftOrderFailed, err)
	}
	if !res.OK && res.ErrKind == entities.ErrKindVariantUnavailable {
		// One retry with variant IDs stripped: the platform then creates
		// free-form line items instead of rejecting the whole order.
		log.Printf("[checkout][usecase] draft order rejected for variant availability; retrying without variant ids")
		req.LineItems = draftLines(lines, true)
		res, err = u.platform.CreateDraftOrder(ctx, conn, req)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDraftOrderFailed, err)
		}
	}
	if !res.OK || res.CheckoutURL == "" {
		msg := res.Err
		if msg == "" {
			msg = "commerce platform did not return a checkout URL"
		}
		return "", fmt.Errorf("%w: %s", ErrDraftOrderFailed, msg)
	}
	return res.CheckoutURL, nil
}

func draftLines(lines []checkoutLine, stripVariants bool) []entities.DraftOrderLine {
	out := make([]entities.DraftOrderLine, 0, len(lines))
	for _, l := range lines {
		variantID := l.VariantID
		if stripVariants {
			variantID = ""
		}
		out = append(out, entities.DraftOrderLine{
			Title:     l.Title,
			VariantID: variantID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}
	return out
}

func (u *CheckoutUseCase) persistQuote(ctx context.Context, ownerID string, areaM2, sealantLiters float64, result entities.CheckoutResult) {
	if u.quotes == nil {
		return
	}
	q := entities.Quote{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		AreaM2:        areaM2,
		SealantLiters: sealantLiters,
		ItemCount:     result.Summary.ItemCount,
		Subtotal:      result.Summary.Subtotal,
		Total:         result.Summary.Total,
		Currency:      result.Summary.Currency,
		CheckoutURL:   result.CheckoutURL,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := u.quotes.Create(ctx, q); err != nil {
		// Persistence is a convenience for the dashboard; the checkout
		// artifact is already built.
		log.Printf("[checkout][usecase] quote persist failed owner_id=%s quote_id=%s err=%v", ownerID, q.ID, err)
	}
}

var unitLabelRe = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s?(?:l|m)\b`)

var pricePrinter = message.NewPrinter(language.English)

func formatMoney(d decimal.Decimal) string {
	return pricePrinter.Sprintf("%.2f", d.InexactFloat64())
}

func formatSizeLabel(size float64, unit string) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + unit
}

// extractVariantLabel pulls a size token like "15L" or "2m" out of a title,
// falling back to a label built from the line's own size.
func extractVariantLabel(title string, size float64, unit string) string {
	if m := unitLabelRe.FindString(title); m != "" {
		return strings.ReplaceAll(m, " ", "")
	}
	return formatSizeLabel(size, unit)
}

func previewLines(lines []checkoutLine) []entities.PreviewLine {
	out := make([]entities.PreviewLine, 0, len(lines))
	for _, l := range lines {
		unit := decimal.NewFromFloat(l.UnitPrice).Round(2)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)

		var image *string
		if l.ImageURL != "" {
			img := l.ImageURL
			image = &img
		}
		out = append(out, entities.PreviewLine{
			ImageURL:     image,
			Title:        l.Title,
			VariantLabel: extractVariantLabel(l.Title, l.Size, l.Role.Unit()),
			Quantity:     l.Quantity,
			UnitPrice:    formatMoney(unit),
			LineTotal:    formatMoney(lineTotal),
		})
	}
	return out
}
