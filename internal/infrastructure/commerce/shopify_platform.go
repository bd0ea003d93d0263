package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roofquote/internal/domain/entities"
	"roofquote/internal/usecase/interfaces"
)

const apiVersion = "2024-01"

var ErrShopNotConnected = errors.New("shop connection missing domain or access token")

// discountCodes maps the allowed discount percentages to the promotional
// codes pre-provisioned in the shop. Only the cart-link path uses codes; the
// draft-order path applies the discount amount directly.
var discountCodes = map[int]string{
	5:  "ROOFQUOTE5",
	10: "ROOFQUOTE10",
	15: "ROOFQUOTE15",
	20: "ROOFQUOTE20",
}

// variantErrorPhrases is the fixed set of platform error fragments that mean
// a line's variant is gone or wrong, i.e. the order is worth retrying with
// free-form line items. Classification happens here so the use case only
// ever sees the structured kind.
var variantErrorPhrases = []string{
	"no longer available",
	"not found",
	"could not be found",
	"unavailable",
	"variant",
	"invalid variant",
	"does not exist",
	"merchandise",
}

// ShopifyPlatform talks to the Shopify Admin REST API on behalf of a
// per-owner shop connection. The struct itself holds no credentials; every
// call receives the owner's Connection.

type ShopifyPlatform struct {
	httpClient *http.Client
	baseURL    string // test override; empty means https://{shop-domain}
}

var _ interfaces.ICommercePlatform = (*ShopifyPlatform)(nil)

func NewShopifyPlatform() *ShopifyPlatform {
	return &ShopifyPlatform{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *ShopifyPlatform) shopURL(domain, path string) string {
	if p.baseURL != "" {
		return p.baseURL + path
	}
	return "https://" + domain + path
}

// BuildCartURL assembles a direct add-to-cart permalink:
// https://{shop}/cart/{variant}:{qty},... with optional discount and note
// query parameters. Pure string work, no I/O.
func (p *ShopifyPlatform) BuildCartURL(shopDomain string, pairs []entities.CartPair, opts entities.CartURLOptions) string {
	segments := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		segments = append(segments, fmt.Sprintf("%s:%d", pair.VariantID, pair.Quantity))
	}

	query := url.Values{}
	if code, ok := discountCodes[opts.DiscountPercent]; ok {
		query.Set("discount", code)
	}
	if opts.Note != "" {
		query.Set("note", opts.Note)
	}

	u := "https://" + shopDomain + "/cart/" + strings.Join(segments, ",")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

type draftOrderLineItem struct {
	Title     string `json:"title,omitempty"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price,omitempty"`
	Custom    bool   `json:"custom,omitempty"`
}

type draftOrderAppliedDiscount struct {
	Description string `json:"description"`
	ValueType   string `json:"value_type"`
	Value       string `json:"value"`
	Amount      string `json:"amount"`
}

type draftOrderPayload struct {
	DraftOrder struct {
		LineItems       []draftOrderLineItem       `json:"line_items"`
		Note            string                     `json:"note,omitempty"`
		Tags            string                     `json:"tags,omitempty"`
		Currency        string                     `json:"currency,omitempty"`
		Email           string                     `json:"email,omitempty"`
		AppliedDiscount *draftOrderAppliedDiscount `json:"applied_discount,omitempty"`
	} `json:"draft_order"`
}

type draftOrderResponse struct {
	DraftOrder struct {
		ID         int64  `json:"id"`
		InvoiceURL string `json:"invoice_url"`
	} `json:"draft_order"`
	Errors json.RawMessage `json:"errors"`
}

// CreateDraftOrder posts a draft order and returns its invoice-style
// checkout URL. Platform rejections come back as a structured result with
// ErrKind set; only transport or decoding failures return a Go error.
func (p *ShopifyPlatform) CreateDraftOrder(ctx context.Context, conn entities.Connection, req entities.DraftOrderRequest) (entities.DraftOrderResult, error) {
	if !conn.Connected() {
		return entities.DraftOrderResult{}, ErrShopNotConnected
	}

	var payload draftOrderPayload
	for _, l := range req.LineItems {
		item := draftOrderLineItem{
			Title:    l.Title,
			Quantity: l.Quantity,
			Price:    fmt.Sprintf("%.2f", l.Price),
		}
		if l.VariantID != "" {
			item.VariantID = l.VariantID
			// Variant lines take title and price from the platform.
			item.Title = ""
			item.Price = ""
		} else {
			item.Custom = true
		}
		payload.DraftOrder.LineItems = append(payload.DraftOrder.LineItems, item)
	}
	payload.DraftOrder.Note = req.Note
	payload.DraftOrder.Tags = strings.Join(req.Tags, ", ")
	payload.DraftOrder.Currency = req.Currency
	payload.DraftOrder.Email = req.Email
	if req.DiscountPercent > 0 {
		payload.DraftOrder.AppliedDiscount = &draftOrderAppliedDiscount{
			Description: fmt.Sprintf("Widget discount %d%%", req.DiscountPercent),
			ValueType:   "percentage",
			Value:       fmt.Sprintf("%d", req.DiscountPercent),
			Amount:      fmt.Sprintf("%.2f", req.DiscountAmount),
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.DraftOrderResult{}, err
	}

	endpoint := p.shopURL(conn.ShopDomain, "/admin/api/"+apiVersion+"/draft_orders.json")
	log.Printf("[commerce][shopify] draft order create shop=%s lines=%d", conn.ShopDomain, len(req.LineItems))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.DraftOrderResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Shopify-Access-Token", conn.AccessToken)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return entities.DraftOrderResult{}, fmt.Errorf("draft order request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.DraftOrderResult{}, err
	}

	var decoded draftOrderResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return entities.DraftOrderResult{}, fmt.Errorf("draft order response decode failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(decoded.Errors) > 0 {
		msg := platformErrorMessage(decoded.Errors, resp.StatusCode)
		kind := classifyDraftOrderError(msg)
		log.Printf("[commerce][shopify] draft order rejected shop=%s status=%d kind=%s msg=%q", conn.ShopDomain, resp.StatusCode, kind, msg)
		return entities.DraftOrderResult{OK: false, ErrKind: kind, Err: msg}, nil
	}
	if decoded.DraftOrder.InvoiceURL == "" {
		log.Printf("[commerce][shopify] draft order created without invoice url shop=%s id=%d", conn.ShopDomain, decoded.DraftOrder.ID)
		return entities.DraftOrderResult{OK: false, ErrKind: entities.ErrKindPlatform, Err: "draft order created without a checkout URL"}, nil
	}

	log.Printf("[commerce][shopify] draft order created shop=%s id=%d", conn.ShopDomain, decoded.DraftOrder.ID)
	return entities.DraftOrderResult{OK: true, CheckoutURL: decoded.DraftOrder.InvoiceURL}, nil
}

func platformErrorMessage(raw json.RawMessage, status int) string {
	if len(raw) > 0 {
		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			return asString
		}
		return string(raw)
	}
	return fmt.Sprintf("commerce platform returned status %d", status)
}

func classifyDraftOrderError(msg string) entities.DraftOrderErrKind {
	lower := strings.ToLower(msg)
	for _, phrase := range variantErrorPhrases {
		if strings.Contains(lower, phrase) {
			return entities.ErrKindVariantUnavailable
		}
	}
	return entities.ErrKindPlatform
}

type productsResponse struct {
	Products []struct {
		Title  string `json:"title"`
		Images []struct {
			Src string `json:"src"`
		} `json:"images"`
		Variants []struct {
			Title string `json:"title"`
			Price string `json:"price"`
		} `json:"variants"`
	} `json:"products"`
}

// FetchProductImages looks product images up by matching the size token of
// each line's title against the shop's product titles. Best-effort: any
// failure returns the error and callers fall back to null images.
func (p *ShopifyPlatform) FetchProductImages(ctx context.Context, conn entities.Connection, lines []entities.ImageLookupLine) (map[string]string, error) {
	if !conn.Connected() {
		return nil, ErrShopNotConnected
	}
	if len(lines) == 0 {
		return map[string]string{}, nil
	}

	endpoint := p.shopURL(conn.ShopDomain, "/admin/api/"+apiVersion+"/products.json?limit=250")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-Shopify-Access-Token", conn.AccessToken)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("product image lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product image lookup returned status %d", resp.StatusCode)
	}

	var decoded productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	images := make(map[string]string, len(lines))
	for _, line := range lines {
		key := entities.SizeKey(line.Size)
		for _, product := range decoded.Products {
			if len(product.Images) == 0 {
				continue
			}
			if titleMatchesLine(product.Title, line) {
				images[key] = product.Images[0].Src
				break
			}
		}
	}
	return images, nil
}

func titleMatchesLine(productTitle string, line entities.ImageLookupLine) bool {
	title := strings.ToLower(productTitle)
	if line.Title != "" && strings.Contains(title, strings.ToLower(line.Title)) {
		return true
	}
	size := strings.ReplaceAll(entities.SizeKey(line.Size), "_", ".")
	return strings.Contains(title, size+"l") || strings.Contains(title, size+" l") ||
		strings.Contains(title, size+"m") || strings.Contains(title, size+" m")
}
