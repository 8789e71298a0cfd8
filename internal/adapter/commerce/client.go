package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/errors"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/model"
)

// ConnectionError wraps a transport level failure (DNS, refused connection,
// interrupted body).
type ConnectionError struct {
	Cause error
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("commerce service unreachable: %v", e.Cause)
}

func (e ConnectionError) Unwrap() error { return e.Cause }

// FormatError signals a response body that does not match the expected
// JSON envelope.
type FormatError struct {
	Cause error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("unexpected commerce response format: %v", e.Cause)
}

func (e FormatError) Unwrap() error { return e.Cause }

// StatusError signals a non-200 HTTP status from the commerce API.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("commerce request failed with status %d", e.Code)
}

// Auth reports whether the status denotes a rejected or missing credential.
func (e StatusError) Auth() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// UpstreamError signals a 200 response whose envelope carried success=false.
// Message is the backend supplied explanation shown to the user.
type UpstreamError struct {
	Message string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("commerce reported failure: %s", e.Message)
}

// Client exposes the commerce API operations consumed by actions.
type Client interface {
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ProductDetail(ctx context.Context, id string) (*model.Product, error)
	Recommendations(ctx context.Context) ([]model.Product, error)
	SearchShops(ctx context.Context, term string) ([]model.Shop, error)
	ListShops(ctx context.Context) ([]model.Shop, error)
	Orders(ctx context.Context, token string) ([]model.Order, error)
}

// HTTPClient implements Client against the commerce REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a commerce client rooted at baseURL. The URL must
// be absolute; a broken root would otherwise fail every conversation turn.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse commerce url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("commerce url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// envelope mirrors the {success, data, message} wrapper every commerce
// response uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type productPayload struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"productImageURL"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

type shopPayload struct {
	Name           string  `json:"shopName"`
	Address        string  `json:"shopAddress"`
	Description    string  `json:"description"`
	BannerImageURL string  `json:"bannerImageURL"`
	OwnerName      string  `json:"ownerName"`
	AverageRating  float64 `json:"averageRating"`
	RatingCount    int     `json:"ratingCount"`
}

type orderPayload struct {
	OrderID string `json:"orderId"`
	Shop    *struct {
		ShopName string `json:"shopName"`
	} `json:"shopRingkas"`
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"orderStatus"`
	Payment    *struct {
		Method            string `json:"method"`
		Status            string `json:"status"`
		ConfirmedAt       string `json:"confirmedAt"`
		ConfirmationNotes string `json:"confirmationNotes"`
	} `json:"paymentDetails"`
	CreatedAt string `json:"createdAt"`
}

// SearchProducts queries products by name.
func (c *HTTPClient) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	query := url.Values{"searchByName": []string{term}}
	data, err := c.get(ctx, "/product", query, "")
	if err != nil {
		return nil, err
	}
	return decodeProducts(data, "products")
}

// ListProducts fetches the full product listing.
func (c *HTTPClient) ListProducts(ctx context.Context) ([]model.Product, error) {
	data, err := c.get(ctx, "/product", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeProducts(data, "products")
}

// ProductDetail fetches a single product by identifier. A 404 surfaces as
// ErrNotFound so callers can tell a vanished product from a broken server.
func (c *HTTPClient) ProductDetail(ctx context.Context, id string) (*model.Product, error) {
	data, err := c.get(ctx, "/product/"+url.PathEscape(id), nil, "")
	if err != nil {
		var statusErr StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("product %s: %w", id, domainErrors.ErrNotFound)
		}
		return nil, err
	}
	var payload productPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, FormatError{Cause: err}
	}
	product := toProduct(payload)
	return &product, nil
}

// Recommendations fetches the curated recommendation list.
func (c *HTTPClient) Recommendations(ctx context.Context) ([]model.Product, error) {
	data, err := c.get(ctx, "/product/recommendations", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeProducts(data, "recommendations")
}

// SearchShops queries shops by name.
func (c *HTTPClient) SearchShops(ctx context.Context, term string) ([]model.Shop, error) {
	query := url.Values{"searchByShopName": []string{term}}
	data, err := c.get(ctx, "/shop", query, "")
	if err != nil {
		return nil, err
	}
	return decodeShops(data)
}

// ListShops fetches the full shop listing.
func (c *HTTPClient) ListShops(ctx context.Context) ([]model.Shop, error) {
	data, err := c.get(ctx, "/shop", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeShops(data)
}

// Orders fetches the caller's orders. The bearer token is mandatory for
// this endpoint and is forwarded verbatim.
func (c *HTTPClient) Orders(ctx context.Context, token string) ([]model.Order, error) {
	if token == "" {
		return nil, domainErrors.ErrAuthRequired
	}
	data, err := c.get(ctx, "/order/all", nil, token)
	if err != nil {
		return nil, err
	}
	var payloads []orderPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, FormatError{Cause: err}
	}
	orders := make([]model.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, toOrder(p))
	}
	return orders, nil
}

// get performs one GET against the commerce API and unwraps the envelope.
func (c *HTTPClient) get(ctx context.Context, endpoint string, query url.Values, token string) (json.RawMessage, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ConnectionError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("commerce request failed",
			slog.String("path", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ConnectionError{Cause: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, FormatError{Cause: err}
	}
	if !env.Success {
		return nil, UpstreamError{Message: env.Message}
	}
	if len(env.Data) == 0 {
		return nil, FormatError{Cause: errors.New("envelope has no data field")}
	}
	return env.Data, nil
}

func decodeProducts(data json.RawMessage, field string) ([]model.Product, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, FormatError{Cause: err}
	}
	raw, ok := wrapper[field]
	if !ok {
		return nil, FormatError{Cause: fmt.Errorf("data has no %s field", field)}
	}
	var payloads []productPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil, FormatError{Cause: err}
	}
	products := make([]model.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, toProduct(p))
	}
	return products, nil
}

func decodeShops(data json.RawMessage) ([]model.Shop, error) {
	var wrapper struct {
		Shops *[]shopPayload `json:"shops"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, FormatError{Cause: err}
	}
	if wrapper.Shops == nil {
		return nil, FormatError{Cause: errors.New("data has no shops field")}
	}
	shops := make([]model.Shop, 0, len(*wrapper.Shops))
	for _, s := range *wrapper.Shops {
		shops = append(shops, toShop(s))
	}
	return shops, nil
}

func toProduct(p productPayload) model.Product {
	return model.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Description:   p.Description,
		Stock:         p.Stock,
		Category:      p.Category,
		ImageURL:      p.ImageURL,
		AverageRating: p.AverageRating,
		RatingCount:   p.RatingCount,
	}
}

func toShop(s shopPayload) model.Shop {
	return model.Shop{
		Name:           s.Name,
		Address:        s.Address,
		Description:    s.Description,
		BannerImageURL: s.BannerImageURL,
		OwnerName:      s.OwnerName,
		AverageRating:  s.AverageRating,
		RatingCount:    s.RatingCount,
	}
}

func toOrder(p orderPayload) model.Order {
	order := model.Order{
		OrderID:    p.OrderID,
		TotalPrice: p.TotalPrice,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
	if p.Shop != nil {
		order.ShopName = p.Shop.ShopName
	}
	for _, item := range p.Items {
		order.Items = append(order.Items, model.OrderItem{Name: item.Name})
	}
	if p.Payment != nil {
		order.Payment = &model.Payment{
			Method:            p.Payment.Method,
			Status:            p.Payment.Status,
			ConfirmedAt:       p.Payment.ConfirmedAt,
			ConfirmationNotes: p.Payment.ConfirmationNotes,
		}
	}
	return order
}
