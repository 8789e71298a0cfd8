package test

import (
	"context"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/model"
)

// CommerceClientStub provides controllable behaviour for every commerce
// operation. Calls counts invocations across all operations so tests can
// assert that an action stayed offline.
type CommerceClientStub struct {
	SearchProductsFn  func(ctx context.Context, term string) ([]model.Product, error)
	ListProductsFn    func(ctx context.Context) ([]model.Product, error)
	ProductDetailFn   func(ctx context.Context, id string) (*model.Product, error)
	RecommendationsFn func(ctx context.Context) ([]model.Product, error)
	SearchShopsFn     func(ctx context.Context, term string) ([]model.Shop, error)
	ListShopsFn       func(ctx context.Context) ([]model.Shop, error)
	OrdersFn          func(ctx context.Context, token string) ([]model.Order, error)

	Calls int
}

// SearchProducts delegates to the configured function or returns nothing.
func (s *CommerceClientStub) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	s.Calls++
	if s.SearchProductsFn != nil {
		return s.SearchProductsFn(ctx, term)
	}
	return nil, nil
}

// ListProducts delegates to the configured function or returns nothing.
func (s *CommerceClientStub) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.Calls++
	if s.ListProductsFn != nil {
		return s.ListProductsFn(ctx)
	}
	return nil, nil
}

// ProductDetail delegates to the configured function or returns an empty record.
func (s *CommerceClientStub) ProductDetail(ctx context.Context, id string) (*model.Product, error) {
	s.Calls++
	if s.ProductDetailFn != nil {
		return s.ProductDetailFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

// Recommendations delegates to the configured function or returns nothing.
func (s *CommerceClientStub) Recommendations(ctx context.Context) ([]model.Product, error) {
	s.Calls++
	if s.RecommendationsFn != nil {
		return s.RecommendationsFn(ctx)
	}
	return nil, nil
}

// SearchShops delegates to the configured function or returns nothing.
func (s *CommerceClientStub) SearchShops(ctx context.Context, term string) ([]model.Shop, error) {
	s.Calls++
	if s.SearchShopsFn != nil {
		return s.SearchShopsFn(ctx, term)
	}
	return nil, nil
}

// ListShops delegates to the configured function or returns nothing.
func (s *CommerceClientStub) ListShops(ctx context.Context) ([]model.Shop, error) {
	s.Calls++
	if s.ListShopsFn != nil {
		return s.ListShopsFn(ctx)
	}
	return nil, nil
}

// Orders delegates to the configured function or returns nothing.
func (s *CommerceClientStub) Orders(ctx context.Context, token string) ([]model.Order, error) {
	s.Calls++
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token)
	}
	return nil, nil
}
