package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"guardiant/internal/domain"
	"guardiant/internal/service"
	mock_service "guardiant/internal/service/mocks"
	"guardiant/pkg/e"
)

func f64ptr(v float64) *float64 { return &v }

func TestJurisdictionService_Resolve(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockJurisdictionResolver(ctrl)
	resolver.EXPECT().
		Resolve(34.0522, -118.2437).
		Return("California", "Los Angeles").
		Times(1)

	svc := service.NewJurisdictionService(resolver, newTestLogger(), nil)

	res, err := svc.Resolve(context.Background(), domain.JurisdictionQuery{
		Latitude:  f64ptr(34.0522),
		Longitude: f64ptr(-118.2437),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.State != "California" || res.City != "Los Angeles" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Accuracy != "approximate" {
		t.Fatalf("expected accuracy=approximate, got %q", res.Accuracy)
	}
	if res.Timestamp == "" {
		t.Fatalf("expected a timestamp")
	}
}

func TestJurisdictionService_Resolve_MissingCoordinate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mock_service.NewMockJurisdictionResolver(ctrl)
	svc := service.NewJurisdictionService(resolver, newTestLogger(), nil)

	_, err := svc.Resolve(context.Background(), domain.JurisdictionQuery{Latitude: f64ptr(34.0)})
	if !errors.Is(err, e.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
