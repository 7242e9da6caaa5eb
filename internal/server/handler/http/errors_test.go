package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinyakov/FleetKeeper/internal/models"
	handler "github.com/atinyakov/FleetKeeper/internal/server/handler/http"
	"github.com/atinyakov/FleetKeeper/internal/service"
)

// fakeShipService returns a preconfigured error from every call.
type fakeShipService struct {
	err error
}

func (f *fakeShipService) List(context.Context, *models.User, string, models.ShipStatus) ([]models.Ship, error) {
	return nil, f.err
}

func (f *fakeShipService) Get(context.Context, *models.User, string) (models.Ship, error) {
	return models.Ship{}, f.err
}

func (f *fakeShipService) Create(context.Context, *models.User, service.ShipInput) (models.Ship, error) {
	return models.Ship{}, f.err
}

func (f *fakeShipService) Update(context.Context, *models.User, string, models.ShipPatch) (models.Ship, error) {
	return models.Ship{}, f.err
}

func (f *fakeShipService) Delete(context.Context, *models.User, string) error {
	return f.err
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedSubstr string
	}{
		{"not found", &models.NotFoundError{Entity: "ship", ID: "9"}, http.StatusNotFound, "ship 9 not found"},
		{"validation", models.NewValidationError("flag", "Flag is required"), http.StatusBadRequest, "Flag is required"},
		{"forbidden", models.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unauthorized", models.ErrUnauthorized, http.StatusUnauthorized, "authentication required"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &handler.ShipHandler{Ships: &fakeShipService{err: tt.err}}
			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/ships/9", nil))

			if rec.Code != tt.expectedCode {
				t.Errorf("status = %d; want %d", rec.Code, tt.expectedCode)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Errorf("body = %q; want substring %q", rec.Body.String(), tt.expectedSubstr)
			}
		})
	}
}

func TestCreateShip_BadJSON(t *testing.T) {
	h := &handler.ShipHandler{Ships: &fakeShipService{}}
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/ships", strings.NewReader("not-a-json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "invalid body") {
		t.Errorf("body = %q; want invalid body", rec.Body.String())
	}
}
