package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type stubCatwayService struct {
	catway  *domain.Catway
	catways []*domain.Catway
	err     error

	lastCreate ports.CreateCatwayInput
	lastUpdate ports.UpdateCatwayInput
	deletedID  string
}

func (s *stubCatwayService) Create(_ context.Context, input ports.CreateCatwayInput) (*domain.Catway, error) {
	s.lastCreate = input
	return s.catway, s.err
}

func (s *stubCatwayService) Get(_ context.Context, id string) (*domain.Catway, error) {
	return s.catway, s.err
}

func (s *stubCatwayService) List(_ context.Context) ([]*domain.Catway, error) {
	return s.catways, s.err
}

func (s *stubCatwayService) Update(_ context.Context, id string, input ports.UpdateCatwayInput) (*domain.Catway, error) {
	s.lastUpdate = input
	return s.catway, s.err
}

func (s *stubCatwayService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCatwayHandler_Create_JSON(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubCatwayService{catway: &domain.Catway{
		ID: "c1", CatwayNumber: 3, Type: domain.CatwayLong, CatwayState: "good condition", BoatName: "Orion",
	}}
	h := NewCatwayHandler(svc)

	c, rec := newJSONContext(e, http.MethodPost, "/catways",
		`{"catway_number":3,"type":"long","catway_state":"good condition","boat_name":"Orion"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCreate.CatwayNumber != 3 || svc.lastCreate.Type != "long" {
		t.Fatalf("input not forwarded: %+v", svc.lastCreate)
	}

	var got domain.Catway
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestCatwayHandler_Create_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewCatwayHandler(&stubCatwayService{})

	// Missing catway_number and a type outside the enum.
	c, _ := newJSONContext(e, http.MethodPost, "/catways",
		`{"type":"medium","catway_state":"good condition","boat_name":"Orion"}`)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCatwayHandler_Create_FormRedirects(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubCatwayService{catway: &domain.Catway{ID: "c1"}}
	h := NewCatwayHandler(svc)

	form := url.Values{
		"catway_number": {"3"},
		"type":          {"long"},
		"catway_state":  {"good condition"},
		"boat_name":     {"Orion"},
	}
	req := httptest.NewRequest(http.MethodPost, "/catways", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/catways" {
		t.Fatalf("expected redirect to /catways, got %q", loc)
	}
}

func TestCatwayHandler_List_JSON(t *testing.T) {
	e := echo.New()
	svc := &stubCatwayService{catways: []*domain.Catway{
		{ID: "c1", CatwayNumber: 1},
		{ID: "c2", CatwayNumber: 2},
	}}
	h := NewCatwayHandler(svc)

	c, rec := newJSONContext(e, http.MethodGet, "/catways", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var got []*domain.Catway
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 catways, got %d", len(got))
	}
}

func TestCatwayHandler_Delete(t *testing.T) {
	e := echo.New()
	svc := &stubCatwayService{}
	h := NewCatwayHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/catways/:id")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.deletedID != "c1" {
		t.Fatalf("wrong id forwarded: %q", svc.deletedID)
	}
}

func TestCatwayHandler_ServiceErrorPropagates(t *testing.T) {
	e := echo.New()
	h := NewCatwayHandler(&stubCatwayService{err: domain.ErrCatwayNotFound})

	c, _ := newJSONContext(e, http.MethodGet, "/catways/missing", "")
	if err := h.Get(c); err != domain.ErrCatwayNotFound {
		t.Fatalf("expected ErrCatwayNotFound, got %v", err)
	}
}
