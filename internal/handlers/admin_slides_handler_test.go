package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type fakeSlideAdminService struct {
	deleteCalls int
	listCalls   int
}

func (f *fakeSlideAdminService) List(ctx context.Context) ([]*types.HeroSlide, error) {
	f.listCalls++
	return nil, nil
}

func (f *fakeSlideAdminService) Save(ctx context.Context, slide *types.HeroSlide, filename string, file io.Reader) ([]*types.HeroSlide, error) {
	return nil, nil
}

func (f *fakeSlideAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.HeroSlide, error) {
	f.deleteCalls++
	return nil, nil
}

func newSlideTestRouter(t *testing.T, svc *fakeSlideAdminService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	h := NewAdminSlideHandler(log, svc)
	r := gin.New()
	r.DELETE("/api/admin/slides/:id", h.Delete)
	return r
}

func TestAdminSlideDeleteRequiresConfirm(t *testing.T) {
	svc := &fakeSlideAdminService{}
	r := newSlideTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/slides/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}
	if svc.deleteCalls != 0 {
		t.Fatalf("delete reached service without confirmation")
	}
}

func TestAdminSlideDeleteWithConfirm(t *testing.T) {
	svc := &fakeSlideAdminService{}
	r := newSlideTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/slides/"+uuid.NewString()+"?confirm=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with confirm, got %d", w.Code)
	}
	if svc.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", svc.deleteCalls)
	}
}

func TestAdminSlideDeleteRejectsBadID(t *testing.T) {
	svc := &fakeSlideAdminService{}
	r := newSlideTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/slides/not-a-uuid?confirm=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
	if svc.deleteCalls != 0 {
		t.Fatalf("delete reached service with malformed id")
	}
}
