package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-empdir/internal/config"
	"go-empdir/internal/employee"
	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/shared/apperror"
	"go-empdir/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

type fakeFetcher struct {
	url string
	err error
}

func (f *fakeFetcher) BackgroundURL(ctx context.Context, key string) (string, error) {
	return f.url, f.err
}

func testConfig() config.Config {
	return config.Config{
		DisplayName:        "Team A",
		Slogan:             "We ship",
		BackgroundImageKey: "bg.png",
	}
}

func setupHTMLRouter(t *testing.T, h *employee.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	tmpl, err := view.Templates()
	assert.NoError(t, err)
	r.SetHTMLTemplate(tmpl)

	employee.RegisterRoutes(r, h)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Run("render tabel dengan branding", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{ID: 1, Name: "Alice", Department: "Eng"},
				}, nil
			},
		}
		h := employee.NewHandler(svc, &fakeFetcher{url: "https://store.example/bg.png"}, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Team A")
		assert.Contains(t, body, "We ship")
		assert.Contains(t, body, "Alice")
		assert.Contains(t, body, "background-image")
	})

	t.Run("object store tidak terjangkau - halaman tetap render tanpa background", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{}, nil
			},
		}
		h := employee.NewHandler(svc, &fakeFetcher{err: apperror.ErrAssetUnavailable}, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Team A")
		assert.Contains(t, body, "We ship")
		assert.NotContains(t, body, "background-image")
	})

	t.Run("store down - halaman error generik tanpa detail internal", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, apperror.Wrap(
					errors.New("dial tcp 10.0.0.5:3306: connect: connection refused"),
					apperror.CodeStoreUnavailable,
					"The service is temporarily unavailable, please try again later",
					http.StatusServiceUnavailable,
				)
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "temporarily unavailable")
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("form valid - redirect ke list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Alice", req.Name)
				return employee.EmployeeResponse{ID: 1, Name: req.Name, Department: req.Department}, nil
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := postForm(r, "/employees", url.Values{
			"name":       {"Alice"},
			"department": {"Eng"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/employees", w.Header().Get("Location"))
	})

	t.Run("name kosong - form re-render dengan pesan field, status 200", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{}, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := postForm(r, "/employees", url.Values{
			"department": {"Eng"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Name is required")
		// Input lain tetap terisi
		assert.Contains(t, body, `value="Eng"`)
	})
}

func TestEmployeeHandler_EditForm(t *testing.T) {
	t.Run("prefill dari record", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(7), id)
				return employee.EmployeeResponse{ID: 7, Name: "Bob", Department: "Sales"}, nil
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/7/edit", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="Bob"`)
		assert.Contains(t, w.Body.String(), `action="/employees/7"`)
	})

	t.Run("id tidak dikenal - 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/999/edit", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("id bukan angka - 404", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{}, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/abc/edit", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success - redirect", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(3), id)
				return employee.EmployeeResponse{ID: 3, Name: req.Name, Department: req.Department}, nil
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := postForm(r, "/employees/3", url.Values{
			"name":       {"Carol"},
			"department": {"Ops"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success - redirect", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error { return nil },
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := postForm(r, "/employees/3/delete", url.Values{})

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("stale link (sudah terhapus) - 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc, nil, testConfig())
		r := setupHTMLRouter(t, h)

		w := postForm(r, "/employees/3/delete", url.Values{})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
