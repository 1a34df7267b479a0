package employee

import (
	"errors"
	"net/http"
	"strconv"

	"go-empdir/internal/assets"
	"go-empdir/internal/config"
	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/shared/apperror"
	"go-empdir/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler melayani halaman HTML server-rendered untuk direktori karyawan.
type Handler struct {
	svc     Service
	fetcher assets.Fetcher // boleh nil saat object store tidak dikonfigurasi
	cfg     config.Config
	logger  *zap.Logger
}

func NewHandler(service Service, fetcher assets.Fetcher, cfg config.Config, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{svc: service, fetcher: fetcher, cfg: cfg, logger: l}
}

// branding menyusun header halaman. Kegagalan resolve background image
// tidak pernah menggagalkan render: degrade ke halaman tanpa background.
func (h *Handler) branding(c *gin.Context, withBackground bool) view.Branding {
	b := view.Branding{
		DisplayName: h.cfg.DisplayName,
		Slogan:      h.cfg.Slogan,
	}

	if !withBackground || h.fetcher == nil {
		return b
	}

	url, err := h.fetcher.BackgroundURL(c.Request.Context(), h.cfg.BackgroundImageKey)
	if err != nil {
		h.logger.Warn("background image unavailable",
			zap.String("code", apperror.CodeAssetUnavailable),
			zap.String("key", h.cfg.BackgroundImageKey),
			zap.Error(err),
		)
		return b
	}

	b.BackgroundURL = url
	return b
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "list.html", view.ListData{
		Branding:  h.branding(c, true),
		Employees: toRows(resp),
	})
}

func (h *Handler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", view.FormData{
		Branding: h.branding(c, false),
		Action:   "/employees",
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rerenderForm(c, "/employees", false, formRow(0, req.Name, req.Department, req.Salary, req.StartDate), apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if isValidation(err) {
			h.rerenderForm(c, "/employees", false, formRow(0, req.Name, req.Department, req.Salary, req.StartDate), err)
			return
		}
		h.renderError(c, err)
		return
	}

	h.logger.Info("employee created", zap.Uint("id", resp.ID))
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "form.html", view.FormData{
		Branding: h.branding(c, false),
		Action:   "/employees/" + strconv.FormatUint(uint64(id), 10),
		IsEdit:   true,
		Employee: toRow(resp),
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}
	action := "/employees/" + strconv.FormatUint(uint64(id), 10)

	var req UpdateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rerenderForm(c, action, true, formRow(id, req.Name, req.Department, req.Salary, req.StartDate), apperror.MapValidationError(err))
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		if isValidation(err) {
			h.rerenderForm(c, action, true, formRow(id, req.Name, req.Department, req.Salary, req.StartDate), err)
			return
		}
		h.renderError(c, err)
		return
	}

	h.logger.Info("employee updated", zap.Uint("id", id))
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	h.logger.Info("employee deleted", zap.Uint("id", id))
	c.Redirect(http.StatusSeeOther, "/employees")
}

// rerenderForm menampilkan ulang form dengan pesan per-field.
// Untuk form HTML statusnya tetap 200 dengan error inline.
func (h *Handler) rerenderForm(c *gin.Context, action string, isEdit bool, row view.EmployeeRow, err error) {
	fieldErrors := map[string]string{}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Field != "" {
		fieldErrors[appErr.Field] = appErr.Message
	}

	c.HTML(http.StatusOK, "form.html", view.FormData{
		Branding: h.branding(c, false),
		Action:   action,
		IsEdit:   isEdit,
		Employee: row,
		Errors:   fieldErrors,
	})
}

// renderError menampilkan halaman error generik. Detail internal
// (query, kredensial) hanya masuk log server-side.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong."

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		message = appErr.Message
		if status >= http.StatusInternalServerError {
			message = "The service is temporarily unavailable, please try again later."
			h.logger.Error("request failed",
				zap.String("code", appErr.Code),
				zap.Error(appErr),
			)
		}
	} else {
		h.logger.Error("request failed", zap.Error(err))
	}

	c.HTML(status, "error.html", view.ErrorData{
		Branding: view.Branding{DisplayName: h.cfg.DisplayName, Slogan: h.cfg.Slogan},
		Status:   status,
		Message:  message,
	})
}

func isValidation(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeInvalidInput
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// Path dengan id rusak diperlakukan sama dengan id yang tidak ada
		return 0, employeeerrors.ErrEmployeeNotFound
	}
	return uint(id), nil
}

func toRow(resp EmployeeResponse) view.EmployeeRow {
	return view.EmployeeRow{
		ID:         resp.ID,
		Name:       resp.Name,
		Department: resp.Department,
		Salary:     resp.Salary,
		StartDate:  resp.StartDate,
	}
}

func toRows(resps []EmployeeResponse) []view.EmployeeRow {
	rows := make([]view.EmployeeRow, len(resps))
	for i, r := range resps {
		rows[i] = toRow(r)
	}
	return rows
}

func formRow(id uint, name, department, salary, startDate string) view.EmployeeRow {
	return view.EmployeeRow{
		ID:         id,
		Name:       name,
		Department: department,
		Salary:     salary,
		StartDate:  startDate,
	}
}
