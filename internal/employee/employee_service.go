package employee

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/events"
	"go-empdir/internal/shared/apperror"
	"go-empdir/internal/shared/contextutil"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher events.Publisher
	timeout   time.Duration
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	publisher events.Publisher,
	timeout time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &service{
		db:        db,
		repo:      repo,
		publisher: publisher,
		timeout:   timeout,
		logger:    l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {

	emp, err := buildEmployee(req.Name, req.Department, req.Salary, req.StartDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	s.publish(ctx, events.EmployeeCreated, emp.ID)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	id uint,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {

	fields, err := buildEmployee(req.Name, req.Department, req.Salary, req.StartDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	// ID tidak pernah berubah setelah di-assign
	emp.Name = fields.Name
	emp.Department = fields.Department
	emp.Salary = fields.Salary
	emp.StartDate = fields.StartDate

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}

	s.publish(ctx, events.EmployeeUpdated, emp.ID)

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}
	if affected == 0 {
		// Stale link / double submit: sengaja NOT_FOUND, bukan sukses idempoten
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		return mapStoreError(err)
	}

	s.publish(ctx, events.EmployeeDeleted, id)

	return nil
}

// buildEmployee memvalidasi field mentah dan menyusun entity.
// Semua validasi berjalan sebelum ada mutasi ke store.
func buildEmployee(name, department, salary, startDate string) (*Employee, error) {
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	salary = strings.TrimSpace(salary)
	startDate = strings.TrimSpace(startDate)

	if name == "" {
		return nil, apperror.RequiredField("Name")
	}
	if department == "" {
		return nil, apperror.RequiredField("Department")
	}

	sal := decimal.Zero
	if salary != "" {
		var err error
		sal, err = decimal.NewFromString(salary)
		if err != nil || sal.IsNegative() {
			return nil, apperror.InvalidField("Salary")
		}
	}

	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			return nil, apperror.InvalidField("Start Date")
		}
	}

	return &Employee{
		Name:       name,
		Department: department,
		Salary:     sal,
		StartDate:  startDate,
	}, nil
}

func (s *service) publish(ctx context.Context, eventType string, id uint) {
	if s.publisher == nil {
		return
	}
	log := contextutil.GetLogger(ctx, s.logger)

	// Publish best-effort setelah commit; kegagalan tidak membatalkan request
	if err := s.publisher.Publish(ctx, events.NewEmployeeEvent(eventType, id)); err != nil {
		log.Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.Uint("employee_id", id),
			zap.Error(err),
		)
	}
}

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err,
			apperror.CodeStoreUnavailable,
			"The request to the data store timed out, please try again later",
			apperror.ErrStoreUnavailable.HTTPStatus,
		)
	}

	// 1062 = ER_DUP_ENTRY
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return apperror.Wrap(err,
			apperror.CodeConflict,
			"A record with the same value already exists",
			http.StatusConflict,
		)
	}

	// Error store lainnya (koneksi putus, timeout driver) tidak pernah
	// membawa detail query ke user
	return apperror.Wrap(err,
		apperror.CodeStoreUnavailable,
		"The service is temporarily unavailable, please try again later",
		apperror.ErrStoreUnavailable.HTTPStatus,
	)
}

func mapToResponse(emp Employee) EmployeeResponse {
	salary := ""
	if !emp.Salary.IsZero() {
		salary = emp.Salary.StringFixed(2)
	}
	return EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
		Salary:     salary,
		StartDate:  emp.StartDate,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
