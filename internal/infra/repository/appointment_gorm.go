package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

// NewAppointmentGormRepository accepts a nil db: the repository then
// reports ErrStorageUnavailable on every call instead of panicking.
func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Schema
// --------------------------------------------------

func (r *AppointmentGormRepository) Initialize(ctx context.Context) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	m := db.Migrator()
	if m.HasTable(&models.Appointment{}) {
		return nil
	}

	if err := m.CreateTable(&models.Appointment{}); err != nil {
		return unavailable("create appointments table", err)
	}
	return nil
}

// --------------------------------------------------
// Commands
// --------------------------------------------------

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.ID != 0 {
		return fmt.Errorf("insert appointment: id %d already assigned", ap.ID)
	}

	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	if err := db.Create(ap).Error; err != nil {
		return unavailable("insert appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	if err := db.
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error; err != nil {
		return unavailable("delete appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	fields domain.Fields,
) error {

	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	if err := db.
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields.Columns()).Error; err != nil {
		return unavailable("update appointment", err)
	}
	return nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ScanAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	apps := []models.Appointment{}
	if err := db.
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, unavailable("list appointments", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ScanFiltered(
	ctx context.Context,
	field domain.Field,
	substring string,
) ([]models.Appointment, error) {

	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}

	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	apps := []models.Appointment{}
	if err := db.
		Where(containsExpr(db.Dialector.Name(), field.Column()), substring).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, unavailable("search appointments by "+field.Column(), err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var ap models.Appointment
	err = db.Where("id = ?", id).First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, unavailable("find appointment", err)
	}
	return &ap, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *AppointmentGormRepository) conn(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, fmt.Errorf("%w: no open connection", domain.ErrStorageUnavailable)
	}
	return r.db.WithContext(ctx), nil
}

// containsExpr is a case-sensitive substring test. LIKE is avoided: SQLite
// folds ASCII case and both engines treat % and _ as wildcards.
func containsExpr(dialect, column string) string {
	if dialect == "postgres" {
		return fmt.Sprintf("strpos(%s, ?) > 0", column)
	}
	return fmt.Sprintf("instr(%s, ?) > 0", column)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
