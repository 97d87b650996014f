package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.NewDB(&config.Config{
		DBDriver:    config.DriverSQLite,
		StoragePath: filepath.Join(t.TempDir(), "appointments.sqlite"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { dbpkg.Close(db) })
	return db
}

func newTestRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()

	repo := NewAppointmentGormRepository(openTestDB(t))
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return repo
}

func dupont() domain.Fields {
	return domain.Fields{
		Date:               "2024-05-01",
		Time:               "09:30",
		PatientName:        "Jean Dupont",
		Gender:             "Homme",
		Age:                40,
		ConsultationReason: "MALADE",
		DoctorName:         "Dr. Martin",
		DoctorSpecialty:    "GENERALISTE",
	}
}

func insert(t *testing.T, repo *AppointmentGormRepository, f domain.Fields) *models.Appointment {
	t.Helper()

	ap := f.Record()
	if err := repo.Insert(context.Background(), ap); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return ap
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	insert(t, repo, dupont())

	if err := repo.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}

	apps, err := repo.ScanAll(ctx)
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("Initialize must not touch existing rows, got %d rows", len(apps))
	}
}

func TestInsertAndScanAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	ap := insert(t, repo, dupont())
	if ap.ID != 1 {
		t.Fatalf("first id = %d, want 1", ap.ID)
	}

	apps, err := repo.ScanAll(ctx)
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("got %d appointments, want 1", len(apps))
	}

	want := *dupont().Record()
	want.ID = 1
	if apps[0] != want {
		t.Errorf("stored %+v, want %+v", apps[0], want)
	}
}

func TestInsertRejectsAssignedID(t *testing.T) {
	repo := newTestRepo(t)

	ap := dupont().Record()
	ap.ID = 7
	if err := repo.Insert(context.Background(), ap); err == nil {
		t.Fatal("expected an error for a preassigned id")
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := insert(t, repo, dupont())
	second := insert(t, repo, dupont())
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	if err := repo.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	third := insert(t, repo, dupont())
	if third.ID <= second.ID {
		t.Errorf("id %d reused after deleting %d", third.ID, second.ID)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	ap := insert(t, repo, dupont())

	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, ap.ID); err != nil {
			t.Fatalf("Delete #%d: %v", i+1, err)
		}
	}

	apps, err := repo.ScanAll(ctx)
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("got %d appointments after delete", len(apps))
	}
}

func TestUpdateOverwritesEveryField(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	ap := insert(t, repo, dupont())

	next := domain.Fields{
		Date:               "2024-06-12",
		Time:               "14:00",
		PatientName:        "Marie Curie",
		Gender:             "Femme",
		Age:                0,
		ConsultationReason: "",
		DoctorName:         "Dr. Roux",
		DoctorSpecialty:    "GENICOLOGUE",
	}
	if err := repo.Update(ctx, ap.ID, next); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(ctx, ap.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	want := *next.Record()
	want.ID = ap.ID
	if *got != want {
		t.Errorf("after update %+v, want %+v", *got, want)
	}
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	insert(t, repo, dupont())

	if err := repo.Update(ctx, 99, domain.Fields{PatientName: "Nobody"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	apps, err := repo.ScanAll(ctx)
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if len(apps) != 1 || apps[0].PatientName != "Jean Dupont" {
		t.Errorf("unexpected rows after no-op update: %+v", apps)
	}
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestScanFiltered(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	names := []string{"Jean Dupont", "Anne Dupontel", "Paul Martin", "jean dupont", "50% Off_Name"}
	for _, n := range names {
		f := dupont()
		f.PatientName = n
		insert(t, repo, f)
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"Dupont", []string{"Jean Dupont", "Anne Dupontel"}},
		{"Jean", []string{"Jean Dupont"}},
		{"tin", []string{"Paul Martin"}},
		{"%", []string{"50% Off_Name"}},
		{"_", []string{"50% Off_Name"}},
		{"Zola", nil},
		{"", names},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			apps, err := repo.ScanFiltered(ctx, domain.FieldPatientName, tc.query)
			if err != nil {
				t.Fatalf("ScanFiltered: %v", err)
			}
			if len(apps) != len(tc.want) {
				t.Fatalf("got %d matches, want %d: %+v", len(apps), len(tc.want), apps)
			}
			for i, ap := range apps {
				if ap.PatientName != tc.want[i] {
					t.Errorf("match %d = %q, want %q", i, ap.PatientName, tc.want[i])
				}
			}
		})
	}
}

func TestScanFilteredEmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	apps, err := repo.ScanFiltered(context.Background(), domain.FieldDoctorName, "Martin")
	if err != nil {
		t.Fatalf("ScanFiltered: %v", err)
	}
	if apps == nil || len(apps) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", apps)
	}
}

func TestScanFilteredUnknownField(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ScanFiltered(context.Background(), domain.Field("age"), "4")
	if !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
}

func TestWithoutConnection(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentGormRepository(nil)

	checks := map[string]error{
		"Initialize": repo.Initialize(ctx),
		"Insert":     repo.Insert(ctx, dupont().Record()),
		"Delete":     repo.Delete(ctx, 1),
		"Update":     repo.Update(ctx, 1, dupont()),
	}
	_, checks["ScanAll"] = repo.ScanAll(ctx)
	_, checks["ScanFiltered"] = repo.ScanFiltered(ctx, domain.FieldPatientName, "x")
	_, checks["FindByID"] = repo.FindByID(ctx, 1)

	for op, err := range checks {
		if !errors.Is(err, domain.ErrStorageUnavailable) {
			t.Errorf("%s: err = %v, want ErrStorageUnavailable", op, err)
		}
	}
}

func TestClosedConnectionIsReported(t *testing.T) {
	db := openTestDB(t)
	repo := NewAppointmentGormRepository(db)
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	dbpkg.Close(db)

	_, err := repo.ScanAll(context.Background())
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestContainsExpr(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{"sqlite", "instr(patient_name, ?) > 0"},
		{"postgres", "strpos(patient_name, ?) > 0"},
	}

	for _, tc := range cases {
		if got := containsExpr(tc.dialect, "patient_name"); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.dialect, got, tc.want)
		}
	}
}
