package visit

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oculareg/oculareg/internal/platform/errs"
	"github.com/oculareg/oculareg/pkg/civil"
)

// -- Mock Repository --

// mockRepo enforces referential integrity against a configured set of
// patient ids, mirroring the foreign key on the visits table.
type mockRepo struct {
	visits     map[int64]*Visit
	patientIDs map[int64]bool
	nextID     int64
}

func newMockRepo(patientIDs ...int64) *mockRepo {
	m := &mockRepo{
		visits:     make(map[int64]*Visit),
		patientIDs: make(map[int64]bool),
		nextID:     1,
	}
	for _, id := range patientIDs {
		m.patientIDs[id] = true
	}
	return m
}

func (m *mockRepo) Create(_ context.Context, v *Visit) error {
	if !m.patientIDs[v.PatientID] {
		return &errs.ReferentialError{Table: "visits", Msg: "referenced record does not exist"}
	}
	v.ID = m.nextID
	m.nextID++
	v.CreatedAt = time.Now()
	m.visits[v.ID] = v
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Visit, error) {
	v, ok := m.visits[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return v, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64) ([]*Visit, error) {
	var result []*Visit
	for _, v := range m.visits {
		if v.PatientID == patientID {
			result = append(result, v)
		}
	}
	return result, nil
}

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

// -- Tests --

func TestService_CreateVisit(t *testing.T) {
	svc := NewService(newMockRepo(1))

	v := &Visit{
		PatientID:  1,
		VisitDate:  mustDate(t, "2024-01-10"),
		BCVA:       65.0,
		Injections: 3,
		IRF:        true,
	}
	if err := svc.CreateVisit(context.Background(), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID == 0 {
		t.Error("expected id to be assigned")
	}
}

func TestService_CreateVisit_MissingPatient(t *testing.T) {
	svc := NewService(newMockRepo(1))

	v := &Visit{PatientID: 999, VisitDate: mustDate(t, "2024-01-10")}
	err := svc.CreateVisit(context.Background(), v)
	if !errs.IsReferential(err) {
		t.Errorf("expected ReferentialError, got %v", err)
	}
	if v.ID != 0 {
		t.Error("no row should be created on referential failure")
	}
}

func TestService_CreateVisit_Invalid(t *testing.T) {
	svc := NewService(newMockRepo(1))

	cases := []struct {
		name string
		v    *Visit
	}{
		{"missing patient_id", &Visit{VisitDate: mustDate(t, "2024-01-10")}},
		{"missing visit_date", &Visit{PatientID: 1}},
		{"negative injections", &Visit{PatientID: 1, VisitDate: mustDate(t, "2024-01-10"), Injections: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.CreateVisit(context.Background(), tc.v); !errs.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestService_ListVisitsByPatient(t *testing.T) {
	svc := NewService(newMockRepo(1, 2))

	svc.CreateVisit(context.Background(), &Visit{PatientID: 1, VisitDate: mustDate(t, "2024-01-10"), BCVA: 65})
	svc.CreateVisit(context.Background(), &Visit{PatientID: 2, VisitDate: mustDate(t, "2024-02-01"), BCVA: 70})

	visits, err := svc.ListVisitsByPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(visits))
	}
	if visits[0].PatientID != 1 {
		t.Errorf("patient_id = %d, want 1", visits[0].PatientID)
	}
}
