package entities

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clinic-records/internal/ports/auth"
	"clinic-records/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	calls map[Kind]int

	patients []Patient
	visits   []Visit
	fail     map[Kind]error
}

func (f *fakeSource) hit(k Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[Kind]int{}
	}
	f.calls[k]++
	return f.fail[k]
}

func (f *fakeSource) Patients(ctx context.Context, s session.Session) ([]Patient, error) {
	if err := f.hit(KindPatients); err != nil {
		return nil, err
	}
	return f.patients, nil
}

func (f *fakeSource) Medications(ctx context.Context, s session.Session) ([]Medication, error) {
	if err := f.hit(KindMedications); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeSource) Visits(ctx context.Context, s session.Session) ([]Visit, error) {
	if err := f.hit(KindVisits); err != nil {
		return nil, err
	}
	return f.visits, nil
}

func (f *fakeSource) Expenses(ctx context.Context, s session.Session) ([]Expense, error) {
	if err := f.hit(KindExpenses); err != nil {
		return nil, err
	}
	return []Expense{}, nil
}

type fakeSourceWithDoctors struct {
	*fakeSource
	doctors []Doctor
}

func (f fakeSourceWithDoctors) Doctors(ctx context.Context, s session.Session) ([]Doctor, error) {
	if err := f.hit(KindDoctors); err != nil {
		return nil, err
	}
	return f.doctors, nil
}

func testSession() session.Session {
	return session.New("tok", auth.Claims{UserID: 1, Role: auth.RoleDoctor})
}

func TestLoader_LoadsOnlyRequestedKinds(t *testing.T) {
	src := &fakeSource{
		visits: []Visit{{ID: 1, PatientID: 2, Date: time.Now()}},
	}
	l := NewLoader(src, nil)

	snap, err := l.Load(context.Background(), testSession(), KindVisits, KindExpenses)
	require.NoError(t, err)

	assert.Len(t, snap.Visits, 1)
	assert.NotNil(t, snap.Expenses)
	assert.Nil(t, snap.Patients, "not requested stays nil")
	assert.Nil(t, snap.Medications)
	assert.Equal(t, 0, src.calls[KindPatients])
	assert.Equal(t, 1, src.calls[KindVisits])
}

func TestLoader_AllKindsAndNilBecomesEmpty(t *testing.T) {
	src := fakeSourceWithDoctors{
		fakeSource: &fakeSource{patients: []Patient{{ID: 2, Name: "Ana"}}},
		doctors:    []Doctor{{ID: 1, Name: "Dra. Silva"}},
	}

	var mu sync.Mutex
	observed := map[Kind]bool{}
	l := NewLoader(src, func(k Kind, took time.Duration, err error) {
		mu.Lock()
		defer mu.Unlock()
		observed[k] = true
	})

	snap, err := l.Load(context.Background(), testSession())
	require.NoError(t, err)

	assert.NotNil(t, snap.Medications, "loaded empty is not nil")
	assert.Empty(t, snap.Medications)
	name, ok := snap.Index().DoctorName(ptr(int64(1)), nil)
	assert.True(t, ok)
	assert.Equal(t, "Dra. Silva", name)
	assert.Len(t, observed, 5)
}

func TestLoader_SkipsDoctorsWhenSourceCannotList(t *testing.T) {
	src := &fakeSource{}
	snap, err := NewLoader(src, nil).Load(context.Background(), testSession(), KindDoctors, KindPatients)
	require.NoError(t, err)
	assert.Nil(t, snap.Doctors)
	assert.NotNil(t, snap.Patients)
}

func TestLoader_FetchErrorIsReturnedWrapped(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{fail: map[Kind]error{KindExpenses: boom}}

	snap, err := NewLoader(src, nil).Load(context.Background(), testSession())
	assert.Nil(t, snap)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch expenses")
}

func TestLoader_UnknownKind(t *testing.T) {
	src := &fakeSource{}
	_, err := NewLoader(src, nil).Load(context.Background(), testSession(), KindVisits, Kind("invoices"))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, src.calls[KindVisits], "nothing fetched on bad request")
}

func TestLoader_NilSource(t *testing.T) {
	_, err := NewLoader(nil, nil).Load(context.Background(), testSession())
	assert.Error(t, err)
}
