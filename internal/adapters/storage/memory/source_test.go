package memory

import (
	"context"
	"testing"
	"time"

	"clinic-records/internal/domain/entities"
	"clinic-records/internal/ports/auth"
	"clinic-records/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ScopesByRole(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := DevSeed(now)
	seed.Visits = append(seed.Visits, entities.Visit{ID: 99, PatientID: 2, Date: now})
	seed.Patients = append(seed.Patients, entities.Patient{ID: 3, Name: "Outro"})
	src := NewSource(seed)
	ctx := context.Background()

	doctor := session.New("", auth.Claims{UserID: 1, Role: auth.RoleDoctor})
	patient := session.New("", auth.Claims{UserID: 2, Role: auth.RolePatient})
	stranger := session.New("", auth.Claims{UserID: 1, Role: auth.RoleDoctor})
	stranger.User.UserID = 50

	visits, err := src.Visits(ctx, doctor)
	require.NoError(t, err)
	assert.Len(t, visits, 3, "visit without doctor is hidden from doctors")

	visits, err = src.Visits(ctx, patient)
	require.NoError(t, err)
	assert.Len(t, visits, 4)

	visits, err = src.Visits(ctx, stranger)
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)

	patients, err := src.Patients(ctx, patient)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, int64(2), patients[0].ID)

	patients, err = src.Patients(ctx, doctor)
	require.NoError(t, err)
	assert.Len(t, patients, 2)

	expenses, err := src.Expenses(ctx, session.Session{})
	require.NoError(t, err)
	assert.Empty(t, expenses, "anonymous sees nothing")
}

func TestSource_Replace(t *testing.T) {
	src := NewSource(Seed{})
	doctor := session.New("", auth.Claims{UserID: 1, Role: auth.RoleDoctor})

	meds, err := src.Medications(context.Background(), doctor)
	require.NoError(t, err)
	assert.Empty(t, meds)

	src.Replace(DevSeed(time.Now()))
	meds, err = src.Medications(context.Background(), doctor)
	require.NoError(t, err)
	assert.Len(t, meds, 2)

	docs, err := src.Doctors(context.Background(), doctor)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Médico Teste", docs[0].Name)
}

func TestDevSeed_IsValid(t *testing.T) {
	seed := DevSeed(time.Now())
	snap := entities.NewSnapshot(seed.Patients, seed.Doctors, seed.Medications, seed.Visits, seed.Expenses)
	assert.NoError(t, snap.Validate())
}
