package entities

import (
	"context"
	"fmt"
	"time"

	"clinic-records/internal/session"

	"golang.org/x/sync/errgroup"
)

// Kind identifica una colección del Source.
type Kind string

const (
	KindPatients    Kind = "patients"
	KindDoctors     Kind = "doctors"
	KindMedications Kind = "medications"
	KindVisits      Kind = "visits"
	KindExpenses    Kind = "expenses"
)

var allKinds = []Kind{KindPatients, KindDoctors, KindMedications, KindVisits, KindExpenses}

func (k Kind) valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// FetchObserver recibe la duración y el resultado de cada fetch (métricas/logs).
type FetchObserver func(kind Kind, took time.Duration, err error)

type Loader struct {
	src     Source
	observe FetchObserver
}

func NewLoader(src Source, observe FetchObserver) *Loader {
	return &Loader{src: src, observe: observe}
}

// Load trae en paralelo las colecciones pedidas (todas si kinds está vacío) y
// arma un Snapshot nuevo. Las no pedidas quedan nil. Falla con el primer error
// de fetch; no hay reintentos.
func (l *Loader) Load(ctx context.Context, s session.Session, kinds ...Kind) (*Snapshot, error) {
	if l == nil || l.src == nil {
		return nil, fmt.Errorf("entities: nil source")
	}
	if len(kinds) == 0 {
		kinds = allKinds
	}
	for _, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("%w: unknown collection %q", ErrInvalidInput, k)
		}
	}

	var (
		patients []Patient
		doctors  []Doctor
		meds     []Medication
		visits   []Visit
		expenses []Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, k := range kinds {
		switch k {
		case KindPatients:
			g.Go(func() (err error) {
				patients, err = fetch(gctx, l, k, func(ctx context.Context) ([]Patient, error) { return l.src.Patients(ctx, s) })
				return err
			})
		case KindDoctors:
			dl, ok := l.src.(DoctorLister)
			if !ok {
				continue
			}
			g.Go(func() (err error) {
				doctors, err = fetch(gctx, l, k, func(ctx context.Context) ([]Doctor, error) { return dl.Doctors(ctx, s) })
				return err
			})
		case KindMedications:
			g.Go(func() (err error) {
				meds, err = fetch(gctx, l, k, func(ctx context.Context) ([]Medication, error) { return l.src.Medications(ctx, s) })
				return err
			})
		case KindVisits:
			g.Go(func() (err error) {
				visits, err = fetch(gctx, l, k, func(ctx context.Context) ([]Visit, error) { return l.src.Visits(ctx, s) })
				return err
			})
		case KindExpenses:
			g.Go(func() (err error) {
				expenses, err = fetch(gctx, l, k, func(ctx context.Context) ([]Expense, error) { return l.src.Expenses(ctx, s) })
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewSnapshot(patients, doctors, meds, visits, expenses), nil
}

func fetch[T any](ctx context.Context, l *Loader, k Kind, fn func(context.Context) ([]T, error)) ([]T, error) {
	start := time.Now()
	out, err := fn(ctx)
	if l.observe != nil {
		l.observe(k, time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", k, err)
	}
	if out == nil {
		// cargada y vacía: se distingue de "no cargada"
		out = make([]T, 0)
	}
	return out, nil
}
