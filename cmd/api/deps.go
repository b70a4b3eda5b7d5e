package main

import (
	"context"
	"fmt"
	"time"

	"clinic-records/internal/adapters/auth/jwtverifier"
	"clinic-records/internal/adapters/auth/upstream"
	"clinic-records/internal/adapters/clinicapi"
	mem "clinic-records/internal/adapters/storage/memory"
	pg "clinic-records/internal/adapters/storage/postgres"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/platform/config"
	"clinic-records/internal/ports/auth"
)

// buildSource devuelve la fuente configurada y su close.
func (a *app) buildSource(ctx context.Context) (entities.Source, func(), error) {
	noop := func() {}

	switch a.cfg.Source {
	case config.SourceAPI:
		src, err := clinicapi.NewSource(clinicapi.Config{
			BaseURL: a.cfg.UpstreamAPIURL,
			Timeout: a.cfg.UpstreamTimeout,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("clinic api source: %w", err)
		}
		return src, noop, nil

	case config.SourcePostgres:
		db, err := pg.Open(ctx, a.cfg.DBDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres source: %w", err)
		}
		return pg.NewSource(db), func() { _ = db.Close() }, nil

	default:
		return mem.NewSource(mem.DevSeed(time.Now())), noop, nil
	}
}

// buildVerifier: nil en modo dev (headers X-Debug-*).
func (a *app) buildVerifier() (auth.AuthVerifier, error) {
	switch a.cfg.AuthMode {
	case config.AuthJWT:
		return jwtverifier.New(a.cfg.JWTSecret)
	case config.AuthUpstream:
		return upstream.NewVerifier(upstream.Config{
			BaseURL: a.cfg.UpstreamAPIURL,
			Timeout: a.cfg.UpstreamTimeout,
		})
	default:
		return nil, nil
	}
}
