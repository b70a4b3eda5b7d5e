package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"clinic-records/internal/adapters/auth/jwtverifier"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/domain/records"
	"clinic-records/internal/domain/stats"
	"clinic-records/internal/ports/auth"
	"clinic-records/internal/router"
	"clinic-records/internal/session"

	"github.com/spf13/cobra"
)

type queryFlags struct {
	token string
	user  int64
	role  string
}

func (f *queryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "bearer token (default $CLINIC_TOKEN)")
	cmd.Flags().Int64Var(&f.user, "user", 0, "modo dev: ID de usuario de la sesión")
	cmd.Flags().StringVar(&f.role, "role", string(auth.RoleDoctor), "modo dev: doctor|patient")
}

func recordCmd(a *app) *cobra.Command {
	var f queryFlags
	cmd := &cobra.Command{
		Use:   "record <patientID>",
		Short: "Imprime el prontuario consolidado de un paciente (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, err := parsePatientID(args[0])
			if err != nil {
				return err
			}
			return a.withSession(cmd.Context(), f, func(ctx context.Context, holder *session.Holder, loader *entities.Loader) error {
				sess, err := holder.Current()
				if err != nil {
					return err
				}
				rec, err := records.NewService(loader, a.log).Get(ctx, sess, patientID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), records.ToRecordResponse(rec))
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func statsCmd(a *app) *cobra.Command {
	var f queryFlags
	var granularity string
	cmd := &cobra.Command{
		Use:   "stats <patientID>",
		Short: "Imprime las estadísticas de gasto de un paciente (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, err := parsePatientID(args[0])
			if err != nil {
				return err
			}
			gran, ok := stats.ParseGranularity(granularity)
			if !ok {
				return fmt.Errorf("granularity must be day or month, got %q", granularity)
			}
			return a.withSession(cmd.Context(), f, func(ctx context.Context, holder *session.Holder, loader *entities.Loader) error {
				sess, err := holder.Current()
				if err != nil {
					return err
				}
				st, err := stats.NewService(loader, a.log).ForPatient(ctx, sess, patientID, stats.Options{Granularity: gran})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats.ToResponse(st))
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&granularity, "granularity", string(stats.GranularityDay), "day|month")
	return cmd
}

// tokenCmd firma un token de prueba con JWT_SECRET (AUTH_MODE=jwt).
func tokenCmd(a *app) *cobra.Command {
	var (
		user int64
		role string
		name string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT de desarrollo firmado con JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := jwtverifier.New(a.cfg.JWTSecret)
			if err != nil {
				return err
			}
			tok, err := v.Sign(auth.Claims{UserID: user, Name: name, Role: auth.Role(role)}, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().Int64Var(&user, "user", 1, "ID de usuario (sub)")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleDoctor), "doctor|patient")
	cmd.Flags().StringVar(&name, "name", "", "nombre para mostrar")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "vigencia del token")
	return cmd
}

// withSession arma la sesión del CLI en un Holder y la limpia si la fuente
// rechaza las credenciales.
func (a *app) withSession(
	ctx context.Context,
	f queryFlags,
	run func(ctx context.Context, holder *session.Holder, loader *entities.Loader) error,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	token := strings.TrimSpace(f.token)
	if token == "" {
		token = strings.TrimSpace(os.Getenv("CLINIC_TOKEN"))
	}

	claims, err := a.resolveClaims(ctx, token, f)
	if err != nil {
		return err
	}

	holder := &session.Holder{}
	holder.Load(session.New(token, claims))
	defer holder.Clear()

	src, closeSrc, err := a.buildSource(ctx)
	if err != nil {
		return err
	}
	defer closeSrc()

	err = run(ctx, holder, router.NewLoader(src))
	if errors.Is(err, entities.ErrSourceUnauthorized) {
		holder.Clear()
		a.log.Warn("session cleared: credentials rejected", map[string]any{"error": err})
	}
	return err
}

func (a *app) resolveClaims(ctx context.Context, token string, f queryFlags) (auth.Claims, error) {
	verifier, err := a.buildVerifier()
	if err != nil {
		return auth.Claims{}, err
	}
	if verifier != nil {
		if token == "" {
			return auth.Claims{}, errors.New("token required: use --token or CLINIC_TOKEN")
		}
		return verifier.Verify(ctx, token)
	}

	// Modo dev
	if f.user <= 0 {
		return auth.Claims{}, errors.New("dev mode requires --user")
	}
	role := auth.Role(strings.ToLower(strings.TrimSpace(f.role)))
	if role != auth.RoleDoctor && role != auth.RolePatient {
		return auth.Claims{}, fmt.Errorf("role must be doctor or patient, got %q", f.role)
	}
	return auth.Claims{UserID: f.user, Role: role}, nil
}

func parsePatientID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("patient id must be an integer: %q", s)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
