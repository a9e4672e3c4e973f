// Command promptcorrector-upload loads a header-less single column CSV or XLSX
// file of prompts into the review table as pending records
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"promptcorrector/internal/core/batch"
	"promptcorrector/internal/core/version"
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/module"
	"promptcorrector/internal/platform/config"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/store"

	uploadsvc "promptcorrector/internal/services/api/upload/service"
	recordsmod "promptcorrector/internal/services/records/module"
)

func main() {
	var (
		fFile    = flag.String("file", "", "prompts file (.csv or .xlsx, one prompt per row, no header)")
		fCreator = flag.String("creator", "", "creator code used in record ids, e.g. Mary140520250115")
		fSet     = flag.String("set", "", "set number")
		fDomain  = flag.String("domain", batch.DefaultDomain, "prompt domain")
		fName    = flag.String("name", "", "creator display name (default: -creator)")
		fPreview = flag.Bool("preview", false, "print the records instead of writing them")
		fMigrate = flag.Bool("migrate", false, "apply the schema before writing")
		fVersion = flag.Bool("version", false, "print build info and exit")
	)
	flag.Parse()

	l := logger.Get()
	ctx := context.Background()

	if *fVersion {
		_ = json.NewEncoder(os.Stdout).Encode(version.For("promptcorrector-upload"))
		return
	}

	if *fFile == "" {
		l.Fatal().Msg("-file is required")
	}
	f, err := os.Open(*fFile)
	if err != nil {
		l.Fatal().Err(err).Str("file", *fFile).Msg("open prompts file")
	}
	defer func() { _ = f.Close() }()

	rows, err := batch.Read(*fFile, f)
	if err != nil {
		l.Fatal().Err(err).Str("file", *fFile).Msg("read prompts file")
	}
	params := batch.Params{Creator: *fCreator, SetNum: *fSet, Domain: *fDomain, CreatorName: *fName}

	if *fPreview {
		prompts, err := batch.Build(rows, params)
		if err != nil {
			fail(l, err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(prompts); err != nil {
			l.Fatal().Err(err).Msg("write preview")
		}
		return
	}

	pgCfg := config.New().Prefix("SERVICE_PGSQL_")
	st, err := store.Open(ctx, store.Config{
		AppName: "promptcorrector-upload",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	recs := module.MustPortsOf[recordsmod.Ports](recordsmod.New(modkit.Deps{
		Cfg: config.New(),
		PG:  st.PG,
		Log: *l,
	})).Records

	if *fMigrate {
		if err := recs.EnsureSchema(ctx); err != nil {
			l.Fatal().Err(err).Msg("apply schema")
		}
	}

	out, err := uploadsvc.New(recs, nil).Ingest(ctx, params, rows, false)
	if err != nil {
		fail(l, err)
	}
	l.Info().Int("written", out.Written).Str("file", *fFile).Msg("upload complete")
}

// fail logs every validation problem before exiting
func fail(l *logger.Logger, err error) {
	for _, p := range perr.ProblemsOf(err) {
		l.Error().Msg(p)
	}
	l.Fatal().Err(err).Msg("upload rejected")
}
