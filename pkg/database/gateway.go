package database

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Mode is the persistence strategy resolved once at startup.
type Mode string

const (
	ModePrimary   Mode = "primary-db"
	ModeSecondary Mode = "secondary-db"
	ModeFlatFile  Mode = "flat-file"
)

// ErrBackendUnavailable is returned by Gateway.DB in flat-file mode. In
// that mode only the subject-name list is served; repository operations
// must report this instead of panicking upward.
var ErrBackendUnavailable = errors.New("relational backend unavailable: flat-file mode")

// Gateway is the resolved data-access handle. It is constructed exactly
// once and passed by reference everywhere; the mode never changes after
// Open returns.
type Gateway struct {
	mode     Mode
	db       *gorm.DB
	subjects *SubjectsFile
}

type Options struct {
	// PrimaryDSN is the Postgres connection string. Empty skips the
	// primary rung entirely.
	PrimaryDSN string
	SQLitePath string
	Subjects   *SubjectsFile
	// Migrate runs against a freshly probed connection. A failure counts
	// as a failed probe and descends the ladder.
	Migrate func(*gorm.DB) error
}

type opener func(dsn string) (*gorm.DB, error)

// Open walks the fallback ladder: Postgres, then local SQLite, then the
// flat subjects file. Connectivity failures are expected and never fatal.
func Open(opts Options) *Gateway {
	return open(opts, openPostgres, openSQLite)
}

func open(opts Options, primary, secondary opener) *Gateway {
	if opts.PrimaryDSN != "" {
		if db, err := probe(NormalizeDSN(opts.PrimaryDSN), primary, opts.Migrate); err == nil {
			return &Gateway{mode: ModePrimary, db: db, subjects: opts.Subjects}
		} else {
			log.Printf("[WARN] primary database unreachable, trying local fallback: %v", err)
		}
	}

	if opts.SQLitePath != "" {
		if db, err := probe(opts.SQLitePath, secondary, opts.Migrate); err == nil {
			return &Gateway{mode: ModeSecondary, db: db, subjects: opts.Subjects}
		} else {
			log.Printf("[WARN] local database unavailable, using flat-file mode: %v", err)
		}
	}

	return &Gateway{mode: ModeFlatFile, subjects: opts.Subjects}
}

func probe(dsn string, open opener, migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := open(dsn)
	if err != nil {
		return nil, err
	}
	// Trivial liveness query before committing to this rung.
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, err
	}
	if migrate != nil {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (g *Gateway) Mode() Mode {
	return g.mode
}

// DB returns the live relational handle, or ErrBackendUnavailable in
// flat-file mode.
func (g *Gateway) DB() (*gorm.DB, error) {
	if g.db == nil {
		return nil, ErrBackendUnavailable
	}
	return g.db, nil
}

func (g *Gateway) Subjects() *SubjectsFile {
	return g.subjects
}

func getLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}
	if err := configureConnectionPool(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: getLogger(),
	})
}
