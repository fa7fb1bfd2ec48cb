package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
)

// DB is the subset of *sql.DB the SQL store needs, mirroring sqlcode's
// dbintf.go so callers can pass a *sql.Tx-bound wrapper in tests.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	Driver() driver.Driver
}

var _ DB = sqlDB{}

// sqlDB adapts a *sql.DB to DB.
type sqlDB struct{ *sql.DB }

// Wrap adapts a *sql.DB for use as a SnapshotStore backing store.
func Wrap(db *sql.DB) DB { return sqlDB{db} }

// SQL is a SnapshotStore backed by a fir_snapshots table, generalized over
// PostgreSQL (via pgx's stdlib driver) and SQL Server (via go-mssqldb) the
// way sqlcode's dbops.go branches Exists/Drop on dbc.Driver()'s concrete
// type.
type SQL struct {
	DB DB
}

// NewSQL returns a SnapshotStore backed by db. The fir_snapshots table must
// already exist; see CreateTableSQL.
func NewSQL(db DB) *SQL {
	return &SQL{DB: db}
}

func (s *SQL) isPostgres() bool {
	_, ok := s.DB.Driver().(*stdlib.Driver)
	return ok
}

func (s *SQL) isSQLServer() bool {
	_, ok := s.DB.Driver().(*mssql.Driver)
	return ok
}

// CreateTableSQL returns the dialect-appropriate DDL for the snapshot
// table. Callers run this once during setup; the store itself never
// creates schema implicitly.
func (s *SQL) CreateTableSQL() string {
	if s.isSQLServer() {
		return `create table fir_snapshots (
	session_id uniqueidentifier not null,
	doc_path nvarchar(4000) not null,
	byte_offset bigint not null,
	state varbinary(max) not null,
	constraint pk_fir_snapshots primary key (session_id, doc_path)
)`
	}
	return `create table fir_snapshots (
	session_id uuid not null,
	doc_path text not null,
	byte_offset bigint not null,
	state bytea not null,
	primary key (session_id, doc_path)
)`
}

func (s *SQL) Save(ctx context.Context, snap Snapshot) error {
	switch {
	case s.isSQLServer():
		_, err := s.DB.ExecContext(ctx, `
merge fir_snapshots as target
using (select @p1 as session_id, @p2 as doc_path, @p3 as byte_offset, @p4 as state) as src
on target.session_id = src.session_id and target.doc_path = src.doc_path
when matched then update set byte_offset = src.byte_offset, state = src.state
when not matched then insert (session_id, doc_path, byte_offset, state)
	values (src.session_id, src.doc_path, src.byte_offset, src.state);`,
			snap.Key.Session, snap.Key.Path, snap.ByteOffset, snap.State)
		return err
	case s.isPostgres():
		_, err := s.DB.ExecContext(ctx, `
insert into fir_snapshots (session_id, doc_path, byte_offset, state)
values ($1, $2, $3, $4)
on conflict (session_id, doc_path) do update
	set byte_offset = excluded.byte_offset, state = excluded.state;`,
			snap.Key.Session, snap.Key.Path, snap.ByteOffset, snap.State)
		return err
	default:
		return errors.New("store: unsupported sql driver")
	}
}

func (s *SQL) Load(ctx context.Context, key Key) (Snapshot, bool, error) {
	qs, arg := s.placeholders(`select byte_offset, state from fir_snapshots where session_id = %s and doc_path = %s`)
	row := s.DB.QueryRowContext(ctx, qs, arg(key.Session, key.Path)...)

	var snap Snapshot
	snap.Key = key
	err := row.Scan(&snap.ByteOffset, &snap.State)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *SQL) List(ctx context.Context, session uuid.UUID) ([]Key, error) {
	qs, arg := s.placeholders(`select doc_path from fir_snapshots where session_id = %s`)
	rows, err := s.DB.QueryContext(ctx, qs, arg(session)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []Key
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		keys = append(keys, Key{Session: session, Path: path})
	}
	return keys, rows.Err()
}

func (s *SQL) Delete(ctx context.Context, key Key) error {
	qs, arg := s.placeholders(`delete from fir_snapshots where session_id = %s and doc_path = %s`)
	_, err := s.DB.ExecContext(ctx, qs, arg(key.Session, key.Path)...)
	return err
}

// placeholders renders a query template's %s verbs as the dialect's
// positional placeholder syntax ($1, $2, ... for postgres; @p1, @p2, ...
// for mssql) and returns a function building the matching argument list.
func (s *SQL) placeholders(tmpl string) (string, func(args ...interface{}) []interface{}) {
	count := strings.Count(tmpl, "%s")
	ph := make([]interface{}, count)
	for i := 0; i < count; i++ {
		if s.isSQLServer() {
			ph[i] = fmt.Sprintf("@p%d", i+1)
		} else {
			ph[i] = fmt.Sprintf("$%d", i+1)
		}
	}
	return fmt.Sprintf(tmpl, ph...), func(args ...interface{}) []interface{} { return args }
}
