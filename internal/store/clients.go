package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/inovacc/clientrec/internal/model"
)

const clientColumns = `id, name, email, phone, company, address, city, country, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (model.Client, error) {
	var (
		c                                      model.Client
		phone, company, address, city, country sql.NullString
	)

	if err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &company, &address, &city, &country, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return model.Client{}, err
	}

	c.Phone = derefString(phone)
	c.Company = derefString(company)
	c.Address = derefString(address)
	c.City = derefString(city)
	c.Country = derefString(country)

	return c, nil
}

// CreateClient inserts a client and returns its id.
func (s *Store) CreateClient(ctx context.Context, in model.NewClient) (int64, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return 0, fmt.Errorf("create client: name and email: %w", ErrMissingField)
	}

	now := s.timestamp()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (name, email, phone, company, address, city, country, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Email,
		nullString(in.Phone), nullString(in.Company), nullString(in.Address),
		nullString(in.City), nullString(in.Country),
		now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("create client: %w", mapError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}

	s.log.Debug("client created", "client_id", id)

	return id, nil
}

// GetClient returns the client with id or ErrNotFound.
func (s *Store) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, mapError(err))
	}

	return &c, nil
}

// ListClients returns every client, newest first.
func (s *Store) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.queryClients(ctx, "list clients",
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC`)
}

// SearchClients returns the clients whose name, email or company contains
// term, ignoring case. An empty term lists everything.
func (s *Store) SearchClients(ctx context.Context, term string) ([]model.Client, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListClients(ctx)
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	return s.queryClients(ctx, "search clients", `
		SELECT `+clientColumns+` FROM clients
		WHERE lower(name) LIKE ? ESCAPE '\'
		   OR lower(email) LIKE ? ESCAPE '\'
		   OR lower(coalesce(company, '')) LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, id DESC`,
		pattern, pattern, pattern)
}

func (s *Store) queryClients(ctx context.Context, op, query string, args ...any) ([]model.Client, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer func() { _ = rows.Close() }()

	clients := make([]model.Client, 0)

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return clients, nil
}

// UpdateClient applies the non-nil fields of upd. It returns false when upd
// is empty or no client has that id.
func (s *Store) UpdateClient(ctx context.Context, id int64, upd model.ClientUpdate) (bool, error) {
	if upd.IsEmpty() {
		return false, nil
	}

	if (upd.Name != nil && strings.TrimSpace(*upd.Name) == "") ||
		(upd.Email != nil && strings.TrimSpace(*upd.Email) == "") {
		return false, fmt.Errorf("update client %d: name and email: %w", id, ErrMissingField)
	}

	fields := []struct {
		column   string
		value    *string
		required bool
	}{
		{"name", upd.Name, true},
		{"email", upd.Email, true},
		{"phone", upd.Phone, false},
		{"company", upd.Company, false},
		{"address", upd.Address, false},
		{"city", upd.City, false},
		{"country", upd.Country, false},
	}

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)

	for _, f := range fields {
		if f.value == nil {
			continue
		}

		sets = append(sets, f.column+" = ?")

		if f.required {
			args = append(args, *f.value)
		} else {
			args = append(args, nullString(*f.value))
		}
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, s.timestamp(), id)

	res, err := s.db.ExecContext(ctx, `UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return false, fmt.Errorf("update client %d: %w", id, mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update client %d: %w", id, err)
	}

	if n > 0 {
		s.log.Debug("client updated", "client_id", id, "columns", len(sets)-1)
	}

	return n > 0, nil
}

// DeleteClient removes a client. A client that still owns reports is kept
// and ErrClientHasReports is returned.
func (s *Store) DeleteClient(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var reports int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM reports WHERE client_id = ?`, id).Scan(&reports); err != nil {
			return err
		}

		if reports > 0 {
			return ErrClientHasReports
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}

		deleted = n > 0

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClientHasReports) {
			return false, fmt.Errorf("delete client %d: %w", id, err)
		}

		return false, fmt.Errorf("delete client %d: %w", id, mapError(err))
	}

	if deleted {
		s.log.Debug("client deleted", "client_id", id)
	}

	return deleted, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
