// Singleton profile accessor for the SQLite store.
// Implements: prd003-content-entities R6 (profile singleton,
//             first-or-create-default).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: profileTable must implement ProfileTable.
var _ types.ProfileTable = (*profileTable)(nil)

type profileTable struct {
	backend *Backend
}

const profileColumns = "profile_id, name, title, bio, avatar, location, email, social"

// Get returns the profile, creating the default row if none exists. The
// read-or-insert runs in one transaction so two concurrent first reads
// cannot both insert; at most one row ever exists.
func (pt *profileTable) Get() (*types.Profile, error) {
	db, err := pt.backend.conn()
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning profile read: %w", err)
	}
	defer tx.Rollback()

	p, err := firstProfile(tx)
	if err == nil {
		return p, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p = types.DefaultProfile()
	id, err := insertProfile(tx, p)
	if err != nil {
		return nil, err
	}
	p.ProfileID = id

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing default profile: %w", err)
	}
	return p, nil
}

// Update replaces the stored profile, creating the row if none exists.
// Profiles are written as full documents: optional fields omitted by the
// caller are stored as absent.
func (pt *profileTable) Update(p *types.Profile) (*types.Profile, error) {
	db, err := pt.backend.conn()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	social, err := encodeField(p.Social)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning profile update: %w", err)
	}
	defer tx.Rollback()

	existing, err := firstProfile(tx)
	switch {
	case err == nil:
		_, err = tx.Exec(
			"UPDATE profile SET name = ?, title = ?, bio = ?, avatar = ?, location = ?, email = ?, social = ? WHERE profile_id = ?",
			p.Name, p.Title, p.Bio, nullableString(p.Avatar), nullableString(p.Location), nullableString(p.Email), social, existing.ProfileID,
		)
		if err != nil {
			return nil, fmt.Errorf("updating profile: %w", err)
		}
		p.ProfileID = existing.ProfileID
	case errors.Is(err, sql.ErrNoRows):
		id, err := insertProfile(tx, p)
		if err != nil {
			return nil, err
		}
		p.ProfileID = id
	default:
		return nil, fmt.Errorf("reading profile for update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing profile update: %w", err)
	}
	return p, nil
}

// firstProfile reads the singleton row inside the caller's transaction.
// Returns sql.ErrNoRows when the table is empty.
func firstProfile(tx *sql.Tx) (*types.Profile, error) {
	row := tx.QueryRow("SELECT " + profileColumns + " FROM profile ORDER BY profile_id ASC LIMIT 1")

	var p types.Profile
	var avatar, location, email, social sql.NullString
	if err := row.Scan(&p.ProfileID, &p.Name, &p.Title, &p.Bio, &avatar, &location, &email, &social); err != nil {
		return nil, err
	}
	if avatar.Valid {
		p.Avatar = &avatar.String
	}
	if location.Valid {
		p.Location = &location.String
	}
	if email.Valid {
		p.Email = &email.String
	}
	var err error
	if p.Social, err = decodeField[*types.SocialLinks](social, nil); err != nil {
		return nil, fmt.Errorf("profile %d social: %w", p.ProfileID, err)
	}
	return &p, nil
}

// insertProfile writes a profile row inside the caller's transaction.
func insertProfile(tx *sql.Tx, p *types.Profile) (int64, error) {
	social, err := encodeField(p.Social)
	if err != nil {
		return 0, err
	}
	res, err := tx.Exec(
		"INSERT INTO profile (name, title, bio, avatar, location, email, social) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.Name, p.Title, p.Bio, nullableString(p.Avatar), nullableString(p.Location), nullableString(p.Email), social,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading profile id: %w", err)
	}
	return id, nil
}
