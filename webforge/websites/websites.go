package websites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWebsiteNotFound = errors.New("website not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req CreateWebsiteRequest,
) (*Website, error) {
	var website Website

	// opaque public identifier for the share URL
	shareableLink := uuid.NewString()

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Title,
		req.Description,
		req.Prompt,
		req.HTMLCode,
		req.CSSCode,
		req.JSCode,
		req.Thumbnail,
		shareableLink,
		req.IsPublic,
	).Scan(
		&website.ID,
		&website.UserID,
		&website.Title,
		&website.Description,
		&website.Prompt,
		&website.HTMLCode,
		&website.CSSCode,
		&website.JSCode,
		&website.Thumbnail,
		&website.ShareableLink,
		&website.IsPublic,
		&website.CreatedAt,
		&website.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &website, nil
}

func (r *Repository) List(ctx context.Context, userID string, limit, offset int) ([]Website, int, error) {
	// get total count first
	var total int
	if err := r.db.QueryRow(ctx, queryCountByUser, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	websites, err := scanWebsites(rows)
	if err != nil {
		return nil, 0, err
	}

	return websites, total, nil
}

// Search matches the query against titles and descriptions, newest first.
func (r *Repository) Search(ctx context.Context, userID, query string, limit, offset int) ([]Website, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountSearch, userID, query).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, querySearch, userID, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	websites, err := scanWebsites(rows)
	if err != nil {
		return nil, 0, err
	}

	return websites, total, nil
}

// Get fetches a website by ID without ownership filtering; access control
// (owner or public) is the handler's concern.
func (r *Repository) Get(ctx context.Context, websiteID string) (*Website, error) {
	var website Website

	err := r.db.QueryRow(ctx, queryGet, websiteID).Scan(
		&website.ID,
		&website.UserID,
		&website.Title,
		&website.Description,
		&website.Prompt,
		&website.HTMLCode,
		&website.CSSCode,
		&website.JSCode,
		&website.Thumbnail,
		&website.ShareableLink,
		&website.IsPublic,
		&website.CreatedAt,
		&website.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &website, nil
}

// GetByShareableLink fetches a public website by its share identifier.
func (r *Repository) GetByShareableLink(ctx context.Context, link string) (*Website, error) {
	var website Website

	err := r.db.QueryRow(ctx, queryGetByShareableLink, link).Scan(
		&website.ID,
		&website.UserID,
		&website.Title,
		&website.Description,
		&website.Prompt,
		&website.HTMLCode,
		&website.CSSCode,
		&website.JSCode,
		&website.Thumbnail,
		&website.ShareableLink,
		&website.IsPublic,
		&website.CreatedAt,
		&website.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &website, nil
}

func (r *Repository) Update(
	ctx context.Context,
	websiteID, userID string,
	req UpdateWebsiteRequest,
) (*Website, error) {
	var website Website

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Title,
		req.Description,
		req.HTMLCode,
		req.CSSCode,
		req.JSCode,
		req.Thumbnail,
		req.IsPublic,
		websiteID,
		userID,
	).Scan(
		&website.ID,
		&website.UserID,
		&website.Title,
		&website.Description,
		&website.Prompt,
		&website.HTMLCode,
		&website.CSSCode,
		&website.JSCode,
		&website.Thumbnail,
		&website.ShareableLink,
		&website.IsPublic,
		&website.CreatedAt,
		&website.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &website, nil
}

func (r *Repository) Delete(ctx context.Context, websiteID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, websiteID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWebsiteNotFound
	}

	return nil
}

// rows is satisfied by pgx.Rows; declared locally to keep scanning in one place
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanWebsites(rows rowScanner) ([]Website, error) {
	var websites []Website

	for rows.Next() {
		var w Website

		err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Title,
			&w.Description,
			&w.Prompt,
			&w.HTMLCode,
			&w.CSSCode,
			&w.JSCode,
			&w.Thumbnail,
			&w.ShareableLink,
			&w.IsPublic,
			&w.CreatedAt,
			&w.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		websites = append(websites, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return websites, nil
}
