package websites

const (
	queryCreate = `
		INSERT INTO websites (
			user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
	`

	queryList = `
		SELECT id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
		FROM websites
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCountByUser = `
		SELECT COUNT(*)
		FROM websites
		WHERE user_id = $1
	`

	querySearch = `
		SELECT id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
		FROM websites
		WHERE user_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	queryCountSearch = `
		SELECT COUNT(*)
		FROM websites
		WHERE user_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
	`

	queryGet = `
		SELECT id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
		FROM websites
		WHERE id = $1
	`

	queryGetByShareableLink = `
		SELECT id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
		FROM websites
		WHERE shareable_link = $1 AND is_public = true
	`

	queryUpdate = `
		UPDATE websites
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    html_code = COALESCE($3, html_code),
		    css_code = COALESCE($4, css_code),
		    js_code = COALESCE($5, js_code),
		    thumbnail = COALESCE($6, thumbnail),
		    is_public = COALESCE($7, is_public),
		    updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING id, user_id, title, description, prompt, html_code, css_code, js_code, thumbnail, shareable_link, is_public, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM websites
		WHERE id = $1 AND user_id = $2
	`
)
