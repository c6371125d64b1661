package users

const (
	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, prompts_used_today, prompts_reset_date, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, name, avatar_url, prompts_used_today, prompts_reset_date, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, provider, provider_id, name, avatar_url, prompts_used_today, prompts_reset_date, created_at, updated_at
	`

	// compare-and-increment: the WHERE clause refuses the spend once the
	// day's limit is hit, so two concurrent requests can never both take
	// the last credit. A reset-date on a different calendar day counts as
	// a fresh day and restarts the counter at 1.
	queryConsumePromptCredit = `
		UPDATE users
		SET prompts_used_today = CASE
				WHEN prompts_reset_date::date = $2::date THEN prompts_used_today + 1
				ELSE 1
			END,
			prompts_reset_date = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND (prompts_reset_date::date <> $2::date OR prompts_used_today < $3)
		RETURNING prompts_used_today
	`
)
