package store

// Country queries
const (
	queryGetCountryByName = `SELECT id FROM countries WHERE name = ?`

	queryInsertCountry = `INSERT INTO countries (name) VALUES (?) RETURNING id`
)

// University queries
const (
	queryUniversityExists = `
		SELECT id FROM universities
		WHERE name = ? AND country_id = ? AND COALESCE(state_province, '') = COALESCE(?, '')`

	queryInsertUniversity = `
		INSERT INTO universities (name, country_id, alpha_two_code, state_province, domains, web_pages)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`

	queryCountUniversities = `SELECT COUNT(*) FROM universities`

	queryCountByCountry = `
		SELECT c.name, COUNT(u.id) AS total
		FROM countries c
		LEFT JOIN universities u ON u.country_id = c.id
		GROUP BY c.id, c.name
		ORDER BY total DESC, c.name`
)
