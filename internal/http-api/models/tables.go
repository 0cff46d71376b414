package models

// AdminUsersTable is shared by every tenant; rows are discriminated by the
// project_id column instead of a prefixed table name.
const AdminUsersTable = "game_admins_users"

// Tables holds the tenant-scoped table and view names resolved from the
// configured project prefix. The prefix is validated by config before it
// ever reaches this type, and names are resolved exactly once at startup;
// query code receives a Tables value and never concatenates the prefix
// itself.
type Tables struct {
	Games       string
	Comments    string
	Ratings     string
	RatingStats string
}

// ResolveTables maps a validated project prefix to its table names.
func ResolveTables(prefix string) Tables {
	return Tables{
		Games:       prefix + "_games",
		Comments:    prefix + "_comments",
		Ratings:     prefix + "_ratings",
		RatingStats: prefix + "_rating_stats",
	}
}
