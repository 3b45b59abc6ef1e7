package domain

// Seeded role reference data. Ids are stable across deployments.
const (
	RoleIDAdmin   int64 = 1
	RoleIDRegular int64 = 2

	RoleAdmin   = "Admin"
	RoleRegular = "Regular"
)

type Role struct {
	ID   int64
	Name string
}
