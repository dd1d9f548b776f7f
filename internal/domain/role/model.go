package role

// Role is a fixed category a candidate applies under.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UnknownName is the fallback label for unrecognized role references.
const UnknownName = "Unknown"

// Catalog is the fixed, immutable list of club roles.
// Referenced by id from candidate registrations.
var Catalog = []Role{
	{ID: 1, Name: "Design"},
	{ID: 2, Name: "Development"},
	{ID: 3, Name: "Media"},
	{ID: 4, Name: "Marketing"},
	{ID: 5, Name: "Event"},
}

// ByID looks up a catalog role by id.
// POST: Returns the role and true, or a zero Role and false
func ByID(id int) (Role, bool) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// NameByID resolves a role id to its catalog name.
// POST: Returns UnknownName for ids not in the catalog
func NameByID(id int) string {
	if r, ok := ByID(id); ok {
		return r.Name
	}
	return UnknownName
}
