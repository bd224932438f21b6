package models

// Role is the single authorization flag carried by an account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Account is a roster entry as persisted under the "users" storage key.
type Account struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            Role     `json:"role"`
	EnrolledCourses []string `json:"enrolledCourses"`
	Results         []string `json:"results"`
}

// PublicAccount is an Account without its credential secret. It is the session shape
// persisted under the "user" storage key.
type PublicAccount struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            Role     `json:"role"`
	EnrolledCourses []string `json:"enrolledCourses"`
	Results         []string `json:"results"`
}

// Public returns a redacted deep copy.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Role:            a.Role,
		EnrolledCourses: cloneIDs(a.EnrolledCourses),
		Results:         cloneIDs(a.Results),
	}
}

// Clone returns a deep copy.
func (a Account) Clone() Account {
	a.EnrolledCourses = cloneIDs(a.EnrolledCourses)
	a.Results = cloneIDs(a.Results)
	return a
}

// Clone returns a deep copy.
func (p PublicAccount) Clone() PublicAccount {
	p.EnrolledCourses = cloneIDs(p.EnrolledCourses)
	p.Results = cloneIDs(p.Results)
	return p
}

// HasCourse reports whether courseID is in the enrolled set.
func (p PublicAccount) HasCourse(courseID string) bool {
	for _, id := range p.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// HasResult reports whether resultID belongs to the account.
func (p PublicAccount) HasResult(resultID string) bool {
	for _, id := range p.Results {
		if id == resultID {
			return true
		}
	}
	return false
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
