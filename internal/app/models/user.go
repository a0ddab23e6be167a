package models

// Identity is the profile of a directory entry, and of the logged-in user once
// a session is authenticated
type Identity struct {
	ID         string `json:"id" yaml:"id" db:"id" example:"1"`                                   // Directory identifier
	Name       string `json:"name" yaml:"name" db:"name" example:"Alex Johnson"`                  // Display name
	Email      string `json:"email" yaml:"email" db:"email" example:"alex@student.edu"`           // Contact email, used as login
	Role       Role   `json:"role" yaml:"role" db:"role" example:"student"`                       // Portal role
	Avatar     string `json:"avatar,omitempty" yaml:"avatar,omitempty" db:"avatar"`               // Optional avatar URL
	Department string `json:"department,omitempty" yaml:"department,omitempty" db:"department"`   // Department (all roles)
	Branch     string `json:"branch,omitempty" yaml:"branch,omitempty" db:"branch" example:"CSE"` // Branch code
	Year       string `json:"year,omitempty" yaml:"year,omitempty" db:"year" example:"3rd Year"`  // Study year (students)
	RollNumber string `json:"rollNumber,omitempty" yaml:"rollNumber,omitempty" db:"roll_number"`  // Roll number (students)
}

// Clone returns a copy that shares no memory with i
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// DemoIdentities are the built-in directory entries used when no directory is
// configured
func DemoIdentities() []Identity {
	return []Identity{
		{
			ID:         "1",
			Name:       "Alex Johnson",
			Email:      "alex@student.edu",
			Role:       RoleStudent,
			Department: "Computer Science",
			Branch:     "CSE",
			Year:       "3rd Year",
			RollNumber: "CS2021001",
		},
		{
			ID:         "2",
			Name:       "Dr. Sarah Wilson",
			Email:      "sarah@staff.edu",
			Role:       RoleStaff,
			Department: "Computer Science",
			Branch:     "CSE",
		},
		{
			ID:         "3",
			Name:       "Michael Admin",
			Email:      "admin@college.edu",
			Role:       RoleAdmin,
			Department: "Administration",
		},
	}
}
