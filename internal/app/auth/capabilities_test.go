package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/campuserp/internal/app/models"
)

func TestFor(t *testing.T) {
	admin := For(models.RoleAdmin)
	assert.True(t, admin.CanManageFees)
	assert.True(t, admin.CanManageAdmissions)
	assert.False(t, admin.ViewsOwnRecordsOnly)

	staff := For(models.RoleStaff)
	assert.False(t, staff.CanManageFees)
	assert.True(t, staff.CanManageHostel)

	student := For(models.RoleStudent)
	assert.True(t, student.ViewsOwnRecordsOnly)
	assert.True(t, student.CanIssueBooks)
	assert.False(t, student.CanManageLibrary)

	assert.Equal(t, Capabilities{}, For(models.Role("guest")))
}

func labels(items []NavItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestNavItems(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleAdmin, []string{"Dashboard", "Admissions", "Fee Management", "Library Records", "Examinations", "Profile", "Settings"}},
		{models.RoleStaff, []string{"Dashboard", "Admissions", "Hostel Management", "Library Records", "Examinations", "Profile", "Settings"}},
		{models.RoleStudent, []string{"Dashboard", "My Fees", "Hostel Info", "Library", "Examinations", "Profile", "Settings"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, labels(NavItems(tt.role)))
		})
	}
}

func TestNavItemsDoNotShareBackingArray(t *testing.T) {
	items := NavItems(models.RoleStaff)
	items[1].Label = "changed"
	assert.Equal(t, "Admissions", NavItems(models.RoleStaff)[1].Label)
}

func TestOwnedBy(t *testing.T) {
	student := &models.Identity{Role: models.RoleStudent, RollNumber: "CS2021001"}
	staff := &models.Identity{Role: models.RoleStaff}

	assert.True(t, OwnedBy(student, "CS2021001"))
	assert.False(t, OwnedBy(student, "EC2021015"))
	assert.False(t, OwnedBy(&models.Identity{Role: models.RoleStudent}, ""))
	assert.True(t, OwnedBy(staff, "EC2021015"))
	assert.False(t, OwnedBy(nil, "CS2021001"))
}
