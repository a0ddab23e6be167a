package services

import (
	"math"
	"strings"
	"unicode"

	"github.com/yigit/campuserp/internal/app/auth"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/repositories"
	"github.com/yigit/campuserp/internal/pkg/helpers"
)

// DefaultBlock is the hostel block shown when none is selected
const DefaultBlock = "A"

// avgAttendance is the fixed attendance figure of the examinations screen
const avgAttendance = 89

// ViewService builds the screens of an authenticated session. Every screen is
// a read-only projection of the sample records, scoped by the caller's role.
type ViewService struct {
	records *repositories.RecordsRepository
}

// NewViewService creates a new ViewService
func NewViewService(records *repositories.RecordsRepository) *ViewService {
	return &ViewService{records: records}
}

func frame(identity *models.Identity, title string) dto.Screen {
	return dto.Screen{
		Title:      title,
		User:       identity,
		Navigation: auth.NavItems(identity.Role),
		Caps:       auth.For(identity.Role),
	}
}

var dashboardStats = map[models.Role][]models.StatCard{
	models.RoleAdmin: {
		{Title: "Total Students", Value: "2,847", Change: "+12%", ChangeType: "increase"},
		{Title: "Fees Collected", Value: "₹24.5L", Change: "+8%", ChangeType: "increase"},
		{Title: "Hostel Occupancy", Value: "89%", Change: "+5%", ChangeType: "increase"},
		{Title: "Library Records", Value: "18,569", Change: "+124", ChangeType: "increase"},
	},
	models.RoleStaff: {
		{Title: "My Classes", Value: "8", Change: "Today", ChangeType: "neutral"},
		{Title: "Assignments", Value: "24", Change: "Pending", ChangeType: "neutral"},
		{Title: "Students", Value: "156", Change: "Active", ChangeType: "neutral"},
		{Title: "Office Hours", Value: "4h", Change: "Today", ChangeType: "neutral"},
	},
	models.RoleStudent: {
		{Title: "Attendance", Value: "92%", Change: "+2%", ChangeType: "increase"},
		{Title: "Pending Fees", Value: "₹15,000", Change: "Due Soon", ChangeType: "neutral"},
		{Title: "Books Issued", Value: "3", Change: "2 Due", ChangeType: "neutral"},
		{Title: "Assignments", Value: "5", Change: "Pending", ChangeType: "neutral"},
	},
}

// Dashboard builds the dashboard of identity
func (s *ViewService) Dashboard(identity *models.Identity) dto.DashboardScreen {
	return dto.DashboardScreen{
		Screen:     frame(identity, "Dashboard"),
		Welcome:    "Welcome back, " + identity.Name + "!",
		Stats:      append([]models.StatCard(nil), dashboardStats[identity.Role]...),
		Activities: s.records.Activities(),
		QuickStats: []dto.QuickStat{
			{Label: "Admissions", Percent: 75},
			{Label: "Fee Collection", Percent: 85},
			{Label: "Hostel Occupancy", Percent: 89},
		},
	}
}

// Admissions lists applications matching q on name or email and status,
// one page at a time
func (s *ViewService) Admissions(identity *models.Identity, q dto.AdmissionsQuery) dto.AdmissionsScreen {
	caps := auth.For(identity.Role)
	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := q.Status
	if status == "" {
		status = "all"
	}

	var matched []dto.ApplicationRow
	for _, app := range s.records.Applications() {
		if search != "" &&
			!strings.Contains(strings.ToLower(app.Name), search) &&
			!strings.Contains(strings.ToLower(app.Email), search) {
			continue
		}
		if status != "all" && string(app.Status) != status {
			continue
		}

		actions := []string{dto.ActionView}
		if caps.CanManageAdmissions && app.Status == models.AdmissionPending {
			actions = append(actions, dto.ActionApprove, dto.ActionReject)
		}
		matched = append(matched, dto.ApplicationRow{Application: app, Actions: actions})
	}

	page, size := helpers.NormalizePage(q.Page, q.Size)
	start, end := helpers.CalculateSliceIndices(page, size, len(matched))

	return dto.AdmissionsScreen{
		Screen:       frame(identity, "Admissions"),
		Search:       q.Search,
		Status:       status,
		Applications: append([]dto.ApplicationRow{}, matched[start:end]...),
		Pagination:   helpers.NewPaginationInfo(len(matched), page, size),
		CanCreate:    caps.CanManageAdmissions,
	}
}

// Fees lists the fee records visible to identity. Totals cover the displayed
// records only.
func (s *ViewService) Fees(identity *models.Identity) dto.FeesScreen {
	caps := auth.For(identity.Role)

	title := "Fee Management"
	if caps.ViewsOwnRecordsOnly {
		title = "My Fees"
	}

	screen := dto.FeesScreen{
		Screen:    frame(identity, title),
		Records:   []dto.FeeRow{},
		CanCreate: caps.CanManageFees,
	}

	for _, fee := range s.records.Fees() {
		if !auth.OwnedBy(identity, fee.RollNumber) {
			continue
		}

		var actions []string
		switch fee.Status {
		case models.FeePending:
			actions = []string{dto.ActionPay}
		case models.FeePaid:
			actions = []string{dto.ActionReceipt}
		default:
			actions = []string{}
		}
		screen.Records = append(screen.Records, dto.FeeRow{FeeRecord: fee, Actions: actions})

		screen.Totals.Total += fee.Amount
		if fee.Status == models.FeePaid {
			screen.Totals.Collected += fee.Amount
		} else {
			screen.Totals.Pending += fee.Amount
		}
	}
	return screen
}

// Hostel lists the rooms of a block, DefaultBlock when empty or unknown.
// Stats cover the whole hostel.
func (s *ViewService) Hostel(identity *models.Identity, q dto.HostelQuery) dto.HostelScreen {
	caps := auth.For(identity.Role)
	blocks := s.records.Blocks()

	block := strings.ToUpper(strings.TrimSpace(q.Block))
	known := false
	for _, b := range blocks {
		if b == block {
			known = true
			break
		}
	}
	if !known {
		block = DefaultBlock
	}

	title := "Hostel Management"
	if caps.ViewsOwnRecordsOnly {
		title = "Hostel Info"
	}

	screen := dto.HostelScreen{
		Screen: frame(identity, title),
		Block:  block,
		Blocks: blocks,
		Rooms:  []dto.RoomRow{},
	}

	for _, room := range s.records.Rooms() {
		screen.Stats.TotalRooms++
		if room.Occupied > 0 {
			screen.Stats.OccupiedRooms++
		}
		if room.HasVacancy() {
			screen.Stats.AvailableRooms++
		}

		if room.Block != block {
			continue
		}
		actions := []string{dto.ActionView}
		if !caps.ViewsOwnRecordsOnly && room.HasVacancy() {
			actions = append(actions, dto.ActionAllocate)
		}
		screen.Rooms = append(screen.Rooms, dto.RoomRow{Room: room, Label: room.OccupancyLabel(), Actions: actions})
	}
	if screen.Stats.TotalRooms > 0 {
		screen.Stats.OccupancyRate = int(math.Round(float64(screen.Stats.OccupiedRooms) * 100 / float64(screen.Stats.TotalRooms)))
	}
	return screen
}

// Library lists books matching q on title, author or ISBN within category
func (s *ViewService) Library(identity *models.Identity, q dto.LibraryQuery) dto.LibraryScreen {
	caps := auth.For(identity.Role)
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := q.Category
	if category == "" {
		category = "all"
	}

	title := "Library Records"
	if caps.ViewsOwnRecordsOnly {
		title = "Library"
	}

	screen := dto.LibraryScreen{
		Screen:           frame(identity, title),
		Search:           q.Search,
		Category:         category,
		Categories:       s.records.Categories(),
		Books:            []dto.BookRow{},
		ShowIssueColumns: !caps.ViewsOwnRecordsOnly,
		CanCreate:        caps.CanManageLibrary,
	}

	books := s.records.Books()
	for _, book := range books {
		screen.Stats.TotalBooks++
		if book.AvailableCopies > 0 {
			screen.Stats.AvailableBooks++
		}
		if book.Status == models.BookIssued || book.Status == models.BookOverdue {
			screen.Stats.IssuedBooks++
		}
		if book.Status == models.BookOverdue {
			screen.Stats.OverdueBooks++
		}
	}

	for _, book := range books {
		if search != "" &&
			!strings.Contains(strings.ToLower(book.Title), search) &&
			!strings.Contains(strings.ToLower(book.Author), search) &&
			!strings.Contains(book.ISBN, strings.TrimSpace(q.Search)) {
			continue
		}
		if category != "all" && book.Category != category {
			continue
		}

		actions := []string{}
		if caps.CanIssueBooks && book.AvailableCopies > 0 {
			actions = append(actions, dto.ActionIssue)
		}
		if caps.CanManageLibrary && book.Status == models.BookIssued {
			actions = append(actions, dto.ActionReturn)
		}

		if !screen.ShowIssueColumns {
			book.IssuedTo, book.IssueDate, book.DueDate = "", "", ""
		}
		screen.Books = append(screen.Books, dto.BookRow{Book: book, Actions: actions})
	}
	return screen
}

// Examinations lists the exam schedule and the results visible to identity
func (s *ViewService) Examinations(identity *models.Identity) dto.ExaminationsScreen {
	caps := auth.For(identity.Role)

	screen := dto.ExaminationsScreen{
		Screen:         frame(identity, "Examinations"),
		Upcoming:       []models.Exam{},
		Exams:          []dto.ExamRow{},
		Results:        []models.ExamResult{},
		ShowEnrollment: !caps.ViewsOwnRecordsOnly,
		CanCreate:      caps.CanManageExams,
	}

	for _, exam := range s.records.Exams() {
		screen.Stats.TotalExams++
		switch exam.Status {
		case models.ExamScheduled:
			screen.Stats.Scheduled++
			if len(screen.Upcoming) < 3 {
				screen.Upcoming = append(screen.Upcoming, exam)
			}
		case models.ExamCompleted:
			screen.Stats.Completed++
		}

		actions := []string{dto.ActionView}
		if caps.CanManageExams && exam.Status == models.ExamCompleted {
			actions = append(actions, dto.ActionResults)
		}
		if !screen.ShowEnrollment {
			exam.StudentsEnrolled = 0
		}
		screen.Exams = append(screen.Exams, dto.ExamRow{Exam: exam, Actions: actions})
	}
	screen.Stats.AvgAttendance = avgAttendance

	for _, result := range s.records.Results() {
		if auth.OwnedBy(identity, result.RollNumber) {
			screen.Results = append(screen.Results, result)
		}
	}
	return screen
}

// Profile shows identity with the fields of its role
func (s *ViewService) Profile(identity *models.Identity) dto.ProfileScreen {
	fields := []dto.ProfileField{
		{Label: "Full Name", Value: identity.Name},
		{Label: "Email", Value: identity.Email},
		{Label: "Phone", Value: "+91-9876543210"},
		{Label: "Department", Value: identity.Department},
	}

	switch identity.Role {
	case models.RoleStudent:
		fields = append(fields,
			dto.ProfileField{Label: "Roll Number", Value: identity.RollNumber},
			dto.ProfileField{Label: "Year", Value: identity.Year},
			dto.ProfileField{Label: "Branch", Value: identity.Branch},
		)
	case models.RoleStaff:
		fields = append(fields,
			dto.ProfileField{Label: "Employee ID", Value: "EMP001"},
			dto.ProfileField{Label: "Designation", Value: "Assistant Professor"},
		)
	case models.RoleAdmin:
		fields = append(fields,
			dto.ProfileField{Label: "Admin ID", Value: "ADM001"},
			dto.ProfileField{Label: "Access Level", Value: "Super Admin"},
		)
	}

	return dto.ProfileScreen{
		Screen:   frame(identity, "Profile"),
		Initials: initials(identity.Name),
		Fields:   fields,
	}
}

// Settings shows the client's preferences
func (s *ViewService) Settings(identity *models.Identity, settings models.Settings) dto.SettingsScreen {
	return dto.SettingsScreen{
		Screen:   frame(identity, "Settings"),
		Settings: settings,
	}
}

func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		if r[len(r)-1] == '.' {
			// honorifics like "Dr."
			continue
		}
		out = append(out, unicode.ToUpper(r[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
