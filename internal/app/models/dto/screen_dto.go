package dto

import (
	"github.com/yigit/campuserp/internal/app/auth"
	"github.com/yigit/campuserp/internal/app/models"
)

// Row actions offered by the screens
const (
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionView     = "view"
	ActionPay      = "pay"
	ActionReceipt  = "receipt"
	ActionAllocate = "allocate"
	ActionIssue    = "issue"
	ActionReturn   = "return"
	ActionResults  = "results"
)

// Screen is the frame shared by every authenticated screen
type Screen struct {
	Title      string            `json:"title"`
	User       *models.Identity  `json:"user"`
	Navigation []auth.NavItem    `json:"navigation"`
	Caps       auth.Capabilities `json:"capabilities"`
}

// QuickStat is a progress bar of the dashboard
type QuickStat struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// DashboardScreen is the view model of the dashboard
type DashboardScreen struct {
	Screen
	Welcome    string            `json:"welcome"`
	Stats      []models.StatCard `json:"stats"`
	Activities []models.Activity `json:"recentActivities"`
	QuickStats []QuickStat       `json:"quickStats"`
}

// ApplicationRow is an admission application with its allowed actions
type ApplicationRow struct {
	models.Application
	Actions []string `json:"actions"`
}

// AdmissionsQuery filters the admissions screen. Page and Size are parsed
// leniently by helpers.ParsePaginationParams.
type AdmissionsQuery struct {
	Search string `form:"q"`
	Status string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
	Page   int    `form:"-"`
	Size   int    `form:"-"`
}

// AdmissionsScreen is the view model of the admissions screen
type AdmissionsScreen struct {
	Screen
	Search       string           `json:"search"`
	Status       string           `json:"status"`
	Applications []ApplicationRow `json:"applications"`
	Pagination   PaginationInfo   `json:"pagination"`
	CanCreate    bool             `json:"canCreate"`
}

// FeeRow is a fee record with its allowed actions
type FeeRow struct {
	models.FeeRecord
	Actions []string `json:"actions"`
}

// FeeTotals sums the displayed fee records
type FeeTotals struct {
	Total     int64 `json:"total"`
	Collected int64 `json:"collected"`
	Pending   int64 `json:"pending"`
}

// FeesScreen is the view model of the fees screen
type FeesScreen struct {
	Screen
	Records   []FeeRow  `json:"records"`
	Totals    FeeTotals `json:"totals"`
	CanCreate bool      `json:"canCreate"`
}

// HostelQuery selects the hostel block
type HostelQuery struct {
	Block string `form:"block"`
}

// RoomRow is a hostel room with its occupancy label and actions
type RoomRow struct {
	models.Room
	Label   string   `json:"occupancyLabel"`
	Actions []string `json:"actions"`
}

// HostelStats summarises the rooms of a block
type HostelStats struct {
	TotalRooms     int `json:"totalRooms"`
	OccupiedRooms  int `json:"occupiedRooms"`
	AvailableRooms int `json:"availableRooms"`
	OccupancyRate  int `json:"occupancyRate"`
}

// HostelScreen is the view model of the hostel screen
type HostelScreen struct {
	Screen
	Block  string      `json:"block"`
	Blocks []string    `json:"blocks"`
	Rooms  []RoomRow   `json:"rooms"`
	Stats  HostelStats `json:"stats"`
}

// LibraryQuery filters the library screen
type LibraryQuery struct {
	Search   string `form:"q"`
	Category string `form:"category"`
}

// BookRow is a library record with its allowed actions
type BookRow struct {
	models.Book
	Actions []string `json:"actions"`
}

// LibraryStats summarises the library
type LibraryStats struct {
	TotalBooks     int `json:"totalBooks"`
	AvailableBooks int `json:"availableBooks"`
	IssuedBooks    int `json:"issuedBooks"`
	OverdueBooks   int `json:"overdueBooks"`
}

// LibraryScreen is the view model of the library screen
type LibraryScreen struct {
	Screen
	Search           string       `json:"search"`
	Category         string       `json:"category"`
	Categories       []string     `json:"categories"`
	Books            []BookRow    `json:"books"`
	Stats            LibraryStats `json:"stats"`
	ShowIssueColumns bool         `json:"showIssueColumns"`
	CanCreate        bool         `json:"canCreate"`
}

// ExamRow is an exam with its allowed actions
type ExamRow struct {
	models.Exam
	Actions []string `json:"actions"`
}

// ExamStats summarises the examinations screen
type ExamStats struct {
	TotalExams    int `json:"totalExams"`
	Scheduled     int `json:"scheduled"`
	Completed     int `json:"completed"`
	AvgAttendance int `json:"avgAttendance"`
}

// ExaminationsScreen is the view model of the examinations screen
type ExaminationsScreen struct {
	Screen
	Upcoming       []models.Exam       `json:"upcoming"`
	Exams          []ExamRow           `json:"exams"`
	Results        []models.ExamResult `json:"results"`
	Stats          ExamStats           `json:"stats"`
	ShowEnrollment bool                `json:"showEnrollment"`
	CanCreate      bool                `json:"canCreate"`
}

// ProfileField is a labelled value of the profile screen
type ProfileField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProfileScreen is the view model of the profile screen
type ProfileScreen struct {
	Screen
	Initials string         `json:"initials"`
	Fields   []ProfileField `json:"fields"`
}

// SettingsScreen is the view model of the settings screen
type SettingsScreen struct {
	Screen
	Settings models.Settings `json:"settings"`
}
