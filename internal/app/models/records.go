package models

// AdmissionStatus is the review state of an application
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "pending"
	AdmissionApproved AdmissionStatus = "approved"
	AdmissionRejected AdmissionStatus = "rejected"
)

// Application is an admission application
type Application struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Course          string          `json:"course"`
	Year            string          `json:"year"`
	Status          AdmissionStatus `json:"status"`
	ApplicationDate string          `json:"applicationDate"`
}

// FeeStatus is the payment state of a fee record
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// FeeRecord is a single fee charged to a student
type FeeRecord struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	RollNumber  string    `json:"rollNumber"`
	Course      string    `json:"course"`
	FeeType     string    `json:"feeType"`
	Amount      int64     `json:"amount"`
	DueDate     string    `json:"dueDate"`
	Status      FeeStatus `json:"status"`
	PaidDate    string    `json:"paidDate,omitempty"`
}

// RoomStatus is the administrative state of a hostel room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is a hostel room
type Room struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	Block     string     `json:"block"`
	Floor     int        `json:"floor"`
	Capacity  int        `json:"capacity"`
	Occupied  int        `json:"occupied"`
	Type      string     `json:"type"`
	Amenities []string   `json:"amenities"`
	Status    RoomStatus `json:"status"`
	Residents []string   `json:"residents,omitempty"`
}

// HasVacancy reports whether the room can take another resident
func (r Room) HasVacancy() bool {
	return r.Occupied < r.Capacity && r.Status == RoomAvailable
}

// OccupancyLabel summarises the room for display
func (r Room) OccupancyLabel() string {
	switch {
	case r.Status == RoomMaintenance:
		return "Maintenance"
	case r.Occupied == 0:
		return "Available"
	case r.Occupied == r.Capacity:
		return "Full"
	default:
		return "Partial"
	}
}

// BookStatus is the circulation state of a library title
type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookIssued    BookStatus = "issued"
	BookOverdue   BookStatus = "overdue"
)

// Book is a library record
type Book struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	ISBN            string     `json:"isbn"`
	Category        string     `json:"category"`
	TotalCopies     int        `json:"totalCopies"`
	AvailableCopies int        `json:"availableCopies"`
	IssuedTo        string     `json:"issuedTo,omitempty"`
	IssueDate       string     `json:"issueDate,omitempty"`
	DueDate         string     `json:"dueDate,omitempty"`
	Status          BookStatus `json:"status"`
}

// ExamStatus is the schedule state of an exam
type ExamStatus string

const (
	ExamScheduled ExamStatus = "scheduled"
	ExamOngoing   ExamStatus = "ongoing"
	ExamCompleted ExamStatus = "completed"
)

// Exam is a scheduled examination
type Exam struct {
	ID               string     `json:"id"`
	Subject          string     `json:"subject"`
	Course           string     `json:"course"`
	ExamType         string     `json:"examType"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Duration         string     `json:"duration"`
	Venue            string     `json:"venue"`
	TotalMarks       int        `json:"totalMarks"`
	Status           ExamStatus `json:"status"`
	StudentsEnrolled int        `json:"studentsEnrolled,omitempty"`
}

// ExamResult is a graded result for one student
type ExamResult struct {
	ID            string `json:"id"`
	StudentName   string `json:"studentName"`
	RollNumber    string `json:"rollNumber"`
	Subject       string `json:"subject"`
	ExamType      string `json:"examType"`
	MarksObtained int    `json:"marksObtained"`
	TotalMarks    int    `json:"totalMarks"`
	Percentage    int    `json:"percentage"`
	Grade         string `json:"grade"`
	ExamDate      string `json:"examDate"`
}

// Activity is an entry of the dashboard activity feed
type Activity struct {
	Activity string `json:"activity"`
	Time     string `json:"time"`
	Type     string `json:"type"`
}

// StatCard is a dashboard summary card
type StatCard struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Change     string `json:"change"`
	ChangeType string `json:"changeType"`
}
