package repositories

import "github.com/yigit/campuserp/internal/app/models"

// RecordsRepository serves the read-only sample records behind every screen.
// Each accessor returns a fresh copy so callers may filter or sort freely.
type RecordsRepository struct {
	applications []models.Application
	fees         []models.FeeRecord
	rooms        []models.Room
	blocks       []string
	books        []models.Book
	categories   []string
	exams        []models.Exam
	results      []models.ExamResult
	activities   []models.Activity
}

// NewRecordsRepository creates a repository over the built-in sample data
func NewRecordsRepository() *RecordsRepository {
	return &RecordsRepository{
		applications: sampleApplications,
		fees:         sampleFees,
		rooms:        sampleRooms,
		blocks:       []string{"A", "B", "C", "D"},
		books:        sampleBooks,
		categories:   []string{"Computer Science", "Electronics", "Mechanical", "Civil"},
		exams:        sampleExams,
		results:      sampleResults,
		activities:   sampleActivities,
	}
}

// Applications returns all admission applications
func (r *RecordsRepository) Applications() []models.Application {
	return append([]models.Application(nil), r.applications...)
}

// Fees returns all fee records
func (r *RecordsRepository) Fees() []models.FeeRecord {
	return append([]models.FeeRecord(nil), r.fees...)
}

// Rooms returns all hostel rooms
func (r *RecordsRepository) Rooms() []models.Room {
	out := make([]models.Room, len(r.rooms))
	for i, room := range r.rooms {
		room.Amenities = append([]string(nil), room.Amenities...)
		room.Residents = append([]string(nil), room.Residents...)
		out[i] = room
	}
	return out
}

// Blocks returns the hostel block names
func (r *RecordsRepository) Blocks() []string {
	return append([]string(nil), r.blocks...)
}

// Books returns all library records
func (r *RecordsRepository) Books() []models.Book {
	return append([]models.Book(nil), r.books...)
}

// Categories returns the library categories
func (r *RecordsRepository) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Exams returns all scheduled examinations
func (r *RecordsRepository) Exams() []models.Exam {
	return append([]models.Exam(nil), r.exams...)
}

// Results returns all exam results
func (r *RecordsRepository) Results() []models.ExamResult {
	return append([]models.ExamResult(nil), r.results...)
}

// Activities returns the dashboard activity feed
func (r *RecordsRepository) Activities() []models.Activity {
	return append([]models.Activity(nil), r.activities...)
}

var sampleApplications = []models.Application{
	{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "+91-9876543210", Course: "Computer Science", Year: "1st Year", Status: models.AdmissionPending, ApplicationDate: "2025-01-10"},
	{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Phone: "+91-9876543211", Course: "Electronics", Year: "1st Year", Status: models.AdmissionApproved, ApplicationDate: "2025-01-09"},
	{ID: "3", Name: "Mike Wilson", Email: "mike@example.com", Phone: "+91-9876543212", Course: "Mechanical", Year: "1st Year", Status: models.AdmissionRejected, ApplicationDate: "2025-01-08"},
}

var sampleFees = []models.FeeRecord{
	{ID: "1", StudentName: "Alex Johnson", RollNumber: "CS2021001", Course: "Computer Science", FeeType: "Semester Fee", Amount: 45000, DueDate: "2025-02-01", Status: models.FeePending},
	{ID: "2", StudentName: "Sarah Wilson", RollNumber: "EC2021015", Course: "Electronics", FeeType: "Lab Fee", Amount: 5000, DueDate: "2025-01-25", Status: models.FeePaid, PaidDate: "2025-01-15"},
	{ID: "3", StudentName: "Mike Brown", RollNumber: "ME2021025", Course: "Mechanical", FeeType: "Library Fee", Amount: 2000, DueDate: "2025-01-10", Status: models.FeeOverdue},
}

var sampleRooms = []models.Room{
	{ID: "1", Number: "A101", Block: "A", Floor: 1, Capacity: 2, Occupied: 1, Type: "double", Amenities: []string{"WiFi", "AC", "Attached Bathroom"}, Status: models.RoomAvailable, Residents: []string{"Alex Johnson"}},
	{ID: "2", Number: "A102", Block: "A", Floor: 1, Capacity: 2, Occupied: 2, Type: "double", Amenities: []string{"WiFi", "Fan", "Attached Bathroom"}, Status: models.RoomOccupied, Residents: []string{"John Doe", "Mike Wilson"}},
	{ID: "3", Number: "A103", Block: "A", Floor: 1, Capacity: 1, Occupied: 0, Type: "single", Amenities: []string{"WiFi", "AC", "Attached Bathroom", "Study Table"}, Status: models.RoomAvailable},
	{ID: "4", Number: "B201", Block: "B", Floor: 2, Capacity: 3, Occupied: 2, Type: "triple", Amenities: []string{"WiFi", "Fan", "Common Bathroom"}, Status: models.RoomAvailable, Residents: []string{"Sarah Wilson", "Emma Davis"}},
}

var sampleBooks = []models.Book{
	{ID: "1", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", ISBN: "978-0262033848", Category: "Computer Science", TotalCopies: 5, AvailableCopies: 3, Status: models.BookAvailable},
	{ID: "2", Title: "Clean Code", Author: "Robert C. Martin", ISBN: "978-0132350884", Category: "Computer Science", TotalCopies: 3, AvailableCopies: 0, IssuedTo: "Alex Johnson", IssueDate: "2025-01-10", DueDate: "2025-01-24", Status: models.BookIssued},
	{ID: "3", Title: "Digital Signal Processing", Author: "Alan V. Oppenheim", ISBN: "978-0131988422", Category: "Electronics", TotalCopies: 4, AvailableCopies: 2, Status: models.BookAvailable},
	{ID: "4", Title: "Mechanics of Materials", Author: "Ferdinand Beer", ISBN: "978-0073398235", Category: "Mechanical", TotalCopies: 2, AvailableCopies: 0, IssuedTo: "Mike Wilson", IssueDate: "2024-12-15", DueDate: "2024-12-29", Status: models.BookOverdue},
}

var sampleExams = []models.Exam{
	{ID: "1", Subject: "Data Structures", Course: "Computer Science", ExamType: "midterm", Date: "2025-02-15", Time: "10:00 AM", Duration: "3 hours", Venue: "Hall A", TotalMarks: 100, Status: models.ExamScheduled, StudentsEnrolled: 45},
	{ID: "2", Subject: "Digital Electronics", Course: "Electronics", ExamType: "final", Date: "2025-02-20", Time: "2:00 PM", Duration: "3 hours", Venue: "Hall B", TotalMarks: 100, Status: models.ExamScheduled, StudentsEnrolled: 38},
	{ID: "3", Subject: "Algorithms", Course: "Computer Science", ExamType: "quiz", Date: "2025-01-20", Time: "11:00 AM", Duration: "1 hour", Venue: "Room 301", TotalMarks: 50, Status: models.ExamCompleted, StudentsEnrolled: 42},
}

var sampleResults = []models.ExamResult{
	{ID: "1", StudentName: "Alex Johnson", RollNumber: "CS2021001", Subject: "Algorithms", ExamType: "quiz", MarksObtained: 42, TotalMarks: 50, Percentage: 84, Grade: "A", ExamDate: "2025-01-20"},
	{ID: "2", StudentName: "Sarah Wilson", RollNumber: "EC2021015", Subject: "Circuit Analysis", ExamType: "midterm", MarksObtained: 78, TotalMarks: 100, Percentage: 78, Grade: "B+", ExamDate: "2025-01-18"},
	{ID: "3", StudentName: "Mike Brown", RollNumber: "ME2021025", Subject: "Thermodynamics", ExamType: "final", MarksObtained: 91, TotalMarks: 100, Percentage: 91, Grade: "A+", ExamDate: "2025-01-15"},
}

var sampleActivities = []models.Activity{
	{Activity: "Fee payment received", Time: "2 hours ago", Type: "payment"},
	{Activity: "New student admission", Time: "4 hours ago", Type: "admission"},
	{Activity: "Library book returned", Time: "1 day ago", Type: "library"},
	{Activity: "Hostel room allocated", Time: "2 days ago", Type: "hostel"},
}
