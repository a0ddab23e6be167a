package models

// Theme is the colour scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationPreferences toggles per notification channel and topic
type NotificationPreferences struct {
	Email   bool `json:"email"`
	SMS     bool `json:"sms"`
	Push    bool `json:"push"`
	Fees    bool `json:"fees"`
	Exams   bool `json:"exams"`
	Library bool `json:"library"`
	Hostel  bool `json:"hostel"`
}

// PrivacyPreferences controls profile visibility
type PrivacyPreferences struct {
	ProfileVisible bool `json:"profileVisible"`
	ShowEmail      bool `json:"showEmail"`
	ShowPhone      bool `json:"showPhone"`
	AllowMessages  bool `json:"allowMessages"`
}

// Settings holds the preferences of one client session. They live in memory
// only and disappear with the client session.
type Settings struct {
	Theme         Theme                   `json:"theme"`
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
}

// DefaultSettings returns the preferences a new client session starts with
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeLight,
		Notifications: NotificationPreferences{
			Email:  true,
			Push:   true,
			Fees:   true,
			Exams:  true,
			Hostel: true,
		},
		Privacy: PrivacyPreferences{
			ProfileVisible: true,
			AllowMessages:  true,
		},
	}
}
