package dto

import "github.com/yigit/campuserp/internal/app/models"

// UpdateSettingsRequest is a partial update of the client's preferences.
// Absent fields keep their value.
type UpdateSettingsRequest struct {
	Theme         *models.Theme              `json:"theme" binding:"omitempty,oneof=light dark"`
	Notifications *NotificationSettingsPatch `json:"notifications"`
	Privacy       *PrivacySettingsPatch      `json:"privacy"`
}

// NotificationSettingsPatch updates notification toggles
type NotificationSettingsPatch struct {
	Email   *bool `json:"email"`
	SMS     *bool `json:"sms"`
	Push    *bool `json:"push"`
	Fees    *bool `json:"fees"`
	Exams   *bool `json:"exams"`
	Library *bool `json:"library"`
	Hostel  *bool `json:"hostel"`
}

// PrivacySettingsPatch updates privacy toggles
type PrivacySettingsPatch struct {
	ProfileVisible *bool `json:"profileVisible"`
	ShowEmail      *bool `json:"showEmail"`
	ShowPhone      *bool `json:"showPhone"`
	AllowMessages  *bool `json:"allowMessages"`
}

// Apply writes the present fields of r into s
func (r *UpdateSettingsRequest) Apply(s *models.Settings) {
	if r.Theme != nil {
		s.Theme = *r.Theme
	}
	if n := r.Notifications; n != nil {
		setBool(&s.Notifications.Email, n.Email)
		setBool(&s.Notifications.SMS, n.SMS)
		setBool(&s.Notifications.Push, n.Push)
		setBool(&s.Notifications.Fees, n.Fees)
		setBool(&s.Notifications.Exams, n.Exams)
		setBool(&s.Notifications.Library, n.Library)
		setBool(&s.Notifications.Hostel, n.Hostel)
	}
	if p := r.Privacy; p != nil {
		setBool(&s.Privacy.ProfileVisible, p.ProfileVisible)
		setBool(&s.Privacy.ShowEmail, p.ShowEmail)
		setBool(&s.Privacy.ShowPhone, p.ShowPhone)
		setBool(&s.Privacy.AllowMessages, p.AllowMessages)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
