package api

import "time"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterUserResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Record is a health record on the wire. Weight is omitted when unknown.
type Record struct {
	ID            string    `json:"id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Mood          string    `json:"mood"`
	BloodPressure string    `json:"blood_pressure"`
	HeartRate     int       `json:"heart_rate"`
	Weight        *float64  `json:"weight,omitempty"`
	Symptoms      []string  `json:"symptoms,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type AddRecordRequest struct {
	Record Record `json:"record"`
}

type AddRecordResponse struct {
	ID string `json:"id"`
}

type ListRecordsRequest struct{}

type ListRecordsResponse struct {
	Records []Record `json:"records"`
}

type DeleteRecordRequest struct {
	ID string `json:"id"`
}

type DeleteRecordResponse struct{}

type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type TrendsRequest struct{}

type TrendsResponse struct {
	Mood      []TrendPoint `json:"mood"`
	HeartRate []TrendPoint `json:"heart_rate"`
	Weight    []TrendPoint `json:"weight"`
}

type Recommendation struct {
	ID          string    `json:"id"`
	GeneratedOn time.Time `json:"generated_on"`
	Text        string    `json:"text"`
	Source      string    `json:"source"`
}

type GenerateRecommendationRequest struct{}

// GenerateRecommendationResponse carries either a new recommendation or
// NoData when the caller has no records to analyse.
type GenerateRecommendationResponse struct {
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	NoData         bool            `json:"no_data,omitempty"`
}

type ListRecommendationsRequest struct{}

type ListRecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type AcceptRecommendationRequest struct {
	ID string `json:"id"`
}

type AcceptRecommendationResponse struct{}

type Reminder struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Repeat    string    `json:"repeat"`
	Clock     string    `json:"time"`
	Weekday   string    `json:"weekday,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	NextFire  time.Time `json:"next_fire"`
}

type AddReminderRequest struct {
	Message string `json:"message"`
	Repeat  string `json:"repeat"`
	Clock   string `json:"time"`
}

type AddReminderResponse struct {
	Reminder Reminder `json:"reminder"`
}

type ListRemindersRequest struct{}

type ListRemindersResponse struct {
	Reminders []Reminder `json:"reminders"`
}

type DeleteReminderRequest struct {
	ID string `json:"id"`
}

type DeleteReminderResponse struct{}

type ExportRecordsRequest struct{}

type ExportRecordsResponse struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}
