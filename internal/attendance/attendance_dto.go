package attendance

type RecordAttendanceRequest struct {
	PersonalID  string  `json:"personal_id" binding:"required,min=5,max=20"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	TotalHours  float64 `json:"total_hours" binding:"gte=0,lte=24"`
	TravelAllow bool    `json:"travel_allow"`
	Status      string  `json:"status" binding:"required,oneof=PRESENT SICK VACATION ABSENT"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	PersonalID  string  `json:"personal_id"`
	Date        string  `json:"date"`
	TotalHours  float64 `json:"total_hours"`
	TravelAllow bool    `json:"travel_allow"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}
