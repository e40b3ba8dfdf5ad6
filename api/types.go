package api

// Reservation statuses as the reservations service stores them.
const (
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
)

type Field struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	Description  string  `json:"description,omitempty"`
	OpeningTime  string  `json:"opening_time"`
	ClosingTime  string  `json:"closing_time"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type FieldsList struct {
	Fields []Field `json:"fields"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

// FieldAvailability is the server-computed set of open start hours for one
// field on one calendar date. Authoritative only at fetch time.
type FieldAvailability struct {
	FieldID        int      `json:"field_id"`
	Date           string   `json:"date"`
	AvailableHours []string `json:"available_hours"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UsersList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

type UserStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	AdminUsers    int `json:"admin_users"`
	NewUsersToday int `json:"new_users_today"`
}

type Reservation struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	FieldID       int     `json:"field_id"`
	FieldName     string  `json:"field_name"`
	FieldLocation string  `json:"field_location"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours int     `json:"duration_hours"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	CancelledAt   string  `json:"cancelled_at,omitempty"`
	CancelledBy   int     `json:"cancelled_by,omitempty"`
}

type ReservationsList struct {
	Reservations []Reservation `json:"reservations"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Size         int           `json:"size"`
}

type ReservationStats struct {
	TotalReservations     int     `json:"total_reservations"`
	ActiveReservations    int     `json:"active_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	ReservationsToday     int     `json:"reservations_today"`
	TotalRevenue          float64 `json:"total_revenue"`
}

type GeneralStats struct {
	TotalUsers            int     `json:"total_users"`
	TotalFields           int     `json:"total_fields"`
	ActiveFields          int     `json:"active_fields"`
	TotalReservations     int     `json:"total_reservations"`
	ActiveReservations    int     `json:"active_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	ReservationsToday     int     `json:"reservations_today"`
	TotalRevenue          float64 `json:"total_revenue"`
}

type DashboardStats struct {
	GeneralStats GeneralStats `json:"general_stats"`
	LastUpdated  string       `json:"last_updated,omitempty"`
}

type FieldStats struct {
	FieldID               int     `json:"field_id"`
	FieldName             string  `json:"field_name"`
	FieldLocation         string  `json:"field_location"`
	IsActive              bool    `json:"is_active"`
	TotalReservations     int     `json:"total_reservations"`
	ConfirmedReservations int     `json:"confirmed_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	WeeklyReservations    int     `json:"weekly_reservations"`
	TotalRevenue          float64 `json:"total_revenue"`
	AveragePrice          float64 `json:"average_price"`
	Capacity              int     `json:"capacity"`
}

type FieldsSummary struct {
	TotalFields      int         `json:"total_fields"`
	ActiveFields     int         `json:"active_fields"`
	TotalRevenue     float64     `json:"total_revenue"`
	MostPopularField *FieldStats `json:"most_popular_field,omitempty"`
}

type FieldsStatsResponse struct {
	FieldsStatistics []FieldStats  `json:"fields_statistics"`
	Summary          FieldsSummary `json:"summary"`
}

type DailyRevenue struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
}

type ServiceHealth struct {
	Service    string  `json:"service"`
	Status     string  `json:"status"`
	LatencyMs  float64 `json:"latency_ms,omitempty"`
	StatusCode int     `json:"status_code,omitempty"`
}

type ServiceHealthResponse struct {
	Services      []ServiceHealth `json:"services"`
	OverallStatus string          `json:"overall_status"`
}

type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Permission struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
