package http

// orderRequest is the intake payload sent by the ordering site.
type orderRequest struct {
	OrderID        int64    `json:"order_id"`
	NoticeText     string   `json:"notice_text"`
	DeliveryFee    int64    `json:"delivery_fee"`
	DishSubtotal   int64    `json:"dish_subtotal"`
	CustomerPhone  string   `json:"customer_phone,omitempty"`
	CustomerChatID *int64   `json:"customer_chat_id,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

type claimRequest struct {
	WorkerID int64 `json:"worker_id"`
}

type advanceRequest struct {
	WorkerID int64  `json:"worker_id"`
	Stage    string `json:"stage"`
}

type workerRequest struct {
	WorkerID int64  `json:"worker_id"`
	Name     string `json:"name"`
}

type contactRequest struct {
	Contact string `json:"contact"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type jobResponse struct {
	JobID int64 `json:"job_id"`
}

type cashbackResponse struct {
	Cashback  int64  `json:"cashback"`
	PromoCode string `json:"promoCode"`
}

type activeJobResponse struct {
	JobID    int64  `json:"job_id"`
	Stage    string `json:"stage"`
	WorkerID int64  `json:"worker_id,omitempty"`
	Text     string `json:"text"`
}

type workerStatsResponse struct {
	WorkerID   int64 `json:"worker_id"`
	Deliveries int64 `json:"deliveries"`
	TotalFees  int64 `json:"total_fees"`
}

type overviewResponse struct {
	Workers         int `json:"workers"`
	EligibleWorkers int `json:"eligible_workers"`
	BusyWorkers     int `json:"busy_workers"`
	ActiveJobs      int `json:"active_jobs"`
	PendingJobs     int `json:"pending_jobs"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
