// Package http exposes the dispatch engine over REST. The intake endpoint
// is what the ordering site calls; the rest mirrors the operations couriers
// and operators perform through the chat bridge.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	intakeToken string

	// Command handlers
	submitJobHandler       commands.SubmitJobCommandHandler
	claimJobHandler        commands.ClaimJobCommandHandler
	advanceStageHandler    commands.AdvanceStageCommandHandler
	registerWorkerHandler  commands.RegisterWorkerCommandHandler
	removeWorkerHandler    commands.RemoveWorkerCommandHandler
	setContactHandler      commands.SetWorkerContactCommandHandler
	setAvailabilityHandler commands.SetWorkerAvailabilityCommandHandler

	// Query handlers
	getLoyaltyAccountHandler queries.GetLoyaltyAccountQueryHandler
	getActiveJobsHandler     queries.GetActiveJobsQueryHandler
	getWorkerStatsHandler    queries.GetWorkerStatsQueryHandler
	getOverviewHandler       queries.GetOverviewQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers. The
// intake token guards POST /api/orders.
func NewServer(
	intakeToken string,
	submitJobHandler commands.SubmitJobCommandHandler,
	claimJobHandler commands.ClaimJobCommandHandler,
	advanceStageHandler commands.AdvanceStageCommandHandler,
	registerWorkerHandler commands.RegisterWorkerCommandHandler,
	removeWorkerHandler commands.RemoveWorkerCommandHandler,
	setContactHandler commands.SetWorkerContactCommandHandler,
	setAvailabilityHandler commands.SetWorkerAvailabilityCommandHandler,
	getLoyaltyAccountHandler queries.GetLoyaltyAccountQueryHandler,
	getActiveJobsHandler queries.GetActiveJobsQueryHandler,
	getWorkerStatsHandler queries.GetWorkerStatsQueryHandler,
	getOverviewHandler queries.GetOverviewQueryHandler,
) *Server {
	return &Server{
		intakeToken:              intakeToken,
		submitJobHandler:         submitJobHandler,
		claimJobHandler:          claimJobHandler,
		advanceStageHandler:      advanceStageHandler,
		registerWorkerHandler:    registerWorkerHandler,
		removeWorkerHandler:      removeWorkerHandler,
		setContactHandler:        setContactHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		getLoyaltyAccountHandler: getLoyaltyAccountHandler,
		getActiveJobsHandler:     getActiveJobsHandler,
		getWorkerStatsHandler:    getWorkerStatsHandler,
		getOverviewHandler:       getOverviewHandler,
	}
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder, s.requireIntakeToken)

	e.POST("/api/jobs/:id/claim", s.ClaimJob)
	e.POST("/api/jobs/:id/advance", s.AdvanceJob)
	e.GET("/api/jobs/active", s.GetActiveJobs)

	e.POST("/api/workers", s.RegisterWorker)
	e.DELETE("/api/workers/:id", s.RemoveWorker)
	e.PUT("/api/workers/:id/contact", s.SetWorkerContact)
	e.PUT("/api/workers/:id/availability", s.SetWorkerAvailability)

	e.GET("/api/cashback/:phone", s.GetCashback)
	e.GET("/api/stats/workers", s.GetWorkerStats)
	e.GET("/api/stats/overview", s.GetOverview)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// requireIntakeToken guards the intake endpoint with a bearer token.
func (s *Server) requireIntakeToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if ctx.Request().Header.Get(echo.HeaderAuthorization) != "Bearer "+s.intakeToken {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid intake token")
		}
		return next(ctx)
	}
}

// CreateOrder handles POST /api/orders - takes a new order into dispatch.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request orderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	jobID, err := kernel.NewJobID(request.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var phone *kernel.Phone
	if request.CustomerPhone != "" {
		parsed, phoneErr := kernel.NewPhone(request.CustomerPhone)
		if phoneErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid customer phone: "+phoneErr.Error())
		}
		phone = &parsed
	}

	var location *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if pointErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid location: "+pointErr.Error())
		}
		location = &point
	}

	cmd, err := commands.NewSubmitJobCommand(
		jobID,
		request.NoticeText,
		request.DeliveryFee,
		request.DishSubtotal,
		phone,
		request.CustomerChatID,
		location,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.submitJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, jobResponse{JobID: jobID.Int64()})
}

// ClaimJob handles POST /api/jobs/:id/claim - a courier takes a job.
func (s *Server) ClaimJob(ctx echo.Context) error {
	jobID, err := pathJobID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job id")
	}

	var request claimRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewWorkerID(request.WorkerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewClaimJobCommand(jobID, workerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid claim: "+err.Error())
	}

	if err = s.claimJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceJob handles POST /api/jobs/:id/advance - a lifecycle report.
func (s *Server) AdvanceJob(ctx echo.Context) error {
	jobID, err := pathJobID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid job id")
	}

	var request advanceRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewWorkerID(request.WorkerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id: "+err.Error())
	}

	target, err := job.StageFromString(request.Stage)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid stage: "+err.Error())
	}

	cmd, err := commands.NewAdvanceStageCommand(jobID, workerID, target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid stage: "+err.Error())
	}

	if err = s.advanceStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterWorker handles POST /api/workers - puts a courier on the roster.
func (s *Server) RegisterWorker(ctx echo.Context) error {
	var request workerRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	workerID, err := kernel.NewWorkerID(request.WorkerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewRegisterWorkerCommand(workerID, request.Name)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker data: "+err.Error())
	}

	if err = s.registerWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveWorker handles DELETE /api/workers/:id.
func (s *Server) RemoveWorker(ctx echo.Context) error {
	workerID, err := pathWorkerID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	cmd, err := commands.NewRemoveWorkerCommand(workerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id: "+err.Error())
	}

	if err = s.removeWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetWorkerContact handles PUT /api/workers/:id/contact.
func (s *Server) SetWorkerContact(ctx echo.Context) error {
	workerID, err := pathWorkerID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	var request contactRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetWorkerContactCommand(workerID, request.Contact)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid contact: "+err.Error())
	}

	if err = s.setContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetWorkerAvailability handles PUT /api/workers/:id/availability.
func (s *Server) SetWorkerAvailability(ctx echo.Context) error {
	workerID, err := pathWorkerID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid worker id")
	}

	var request availabilityRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetWorkerAvailabilityCommand(workerID, request.Available)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid availability: "+err.Error())
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCashback handles GET /api/cashback/:phone.
func (s *Server) GetCashback(ctx echo.Context) error {
	phone, err := kernel.NewPhone(ctx.Param("phone"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid phone: "+err.Error())
	}

	query, err := queries.NewGetLoyaltyAccountQuery(phone)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid phone: "+err.Error())
	}

	account, err := s.getLoyaltyAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cashbackResponse{
		Cashback:  account.Balance,
		PromoCode: account.PromoCode,
	})
}

// GetActiveJobs handles GET /api/jobs/active.
func (s *Server) GetActiveJobs(ctx echo.Context) error {
	board, err := s.getActiveJobsHandler.Handle(ctx.Request().Context(), queries.NewGetActiveJobsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve active jobs")
	}

	response := make([]activeJobResponse, len(board))
	for i, row := range board {
		response[i] = activeJobResponse{
			JobID:    row.JobID,
			Stage:    row.Stage,
			WorkerID: row.WorkerID,
			Text:     row.NoticeText,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkerStats handles GET /api/stats/workers?from=&to=. Without bounds
// the window defaults to the current day.
func (s *Server) GetWorkerStats(ctx echo.Context) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	var err error
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid 'from' bound")
		}
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid 'to' bound")
		}
	}

	query, err := queries.NewGetWorkerStatsQuery(from, to)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid window: "+err.Error())
	}

	stats, err := s.getWorkerStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve stats")
	}

	response := make([]workerStatsResponse, len(stats))
	for i, row := range stats {
		response[i] = workerStatsResponse{
			WorkerID:   row.WorkerID,
			Deliveries: row.Deliveries,
			TotalFees:  row.TotalFees,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverview handles GET /api/stats/overview.
func (s *Server) GetOverview(ctx echo.Context) error {
	snapshot, err := s.getOverviewHandler.Handle(ctx.Request().Context(), queries.NewGetOverviewQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve overview")
	}

	return ctx.JSON(http.StatusOK, overviewResponse{
		Workers:         snapshot.Workers,
		EligibleWorkers: snapshot.EligibleWorkers,
		BusyWorkers:     snapshot.BusyWorkers,
		ActiveJobs:      snapshot.ActiveJobs,
		PendingJobs:     snapshot.PendingJobs,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mapDomainError translates domain failures into HTTP statuses.
func (s *Server) mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, job.ErrNotAssignedWorker):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, job.ErrAlreadyClaimed),
		errors.Is(err, job.ErrInvalidStageTransition),
		errors.Is(err, worker.ErrWorkerAlreadyAssigned),
		errors.Is(err, worker.ErrWorkerNotAvailable),
		errors.Is(err, worker.ErrWorkerIsBusy):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func pathJobID(ctx echo.Context) (kernel.JobID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.NewJobID(raw)
}

func pathWorkerID(ctx echo.Context) (kernel.WorkerID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.NewWorkerID(raw)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, errorResponse{Code: code, Message: message})
}
