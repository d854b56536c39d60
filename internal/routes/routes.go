package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
	domainCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-reservation/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-reservation/internal/middleware"
	"github.com/BruksfildServices01/barbershop-reservation/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/account"
	ucCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/catalog"
	ucReservation "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/validators"
)

// Deps are the process wide singletons the routes are built from. Cache
// and Images may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Cache  domainCatalog.Cache
	Images domainCatalog.ImageStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	// ======================================================
	// USE CASES — ACCOUNT
	// ======================================================
	tokens := ucAccount.TokenConfig{Secret: d.Config.JWTSecret, TTL: d.Config.JWTTTL}

	var checkDomain ucAccount.DomainChecker
	if d.Config.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	registerUC := ucAccount.NewRegister(userRepo, tokens, checkDomain, d.Log)
	loginUC := ucAccount.NewLogin(userRepo, tokens, d.Log)
	meUC := ucAccount.NewMe(userRepo, d.Log)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	allocator := ucReservation.NewSlotAllocator(reservationRepo, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, meUC)

	homeHandler := handlers.NewHomeHandler(
		ucCatalog.NewListActiveServices(catalogRepo, d.Cache, d.Log),
	)

	reservationHandler := handlers.NewReservationHandler(
		allocator,
		ucReservation.NewListMyReservations(reservationRepo, d.Log),
		ucReservation.NewGetReservation(reservationRepo, d.Log),
		ucReservation.NewEditReservation(reservationRepo, d.Log),
		ucReservation.NewCancelReservation(reservationRepo, d.Log),
		ucCatalog.NewListAvailableSlots(catalogRepo, d.Log),
	)

	loc := timezone.Location(d.Config.Timezone)

	adminHandler := handlers.NewAdminHandler(handlers.AdminUseCases{
		Dashboard: ucReservation.NewDashboard(reservationRepo, d.Log),

		ListServices:  ucCatalog.NewListServices(catalogRepo, d.Log),
		GetService:    ucCatalog.NewGetService(catalogRepo, d.Log),
		CreateService: ucCatalog.NewCreateService(catalogRepo, d.Cache, d.Log),
		UpdateService: ucCatalog.NewUpdateService(catalogRepo, d.Cache, d.Log),
		DeleteService: ucCatalog.NewDeleteService(catalogRepo, d.Cache, d.Log),
		UploadImage:   ucCatalog.NewUploadServiceImage(catalogRepo, d.Images, d.Cache, d.Log),

		ListTimeSlots:  ucCatalog.NewListTimeSlots(catalogRepo, d.Log),
		CreateTimeSlot: ucCatalog.NewCreateTimeSlot(catalogRepo, d.Log),

		ListReservations: ucReservation.NewListAllReservations(reservationRepo, d.Log),
		Approve:          ucReservation.NewApproveReservation(reservationRepo, d.Log),
		Reject:           ucReservation.NewRejectReservation(reservationRepo, d.Log),
		Complete:         ucReservation.NewCompleteReservation(reservationRepo, d.Log),
	}, loc)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, loc)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", homeHandler.Index)

	account := r.Group("/Account")
	{
		account.POST("/Register", authHandler.Register)
		account.POST("/Login", authHandler.Login)
	}

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Config))
	{
		secured.GET("/Account/Me", authHandler.Me)

		secured.GET("/Reservation", reservationHandler.Index)
		secured.GET("/Reservation/Create", reservationHandler.CreateForm)
		secured.POST("/Reservation/Create", reservationHandler.Create)
		secured.GET("/Reservation/Edit/:id", reservationHandler.Show)
		secured.POST("/Reservation/Edit/:id", reservationHandler.Edit)
		secured.POST("/Reservation/Cancel/:id", reservationHandler.Cancel)

		// ------------------------------
		// ADMIN (role checked by the use cases)
		// ------------------------------
		admin := secured.Group("/Admin")
		{
			admin.GET("/Dashboard", adminHandler.Dashboard)

			admin.GET("/Services", adminHandler.Services)
			admin.POST("/CreateService", adminHandler.CreateService)
			admin.GET("/EditService/:id", adminHandler.ShowService)
			admin.POST("/EditService/:id", adminHandler.EditService)
			admin.POST("/DeleteService/:id", adminHandler.DeleteService)
			admin.POST("/ServiceImage/:id", adminHandler.UploadServiceImage)

			admin.GET("/TimeSlots", adminHandler.TimeSlots)
			admin.POST("/CreateTimeSlot", adminHandler.CreateTimeSlot)

			admin.GET("/Reservations", adminHandler.Reservations)
			admin.POST("/ApproveReservation/:id", adminHandler.ApproveReservation)
			admin.POST("/RejectReservation/:id", adminHandler.RejectReservation)
			admin.POST("/CompleteReservation/:id", adminHandler.CompleteReservation)

			admin.GET("/AuditLogs", auditLogsHandler.List)
		}
	}
}
