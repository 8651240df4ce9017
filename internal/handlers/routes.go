package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/auth"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/export"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/middleware"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"gorm.io/gorm"
)

// Dependencies is what the API needs from the process that serves it.
type Dependencies struct {
	DB            *gorm.DB
	Tokens        *auth.TokenManager
	AI            *services.AIService
	InvitationTTL time.Duration
	AppBaseURL    string
}

type serviceSet struct {
	churches    repository.ChurchRepository
	auth        *services.AuthService
	invitations *services.InvitationService
	profiles    *services.ProfileService
	cells       *services.CellService
	ministries  *services.MinistryService
	finance     *services.FinanceService
	dashboard   *services.DashboardService
	portal      *services.PortalService
}

func newServiceSet(d Dependencies) *serviceSet {
	db := d.DB
	churches := repository.NewChurchRepository(db)
	profiles := repository.NewProfileRepository(db)
	members := repository.NewTenantRepository[models.Member](db)
	cells := repository.NewTenantRepository[models.Cell](db)
	events := repository.NewTenantRepository[models.Event](db)
	cellRepo := repository.NewCellRepository(db)
	ministryRepo := repository.NewMinistryRepository(db)
	financeRepo := repository.NewFinanceRepository(db)

	return &serviceSet{
		churches:    churches,
		auth:        services.NewAuthService(profiles, churches),
		invitations: services.NewInvitationService(repository.NewInvitationRepository(db), profiles, d.InvitationTTL, d.AppBaseURL),
		profiles:    services.NewProfileService(profiles, members),
		cells:       services.NewCellService(cells, members, cellRepo),
		ministries: services.NewMinistryService(
			repository.NewTenantRepository[models.MinistrySchedule](db), members, ministryRepo),
		finance: services.NewFinanceService(
			repository.NewTenantRepository[models.FinancialCategory](db),
			repository.NewTenantRepository[models.FinancialAccount](db),
			repository.NewTenantRepository[models.FinancialCampaign](db),
			financeRepo,
		),
		dashboard: services.NewDashboardService(members, cells, events, cellRepo, financeRepo),
		portal: services.NewPortalService(services.PortalRepositories{
			Members:       members,
			Cells:         cells,
			Enrollments:   repository.NewTenantRepository[models.CourseStudent](db),
			Events:        events,
			Announcements: repository.NewTenantRepository[models.Announcement](db),
			CellRepo:      cellRepo,
			MinistryRepo:  ministryRepo,
		}),
	}
}

// RegisterRoutes mounts the API under /api. The sessions middleware must
// already be installed on r.
func RegisterRoutes(r gin.IRouter, d Dependencies) {
	svc := newServiceSet(d)

	authHandler := NewAuthHandler(svc.auth, d.Tokens)
	invitationHandler := NewInvitationHandler(svc.invitations, svc.churches)
	profileHandler := NewProfileHandler(svc.profiles)
	cellHandler := NewCellHandler(svc.cells)
	scheduleHandler := NewScheduleHandler(svc.ministries)
	financeHandler := NewFinanceHandler(svc.finance)
	dashboardHandler := NewDashboardHandler(svc.dashboard)
	portalHandler := NewPortalHandler(svc.portal)
	announcementHandler := NewAnnouncementHandler(d.AI)
	exportHandler := NewExportHandler(export.NewExporter(d.DB))

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	public := api.Group("/public")
	{
		public.GET("/invitations/:token", invitationHandler.Lookup)
		public.POST("/invitations/:token/redeem", invitationHandler.Redeem)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(d.Tokens), middleware.RequireChurch(svc.auth))
	{
		protected.GET("/auth/me", authHandler.Me)

		invitations := protected.Group("/invitations", middleware.RequireRole(pastoralRoles...))
		{
			invitations.POST("", invitationHandler.Create)
			invitations.GET("", invitationHandler.List)
			invitations.DELETE("/:id", invitationHandler.Delete)
		}

		profiles := protected.Group("/profiles")
		{
			profiles.GET("", middleware.RequireRole(staffRoles...), profileHandler.List)
			profiles.PUT("/:id/role", middleware.RequireRole(models.RoleAdmin), profileHandler.ChangeRole)
			profiles.PUT("/:id/member", middleware.RequireRole(staffRoles...), profileHandler.LinkMember)
		}

		for _, resource := range entityResources(d.DB, svc) {
			resource.Register(protected)
		}

		leaders := middleware.RequireRole(leaderRoles...)
		protected.GET("/cells/:id/members", leaders, cellHandler.ListMembers)
		protected.POST("/cells/:id/members", leaders, cellHandler.AddMember)
		protected.DELETE("/cells/:id/members/:member_id", leaders, cellHandler.RemoveMember)
		protected.GET("/cells/:id/reports", leaders, cellHandler.ListReports)
		protected.POST("/cells/:id/reports", leaders, cellHandler.SubmitReport)
		protected.GET("/cell-reports/overview", leaders, cellHandler.Overview)

		schedules := protected.Group("/ministry-schedules/:id/volunteers")
		{
			schedules.GET("", scheduleHandler.ListVolunteers)
			schedules.POST("", middleware.RequireRole(staffRoles...), scheduleHandler.AddVolunteer)
			schedules.PATCH("/:volunteer_id/confirm", scheduleHandler.ConfirmVolunteer)
			schedules.DELETE("/:volunteer_id", middleware.RequireRole(staffRoles...), scheduleHandler.RemoveVolunteer)
		}

		protected.GET("/finance/overview", middleware.RequireRole(financeRoles...), financeHandler.Overview)
		protected.GET("/dashboard", middleware.RequireRole(dashboardRoles...), dashboardHandler.Get)
		protected.POST("/announcements/draft", middleware.RequireRole(staffRoles...), announcementHandler.Draft)
		protected.GET("/portal/me", portalHandler.Me)

		exports := protected.Group("/export", middleware.RequireRole(pastoralRoles...))
		{
			exports.GET("/tables", exportHandler.Tables)
			exports.GET("/schema", exportHandler.Schema)
			exports.GET("/:table", exportHandler.Table)
		}
	}
}
