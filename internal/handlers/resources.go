package handlers

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"gorm.io/gorm"
)

var (
	staffRoles    = []models.Role{models.RoleAdmin, models.RolePastor, models.RoleSecretary}
	financeRoles  = []models.Role{models.RoleAdmin, models.RolePastor, models.RoleTreasurer}
	leaderRoles   = []models.Role{models.RoleAdmin, models.RolePastor, models.RoleSecretary, models.RoleLeader}
	pastoralRoles = []models.Role{models.RoleAdmin, models.RolePastor}
	// dashboardRoles is every role except plain members.
	dashboardRoles = []models.Role{models.RoleAdmin, models.RolePastor, models.RoleSecretary, models.RoleTreasurer, models.RoleLeader}
)

// entityResources declares the CRUD resources of the API, one per table.
func entityResources(db *gorm.DB, svc *serviceSet) []Registrar {
	refs := repository.NewReferenceRepository(db)
	ref, refID := services.Ref, services.RefID

	members := &Resource[models.Member]{
		Path: "/members",
		Service: services.NewEntityService("member", repository.NewTenantRepository[models.Member](db), services.SoftDelete,
			services.WithBeforeCreate(services.MemberLimit(svc.churches)),
			services.WithBeforeUpdate(services.MemberReactivation(svc.churches)),
			services.WithReferences(refs, func(m *models.Member) []services.Reference {
				return []services.Reference{ref("congregation_id", "congregations", m.CongregationID)}
			})),
		NewCreate:  func() dto.Builder[models.Member] { return &dto.CreateMemberRequest{} },
		NewUpdate:  func() dto.Patcher[models.Member] { return &dto.UpdateMemberRequest{} },
		Filters:    []string{"spiritual_status", "congregation_id", "gender", "marital_status"},
		Order:      "full_name ASC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	congregations := &Resource[models.Congregation]{
		Path: "/congregations",
		Service: services.NewEntityService("congregation", repository.NewTenantRepository[models.Congregation](db), services.SoftDelete,
			services.WithReferences(refs, func(c *models.Congregation) []services.Reference {
				return []services.Reference{ref("pastor_id", "members", c.PastorID)}
			})),
		NewCreate:  func() dto.Builder[models.Congregation] { return &dto.CreateCongregationRequest{} },
		NewUpdate:  func() dto.Patcher[models.Congregation] { return &dto.UpdateCongregationRequest{} },
		Order:      "name ASC",
		WriteRoles: staffRoles,
	}

	cells := &Resource[models.Cell]{
		Path: "/cells",
		Service: services.NewEntityService("cell", repository.NewTenantRepository[models.Cell](db), services.SoftDelete,
			services.WithReferences(refs, func(c *models.Cell) []services.Reference {
				return []services.Reference{
					ref("leader_id", "members", c.LeaderID),
					ref("supervisor_id", "members", c.SupervisorID),
					ref("congregation_id", "congregations", c.CongregationID),
				}
			})),
		NewCreate:  func() dto.Builder[models.Cell] { return &dto.CreateCellRequest{} },
		NewUpdate:  func() dto.Patcher[models.Cell] { return &dto.UpdateCellRequest{} },
		Filters:    []string{"leader_id", "supervisor_id", "congregation_id", "meeting_day"},
		Order:      "name ASC",
		Preload:    []string{"Leader"},
		View:       func(c *models.Cell) any { return dto.ToCellDTO(c) },
		ReadRoles:  leaderRoles,
		WriteRoles: staffRoles,
	}

	cellReports := &Resource[models.CellReport]{
		Path:       "/cell-reports",
		Service:    services.NewEntityService("cell report", repository.NewTenantRepository[models.CellReport](db), services.HardDelete),
		Filters:    []string{"cell_id"},
		Order:      "report_date DESC, id DESC",
		Preload:    []string{"Roster"},
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
		Delete:     svc.cells.DeleteReport,
	}

	cellVisitors := &Resource[models.CellVisitor]{
		Path: "/cell-visitors",
		Service: services.NewEntityService("cell visitor", repository.NewTenantRepository[models.CellVisitor](db), services.HardDelete,
			services.WithReferences(refs, func(v *models.CellVisitor) []services.Reference {
				return []services.Reference{refID("cell_id", "cells", v.CellID), ref("invited_by", "members", v.InvitedBy)}
			})),
		NewCreate:  func() dto.Builder[models.CellVisitor] { return &dto.CreateCellVisitorRequest{} },
		NewUpdate:  func() dto.Patcher[models.CellVisitor] { return &dto.UpdateCellVisitorRequest{} },
		Filters:    []string{"cell_id"},
		Order:      "visit_date DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	cellPrayerRequests := &Resource[models.CellPrayerRequest]{
		Path: "/cell-prayer-requests",
		Service: services.NewEntityService("cell prayer request", repository.NewTenantRepository[models.CellPrayerRequest](db), services.HardDelete,
			services.WithReferences(refs, func(p *models.CellPrayerRequest) []services.Reference {
				return []services.Reference{refID("cell_id", "cells", p.CellID), ref("member_id", "members", p.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.CellPrayerRequest] { return &dto.CreateCellPrayerRequest{} },
		NewUpdate:  func() dto.Patcher[models.CellPrayerRequest] { return &dto.UpdateCellPrayerRequest{} },
		Filters:    []string{"cell_id", "status"},
		Order:      "created_at DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	cellPastoralCare := &Resource[models.CellPastoralCare]{
		Path: "/cell-pastoral-care",
		Service: services.NewEntityService("cell pastoral care", repository.NewTenantRepository[models.CellPastoralCare](db), services.HardDelete,
			services.WithReferences(refs, func(p *models.CellPastoralCare) []services.Reference {
				return []services.Reference{refID("cell_id", "cells", p.CellID), refID("member_id", "members", p.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.CellPastoralCare] { return &dto.CreateCellPastoralCareRequest{} },
		NewUpdate:  func() dto.Patcher[models.CellPastoralCare] { return &dto.UpdateCellPastoralCareRequest{} },
		Filters:    []string{"cell_id", "member_id"},
		Order:      "care_date DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	cellLeadership := &Resource[models.CellLeadershipDevelopment]{
		Path: "/cell-leadership-development",
		Service: services.NewEntityService("leadership development", repository.NewTenantRepository[models.CellLeadershipDevelopment](db), services.HardDelete,
			services.WithReferences(refs, func(l *models.CellLeadershipDevelopment) []services.Reference {
				return []services.Reference{refID("cell_id", "cells", l.CellID), refID("member_id", "members", l.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.CellLeadershipDevelopment] { return &dto.CreateLeadershipDevelopmentRequest{} },
		NewUpdate:  func() dto.Patcher[models.CellLeadershipDevelopment] { return &dto.UpdateLeadershipDevelopmentRequest{} },
		Filters:    []string{"cell_id", "member_id", "stage"},
		Order:      "created_at DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	ministries := &Resource[models.Ministry]{
		Path: "/ministries",
		Service: services.NewEntityService("ministry", repository.NewTenantRepository[models.Ministry](db), services.SoftDelete,
			services.WithReferences(refs, func(m *models.Ministry) []services.Reference {
				return []services.Reference{ref("leader_id", "members", m.LeaderID)}
			})),
		NewCreate:  func() dto.Builder[models.Ministry] { return &dto.CreateMinistryRequest{} },
		NewUpdate:  func() dto.Patcher[models.Ministry] { return &dto.UpdateMinistryRequest{} },
		Filters:    []string{"leader_id"},
		Order:      "name ASC",
		WriteRoles: staffRoles,
	}

	ministryVolunteers := &Resource[models.MinistryVolunteer]{
		Path: "/ministry-volunteers",
		Service: services.NewEntityService("ministry volunteer", repository.NewTenantRepository[models.MinistryVolunteer](db), services.HardDelete,
			services.WithReferences(refs, func(v *models.MinistryVolunteer) []services.Reference {
				return []services.Reference{refID("ministry_id", "ministries", v.MinistryID), refID("member_id", "members", v.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.MinistryVolunteer] { return &dto.CreateMinistryVolunteerRequest{} },
		NewUpdate:  func() dto.Patcher[models.MinistryVolunteer] { return &dto.UpdateMinistryVolunteerRequest{} },
		Filters:    []string{"ministry_id", "member_id"},
		Order:      "id ASC",
		WriteRoles: staffRoles,
	}

	ministrySchedules := &Resource[models.MinistrySchedule]{
		Path: "/ministry-schedules",
		Service: services.NewEntityService("ministry schedule", repository.NewTenantRepository[models.MinistrySchedule](db), services.HardDelete,
			services.WithReferences(refs, func(s *models.MinistrySchedule) []services.Reference {
				return []services.Reference{refID("ministry_id", "ministries", s.MinistryID)}
			})),
		NewCreate:  func() dto.Builder[models.MinistrySchedule] { return &dto.CreateMinistryScheduleRequest{} },
		NewUpdate:  func() dto.Patcher[models.MinistrySchedule] { return &dto.UpdateMinistryScheduleRequest{} },
		Filters:    []string{"ministry_id"},
		Order:      "scheduled_date DESC, id DESC",
		WriteRoles: staffRoles,
	}

	categories := &Resource[models.FinancialCategory]{
		Path:       "/financial-categories",
		Service:    services.NewEntityService("financial category", repository.NewTenantRepository[models.FinancialCategory](db), services.HardDelete),
		NewCreate:  func() dto.Builder[models.FinancialCategory] { return &dto.CreateFinancialCategoryRequest{} },
		NewUpdate:  func() dto.Patcher[models.FinancialCategory] { return &dto.UpdateFinancialCategoryRequest{} },
		Filters:    []string{"type"},
		Order:      "name ASC",
		ReadRoles:  financeRoles,
		WriteRoles: financeRoles,
	}

	accounts := &Resource[models.FinancialAccount]{
		Path: "/financial-accounts",
		Service: services.NewEntityService("financial account", repository.NewTenantRepository[models.FinancialAccount](db), services.SoftDelete,
			services.WithBeforeCreate(services.OpeningBalance),
			services.WithReadOnlyColumns[models.FinancialAccount]("initial_balance", "current_balance")),
		NewCreate:  func() dto.Builder[models.FinancialAccount] { return &dto.CreateFinancialAccountRequest{} },
		NewUpdate:  func() dto.Patcher[models.FinancialAccount] { return &dto.UpdateFinancialAccountRequest{} },
		Filters:    []string{"account_type"},
		Order:      "name ASC",
		ReadRoles:  financeRoles,
		WriteRoles: financeRoles,
	}

	campaigns := &Resource[models.FinancialCampaign]{
		Path: "/financial-campaigns",
		Service: services.NewEntityService("financial campaign", repository.NewTenantRepository[models.FinancialCampaign](db), services.SoftDelete,
			services.WithBeforeCreate(services.EmptyCampaign),
			services.WithReadOnlyColumns[models.FinancialCampaign]("current_amount")),
		NewCreate:  func() dto.Builder[models.FinancialCampaign] { return &dto.CreateFinancialCampaignRequest{} },
		NewUpdate:  func() dto.Patcher[models.FinancialCampaign] { return &dto.UpdateFinancialCampaignRequest{} },
		Order:      "name ASC",
		ReadRoles:  financeRoles,
		WriteRoles: financeRoles,
	}

	transactions := &Resource[models.FinancialTransaction]{
		Path: "/financial-transactions",
		Service: services.NewEntityService("financial transaction", repository.NewTenantRepository[models.FinancialTransaction](db), services.HardDelete,
			services.WithReadOnlyColumns[models.FinancialTransaction]("type", "amount", "category_id", "account_id", "campaign_id"),
			services.WithReferences(refs, func(t *models.FinancialTransaction) []services.Reference {
				return []services.Reference{ref("member_id", "members", t.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.FinancialTransaction] { return &dto.CreateFinancialTransactionRequest{} },
		NewUpdate:  func() dto.Patcher[models.FinancialTransaction] { return &dto.UpdateFinancialTransactionRequest{} },
		Filters:    []string{"type", "category_id", "account_id", "campaign_id", "member_id"},
		Order:      "transaction_date DESC, id DESC",
		Preload:    []string{"Category"},
		ReadRoles:  financeRoles,
		WriteRoles: financeRoles,
		Create:     svc.finance.RecordTransaction,
		Delete:     svc.finance.DeleteTransaction,
	}

	eventRepo := repository.NewTenantRepository[models.Event](db)
	registrationRepo := repository.NewTenantRepository[models.EventRegistration](db)

	events := &Resource[models.Event]{
		Path:       "/events",
		Service:    services.NewEntityService("event", eventRepo, services.HardDelete),
		NewCreate:  func() dto.Builder[models.Event] { return &dto.CreateEventRequest{} },
		NewUpdate:  func() dto.Patcher[models.Event] { return &dto.UpdateEventRequest{} },
		Order:      "event_date ASC, id ASC",
		WriteRoles: staffRoles,
	}

	registrations := &Resource[models.EventRegistration]{
		Path: "/event-registrations",
		Service: services.NewEntityService("event registration", registrationRepo, services.HardDelete,
			services.WithBeforeCreate(services.EventCapacity(eventRepo, registrationRepo)),
			services.WithBeforeUpdate(services.EventCapacityChange(eventRepo, registrationRepo)),
			services.WithReferences(refs, func(r *models.EventRegistration) []services.Reference {
				return []services.Reference{refID("event_id", "events", r.EventID), ref("member_id", "members", r.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.EventRegistration] { return &dto.CreateEventRegistrationRequest{} },
		NewUpdate:  func() dto.Patcher[models.EventRegistration] { return &dto.UpdateEventRegistrationRequest{} },
		Filters:    []string{"event_id", "member_id", "status"},
		Order:      "id ASC",
		WriteRoles: staffRoles,
	}

	courses := &Resource[models.Course]{
		Path: "/courses",
		Service: services.NewEntityService("course", repository.NewTenantRepository[models.Course](db), services.SoftDelete,
			services.WithReferences(refs, func(c *models.Course) []services.Reference {
				return []services.Reference{ref("teacher_id", "members", c.TeacherID)}
			})),
		NewCreate:  func() dto.Builder[models.Course] { return &dto.CreateCourseRequest{} },
		NewUpdate:  func() dto.Patcher[models.Course] { return &dto.UpdateCourseRequest{} },
		Filters:    []string{"teacher_id"},
		Order:      "name ASC",
		WriteRoles: staffRoles,
	}

	courseStudents := &Resource[models.CourseStudent]{
		Path: "/course-students",
		Service: services.NewEntityService("course student", repository.NewTenantRepository[models.CourseStudent](db), services.HardDelete,
			services.WithReferences(refs, func(s *models.CourseStudent) []services.Reference {
				return []services.Reference{refID("course_id", "courses", s.CourseID), refID("member_id", "members", s.MemberID)}
			})),
		NewCreate:  func() dto.Builder[models.CourseStudent] { return &dto.CreateCourseStudentRequest{} },
		NewUpdate:  func() dto.Patcher[models.CourseStudent] { return &dto.UpdateCourseStudentRequest{} },
		Filters:    []string{"course_id", "member_id", "status"},
		Order:      "enrolled_at ASC, id ASC",
		WriteRoles: staffRoles,
	}

	consolidations := &Resource[models.ConsolidationRecord]{
		Path: "/consolidation-records",
		Service: services.NewEntityService("consolidation record", repository.NewTenantRepository[models.ConsolidationRecord](db), services.HardDelete,
			services.WithReferences(refs, func(r *models.ConsolidationRecord) []services.Reference {
				return []services.Reference{refID("member_id", "members", r.MemberID), ref("consolidator_id", "members", r.ConsolidatorID)}
			})),
		NewCreate:  func() dto.Builder[models.ConsolidationRecord] { return &dto.CreateConsolidationRequest{} },
		NewUpdate:  func() dto.Patcher[models.ConsolidationRecord] { return &dto.UpdateConsolidationRequest{} },
		Filters:    []string{"member_id", "consolidator_id", "status"},
		Order:      "created_at DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	discipleships := &Resource[models.Discipleship]{
		Path: "/discipleships",
		Service: services.NewEntityService("discipleship", repository.NewTenantRepository[models.Discipleship](db), services.HardDelete,
			services.WithReferences(refs, func(d *models.Discipleship) []services.Reference {
				return []services.Reference{refID("discipler_id", "members", d.DisciplerID), refID("disciple_id", "members", d.DiscipleID)}
			})),
		NewCreate:  func() dto.Builder[models.Discipleship] { return &dto.CreateDiscipleshipRequest{} },
		NewUpdate:  func() dto.Patcher[models.Discipleship] { return &dto.UpdateDiscipleshipRequest{} },
		Filters:    []string{"discipler_id", "disciple_id", "status"},
		Order:      "created_at DESC, id DESC",
		ReadRoles:  leaderRoles,
		WriteRoles: leaderRoles,
	}

	visits := &Resource[models.PastoralVisit]{
		Path: "/pastoral-visits",
		Service: services.NewEntityService("pastoral visit", repository.NewTenantRepository[models.PastoralVisit](db), services.HardDelete,
			services.WithReferences(refs, func(v *models.PastoralVisit) []services.Reference {
				return []services.Reference{ref("member_id", "members", v.MemberID), ref("pastor_id", "members", v.PastorID)}
			})),
		NewCreate:  func() dto.Builder[models.PastoralVisit] { return &dto.CreatePastoralVisitRequest{} },
		NewUpdate:  func() dto.Patcher[models.PastoralVisit] { return &dto.UpdatePastoralVisitRequest{} },
		Filters:    []string{"member_id", "pastor_id"},
		Order:      "visit_date DESC, id DESC",
		ReadRoles:  staffRoles,
		WriteRoles: staffRoles,
	}

	counseling := &Resource[models.PastoralCounseling]{
		Path: "/pastoral-counseling",
		Service: services.NewEntityService("pastoral counseling", repository.NewTenantRepository[models.PastoralCounseling](db), services.HardDelete,
			services.WithReferences(refs, func(s *models.PastoralCounseling) []services.Reference {
				return []services.Reference{refID("member_id", "members", s.MemberID), ref("counselor_id", "members", s.CounselorID)}
			})),
		NewCreate:  func() dto.Builder[models.PastoralCounseling] { return &dto.CreateCounselingRequest{} },
		NewUpdate:  func() dto.Patcher[models.PastoralCounseling] { return &dto.UpdateCounselingRequest{} },
		Filters:    []string{"member_id", "counselor_id"},
		Order:      "session_date DESC, id DESC",
		ReadRoles:  pastoralRoles,
		WriteRoles: pastoralRoles,
	}

	reminders := &Resource[models.Reminder]{
		Path: "/reminders",
		Service: services.NewEntityService("reminder", repository.NewTenantRepository[models.Reminder](db), services.HardDelete,
			services.WithReferences(refs, func(r *models.Reminder) []services.Reference {
				return []services.Reference{ref("profile_id", "profiles", r.ProfileID)}
			})),
		NewCreate: func() dto.Builder[models.Reminder] { return &dto.CreateReminderRequest{} },
		NewUpdate: func() dto.Patcher[models.Reminder] { return &dto.UpdateReminderRequest{} },
		Filters:   []string{"profile_id", "is_done"},
		Order:     "due_date ASC, id ASC",
		// Staff manage every reminder of the church; everyone else only their own.
		Scope: func(session *models.SessionContext) map[string]interface{} {
			if session.HasRole(staffRoles...) {
				return nil
			}
			return map[string]interface{}{"profile_id": session.Profile.ID}
		},
		Confine: func(session *models.SessionContext, r *models.Reminder) {
			if r.ProfileID == nil || !session.HasRole(staffRoles...) {
				id := session.Profile.ID
				r.ProfileID = &id
			}
		},
	}

	announcements := &Resource[models.Announcement]{
		Path:       "/announcements",
		Service:    services.NewEntityService("announcement", repository.NewTenantRepository[models.Announcement](db), services.HardDelete),
		NewCreate:  func() dto.Builder[models.Announcement] { return &dto.CreateAnnouncementRequest{} },
		NewUpdate:  func() dto.Patcher[models.Announcement] { return &dto.UpdateAnnouncementRequest{} },
		Order:      "created_at DESC, id DESC",
		WriteRoles: staffRoles,
		Prepare: func(session *models.SessionContext, a *models.Announcement) {
			id := session.Profile.ID
			a.CreatedBy = &id
		},
	}

	prayerRequests := &Resource[models.PrayerRequest]{
		Path: "/prayer-requests",
		Service: services.NewEntityService("prayer request", repository.NewTenantRepository[models.PrayerRequest](db), services.HardDelete,
			services.WithReferences(refs, func(p *models.PrayerRequest) []services.Reference {
				return []services.Reference{ref("member_id", "members", p.MemberID)}
			})),
		NewCreate: func() dto.Builder[models.PrayerRequest] { return &dto.CreatePrayerRequest{} },
		NewUpdate: func() dto.Patcher[models.PrayerRequest] { return &dto.UpdatePrayerRequest{} },
		Filters:   []string{"member_id", "status", "is_private"},
		Order:     "created_at DESC, id DESC",
		// Private requests are for the pastors only.
		Scope: func(session *models.SessionContext) map[string]interface{} {
			if session.HasRole(pastoralRoles...) {
				return nil
			}
			return map[string]interface{}{"is_private": false}
		},
	}

	return []Registrar{
		members, congregations,
		cells, cellReports, cellVisitors, cellPrayerRequests, cellPastoralCare, cellLeadership,
		ministries, ministryVolunteers, ministrySchedules,
		categories, accounts, campaigns, transactions,
		events, registrations, courses, courseStudents,
		consolidations, discipleships, visits, counseling,
		reminders, announcements, prayerRequests,
	}
}
