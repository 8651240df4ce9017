package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/middleware"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/utils"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/validation"
	"gorm.io/gorm"
)

// Registrar mounts routes on a router group.
type Registrar interface {
	Register(group *gin.RouterGroup)
}

// Resource exposes tenant-scoped CRUD routes for one entity.
//
// A nil NewCreate or NewUpdate leaves the matching route out. Create and
// Delete replace the entity service calls when the entity needs more than
// a single row write.
type Resource[T any] struct {
	Path      string
	Service   *services.EntityService[T]
	NewCreate func() dto.Builder[T]
	NewUpdate func() dto.Patcher[T]

	// Filters whitelists the query parameters usable as column filters.
	Filters []string
	Order   string
	Preload []string
	View    func(row *T) any

	ReadRoles  []models.Role
	WriteRoles []models.Role

	// Scope returns the column conditions a session's rows must match.
	// A nil map leaves every row of the church visible.
	Scope func(session *models.SessionContext) map[string]interface{}
	// Confine keeps a row written by the session inside its scope. It runs
	// on create and after every patch.
	Confine func(session *models.SessionContext, row *T)

	Prepare func(session *models.SessionContext, row *T)
	Create  func(ctx context.Context, churchID uint64, row *T) error
	Delete  func(ctx context.Context, churchID, id uint64) error
}

// Register mounts the resource routes under group.
func (r *Resource[T]) Register(group *gin.RouterGroup) {
	read := middleware.RequireRole(r.ReadRoles...)
	write := middleware.RequireRole(r.WriteRoles...)

	g := group.Group(r.Path)
	g.GET("", read, r.list)
	g.GET("/:id", read, r.get)
	if r.NewCreate != nil {
		g.POST("", write, r.create)
	}
	if r.NewUpdate != nil {
		g.PUT("/:id", write, r.update)
	}
	g.DELETE("/:id", write, r.delete)
}

func (r *Resource[T]) list(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)

	filters, err := r.filters(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	for column, value := range r.scope(session) {
		filters[column] = value
	}

	opts := repository.ListOptions{
		Filters:         filters,
		Order:           r.Order,
		Preload:         r.Preload,
		IncludeInactive: c.Query("include_inactive") == "true",
	}
	paged := utils.PaginationRequested(c)
	pagination := utils.GetPaginationParams(c)
	if paged {
		opts.Offset = pagination.Offset
		opts.Limit = pagination.Limit
	}

	rows, total, err := r.Service.List(c.Request.Context(), session.ChurchID(), opts)
	if err != nil {
		respondEntityError(c, r.Service.Name(), err)
		return
	}

	items := make([]any, len(rows))
	for i := range rows {
		items[i] = r.view(&rows[i])
	}
	if !paged {
		pagination.Page = 1
		pagination.Limit = len(rows)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"pagination": utils.PaginationResponse{
			Page:  pagination.Page,
			Limit: pagination.Limit,
			Total: total,
		},
	})
}

func (r *Resource[T]) get(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !r.visible(c, session, id) {
		return
	}

	row, err := r.Service.Get(c.Request.Context(), session.ChurchID(), id, r.Preload...)
	if err != nil {
		respondEntityError(c, r.Service.Name(), err)
		return
	}
	c.JSON(http.StatusOK, r.view(row))
}

func (r *Resource[T]) create(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)

	req := r.NewCreate()
	if !bindJSON(c, req) {
		return
	}
	row, err := req.Build()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if r.Prepare != nil {
		r.Prepare(session, row)
	}
	if r.Confine != nil {
		r.Confine(session, row)
	}

	ctx := c.Request.Context()
	if r.Create != nil {
		err = r.Create(ctx, session.ChurchID(), row)
	} else {
		err = r.Service.Create(ctx, session.ChurchID(), row)
	}
	if err != nil {
		respondEntityError(c, r.Service.Name(), err)
		return
	}

	r.respondStored(c, http.StatusCreated, session.ChurchID(), row)
}

func (r *Resource[T]) update(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	req := r.NewUpdate()
	if !bindJSON(c, req) {
		return
	}
	if !r.visible(c, session, id) {
		return
	}

	row, err := r.Service.Update(c.Request.Context(), session.ChurchID(), id, func(row *T) error {
		if err := req.Apply(row); err != nil {
			return &patchError{err: err}
		}
		if r.Confine != nil {
			r.Confine(session, row)
		}
		return nil
	})
	if err != nil {
		var perr *patchError
		if errors.As(err, &perr) {
			apierrors.BadRequest(c, perr.Error())
			return
		}
		respondEntityError(c, r.Service.Name(), err)
		return
	}

	r.respondStored(c, http.StatusOK, session.ChurchID(), row)
}

func (r *Resource[T]) delete(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if !r.visible(c, session, id) {
		return
	}

	var err error
	if r.Delete != nil {
		err = r.Delete(c.Request.Context(), session.ChurchID(), id)
	} else {
		err = r.Service.Delete(c.Request.Context(), session.ChurchID(), id)
	}
	if err != nil {
		respondEntityError(c, r.Service.Name(), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s deleted successfully", r.Service.Name()),
		"policy":  r.Service.Policy().String(),
	})
}

// respondStored reloads the row with its associations when the view
// depends on them.
func (r *Resource[T]) respondStored(c *gin.Context, status int, churchID uint64, row *T) {
	if len(r.Preload) > 0 {
		if rec, ok := any(row).(models.TenantRecord); ok {
			if loaded, err := r.Service.Get(c.Request.Context(), churchID, rec.GetID(), r.Preload...); err == nil {
				row = loaded
			}
		}
	}
	c.JSON(status, r.view(row))
}

func (r *Resource[T]) scope(session *models.SessionContext) map[string]interface{} {
	if r.Scope == nil {
		return nil
	}
	return r.Scope(session)
}

// visible answers 404 when row id exists but lies outside the session scope.
func (r *Resource[T]) visible(c *gin.Context, session *models.SessionContext, id uint64) bool {
	scope := r.scope(session)
	if scope == nil {
		return true
	}

	filters := map[string]interface{}{"id": id}
	for column, value := range scope {
		filters[column] = value
	}
	_, total, err := r.Service.List(c.Request.Context(), session.ChurchID(), repository.ListOptions{
		Filters:         filters,
		IncludeInactive: true,
		Limit:           1,
	})
	if err != nil {
		respondEntityError(c, r.Service.Name(), err)
		return false
	}
	if total == 0 {
		respondEntityError(c, r.Service.Name(), services.ErrNotFound)
		return false
	}
	return true
}

func (r *Resource[T]) view(row *T) any {
	if r.View != nil {
		return r.View(row)
	}
	return row
}

// filters turns whitelisted query parameters into column conditions.
// Columns ending in _id are numeric and is_* columns are booleans.
func (r *Resource[T]) filters(c *gin.Context) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, column := range r.Filters {
		raw, ok := c.GetQuery(column)
		if !ok || raw == "" {
			continue
		}
		switch {
		case strings.HasSuffix(column, "_id"):
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s", column)
			}
			out[column] = v
		case strings.HasPrefix(column, "is_"):
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s", column)
			}
			out[column] = v
		default:
			out[column] = raw
		}
	}
	return out, nil
}

type patchError struct {
	err error
}

func (e *patchError) Error() string { return e.err.Error() }

func (e *patchError) Unwrap() error { return e.err }

// bindJSON binds the request body and answers 400 with per-field details
// when it does not validate.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if details := validation.FieldErrors(err); details != nil {
			apierrors.BadRequestWithDetails(c, "Invalid request body", details)
		} else {
			apierrors.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

func respondEntityError(c *gin.Context, entity string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrTransactionNotFound),
		errors.Is(err, services.ErrReportNotFound):
		apierrors.NotFound(c, fmt.Sprintf("%s not found", entity))
	case errors.Is(err, services.ErrMemberLimitReached):
		apierrors.InvalidOperation(c, apierrors.ErrCodeLimitReached, err.Error())
	case errors.Is(err, services.ErrEventFull):
		apierrors.InvalidOperation(c, apierrors.ErrCodeLimitReached, err.Error())
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidTransaction),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrCampaignNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCategoryTypeMismatch),
		errors.Is(err, services.ErrInactiveFinanceTarget):
		apierrors.InvalidOperation(c, "", err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		apierrors.Conflict(c, fmt.Sprintf("%s already exists", entity))
	default:
		slog.Error("entity operation failed", "entity", entity, "error", err)
		apierrors.InternalError(c, "")
	}
}
