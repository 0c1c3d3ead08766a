package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sorawit/coursereg/internal/app/models/dto"
	"github.com/sorawit/coursereg/internal/app/services"
	"github.com/sorawit/coursereg/internal/middleware"
	"github.com/sorawit/coursereg/internal/pkg/metrics"
	"github.com/sorawit/coursereg/internal/workflow"
)

// SessionController exposes the registration workflow over HTTP. Every
// endpoint except Open addresses a session by its opaque token.
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// sessionState maps a session to its wire representation, draining the
// queued notifications in the same response.
func sessionState(session *services.Session) dto.SessionStateDTO {
	snap := session.Workflow.State()

	notices := session.DrainNotices()
	out := make([]dto.Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.Notice{Message: n.Message, Kind: string(n.Kind)})
	}

	status := snap.Course.DerivedStatus(time.Now())
	return dto.SessionStateDTO{
		Phase:           string(snap.Phase),
		Step:            int(snap.Step),
		Draft:           snap.Draft,
		ValidationError: snap.ValidationError,
		InFlight:        snap.InFlight,
		Result:          snap.Result,
		Course:          dto.NewCourseResponse(snap.Course, status),
		Notices:         out,
	}
}

// Open starts a registration session for a course
func (c *SessionController) Open(ctx *gin.Context) {
	session, err := c.sessionService.OpenSession(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.OpenSessionResponse{
			SessionToken: session.Token,
			State:        sessionState(session),
		},
		Timestamp: time.Now(),
	})
}

// GetState returns the current session state plus queued notifications
func (c *SessionController) GetState(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessionState(session),
		Timestamp: time.Now(),
	})
}

// PatchDraft applies a partial field update to the draft
func (c *SessionController) PatchDraft(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.DraftPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid draft data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := session.Workflow.UpdateDraft(req.ToPatch()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessionState(session),
		Timestamp: time.Now(),
	})
}

// Next validates the current step and advances. A validation failure leaves
// the step unchanged and returns the step-scoped message.
func (c *SessionController) Next(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := session.Workflow.Advance(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessionState(session),
		Timestamp: time.Now(),
	})
}

// Back moves to the previous step
func (c *SessionController) Back(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := session.Workflow.Back(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessionState(session),
		Timestamp: time.Now(),
	})
}

// UploadDocuments ingests the multipart file selection, replacing any
// previously accepted attachments.
func (c *SessionController) UploadDocuments(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid multipart form")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var uploads []workflow.FileUpload
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Failed to read uploaded file")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Failed to read uploaded file")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		uploads = append(uploads, workflow.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	result, err := session.Workflow.IngestFiles(uploads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if result.Rejected > 0 {
		metrics.FilesRejectedTotal.Add(float64(result.Rejected))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.IngestResponse{
			Accepted: result.Accepted,
			Rejected: result.Rejected,
			State:    sessionState(session),
		},
		Timestamp: time.Now(),
	})
}

// Submit commits the draft as a registration
func (c *SessionController) Submit(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reg, err := session.Workflow.Submit(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SubmitResponse{
			Registration: reg,
			State:        sessionState(session),
		},
		Timestamp: time.Now(),
	})
}

// Close ends the session and discards the draft
func (c *SessionController) Close(ctx *gin.Context) {
	if err := c.sessionService.CloseSession(ctx.Param("token")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Session closed"},
		Timestamp: time.Now(),
	})
}
