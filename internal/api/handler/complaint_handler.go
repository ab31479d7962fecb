package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grievance-portal/gateway/internal/api/metrics"
	"github.com/grievance-portal/gateway/internal/core/domain"
	"github.com/grievance-portal/gateway/internal/core/ports"
)

// maxProofFiles bounds one proof submission.
const maxProofFiles = 10

// ComplaintHandler handles complaint submission and the approval workflow.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Categories handles GET /api/v1/complaints/categories.
//
// @Summary      List submission categories
// @Tags         complaints
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/v1/complaints/categories [get]
func (h *ComplaintHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{
		Categories: h.service.Categories(),
		Other:      domain.CategoryOther,
	})
}

// Submit handles POST /api/v1/complaints. A session is optional; when
// present its token is forwarded.
//
// @Summary      Submit a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                  false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      submitComplaintRequest  true   "Complaint details"
// @Success      201              {object}  complaintResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /api/v1/complaints [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req submitComplaintRequest
	if err := validated(c, &req); err != nil {
		metrics.ComplaintsSubmittedTotal.WithLabelValues(string(domain.OutcomeRefused)).Inc()
		return err
	}

	created, err := h.service.Submit(c.Request().Context(), toDraft(req), c.Request().Header.Get("Idempotency-Key"))
	metrics.ComplaintsSubmittedTotal.WithLabelValues(string(domain.OutcomeOf(err))).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toComplaintResponse(created))
}

// List handles GET /api/v1/complaints.
//
// @Summary      List complaints visible to the session
// @Tags         complaints
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   complaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]complaintResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toComplaintResponse(&list[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/complaints/:id with the workflow rendered for the
// acting role.
//
// @Summary      Get a complaint and its workflow
// @Tags         complaints
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Complaint id"
// @Success      200  {object}  complaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(view))
}

// Assign handles POST /api/v1/complaints/:id/assign.
//
// @Summary      Assign a worker
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string         true  "Complaint id"
// @Param        body  body      assignRequest  true  "Assignment: workerId, slaMinutes (or worker_id, sla_minutes), group, remarks"
// @Success      200   {object}  complaintResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/complaints/{id}/assign [post]
func (h *ComplaintHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	view, err := h.service.Assign(c.Request().Context(), c.Param("id"), toAssignment(req))
	countAction(domain.ActionAssign, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(view))
}

// Act handles POST /api/v1/complaints/:id/actions for approve, reject and
// escalate.
//
// @Summary      Approve, reject or escalate
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string         true  "Complaint id"
// @Param        body  body      actionRequest  true  "Action and note"
// @Success      200   {object}  complaintResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/complaints/{id}/actions [post]
func (h *ComplaintHandler) Act(c echo.Context) error {
	var req actionRequest
	if err := validated(c, &req); err != nil {
		return err
	}

	cmd := domain.WorkflowCommand{Action: domain.Action(req.Action), Note: req.Note}
	return h.act(c, cmd)
}

// Proof handles POST /api/v1/complaints/:id/proof, a multipart upload of
// the files a junior engineer attaches as proof of work.
//
// @Summary      Submit proof of work
// @Tags         workflow
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionCookie
// @Param        id     path      string  true   "Complaint id"
// @Param        files  formData  file    true   "Proof files"
// @Param        note   formData  string  false  "Note"
// @Success      200    {object}  complaintResponse
// @Failure      409    {object}  errorResponse
// @Failure      413    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /api/v1/complaints/{id}/proof [post]
func (h *ComplaintHandler) Proof(c echo.Context) error {
	uploads, err := readUploads(c, "files")
	if err != nil {
		return err
	}

	cmd := domain.WorkflowCommand{
		Action:  domain.ActionSubmitProof,
		Note:    c.FormValue("note"),
		Uploads: uploads,
	}
	return h.act(c, cmd)
}

func (h *ComplaintHandler) act(c echo.Context, cmd domain.WorkflowCommand) error {
	view, err := h.service.Act(c.Request().Context(), c.Param("id"), cmd)
	countAction(cmd.Action, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(view))
}

func countAction(a domain.Action, err error) {
	metrics.WorkflowActionsTotal.WithLabelValues(string(a), string(domain.OutcomeOf(err))).Inc()
}

// readUploads returns the files of a multipart field. A request that is not
// multipart yields no files, which the service refuses.
func readUploads(c echo.Context, field string) ([]domain.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	headers := form.File[field]
	if len(headers) > maxProofFiles {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("at most %d files per submission", maxProofFiles))
	}

	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable file "+fh.Filename)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable file "+fh.Filename)
		}
		uploads = append(uploads, domain.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}
	return uploads, nil
}
