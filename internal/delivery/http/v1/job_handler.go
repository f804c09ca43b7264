package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/candidates/:candidateId/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	CompanyName      string   `json:"companyName" binding:"required,min=1,max=256"`
	Title            string   `json:"title" binding:"required,min=1,max=256"`
	StartDate        *string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          *string  `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Skills           []string `json:"skills"`
	Achievements     []string `json:"achievements"`
	CurrentlyWorking *bool    `json:"currentlyWorking" binding:"required"`
	ReasonForLeaving string   `json:"reasonForLeaving" binding:"required,min=1,max=1000"`
}

func (r *JobRequest) toUpdate() domain.JobUpdate {
	return domain.JobUpdate{
		CompanyName:      r.CompanyName,
		Title:            r.Title,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Skills:           r.Skills,
		Achievements:     r.Achievements,
		CurrentlyWorking: r.CurrentlyWorking,
		ReasonForLeaving: r.ReasonForLeaving,
	}
}

// List godoc
// @Summary      List jobs for a candidate
// @Description  List the caller's jobs for one candidate, end date ascending
// @Tags         jobs
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Router       /api/candidates/{candidateId}/jobs [get]
// @Security     BasicAuth
func (h *JobHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	jobs, err := h.jobUC.ListForUserAndCandidate(c.Request.Context(), userID, candidateID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Param        id           path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId}/jobs/{id} [get]
// @Security     BasicAuth
func (h *JobHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	job, err := h.jobUC.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if job == nil {
		c.Error(apperror.NotFound("Job not found"))
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        candidateId  path  string      true  "Candidate ID"
// @Param        job          body  JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates/{candidateId}/jobs [post]
// @Security     BasicAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	job, err := h.jobUC.Create(c.Request.Context(), userID, candidateID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if job == nil {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Full replace; the stored owner and candidate must both match
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        candidateId  path  string      true  "Candidate ID"
// @Param        id           path  string      true  "Job ID"
// @Param        job          body  JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId}/jobs/{id} [put]
// @Security     BasicAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")
	id := c.Param("id")

	job, err := h.jobUC.Update(c.Request.Context(), id, userID, candidateID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if job == nil {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Param        id           path  string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates/{candidateId}/jobs/{id} [delete]
// @Security     BasicAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	if ok := h.jobUC.Delete(c.Request.Context(), id, userID); !ok {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
