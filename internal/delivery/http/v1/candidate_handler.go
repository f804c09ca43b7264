package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler mounts the owner-scoped candidate routes. The path
// parameter is named candidateId on every level so the nested education
// and job routes can share the tree.
func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Create)
		candidates.GET("/:candidateId", handler.Get)
		candidates.PUT("/:candidateId", handler.Update)
		candidates.DELETE("/:candidateId", handler.Delete)
	}
}

type CandidateRequest struct {
	FirstName   string `json:"firstName" binding:"required,min=1,max=256"`
	LastName    string `json:"lastName" binding:"required,min=1,max=256"`
	Summary     string `json:"summary" binding:"max=4000"`
	LinkedInURL string `json:"linkedInUrl" binding:"omitempty,startswith=https://www.linkedin.com,max=2048"`
	GithubURL   string `json:"githubUrl" binding:"omitempty,startswith=https://github.com,max=2048"`
}

func (r *CandidateRequest) toUpdate() domain.CandidateUpdate {
	return domain.CandidateUpdate{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Summary:     r.Summary,
		LinkedInURL: r.LinkedInURL,
		GithubURL:   r.GithubURL,
	}
}

// List godoc
// @Summary      List own candidates
// @Description  List the caller's candidates ordered by last name
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/candidates [get]
// @Security     BasicAuth
func (h *CandidateHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	candidates, err := h.candidateUC.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

// Get godoc
// @Summary      Get a candidate
// @Description  Get one of the caller's candidates by id
// @Tags         candidates
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId} [get]
// @Security     BasicAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("candidateId")

	candidate, err := h.candidateUC.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if candidate == nil {
		c.Error(apperror.NotFound("Candidate not found"))
		return
	}

	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body  CandidateRequest  true  "Candidate JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates [post]
// @Security     BasicAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	candidate, err := h.candidateUC.Create(c.Request.Context(), userID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if candidate == nil {
		// save failed; details are in the logs only
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Candidate created", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Full replace of the candidate's mutable fields
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidateId  path  string            true  "Candidate ID"
// @Param        candidate    body  CandidateRequest  true  "Candidate JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId} [put]
// @Security     BasicAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("candidateId")

	candidate, err := h.candidateUC.Update(c.Request.Context(), id, userID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if candidate == nil {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Description  Delete a candidate and cascade to the caller's jobs and educations
// @Tags         candidates
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates/{candidateId} [delete]
// @Security     BasicAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("candidateId")

	if ok := h.candidateUC.Delete(c.Request.Context(), id, userID); !ok {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}
