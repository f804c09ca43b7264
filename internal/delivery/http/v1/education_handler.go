package v1

import (
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	educations := protected.Group("/candidates/:candidateId/educations")
	{
		educations.GET("", handler.List)
		educations.POST("", handler.Create)
		educations.GET("/:id", handler.Get)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}

type EducationRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=256"`
	StartDate      *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Graduated      *bool   `json:"graduated"`
	AreaOfStudy    string  `json:"areaOfStudy" binding:"required,min=1,max=256"`
	EducationLevel string  `json:"educationLevel" binding:"required,oneof=NONE DIPLOMA ASSOCIATES BACHELORS MASTERS DOCTORATE"`
}

func (r *EducationRequest) toUpdate() domain.EducationUpdate {
	return domain.EducationUpdate{
		Name:           r.Name,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Graduated:      r.Graduated,
		AreaOfStudy:    r.AreaOfStudy,
		EducationLevel: domain.EducationLevel(r.EducationLevel),
	}
}

// List godoc
// @Summary      List educations for a candidate
// @Description  List the caller's educations for one candidate, end date ascending
// @Tags         educations
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Router       /api/candidates/{candidateId}/educations [get]
// @Security     BasicAuth
func (h *EducationHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	educations, err := h.educationUC.ListForUserAndCandidate(c.Request.Context(), userID, candidateID)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Education list", educations)
}

// Get godoc
// @Summary      Get an education
// @Tags         educations
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Param        id           path  string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId}/educations/{id} [get]
// @Security     BasicAuth
func (h *EducationHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	education, err := h.educationUC.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if education == nil {
		c.Error(apperror.NotFound("Education not found"))
		return
	}

	response.Success(c, http.StatusOK, "Education details", education)
}

// Create godoc
// @Summary      Create an education
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        candidateId  path  string            true  "Candidate ID"
// @Param        education    body  EducationRequest  true  "Education JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates/{candidateId}/educations [post]
// @Security     BasicAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	education, err := h.educationUC.Create(c.Request.Context(), userID, candidateID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if education == nil {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Education created", education)
}

// Update godoc
// @Summary      Update an education
// @Description  Full replace; the stored owner and candidate must both match
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        candidateId  path  string            true  "Candidate ID"
// @Param        id           path  string            true  "Education ID"
// @Param        education    body  EducationRequest  true  "Education JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{candidateId}/educations/{id} [put]
// @Security     BasicAuth
func (h *EducationHandler) Update(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")
	id := c.Param("id")

	education, err := h.educationUC.Update(c.Request.Context(), id, userID, candidateID, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}
	if education == nil {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Education updated", education)
}

// Delete godoc
// @Summary      Delete an education
// @Tags         educations
// @Produce      json
// @Param        candidateId  path  string  true  "Candidate ID"
// @Param        id           path  string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/candidates/{candidateId}/educations/{id} [delete]
// @Security     BasicAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	if ok := h.educationUC.Delete(c.Request.Context(), id, userID); !ok {
		c.Error(apperror.Internal(nil))
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", nil)
}
