package web

import (
	"net/http"
	"time"

	"go-resume-backend/config"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookie = "auth_token"

// Handler serves the browser-facing pages: the public resume index and
// timeline, plus login/signup/account backed by the user-service.
type Handler struct {
	cfg         *config.Config
	authUC      domain.AuthUsecase
	candidateUC domain.CandidateUsecase
	educationUC domain.EducationUsecase
	jobUC       domain.JobUsecase
}

func NewHandler(router *gin.Engine, cfg *config.Config, authUC domain.AuthUsecase, candidateUC domain.CandidateUsecase, educationUC domain.EducationUsecase, jobUC domain.JobUsecase) {
	handler := &Handler{
		cfg:         cfg,
		authUC:      authUC,
		candidateUC: candidateUC,
		educationUC: educationUC,
		jobUC:       jobUC,
	}

	router.GET("/", handler.Index)
	router.GET("/login", handler.LoginPage)
	router.POST("/login", handler.Login)
	router.GET("/signup", handler.SignupPage)
	router.POST("/signup", handler.Signup)
	router.GET("/logout", handler.Logout)
	router.GET("/account", handler.Account)
	router.POST("/account/password", handler.GeneratePassword)
}

// Index renders the public resume list, or one candidate's timeline when
// candidateId is present. Open-ended timeline entries sort first, the
// rest newest first.
func (h *Handler) Index(c *gin.Context) {
	candidateID := c.Query("candidateId")
	if candidateID != "" {
		h.timeline(c, candidateID)
		return
	}

	candidates, err := h.candidateUC.ListAll(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load candidates"})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"candidates": candidates,
		"loggedIn":   h.sessionUserID(c) != "",
	})
}

func (h *Handler) timeline(c *gin.Context, candidateID string) {
	ctx := c.Request.Context()

	candidate, err := h.candidateUC.GetByID(ctx, candidateID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load candidate"})
		return
	}
	if candidate == nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Candidate not found"})
		return
	}

	educations, err := h.educationUC.ListByCandidateID(ctx, candidateID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load educations"})
		return
	}
	jobs, err := h.jobUC.ListByCandidateID(ctx, candidateID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load jobs"})
		return
	}

	c.HTML(http.StatusOK, "candidate.html", gin.H{
		"candidate":  candidate,
		"educations": educations,
		"jobs":       jobs,
		"loggedIn":   h.sessionUserID(c) != "",
	})
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authUC.AuthenticateForm(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.issueSession(user)
	if err != nil {
		logger.Log.Error("failed to sign session token", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Could not start session"})
		return
	}

	c.SetCookie(sessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/account")
}

func (h *Handler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *Handler) Signup(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	passwordCopy := c.PostForm("passwordCopy")

	if email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": "Email and password are required"})
		return
	}
	if password != passwordCopy {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"error": "Passwords do not match"})
		return
	}

	if err := h.authUC.SignUp(c.Request.Context(), email, password); err != nil {
		logger.Log.Error("signup failed", "email", email, "error", err)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{"error": "Could not create the account"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Account shows the logged-in user's id, which doubles as the Basic auth
// username for the REST and GraphQL APIs.
func (h *Handler) Account(c *gin.Context) {
	userID, email := h.session(c)
	if userID == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "account.html", gin.H{
		"userId":   userID,
		"email":    email,
		"loggedIn": true,
	})
}

// GeneratePassword rotates the API password and shows the new plaintext
// exactly once.
func (h *Handler) GeneratePassword(c *gin.Context) {
	userID, email := h.session(c)
	if userID == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	password, err := h.authUC.GenerateAPIPassword(c.Request.Context(), "", userID)
	if err != nil {
		logger.Log.Error("api password rotation failed", "userId", userID, "error", err)
		c.HTML(http.StatusInternalServerError, "account.html", gin.H{
			"userId":   userID,
			"email":    email,
			"error":    "Could not generate a new password",
			"loggedIn": true,
		})
		return
	}

	c.HTML(http.StatusOK, "account.html", gin.H{
		"userId":   userID,
		"email":    email,
		"password": password,
		"loggedIn": true,
	})
}

func (h *Handler) issueSession(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *Handler) session(c *gin.Context) (userID, email string) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie == "" {
		return "", ""
	}
	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ""
	}
	userID, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	return userID, email
}

func (h *Handler) sessionUserID(c *gin.Context) string {
	userID, _ := h.session(c)
	return userID
}
