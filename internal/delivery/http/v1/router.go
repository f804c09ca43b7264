package v1

import (
	"net/http"
	"time"

	"go-resume-backend/config"
	"go-resume-backend/internal/delivery/graph"
	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/delivery/web"
	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	EducationUC domain.EducationUsecase
	JobUC       domain.JobUsecase
	GQLSchema   graphql.Schema
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Browser pages
	web.NewHandler(r, deps.Config, deps.AuthUC, deps.CandidateUC, deps.EducationUC, deps.JobUC)

	rateLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	})

	// REST API, Basic auth or session cookie
	api := r.Group("/api")
	api.Use(rateLimit)
	api.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewCandidateHandler(api, deps.CandidateUC)
		NewEducationHandler(api, deps.EducationUC)
		NewJobHandler(api, deps.JobUC)
	}

	// GraphQL shares the API's auth and rate limit
	gql := r.Group("/graphql")
	gql.Use(rateLimit)
	gql.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	gql.POST("", graph.NewHandler(deps.GQLSchema))

	return r
}
