package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendship-offers/internal/api/engagement"
	friendsapi "friendship-offers/internal/api/friends"
	"friendship-offers/internal/api/health"
	"friendship-offers/internal/api/tierrequests"
	tiersapi "friendship-offers/internal/api/tiers"
	"friendship-offers/internal/api/visitors"
	"friendship-offers/internal/app/http/middleware"
	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/domain/tiers"
	"friendship-offers/internal/notify"
)

// Deps is everything the routes need. All of it is read-only after
// construction.
type Deps struct {
	Log         *zap.Logger
	CORSOrigins []string
	Catalog     *tiers.Catalog
	Matcher     *friends.Matcher
	Notifier    *notify.Notifier
}

// NewEngine builds the router shared by the server and the serverless
// function.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(middleware.MethodNotAllowed)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORS(d.CORSOrigins),
		middleware.Preflight(),
	)
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/health", health.Check)
	api.GET("/tiers", tiersapi.NewHandler(d.Catalog).List)

	// Dispatch policy is per route: a lost tier request or visitor alert
	// is reported, a lost show-more is not.
	submit := tierrequests.NewHandler(d.Notifier, d.Catalog, notify.DispatchStrict, d.Log)
	showMore := engagement.NewHandler(d.Notifier, notify.DispatchBestEffort, d.Log)
	visitor := visitors.NewHandler(d.Notifier, d.Matcher, notify.DispatchStrict, d.Log)

	public := api.Group("/")
	public.Use(middleware.SanitizeJSONStrings())
	public.POST("/submit-tier", submit.Submit)
	public.POST("/show-more", showMore.ShowMore)
	public.POST("/visitor-notification", visitor.Notify)
	public.POST("/friends/match", friendsapi.NewHandler(d.Matcher).Match)
}
