package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/cache"
	"github.com/yeremiapane/crm-backend/controllers"
	"github.com/yeremiapane/crm-backend/events"
	"github.com/yeremiapane/crm-backend/middlewares"
	"github.com/yeremiapane/crm-backend/monitoring"
	"github.com/yeremiapane/crm-backend/services"
	"github.com/yeremiapane/crm-backend/utils"
	"gorm.io/gorm"
)

// Options carries the optional collaborators. The zero value gives a router
// with no cache, no event delivery, no rate limit, no metrics and no Sentry.
type Options struct {
	Cache       cache.DashboardCache
	Publisher   events.Publisher
	Hub         *events.Hub
	Metrics     *monitoring.Metrics
	RateLimiter *middlewares.RateLimiter
	Sentry      bool
	Clock       func() time.Time
}

func (o Options) serviceOptions() []services.Option {
	var opts []services.Option
	if o.Clock != nil {
		opts = append(opts, services.WithClock(o.Clock))
	}
	if o.Cache != nil {
		opts = append(opts, services.WithCache(o.Cache))
	}

	var publishers events.Multi
	if o.Publisher != nil {
		publishers = append(publishers, o.Publisher)
	}
	if o.Hub != nil {
		publishers = append(publishers, o.Hub)
	}
	if len(publishers) > 0 {
		opts = append(opts, services.WithPublisher(publishers))
	}
	return opts
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.RateLimit())
	}
	if opts.Metrics != nil {
		r.Use(middlewares.PrometheusMetrics(opts.Metrics))
	}
	if opts.Sentry {
		r.Use(middlewares.SentryMiddleware())
	}

	svcOpts := opts.serviceOptions()
	enquiryService := services.NewEnquiryService(db, svcOpts...)
	pickupService := services.NewPickupService(db, enquiryService, svcOpts...)

	enquiryCtrl := controllers.NewEnquiryController(enquiryService)
	pickupCtrl := controllers.NewPickupController(pickupService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "CRM Backend Running...")
	})
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.Hub != nil {
		r.GET("/ws", opts.Hub.ServeWS)
	}

	api := r.Group("/api")
	registerEnquiryRoutes(api.Group("/enquiry"), enquiryCtrl)
	registerPickupRoutes(api.Group("/pickup"), pickupCtrl)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
