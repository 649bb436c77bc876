package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shiprate/shiprate-server/internal/service"
)

// Handler carries the injected services for all API endpoints.
type Handler struct {
	dashboards service.DashboardService
	ships      service.ShipService
	ratings    service.RatingService
	feedback   service.FeedbackService
	auth       service.AuthService
	hints      service.InstallHintProvider
	log        *zap.Logger
}

func New(
	dashboards service.DashboardService,
	ships service.ShipService,
	ratings service.RatingService,
	feedback service.FeedbackService,
	auth service.AuthService,
	hints service.InstallHintProvider,
	log *zap.Logger,
) *Handler {
	return &Handler{
		dashboards: dashboards,
		ships:      ships,
		ratings:    ratings,
		feedback:   feedback,
		auth:       auth,
		hints:      hints,
		log:        log,
	}
}

var categoryNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

// RegisterValidations installs custom rules on gin's validator engine.
// "scorecategory" constrains rating category keys (cabin, bridge, ...).
func RegisterValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("scorecategory", func(fl validator.FieldLevel) bool {
			return categoryNameRe.MatchString(fl.Field().String())
		})
	}
	return nil
}
