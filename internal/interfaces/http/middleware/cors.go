package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
)

// CORS admits browser calls from the configured origins. A single "*"
// entry allows any origin, without credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			constants.HeaderAuthorization, constants.HeaderContentType,
			"Accept", "Origin", constants.HeaderXRequestID,
		},
		ExposeHeaders: []string{"Content-Length", constants.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	}

	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
		if len(allowedOrigins) == 0 {
			// cors.New rejects an empty origin list
			cfg.AllowOriginFunc = func(string) bool { return false }
		}
	}

	return cors.New(cfg)
}
