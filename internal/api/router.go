package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"

	"house_rent/internal/api/handler"
	"house_rent/internal/api/middleware"
	"house_rent/internal/app/service"
	"house_rent/internal/common/security"
)

// NewRouter wires all routes. Paths are root-mounted, matching the API the
// original frontend was built against.
func NewRouter(
	tokens *security.Tokens,
	authService *service.AuthService,
	ownerService *service.OwnerService,
	tenantService *service.TenantService,
	propertyService *service.PropertyService,
	contactService *service.ContactService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// The browser frontend lives on another origin; mirror the original's
	// open CORS policy.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Verifies a bearer token when present and puts claims in context;
	// middleware.Authenticator enforces it on protected routes.
	r.Use(jwtauth.Verifier(tokens.Auth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Generic credential routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Group(func(publicAuth chi.Router) {
		authHandler.RegisterRoutes(publicAuth)
	})

	// Owner routes, including the contact-request workflow
	ownerHandler := handler.NewOwnerHandler(ownerService, propertyService, contactService)
	r.Route("/property-owners", ownerHandler.RegisterRoutes)

	// Tenant routes
	tenantHandler := handler.NewTenantHandler(tenantService)
	r.Route("/tenants", tenantHandler.RegisterRoutes)

	// Flat property routes
	propertyHandler := handler.NewPropertyHandler(propertyService)
	r.Route("/properties", propertyHandler.RegisterRoutes)

	// The dashboard view of the logged-in owner
	r.Group(func(ownerAuth chi.Router) {
		ownerAuth.Use(middleware.Authenticator)
		ownerAuth.Use(middleware.RequireSubjectKind(security.SubjectOwner))
		ownerAuth.Get("/current-owner", ownerHandler.Current)
	})

	return r
}
