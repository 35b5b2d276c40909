// Package staffapi implements the HTTP surface of the staff panel: the
// public guide endpoints, the login endpoint and the session-guarded staff
// management API.
package staffapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xerodma/panel/session"
	"github.com/xerodma/panel/storage/model"
)

// Options controls optional features of the API registration.
type Options struct {
	// UsersEnabled controls whether the staff-user management API is
	// mounted.
	UsersEnabled bool
	// DownloadBaseURL is the public base URL download links are built
	// from, e.g. "https://xerodma.com".
	DownloadBaseURL string
	// LoginPath is where unauthenticated dashboard requests are
	// redirected to.
	LoginPath string
	// SessionTTL is the lifetime of minted sessions, used for cookie
	// expiry. Zero means session.DefaultTTL.
	SessionTTL time.Duration
}

// Register mounts all panel routes on the passed app: the public API under
// /api, the guarded staff API under /api/staff and the dashboard page
// guard. The session guard is installed on the staff group before any of
// its handlers, so no protected handler can run without a prior successful
// guard evaluation.
func Register(app *fiber.App, storages model.Backends, sessions *session.Codec, opts *Options) {
	if opts == nil {
		opts = &Options{UsersEnabled: true}
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/staff"
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}

	api := app.Group("/api")
	registerLogin(api, storages.Users, sessions, ttl)
	registerPublicGuides(api, storages.Guides)

	staff := app.Group("/api/staff", RequireSession(sessions))
	registerLogout(staff)
	registerStaffGuides(staff, storages.Guides)
	registerStaffFiles(staff, storages.Files, opts.DownloadBaseURL)
	if opts.UsersEnabled {
		registerStaffUsers(staff, storages.Users)
	}

	// Dashboard pages are served by the frontend; the guard only decides
	// whether the request may pass or bounces it to the login page.
	app.Use("/staff/dashboard", RequireSessionOrRedirect(sessions, loginPath))
}
