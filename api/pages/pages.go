// Package pages serves the site's server-rendered views: the marketing
// homepage, the auth screens, and the signed-in dashboard and settings.
package pages

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/myryde/myryde-backend/internal/auth"
	"github.com/myryde/myryde-backend/internal/booking"
	"github.com/myryde/myryde-backend/internal/rides"
	"github.com/myryde/myryde-backend/internal/theme"
	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the embedded stylesheet and other assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Renderer holds the parsed templates and the services the views read from.
type Renderer struct {
	tmpl     *template.Template
	auth     auth.Service
	booking  *booking.Service
	theme    *theme.Store
	minScore int
	logg     *logger.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(authSvc auth.Service, bookingSvc *booking.Service, themeStore *theme.Store, passwordCfg config.PasswordConfig, logg *logger.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		tmpl:     tmpl,
		auth:     authSvc,
		booking:  bookingSvc,
		theme:    themeStore,
		minScore: passwordCfg.MinStrengthScore,
		logg:     logg,
	}, nil
}

type pageData struct {
	Title     string
	Theme     theme.Theme
	User      any
	QuickLink booking.Handoff
	Options   []booking.RideOption
	Rides     []rides.Ride
	ActiveTab string
	Error     string
	MinScore  int
}

func (p *Renderer) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data.Theme == "" {
		data.Theme = theme.Light
		if p.theme != nil {
			if current, err := p.theme.Current(r.Context()); err == nil {
				data.Theme = current
			}
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil && p.logg != nil {
		p.logg.Error(r.Context(), "page.render", err)
	}
}

// Home renders the marketing page with the WhatsApp quick link.
func (p *Renderer) Home(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "home.html", pageData{
		Title:     "MyRyde - Quick rides in Ogbomosho",
		QuickLink: p.booking.QuickLink(),
		Options:   booking.Options(),
	})
}

// Login renders the sign-in form.
func (p *Renderer) Login(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "login.html", pageData{Title: "Sign in - MyRyde"})
}

// Signup renders the registration form with the strength meter threshold.
func (p *Renderer) Signup(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "signup.html", pageData{
		Title:    "Create account - MyRyde",
		MinScore: p.minScore,
	})
}

// ForgotPassword renders the recovery request form.
func (p *Renderer) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "forgot_password.html", pageData{Title: "Forgot password - MyRyde"})
}

// ResetPassword renders the recovery completion form.
func (p *Renderer) ResetPassword(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "reset_password.html", pageData{Title: "Reset password - MyRyde"})
}

// VerifyEmail renders the verification screen.
func (p *Renderer) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "verify_email.html", pageData{Title: "Verify email - MyRyde"})
}

// Dashboard renders the signed-in home with its tabbed sections.
func (p *Renderer) Dashboard(w http.ResponseWriter, r *http.Request) {
	p.renderDashboard(w, r, "")
}

func (p *Renderer) renderDashboard(w http.ResponseWriter, r *http.Request, formError string) {
	user, ok := p.auth.CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "ride-history", "profile", "payment":
	default:
		tab = "book-ride"
	}

	p.render(w, r, "dashboard.html", pageData{
		Title:     "Dashboard - MyRyde",
		User:      user,
		Options:   booking.Options(),
		Rides:     rides.History(),
		ActiveTab: tab,
		Error:     formError,
	})
}

// BookRide handles the dashboard booking form. Valid submissions redirect to
// the WhatsApp link; invalid ones re-render the form with the error.
func (p *Renderer) BookRide(w http.ResponseWriter, r *http.Request) {
	user, ok := p.auth.CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		p.renderDashboard(w, r, "invalid form submission")
		return
	}

	handoff, err := p.booking.BuildHandoff(booking.HandoffRequest{
		FullName:    user.FullName,
		Phone:       user.Phone,
		Pickup:      r.PostFormValue("pickup"),
		Destination: r.PostFormValue("destination"),
		RideType:    booking.RideType(r.PostFormValue("rideType")),
	})
	if err != nil {
		msg := "booking failed"
		if typed := pkgerrors.As(err); typed != nil {
			msg = typed.Message()
		}
		p.renderDashboard(w, r, msg)
		return
	}

	http.Redirect(w, r, handoff.URL, http.StatusSeeOther)
}

// Settings renders the account settings screen.
func (p *Renderer) Settings(w http.ResponseWriter, r *http.Request) {
	user, ok := p.auth.CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	p.render(w, r, "settings.html", pageData{
		Title: "Settings - MyRyde",
		User:  user,
	})
}
