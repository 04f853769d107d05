package app

import (
	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/blogposts"
	"vitrine-backend/internal/casestudies"
	"vitrine-backend/internal/companies"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/contacts"
	"vitrine-backend/internal/notifications"
	"vitrine-backend/internal/signin"
	"vitrine-backend/internal/users"
	"vitrine-backend/internal/validation"
)

type Services struct {
	Users       *users.Service
	Companies   *companies.Service
	CaseStudies *casestudies.Service
	BlogPosts   *blogposts.Service
	Contacts    *contacts.Service
	SignIn      *signin.Service
}

// Collaborators are the optional outbound dependencies. Leave a field nil to
// disable the feature it backs.
type Collaborators struct {
	StaffNotifier contacts.Notifier
	OTPSender     notifications.VerificationSender
	Tokens        *auth.Manager
}

func NewServices(repos *Repositories, cfg *config.Config, deps Collaborators) *Services {
	val := validation.New()
	loc := cfg.Timezone

	userService := users.NewService(repos.Users, val, loc)
	return &Services{
		Users:       userService,
		Companies:   companies.NewService(repos.Companies, val, loc),
		CaseStudies: casestudies.NewService(repos.CaseStudies, val, loc),
		BlogPosts:   blogposts.NewService(repos.BlogPosts, val, loc),
		Contacts:    contacts.NewService(repos.Contacts, val, loc, deps.StaffNotifier),
		SignIn:      signin.NewService(repos.Tokens, deps.OTPSender, userService, deps.Tokens, val),
	}
}
