package app

import (
	"context"
	"log/slog"
	"time"

	"vitrine-backend/internal/blogposts"
	"vitrine-backend/internal/casestudies"
	"vitrine-backend/internal/companies"
	"vitrine-backend/internal/config"
	"vitrine-backend/internal/contacts"
	"vitrine-backend/internal/db"
	"vitrine-backend/internal/signin"
	"vitrine-backend/internal/users"
)

// Repositories holds one store per collection.
type Repositories struct {
	Users       users.Repository
	Companies   companies.Repository
	CaseStudies casestudies.Repository
	BlogPosts   blogposts.Repository
	Contacts    contacts.Repository
	Tokens      signin.Repository
}

func MongoRepositories(cols *db.Collections) *Repositories {
	return &Repositories{
		Users:       users.NewRepository(cols.Users),
		Companies:   companies.NewRepository(cols.Companies),
		CaseStudies: casestudies.NewRepository(cols.CaseStudies),
		BlogPosts:   blogposts.NewRepository(cols.BlogPosts),
		Contacts:    contacts.NewRepository(cols.ContactRequests),
		Tokens:      signin.NewRepository(cols.VerificationTokens),
	}
}

// MemoryRepositories keeps everything in process. Data is lost on exit.
func MemoryRepositories() *Repositories {
	return &Repositories{
		Users:       users.NewMemoryRepository(),
		Companies:   companies.NewMemoryRepository(),
		CaseStudies: casestudies.NewMemoryRepository(),
		BlogPosts:   blogposts.NewMemoryRepository(),
		Contacts:    contacts.NewMemoryRepository(),
		Tokens:      signin.NewMemoryRepository(),
	}
}

// OpenRepositories selects the store named by STORE_DRIVER. The returned
// function releases the underlying connection.
func OpenRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Repositories, func(context.Context) error, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("using in-memory store, data will not survive a restart")
		return MemoryRepositories(), func(context.Context) error { return nil }, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))

	if err := db.EnsureIndexes(connectCtx, cols); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return MongoRepositories(cols), client.Disconnect, nil
}
