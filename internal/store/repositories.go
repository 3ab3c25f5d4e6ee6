package store

import "github.com/MKhiriev/go-smart-cards/internal/logger"

// Repositories groups the per-entity repositories that share one connection
// or one transaction.
type Repositories struct {
	Users UserRepository
	Decks DeckRepository
	Cards CardRepository
}

func newSQLRepositories(db DBTX, idGenerator IDGenerator, log *logger.Logger) *Repositories {
	return &Repositories{
		Users: NewUserRepository(db, log),
		Decks: NewDeckRepository(db, idGenerator, log),
		Cards: NewCardRepository(db, idGenerator, log),
	}
}

// IDGenerator issues primary keys for new rows.
type IDGenerator interface {
	Generate() string
}
