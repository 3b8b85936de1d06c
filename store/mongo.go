package store

import "go.mongodb.org/mongo-driver/mongo/options"

// findOneAndUpdateAfter devolve as opções padrão de findOneAndUpdate
// retornando o documento já atualizado.
func findOneAndUpdateAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// upsertAfter idem, com upsert habilitado (create-or-update atômico).
func upsertAfter() *options.FindOneAndUpdateOptions {
	return findOneAndUpdateAfter().SetUpsert(true)
}
