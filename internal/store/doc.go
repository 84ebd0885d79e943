// Package store defines the persistence interfaces for the Poteto
// entities and the transaction machinery shared by their
// implementations.
//
// Each entity has its own store interface whose implementations run
// parameterized statements against a DBTX, which both *sql.DB and
// *sql.Tx satisfy. Write paths are composed inside a UnitOfWork so
// that every statement of one logical operation observes the same
// transaction; RunInUnitOfWork is the scoped form used by the
// application services.
package store
