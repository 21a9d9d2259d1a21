// Package pg manages PostgreSQL connectivity: a pgx pool with retrying
// connection establishment, goose-based schema migrations, a health probe
// and error classification helpers.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
// WithTx and TxFromContext propagate a pgx.Tx through context so
// repositories can join a caller's transaction without new plumbing.
package pg
