// Package database resolves connection URIs to storage adapter types and
// hosts the per-engine subpackages (pg, redis, mongo).
//
// Resolve inspects only the URI scheme, so an application can decide which
// adapter to construct before touching the network:
//
//	adapter, err := database.Resolve("mongodb+srv://cluster0.example.net/app")
//	if err != nil {
//		return err
//	}
//	switch adapter.Type {
//	case database.AdapterMongoDB:
//		// mongo.New(...)
//	case database.AdapterPostgreSQL:
//		// pg.Connect(...)
//	}
package database
