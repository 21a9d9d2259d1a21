// Package mongo creates verified MongoDB clients using the official driver,
// with retrying connection establishment sized for Atlas cold starts, plus a
// health probe.
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "lockit")
package mongo
