// Package backand is a client for the Backand backend-as-a-service
// REST API: typed CRUD calls on an app's objects, named server-side
// queries, bulk actions, and the sign-up/sign-in/sign-out flow with
// its three credential modes.
//
// A minimal round trip:
//
//	cfg := &config.Config{AppName: "todoapp", AnonymousToken: "anon-..."}
//	client, _ := backand.New(cfg)
//	resp, err := client.ReadItems(ctx, "todos",
//		query.PageSize(20),
//		query.Filters(query.Where("done", query.OperatorEquals, false)),
//	)
//
// Debug tracing goes through kemba; run with DEBUG=backand:* to see it.
package backand
