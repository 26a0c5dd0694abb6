// Package webumenia provides programmatic access to the Web umenia
// catalogue: fulltext and faceted search, autocomplete suggestions,
// per-item similarity and authority previews over locale-qualified
// search indices.
//
// # Basic usage
//
//	client, err := webumenia.New(
//	    webumenia.WithEngineURL("http://localhost:9200"),
//	    webumenia.WithLocales("sk", "en", "cs"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	page, _ := client.Search().
//	    Query("zima").
//	    Author("galanda, mikuláš").
//	    FromYear(1900).
//	    Size(20).
//	    Do(ctx)
//
// Single lookups go straight by id; an empty locale uses the default:
//
//	it, _ := client.Get(ctx, "SVK:SNG.O_184", "")
//	similar, _ := client.Similar(ctx, it.ID, 8, "")
//
// # Response caching
//
// Search responses can be cached in Redis. Lookups by id always bypass
// the cache:
//
//	client, err := webumenia.New(
//	    webumenia.WithEngineURL("http://localhost:9200"),
//	    webumenia.WithCache(time.Hour, "localhost:6379"),
//	)
package webumenia
