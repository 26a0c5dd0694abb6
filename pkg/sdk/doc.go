// Package sdk provides a typed HTTP client for the webumenia catalogue
// API.
//
//	client, err := sdk.New("https://api.webumenia.sk",
//	    sdk.WithAPIKey(os.Getenv("WEBUMENIA_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := client.SearchItems(ctx, sdk.SearchParams{
//	    Query:  "zima",
//	    Author: "galanda, mikuláš",
//	    Size:   20,
//	})
//
// Server-reported failures come back as *APIError; inspect its Code to
// branch on the failure class:
//
//	var apiErr *sdk.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == sdk.CodeItemNotFound {
//	    // handle the missing item
//	}
package sdk
