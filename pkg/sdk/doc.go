// Package sysdisco is an embeddable Go client for system document discovery.
//
// It stores projects and their system documents in Valkey, Redis or
// Postgres and recommends existing systems for a free-text feature
// description by extracting Korean and English keywords and matching
// them against system tags.
//
//	client, _ := sysdisco.New(ctx, sysdisco.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	proj, _ := client.Projects().Create(ctx, sysdisco.ProjectInput{Name: "RPG"})
//	_, _ = client.Systems(proj.ID).Create(ctx, sysdisco.SystemInput{
//	    Name:     "Character System",
//	    Category: "core",
//	    Tags:     []string{"character", "player"},
//	})
//
//	res, _ := client.Discover(ctx, proj.ID, featureText)
//	for _, r := range res.Recommendations {
//	    fmt.Println(r.SystemName, r.RelevanceScore, r.MatchedTags)
//	}
package sysdisco
