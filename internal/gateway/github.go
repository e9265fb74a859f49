// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchRepositories(ctx context.Context, window domain.Window) ([]domain.RepositoryRecord, error)
	FetchLanguageColors(ctx context.Context) (domain.ColorTable, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// repositoriesQuery fetches one page of the viewer's own repositories with
// their languages and default-branch commit totals.
type repositoriesQuery struct {
	Viewer struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []repositoryNode
		} `graphql:"repositories(first: 100, after: $cursor, isFork: false, ownerAffiliations: OWNER)"`
	}
}

type repositoryNode struct {
	Name           string
	IsPrivate      bool
	IsFork         bool
	IsArchived     bool
	IsTemplate     bool
	StargazerCount int
	Languages      struct {
		Edges []struct {
			Size int
			Node struct {
				Name string
			}
		}
	} `graphql:"languages(first: 100)"`
	DefaultBranchRef *struct {
		Target struct {
			Commit struct {
				HistoryAll struct {
					TotalCount int
				} `graphql:"historyAll: history"`
				HistoryPeriod struct {
					TotalCount int
				} `graphql:"historyPeriod: history(since: $since, until: $until)"`
			} `graphql:"... on Commit"`
		}
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchRepositories returns every repository of the authenticated user,
// with commit counts for all history and for the given window.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, window domain.Window) ([]domain.RepositoryRecord, error) {
	g.logger.Debug("fetching repositories using GraphQL API", "since", window.Since, "until", window.Until)
	variables := map[string]interface{}{
		"cursor": (*githubv4.String)(nil),
		"since":  githubv4.GitTimestamp{Time: window.Since},
		"until":  githubv4.GitTimestamp{Time: window.Until},
	}

	records := make([]domain.RepositoryRecord, 0)
	for {
		var q repositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for repositories: %w", err)
		}
		for _, node := range q.Viewer.Repositories.Nodes {
			record, err := toRecord(node)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		if !q.Viewer.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Repositories.PageInfo.EndCursor)
		g.logger.Debug("fetching next page of repositories", "fetched", len(records))
	}
	g.logger.Info("fetched repositories", "count", len(records))
	return records, nil
}

// toRecord converts a GraphQL node into a RepositoryRecord.
// Repositories without a default branch have no commits.
func toRecord(node repositoryNode) (domain.RepositoryRecord, error) {
	if node.Name == "" {
		return domain.RepositoryRecord{}, fmt.Errorf("%w: repository node without a name", domain.ErrMalformedRecord)
	}
	record := domain.RepositoryRecord{
		Name:       node.Name,
		IsPrivate:  node.IsPrivate,
		IsFork:     node.IsFork,
		IsArchived: node.IsArchived,
		IsTemplate: node.IsTemplate,
		Stars:      int64(node.StargazerCount),
		Languages:  make([]domain.LanguageSize, 0, len(node.Languages.Edges)),
	}
	for _, edge := range node.Languages.Edges {
		if edge.Node.Name == "" {
			return domain.RepositoryRecord{}, fmt.Errorf("%w: language without a name in %s", domain.ErrMalformedRecord, node.Name)
		}
		record.Languages = append(record.Languages, domain.LanguageSize{Name: edge.Node.Name, Size: int64(edge.Size)})
	}
	if ref := node.DefaultBranchRef; ref != nil {
		record.TotalCommits = int64(ref.Target.Commit.HistoryAll.TotalCount)
		record.RecentCommits = int64(ref.Target.Commit.HistoryPeriod.TotalCount)
	}
	return record, nil
}
