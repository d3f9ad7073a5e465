package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
)

func graphqlQueryTool() mcp.Tool {
	return mcp.NewTool("graphql_query",
		mcp.WithDescription("Run a GraphQL query against the content graph. Resolver errors are returned in the response body, not as tool errors"),
		mcp.WithString("query", mcp.Required(), mcp.Description("GraphQL query document")),
		mcp.WithObject("variables", mcp.Description("GraphQL variables")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func (s *ContentfulServer) handleGraphQLQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryDoc, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	gqlReq := contentful.GraphQLRequest{
		Query:     queryDoc,
		Variables: mcp.ParseStringMap(req, "variables", nil),
	}

	resp, gqlErr := s.api.GraphQL(ctx, spaceID, environmentID, gqlReq)
	if gqlErr != nil {
		return errorResult("graphql query failed", gqlErr), nil
	}
	return marshalResult(resp)
}
