package gameserver

import (
	"context"

	"google.golang.org/grpc"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/gameserver/dicev1"
)

// AdvisorClient calls a remote Advisor service using advisor types.
type AdvisorClient struct {
	rpc dicev1.AdvisorClient
}

// NewAdvisorClient wraps an established connection.
//
// Precondition: cc must be non-nil.
func NewAdvisorClient(cc grpc.ClientConnInterface) *AdvisorClient {
	return &AdvisorClient{rpc: dicev1.NewAdvisorClient(cc)}
}

// Analyze requests advice for one position.
func (c *AdvisorClient) Analyze(ctx context.Context, req advisor.Request, opts ...grpc.CallOption) (*advisor.Response, error) {
	resp, err := c.rpc.Analyze(ctx, requestToProto(req), opts...)
	if err != nil {
		return nil, err
	}
	return responseFromProto(resp), nil
}

// ListCategories fetches the category catalogue.
func (c *AdvisorClient) ListCategories(ctx context.Context, opts ...grpc.CallOption) ([]advisor.CategoryInfo, error) {
	resp, err := c.rpc.ListCategories(ctx, &dicev1.ListCategoriesRequest{}, opts...)
	if err != nil {
		return nil, err
	}
	return categoriesFromProto(resp.GetCategories()), nil
}
