// Package collab wraps the gRPC boundary to the similarity and
// outreach-generation collaborators. The core never implements these
// services; it only calls them and degrades conservatively when they fail.
package collab

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative --proto_path=../../proto collab.proto

import (
	"context"
	"fmt"

	pb "github.com/sagovc/reengage/gen/collabpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types

// OutreachInput carries everything the generation collaborator needs to
// draft a re-engagement message.
type OutreachInput struct {
	CompanyID        string
	UserName         string
	Tone             string
	ThesisKeywords   []string
	Availability     []string
	InteractionNotes string
	SignalTitles     []string
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to the collaborator service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.CollabServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the collaborator gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewCollabServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.CollabServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region embed

// Embed returns an embedding vector for free text. Satisfies match.Embedder.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Embed(ctx, &pb.EmbedRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("embed rpc: %w", err)
	}
	return resp.Embedding, nil
}

// #endregion embed

// #region generate-outreach

// GenerateOutreach requests message text for a draft_outreach or
// personalized share_resource payload.
func (c *Client) GenerateOutreach(ctx context.Context, in OutreachInput) (string, error) {
	resp, err := c.client.GenerateOutreach(ctx, &pb.OutreachRequest{
		CompanyId:        in.CompanyID,
		UserName:         in.UserName,
		Tone:             in.Tone,
		ThesisKeywords:   in.ThesisKeywords,
		Availability:     in.Availability,
		InteractionNotes: in.InteractionNotes,
		SignalTitles:     in.SignalTitles,
	})
	if err != nil {
		return "", fmt.Errorf("generate outreach rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion generate-outreach
